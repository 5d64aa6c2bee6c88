package layer

import (
	"fmt"
	"strings"

	"github.com/roach88/hyperkey/internal/binding"
	"github.com/roach88/hyperkey/internal/karabiner"
	"github.com/roach88/hyperkey/internal/keycode"
)

// Authoring error codes (E200-E299)
const (
	ErrDuplicateKey        = "E201" // key bound twice in one layer
	ErrUnknownKey          = "E202" // key code or modifier not in the daemon's alphabet
	ErrEmptyLayer          = "E203" // sub-layer with no entries
	ErrNestedModifierLayer = "E204" // nested layer inside a modifier layer
	ErrVariableCollision   = "E205" // two paths derive the same variable name
)

// ValidationError is one authoring error. Path is the dotted key path of
// the offending entry.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Path, e.Message)
}

// Validate checks a prefix tree. Returns all errors found.
func (p Prefix) Validate(top binding.Layer) []ValidationError {
	v := validator{vars: map[string]string{p.Variable: "<prefix>"}}
	if !p.Key.Valid() {
		v.add("", ErrUnknownKey, fmt.Sprintf("unknown prefix key code %q", p.Key))
	}
	v.layer(nil, top, true)
	return v.errs
}

// ValidateModifierLayer checks the entries of a mandatory-modifier layer.
func ValidateModifierLayer(mod keycode.Modifier, entries binding.Layer) []ValidationError {
	var v validator
	if !mod.Valid() {
		v.add("", ErrUnknownKey, fmt.Sprintf("unknown modifier %q", mod))
	}
	v.keys(nil, entries)
	for _, e := range entries {
		switch b := e.Binding.(type) {
		case binding.Layer:
			v.add(string(e.Key), ErrNestedModifierLayer, "nested layers are not supported in a modifier layer")
		case binding.Command:
			v.command(string(e.Key), b)
		}
	}
	return v.errs
}

type validator struct {
	errs []ValidationError
	// vars maps each derived variable name to the path that produced it.
	vars map[string]string
}

func (v *validator) add(path, code, msg string) {
	v.errs = append(v.errs, ValidationError{Path: path, Message: msg, Code: code})
}

func (v *validator) layer(path []keycode.Code, l binding.Layer, top bool) {
	if len(l) == 0 && !top {
		v.add(dotted(path), ErrEmptyLayer, "sub-layer has no entries")
	}
	v.keys(path, l)

	for _, e := range l {
		childPath := append(append([]keycode.Code(nil), path...), e.Key)
		switch b := e.Binding.(type) {
		case binding.Layer:
			name := VariableName(childPath...)
			if other, ok := v.vars[name]; ok {
				v.add(dotted(childPath), ErrVariableCollision,
					fmt.Sprintf("variable %q is also derived by %s", name, other))
			} else {
				v.vars[name] = dotted(childPath)
			}
			v.layer(childPath, b, false)
		case binding.Command:
			v.command(dotted(childPath), b)
		}
	}
}

// keys reports unknown and duplicate trigger keys.
func (v *validator) keys(path []keycode.Code, l binding.Layer) {
	seen := make(map[keycode.Code]bool, len(l))
	for _, e := range l {
		p := dotted(append(append([]keycode.Code(nil), path...), e.Key))
		if !e.Key.Valid() {
			v.add(p, ErrUnknownKey, fmt.Sprintf("unknown key code %q", e.Key))
		}
		if seen[e.Key] {
			v.add(p, ErrDuplicateKey, fmt.Sprintf("key %q is bound more than once", e.Key))
		}
		seen[e.Key] = true
	}
}

// command reports key codes and modifiers in emitted events that the daemon
// would reject.
func (v *validator) command(path string, c binding.Command) {
	lists := [][]karabiner.To{c.To, c.ToIfAlone, c.ToAfterKeyUp, c.ToIfHeldDown}
	if c.ToDelayedAction != nil {
		lists = append(lists, c.ToDelayedAction.ToIfInvoked, c.ToDelayedAction.ToIfCanceled)
	}
	for _, list := range lists {
		for _, to := range list {
			if to.KeyCode != "" && !to.KeyCode.Valid() {
				v.add(path, ErrUnknownKey, fmt.Sprintf("unknown key code %q in output", to.KeyCode))
			}
			for _, m := range to.Modifiers {
				if !m.Valid() || m == keycode.ModAny {
					v.add(path, ErrUnknownKey, fmt.Sprintf("unknown modifier %q in output", m))
				}
			}
		}
	}
}

func dotted(path []keycode.Code) string {
	parts := make([]string, len(path))
	for i, k := range path {
		parts[i] = string(k)
	}
	return strings.Join(parts, ".")
}
