package layer

import (
	"fmt"
	"strings"

	"github.com/roach88/hyperkey/internal/karabiner"
	"github.com/roach88/hyperkey/internal/keycode"
)

// VariablePrefix starts every generated sub-layer variable name.
const VariablePrefix = "hyper_sublayer_"

// VariableName derives the state variable for the sub-layer reached by path.
func VariableName(path ...keycode.Code) string {
	parts := make([]string, len(path))
	for i, k := range path {
		parts[i] = string(k)
	}
	return VariablePrefix + strings.Join(parts, "_")
}

// Prefix is the key that arms sub-layers. Variable is 1 while Key is held.
type Prefix struct {
	Key      keycode.Code
	Variable string

	// Title and Description label the arm/disarm rule and its manipulator.
	Title       string
	Description string
}

// Hyper is caps lock acting as the Hyper key.
var Hyper = Prefix{
	Key:         keycode.CapsLock,
	Variable:    "hyper",
	Title:       "Hyper Key (⌃⌥⇧⌘)",
	Description: "Caps Lock -> Hyper Key",
}

// NewPrefix uses key as a prefix, named after itself.
func NewPrefix(key keycode.Code) Prefix {
	return Prefix{
		Key:         key,
		Variable:    string(key),
		Title:       fmt.Sprintf("Prefix Key (%s)", key),
		Description: fmt.Sprintf("%s -> Prefix Key", key),
	}
}

// Condition holds while the prefix key is down.
func (p Prefix) Condition() karabiner.Condition {
	return karabiner.VariableEquals(p.Variable, 1)
}

// Rule arms the prefix variable on press and disarms it on release.
func (p Prefix) Rule() karabiner.Rule {
	return karabiner.Rule{
		Description: p.Title,
		Manipulators: []karabiner.Manipulator{{
			Description:  p.Description,
			Type:         karabiner.TypeBasic,
			From:         karabiner.From{KeyCode: p.Key, Modifiers: karabiner.OptionalAny()},
			To:           []karabiner.To{karabiner.Set(p.Variable, 1)},
			ToAfterKeyUp: []karabiner.To{karabiner.Set(p.Variable, 0)},
		}},
	}
}
