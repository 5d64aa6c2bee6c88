// Package binding models what a trigger key does: either a Command (one
// output action) or a Layer (a nested set of further bindings).
package binding

import (
	"github.com/roach88/hyperkey/internal/karabiner"
	"github.com/roach88/hyperkey/internal/keycode"
)

// Binding is the sum of Command and Layer. The unexported method seals the
// interface so no other variant can exist.
type Binding interface {
	binding()
}

// Command is a direct action bound to a key.
type Command struct {
	Description     string
	To              []karabiner.To
	ToIfAlone       []karabiner.To
	ToAfterKeyUp    []karabiner.To
	ToIfHeldDown    []karabiner.To
	ToDelayedAction *karabiner.DelayedAction
	Parameters      karabiner.Parameters
}

func (Command) binding() {}

// Apply copies the command's effects into m. Type, From and Conditions are
// left to the caller; a description already set on m wins.
func (c Command) Apply(m karabiner.Manipulator) karabiner.Manipulator {
	if m.Description == "" {
		m.Description = c.Description
	}
	m.To = c.To
	m.ToIfAlone = c.ToIfAlone
	m.ToAfterKeyUp = c.ToAfterKeyUp
	m.ToIfHeldDown = c.ToIfHeldDown
	m.ToDelayedAction = c.ToDelayedAction
	m.Parameters = c.Parameters
	return m
}

// Entry binds a trigger key.
type Entry struct {
	Key     keycode.Code
	Binding Binding
}

// On is shorthand for Entry{Key: key, Binding: b}.
func On(key keycode.Code, b Binding) Entry {
	return Entry{Key: key, Binding: b}
}

// Layer is an ordered set of entries. Order is authoring order and is
// preserved in the generated document.
type Layer []Entry

func (Layer) binding() {}

// Sub builds a nested layer.
func Sub(entries ...Entry) Layer {
	return Layer(entries)
}

// Keys returns the trigger keys in order.
func (l Layer) Keys() []keycode.Code {
	keys := make([]keycode.Code, len(l))
	for i, e := range l {
		keys[i] = e.Key
	}
	return keys
}

// Lookup returns the binding for key, if any. The first entry wins when a
// key is bound twice.
func (l Layer) Lookup(key keycode.Code) (Binding, bool) {
	for _, e := range l {
		if e.Key == key {
			return e.Binding, true
		}
	}
	return nil, false
}
