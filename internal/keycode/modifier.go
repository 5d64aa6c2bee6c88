package keycode

import (
	"slices"
	"strings"
)

// Modifier is a modifier name accepted in from.modifiers and to.modifiers.
type Modifier string

const (
	ModAny          Modifier = "any"
	ModCommand      Modifier = "command"
	ModControl      Modifier = "control"
	ModOption       Modifier = "option"
	ModShift        Modifier = "shift"
	ModLeftCommand  Modifier = "left_command"
	ModLeftControl  Modifier = "left_control"
	ModLeftOption   Modifier = "left_option"
	ModLeftShift    Modifier = "left_shift"
	ModRightCommand Modifier = "right_command"
	ModRightControl Modifier = "right_control"
	ModRightOption  Modifier = "right_option"
	ModRightShift   Modifier = "right_shift"
	ModFn           Modifier = "fn"
	ModCapsLock     Modifier = "caps_lock"
)

// Hyper is the modifier chord a Hyper key stands for.
var Hyper = []Modifier{ModLeftCommand, ModLeftOption, ModLeftControl, ModLeftShift}

var modifiers = map[Modifier]bool{
	ModAny: true, ModCommand: true, ModControl: true, ModOption: true, ModShift: true,
	ModLeftCommand: true, ModLeftControl: true, ModLeftOption: true, ModLeftShift: true,
	ModRightCommand: true, ModRightControl: true, ModRightOption: true, ModRightShift: true,
	ModFn: true, ModCapsLock: true,
}

// Valid reports whether m is a known modifier name.
func (m Modifier) Valid() bool {
	return modifiers[m]
}

// Matches reports whether a held side-specific modifier satisfies m.
// "any" matches everything; "command" matches left_command and right_command.
func (m Modifier) Matches(held Modifier) bool {
	switch {
	case m == ModAny:
		return true
	case m == held:
		return true
	case !strings.Contains(string(m), "_"):
		return held == "left_"+m || held == "right_"+m
	}
	return false
}

// Modifiers returns every known modifier name, sorted.
func Modifiers() []Modifier {
	out := make([]Modifier, 0, len(modifiers))
	for m := range modifiers {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}
