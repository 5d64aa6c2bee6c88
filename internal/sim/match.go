package sim

import (
	"regexp"

	"github.com/roach88/hyperkey/internal/karabiner"
	"github.com/roach88/hyperkey/internal/keycode"
)

// matchFrom reports whether key pressed with held modifiers triggers f.
// Every mandatory modifier must be held. Any other held modifier must be
// covered by an optional one; "any" covers all.
func matchFrom(f karabiner.From, key string, held []keycode.Modifier) bool {
	if f.Key() != key {
		return false
	}

	var mandatory, optional []keycode.Modifier
	if f.Modifiers != nil {
		mandatory = f.Modifiers.Mandatory
		optional = f.Modifiers.Optional
	}

	for _, m := range mandatory {
		if !isHeld(m, held) {
			return false
		}
	}

	for _, h := range held {
		if coveredBy(mandatory, h) || coveredBy(optional, h) {
			continue
		}
		return false
	}
	return true
}

func isHeld(m keycode.Modifier, held []keycode.Modifier) bool {
	for _, h := range held {
		if m.Matches(h) {
			return true
		}
	}
	return false
}

func coveredBy(mods []keycode.Modifier, held keycode.Modifier) bool {
	for _, m := range mods {
		if m.Matches(held) {
			return true
		}
	}
	return false
}

// matchConditions reports whether every condition holds.
func (m *Machine) matchConditions(conds []karabiner.Condition) bool {
	for _, c := range conds {
		switch c.Type {
		case karabiner.VariableIf:
			if m.vars[c.Name] != c.Value {
				return false
			}
		case karabiner.VariableUnless:
			if m.vars[c.Name] == c.Value {
				return false
			}
		case karabiner.InputSourceIf:
			if !m.matchInputSources(c.InputSources) {
				return false
			}
		case karabiner.InputSourceUnless:
			if m.matchInputSources(c.InputSources) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// matchInputSources reports whether the current language matches any of
// sources. Languages are regular expressions, as in the daemon.
func (m *Machine) matchInputSources(sources []karabiner.InputSource) bool {
	for _, s := range sources {
		if s.Language == "" {
			return true
		}
		re, err := regexp.Compile(s.Language)
		if err != nil {
			continue
		}
		if re.MatchString(m.language) {
			return true
		}
	}
	return false
}
