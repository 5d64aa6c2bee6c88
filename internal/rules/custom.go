package rules

import (
	"github.com/roach88/hyperkey/internal/karabiner"
	"github.com/roach88/hyperkey/internal/keycode"
)

// Input source languages toggled by LanguageSwitch.
const (
	English = "en"
	Russian = "ru"
)

// CommandQVariable is armed by the first Command+Q.
const CommandQVariable = "command-q"

// DoubleCommandQ only quits on a second Command+Q pressed before the
// delayed action resets the armed variable.
func DoubleCommandQ() karabiner.Rule {
	from := karabiner.From{KeyCode: keycode.Q, Modifiers: mandatory(keycode.ModCommand)}
	reset := []karabiner.To{karabiner.Set(CommandQVariable, 0)}

	return karabiner.Rule{
		Description: "Double Command+Q to quit",
		Manipulators: []karabiner.Manipulator{
			{
				Type:       karabiner.TypeBasic,
				From:       from,
				To:         []karabiner.To{karabiner.Key(keycode.Q, keycode.ModLeftCommand)},
				Conditions: []karabiner.Condition{karabiner.VariableEquals(CommandQVariable, 1)},
			},
			{
				Type: karabiner.TypeBasic,
				From: from,
				To:   []karabiner.To{karabiner.Set(CommandQVariable, 1)},
				ToDelayedAction: &karabiner.DelayedAction{
					ToIfInvoked:  reset,
					ToIfCanceled: reset,
				},
			},
		},
	}
}

// LanguageSwitch toggles between English and Russian when the language key
// is tapped alone. On a laptop the key is fn, whose own press is swallowed;
// on a desktop it is left control, which still works as a modifier.
func LanguageSwitch(laptop bool) karabiner.Rule {
	from := karabiner.From{KeyCode: keycode.LeftControl}
	to := []karabiner.To{karabiner.Key(keycode.LeftControl)}
	if laptop {
		from = karabiner.From{AppleVendorTopCaseKeyCode: keycode.KeyboardFn}
		to = []karabiner.To{karabiner.Key(keycode.VKNone)}
	}

	toggle := func(current, next string) karabiner.Manipulator {
		return karabiner.Manipulator{
			Type:       karabiner.TypeBasic,
			From:       from,
			To:         to,
			ToIfAlone:  []karabiner.To{karabiner.SelectLanguage(next)},
			Conditions: []karabiner.Condition{karabiner.LanguageIs(current)},
		}
	}

	return karabiner.Rule{
		Description: "Switch to English or Russian",
		Manipulators: []karabiner.Manipulator{
			toggle(English, Russian),
			toggle(Russian, English),
		},
	}
}

// EscapeFix works around escape waking the machine from sleep by only
// sending escape when it is tapped alone.
// https://github.com/pqrs-org/Karabiner-Elements/issues/2880#issuecomment-1774847928
func EscapeFix() karabiner.Rule {
	return karabiner.Rule{
		Description: "Temporary Fix for sleep issue",
		Manipulators: []karabiner.Manipulator{{
			Type:      karabiner.TypeBasic,
			From:      karabiner.From{KeyCode: keycode.Escape},
			ToIfAlone: []karabiner.To{karabiner.Key(keycode.Escape)},
		}},
	}
}
