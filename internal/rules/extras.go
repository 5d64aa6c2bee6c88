package rules

import (
	"github.com/roach88/hyperkey/internal/karabiner"
	"github.com/roach88/hyperkey/internal/keycode"
)

// Navigation maps Hyper + h/j/k/l to the arrow keys. Command selects and
// Command+Shift selects by word (h, l) or by three lines (j, k).
func Navigation() karabiner.Rule {
	shift := keycode.ModLeftShift
	wordShift := []keycode.Modifier{keycode.ModLeftShift, keycode.ModLeftOption}

	return karabiner.Rule{
		Description: "Navigation keys",
		Manipulators: []karabiner.Manipulator{
			hyperKey("move left", keycode.H, nil, karabiner.Key(keycode.LeftArrow)),
			hyperKey("select left", keycode.H, mandatory(keycode.ModCommand), karabiner.Key(keycode.LeftArrow, shift)),
			hyperKey("select word left", keycode.H, mandatory(keycode.ModCommand, keycode.ModShift), karabiner.Key(keycode.LeftArrow, wordShift...)),

			hyperKey("", keycode.J, nil, karabiner.Key(keycode.DownArrow)),
			hyperKey("", keycode.J, mandatory(keycode.ModCommand), karabiner.Key(keycode.DownArrow, shift)),
			hyperKey("", keycode.J, mandatory(keycode.ModCommand, keycode.ModShift), repeat(karabiner.Key(keycode.DownArrow, shift), 3)...),

			hyperKey("", keycode.K, nil, karabiner.Key(keycode.UpArrow)),
			hyperKey("", keycode.K, mandatory(keycode.ModCommand), karabiner.Key(keycode.UpArrow, shift)),
			hyperKey("", keycode.K, mandatory(keycode.ModCommand, keycode.ModShift), repeat(karabiner.Key(keycode.UpArrow, shift), 3)...),

			hyperKey("", keycode.L, nil, karabiner.Key(keycode.RightArrow)),
			hyperKey("select right", keycode.L, mandatory(keycode.ModCommand), karabiner.Key(keycode.RightArrow, shift)),
			hyperKey("select word right", keycode.L, mandatory(keycode.ModCommand, keycode.ModShift), karabiner.Key(keycode.RightArrow, wordShift...)),
		},
	}
}

// Deletion maps Hyper + n to deleting backwards and Hyper + period to
// deleting forwards, by word, to line start or to line end.
func Deletion() karabiner.Rule {
	return karabiner.Rule{
		Description: "Deletion keys",
		Manipulators: []karabiner.Manipulator{
			hyperKey("delete a word behind", keycode.N, nil,
				karabiner.Key(keycode.DeleteOrBackspace, keycode.ModLeftOption)),
			hyperKey("delete a selection line behind", keycode.N, mandatory(keycode.ModCommand),
				karabiner.Key(keycode.LeftArrow, keycode.ModLeftShift, keycode.ModLeftCommand),
				karabiner.Key(keycode.DeleteOrBackspace)),
			hyperKey("delete a full line behind", keycode.N, mandatory(keycode.ModOption),
				karabiner.Key(keycode.DeleteOrBackspace, keycode.ModLeftCommand)),
			hyperKey("delete a char ahead", keycode.Period, nil,
				karabiner.Key(keycode.DeleteForward, keycode.ModLeftOption)),
			hyperKey("delete a selection line ahead", keycode.Period, mandatory(keycode.ModCommand),
				karabiner.Key(keycode.RightArrow, keycode.ModLeftShift, keycode.ModLeftCommand),
				karabiner.Key(keycode.DeleteForward)),
		},
	}
}

func hyperKey(description string, key keycode.Code, mods *karabiner.FromModifiers, to ...karabiner.To) karabiner.Manipulator {
	return karabiner.Manipulator{
		Description: description,
		Type:        karabiner.TypeBasic,
		From:        karabiner.From{KeyCode: key, Modifiers: mods},
		To:          to,
		Conditions:  hyperCondition(),
	}
}

func repeat(to karabiner.To, n int) []karabiner.To {
	out := make([]karabiner.To, n)
	for i := range out {
		out[i] = to
	}
	return out
}
