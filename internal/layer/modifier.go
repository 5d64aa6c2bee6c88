package layer

import (
	"github.com/roach88/hyperkey/internal/binding"
	"github.com/roach88/hyperkey/internal/karabiner"
	"github.com/roach88/hyperkey/internal/keycode"
)

// ModifierLayer binds each entry to its key pressed with mod held. No state
// variable is involved. Nested layers are not supported here and are
// skipped; ValidateModifierLayer reports them.
func ModifierLayer(mod keycode.Modifier, description string, entries binding.Layer) karabiner.Rule {
	rule := karabiner.Rule{Description: description, Manipulators: []karabiner.Manipulator{}}
	for _, e := range entries {
		cmd, ok := e.Binding.(binding.Command)
		if !ok {
			continue
		}
		rule.Manipulators = append(rule.Manipulators, cmd.Apply(karabiner.Manipulator{
			Type: karabiner.TypeBasic,
			From: karabiner.From{KeyCode: e.Key, Modifiers: karabiner.Mandatory(mod)},
		}))
	}
	return rule
}
