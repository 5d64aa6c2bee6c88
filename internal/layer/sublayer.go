package layer

import (
	"fmt"
	"slices"

	"github.com/roach88/hyperkey/internal/binding"
	"github.com/roach88/hyperkey/internal/karabiner"
	"github.com/roach88/hyperkey/internal/keycode"
)

// SubLayers compiles the top level of a prefix tree, one rule per entry.
//
// A Layer entry becomes a guarded sub-layer. A Command entry becomes a
// single "prefix + key" manipulator with no state variable, guarded so it
// stays silent while any sub-layer is engaged.
func (p Prefix) SubLayers(top binding.Layer) []karabiner.Rule {
	siblings := layerVariables(nil, top)

	idle := []karabiner.Condition{p.Condition()}
	for _, v := range siblings {
		idle = append(idle, karabiner.VariableEquals(v, 0))
	}

	rules := make([]karabiner.Rule, 0, len(top))
	for _, e := range top {
		switch b := e.Binding.(type) {
		case binding.Layer:
			rules = append(rules, karabiner.Rule{
				Description:  fmt.Sprintf("Hyper Key sublayer %q", e.Key),
				Manipulators: p.SubLayer(e.Key, b, siblings),
			})
		case binding.Command:
			rules = append(rules, karabiner.Rule{
				Description: fmt.Sprintf("Hyper Key + %s", e.Key),
				Manipulators: []karabiner.Manipulator{b.Apply(karabiner.Manipulator{
					Type:       karabiner.TypeBasic,
					From:       karabiner.From{KeyCode: e.Key, Modifiers: karabiner.OptionalAny()},
					Conditions: slices.Clone(idle),
				})},
			})
		}
	}
	return rules
}

// SubLayer compiles the sub-layer triggered by key. siblings holds every
// sub-layer variable at this level, key's own included.
func (p Prefix) SubLayer(key keycode.Code, l binding.Layer, siblings []string) []karabiner.Manipulator {
	return compile([]keycode.Code{key}, l, siblings, p.Condition())
}

// compile emits the activation manipulator for the layer at path followed
// by its children. guard is what must hold for the layer to activate: the
// prefix condition at the top, the parent variable below it.
func compile(path []keycode.Code, l binding.Layer, siblings []string, guard karabiner.Condition) []karabiner.Manipulator {
	key := path[len(path)-1]
	own := VariableName(path...)

	ancestors := make(map[string]bool, len(path))
	for i := 1; i < len(path); i++ {
		ancestors[VariableName(path[:i]...)] = true
	}

	var cond []karabiner.Condition
	for _, s := range siblings {
		if s == own || ancestors[s] {
			continue
		}
		cond = append(cond, karabiner.VariableEquals(s, 0))
	}
	cond = append(cond, guard)

	out := []karabiner.Manipulator{{
		Description:  fmt.Sprintf("Toggle Hyper sublayer %s", key),
		Type:         karabiner.TypeBasic,
		From:         karabiner.From{KeyCode: key, Modifiers: karabiner.OptionalAny()},
		To:           []karabiner.To{karabiner.Set(own, 1)},
		ToAfterKeyUp: []karabiner.To{karabiner.Set(own, 0)},
		Conditions:   cond,
	}}

	nested := layerVariables(path, l)
	engaged := karabiner.VariableEquals(own, 1)

	for _, e := range l {
		switch b := e.Binding.(type) {
		case binding.Command:
			child := []karabiner.Condition{engaged}
			for _, v := range nested {
				child = append(child, karabiner.VariableEquals(v, 0))
			}
			out = append(out, b.Apply(karabiner.Manipulator{
				Type:       karabiner.TypeBasic,
				From:       karabiner.From{KeyCode: e.Key, Modifiers: karabiner.OptionalAny()},
				Conditions: child,
			}))
		case binding.Layer:
			childPath := append(slices.Clone(path), e.Key)
			inherited := append(slices.Clone(siblings), nested...)
			out = append(out, compile(childPath, b, inherited, engaged)...)
		}
	}
	return out
}

// layerVariables names the variables of the Layer entries directly under
// path.
func layerVariables(path []keycode.Code, l binding.Layer) []string {
	var vars []string
	for _, e := range l {
		if _, ok := e.Binding.(binding.Layer); ok {
			vars = append(vars, VariableName(append(slices.Clone(path), e.Key)...))
		}
	}
	return vars
}
