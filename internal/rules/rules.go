// Package rules assembles the fixed rule set written to karabiner.json.
package rules

import (
	"fmt"
	"strings"

	"github.com/roach88/hyperkey/internal/karabiner"
	"github.com/roach88/hyperkey/internal/keycode"
	"github.com/roach88/hyperkey/internal/layer"
)

// Options selects the hardware variant and the optional rule sets.
type Options struct {
	// Laptop switches the language key to the built-in fn key.
	Laptop bool
	// Extras names optional rule sets, see ExtraNames.
	Extras []string
}

// Optional rule sets, off by default.
const (
	ExtraNavigation = "navigation"
	ExtraDeletion   = "deletion"
)

var extras = map[string]func() karabiner.Rule{
	ExtraNavigation: Navigation,
	ExtraDeletion:   Deletion,
}

// ExtraNames lists the optional rule sets in the order they are emitted.
func ExtraNames() []string {
	return []string{ExtraNavigation, ExtraDeletion}
}

// Build returns every rule in evaluation order.
func Build(opts Options) ([]karabiner.Rule, error) {
	enabled := make(map[string]bool, len(opts.Extras))
	for _, name := range opts.Extras {
		name = strings.TrimSpace(name)
		if _, ok := extras[name]; !ok {
			return nil, fmt.Errorf("unknown rule set %q (available: %s)", name, strings.Join(ExtraNames(), ", "))
		}
		enabled[name] = true
	}

	rules := []karabiner.Rule{
		layer.Hyper.Rule(),
		DoubleCommandQ(),
		LanguageSwitch(opts.Laptop),
	}
	for _, name := range ExtraNames() {
		if enabled[name] {
			rules = append(rules, extras[name]())
		}
	}
	rules = append(rules,
		EscapeFix(),
		layer.ModifierLayer(MediaModifier, MediaDescription, MediaLayer()),
	)
	rules = append(rules, layer.Hyper.SubLayers(HyperLayers())...)
	return rules, nil
}

// Document wraps Build's rules in the output envelope.
func Document(opts Options) (karabiner.Document, error) {
	rules, err := Build(opts)
	if err != nil {
		return karabiner.Document{}, err
	}
	return karabiner.NewDocument(rules, karabiner.DocumentOptions{}), nil
}

// Validate checks the built-in layer definitions for authoring errors.
func Validate() []layer.ValidationError {
	errs := layer.Hyper.Validate(HyperLayers())
	errs = append(errs, layer.ValidateModifierLayer(MediaModifier, MediaLayer())...)
	return errs
}

// hyperCondition guards the extra rule sets on the Hyper key being held.
func hyperCondition() []karabiner.Condition {
	return []karabiner.Condition{layer.Hyper.Condition()}
}

func mandatory(mods ...keycode.Modifier) *karabiner.FromModifiers {
	return karabiner.Mandatory(mods...)
}
