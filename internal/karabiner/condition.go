package karabiner

import (
	"encoding/json"
	"fmt"
)

// ConditionType selects which predicate a Condition evaluates.
type ConditionType string

const (
	VariableIf        ConditionType = "variable_if"
	VariableUnless    ConditionType = "variable_unless"
	InputSourceIf     ConditionType = "input_source_if"
	InputSourceUnless ConditionType = "input_source_unless"
)

// Condition is a manipulator guard. All conditions of a manipulator are
// ANDed. Variable conditions use Name and Value; input-source conditions
// use InputSources.
type Condition struct {
	Type         ConditionType `json:"type"`
	Name         string        `json:"name,omitempty"`
	Value        int           `json:"value"`
	InputSources []InputSource `json:"input_sources,omitempty"`
}

// IsVariable reports whether c tests the variable store.
func (c Condition) IsVariable() bool {
	return c.Type == VariableIf || c.Type == VariableUnless
}

// MarshalJSON writes only the fields that belong to the condition type, so
// input-source conditions carry no "value" and variable conditions always do,
// even when it is 0.
func (c Condition) MarshalJSON() ([]byte, error) {
	switch c.Type {
	case VariableIf, VariableUnless:
		return json.Marshal(struct {
			Type  ConditionType `json:"type"`
			Name  string        `json:"name"`
			Value int           `json:"value"`
		}{c.Type, c.Name, c.Value})
	case InputSourceIf, InputSourceUnless:
		return json.Marshal(struct {
			Type         ConditionType `json:"type"`
			InputSources []InputSource `json:"input_sources"`
		}{c.Type, c.InputSources})
	default:
		return nil, fmt.Errorf("unsupported condition type %q", c.Type)
	}
}

// VariableEquals guards on name == value.
func VariableEquals(name string, value int) Condition {
	return Condition{Type: VariableIf, Name: name, Value: value}
}

// VariableNotEquals guards on name != value.
func VariableNotEquals(name string, value int) Condition {
	return Condition{Type: VariableUnless, Name: name, Value: value}
}

// LanguageIs guards on the current input source language.
func LanguageIs(language string) Condition {
	return Condition{Type: InputSourceIf, InputSources: []InputSource{{Language: language}}}
}

// LanguageIsNot guards on the current input source language differing.
func LanguageIsNot(language string) Condition {
	return Condition{Type: InputSourceUnless, InputSources: []InputSource{{Language: language}}}
}
