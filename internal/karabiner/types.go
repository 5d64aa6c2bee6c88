package karabiner

import "github.com/roach88/hyperkey/internal/keycode"

// TypeBasic is the only manipulator type the generator emits.
const TypeBasic = "basic"

// Document is the root of karabiner.json.
type Document struct {
	Global   Global    `json:"global"`
	Profiles []Profile `json:"profiles"`
}

// Global holds application-wide settings.
type Global struct {
	ShowInMenuBar bool `json:"show_in_menu_bar"`
}

// Profile is a named set of complex modifications.
type Profile struct {
	Name                 string               `json:"name"`
	ComplexModifications ComplexModifications `json:"complex_modifications"`
}

// ComplexModifications wraps the ordered rule list of a profile.
type ComplexModifications struct {
	Rules []Rule `json:"rules"`
}

// Rule groups manipulators under one description. The daemon evaluates
// rules in order and manipulators within a rule in order.
type Rule struct {
	Description  string        `json:"description"`
	Manipulators []Manipulator `json:"manipulators"`
}

// Manipulator is one trigger-to-effect entry.
type Manipulator struct {
	Description     string         `json:"description,omitempty"`
	Type            string         `json:"type"`
	From            From           `json:"from"`
	To              []To           `json:"to,omitempty"`
	ToIfAlone       []To           `json:"to_if_alone,omitempty"`
	ToAfterKeyUp    []To           `json:"to_after_key_up,omitempty"`
	ToIfHeldDown    []To           `json:"to_if_held_down,omitempty"`
	ToDelayedAction *DelayedAction `json:"to_delayed_action,omitempty"`
	Conditions      []Condition    `json:"conditions,omitempty"`
	Parameters      Parameters     `json:"parameters,omitempty"`
}

// From is the trigger side of a manipulator. Exactly one of KeyCode and
// AppleVendorTopCaseKeyCode is set.
type From struct {
	KeyCode                   keycode.Code    `json:"key_code,omitempty"`
	AppleVendorTopCaseKeyCode keycode.TopCase `json:"apple_vendor_top_case_key_code,omitempty"`
	Modifiers                 *FromModifiers  `json:"modifiers,omitempty"`
}

// Key returns the physical key name the trigger listens on.
func (f From) Key() string {
	if f.KeyCode != "" {
		return string(f.KeyCode)
	}
	return string(f.AppleVendorTopCaseKeyCode)
}

// FromModifiers constrains which modifiers must or may be held.
type FromModifiers struct {
	Mandatory []keycode.Modifier `json:"mandatory,omitempty"`
	Optional  []keycode.Modifier `json:"optional,omitempty"`
}

// OptionalAny accepts the trigger with any modifiers held.
func OptionalAny() *FromModifiers {
	return &FromModifiers{Optional: []keycode.Modifier{keycode.ModAny}}
}

// Mandatory requires all of mods to be held.
func Mandatory(mods ...keycode.Modifier) *FromModifiers {
	return &FromModifiers{Mandatory: mods}
}

// To is one output event. Exactly one of the effect fields is set.
type To struct {
	KeyCode           keycode.Code       `json:"key_code,omitempty"`
	Modifiers         []keycode.Modifier `json:"modifiers,omitempty"`
	ShellCommand      string             `json:"shell_command,omitempty"`
	SetVariable       *SetVariable       `json:"set_variable,omitempty"`
	SelectInputSource *InputSource       `json:"select_input_source,omitempty"`
}

// SetVariable assigns a value in the daemon's variable store.
type SetVariable struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// InputSource selects or matches a keyboard input source.
type InputSource struct {
	Language      string `json:"language,omitempty"`
	InputSourceID string `json:"input_source_id,omitempty"`
	InputModeID   string `json:"input_mode_id,omitempty"`
}

// DelayedAction fires ToIfInvoked after a delay unless another key is
// pressed first, in which case ToIfCanceled fires.
type DelayedAction struct {
	ToIfInvoked  []To `json:"to_if_invoked,omitempty"`
	ToIfCanceled []To `json:"to_if_canceled,omitempty"`
}

// Parameters overrides the daemon's per-manipulator timing thresholds.
type Parameters map[string]int

// Parameter names.
const (
	ParamToIfAloneTimeout      = "basic.to_if_alone_timeout_milliseconds"
	ParamToIfHeldDownThreshold = "basic.to_if_held_down_threshold_milliseconds"
	ParamToDelayedActionDelay  = "basic.to_delayed_action_delay_milliseconds"
	ParamSimultaneousThreshold = "basic.simultaneous_threshold_milliseconds"
)

// Daemon defaults applied when a manipulator leaves a parameter unset.
var DefaultParameters = Parameters{
	ParamToIfAloneTimeout:      1000,
	ParamToIfHeldDownThreshold: 500,
	ParamToDelayedActionDelay:  500,
	ParamSimultaneousThreshold: 50,
}

// Get returns the named parameter, falling back to the daemon default.
func (p Parameters) Get(name string) int {
	if v, ok := p[name]; ok {
		return v
	}
	return DefaultParameters[name]
}

// Key emits a key press with optional modifiers.
func Key(code keycode.Code, mods ...keycode.Modifier) To {
	return To{KeyCode: code, Modifiers: mods}
}

// Shell runs a shell command.
func Shell(command string) To {
	return To{ShellCommand: command}
}

// Set assigns value to the named variable.
func Set(name string, value int) To {
	return To{SetVariable: &SetVariable{Name: name, Value: value}}
}

// SelectLanguage switches the input source to the given language.
func SelectLanguage(language string) To {
	return To{SelectInputSource: &InputSource{Language: language}}
}
