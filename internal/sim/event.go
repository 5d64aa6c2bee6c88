package sim

import "github.com/roach88/hyperkey/internal/keycode"

// EventType names a trace entry.
type EventType string

const (
	EventKeyDown           EventType = "key_down"
	EventKeyUp             EventType = "key_up"
	EventPassthrough       EventType = "passthrough"
	EventEmit              EventType = "emit"
	EventShell             EventType = "shell"
	EventSetVariable       EventType = "set_variable"
	EventSelectInputSource EventType = "select_input_source"
)

// Event is one trace entry. Only the fields relevant to Type are set.
type Event struct {
	Seq       int64              `json:"seq" yaml:"seq"`
	Time      int64              `json:"time" yaml:"time"`
	Type      EventType          `json:"type" yaml:"type"`
	Key       string             `json:"key,omitempty" yaml:"key,omitempty"`
	Modifiers []keycode.Modifier `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Command   string             `json:"command,omitempty" yaml:"command,omitempty"`
	Variable  string             `json:"variable,omitempty" yaml:"variable,omitempty"`
	Value     *int               `json:"value,omitempty" yaml:"value,omitempty"`
	Language  string             `json:"language,omitempty" yaml:"language,omitempty"`
}

// Filter returns the events of the given types, in order.
func Filter(trace []Event, types ...EventType) []Event {
	var out []Event
	for _, e := range trace {
		for _, t := range types {
			if e.Type == t {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
