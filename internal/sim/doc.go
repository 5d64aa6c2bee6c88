// Package sim is a deterministic model of how the Karabiner daemon
// evaluates complex_modifications rules.
//
// A Machine is driven by key presses, releases and waits on a logical
// millisecond clock. On each key press the first manipulator whose trigger
// and conditions match wins, in rule order and then manipulator order. A
// key nothing matches passes through unchanged. Every effect is recorded in
// a trace stamped with a monotonic sequence number, so two runs of the same
// steps produce identical traces.
//
// The model covers what hyperkey generates: key_code and top-case triggers,
// mandatory/optional modifiers, variable and input-source conditions,
// to, to_if_alone, to_after_key_up, to_if_held_down and to_delayed_action.
// Simultaneous triggers, mouse keys and device conditions are not modelled.
//
// A Machine is not safe for concurrent use.
package sim
