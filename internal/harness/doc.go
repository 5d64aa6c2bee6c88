// Package harness runs key-press scenarios against the generated rules.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: window_left_half
//	description: "Hyper+W then left arrow sends the window shortcut"
//	laptop: false
//	language: en
//	extras: [navigation]
//	steps:
//	  - down: caps_lock
//	    variables: { hyper: 1 }
//	  - down: w
//	    variables: { hyper_sublayer_w: 1 }
//	  - tap: left_arrow
//	  - up: w
//	  - wait: 500
//	assertions:
//	  - type: emitted
//	    key: left_arrow
//	    modifiers: [left_command, left_option, left_control, left_shift]
//	  - type: variable
//	    variable: hyper_sublayer_w
//	    value: 0
//
// Each step does exactly one of down, up, tap or wait (milliseconds). The
// optional variables and language fields are checked right after the step.
//
// # Assertion Types
//
//   - emitted: a key was emitted, with exactly these modifiers if given
//   - not_emitted: a key was never emitted (with these modifiers if given)
//   - shell: a shell command containing command ran
//   - variable: the final value of a variable
//   - input_source: the final input source language
//   - event_count: the number of trace events of one type, optionally for one key
//
// # Determinism
//
// Every run starts from a fresh simulator with a logical clock, so the same
// scenario always yields the same trace. RunWithGolden compares the
// canonical trace against testdata/golden/{name}.golden.
package harness
