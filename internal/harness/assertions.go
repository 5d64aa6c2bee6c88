package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/hyperkey/internal/keycode"
	"github.com/roach88/hyperkey/internal/sim"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string      // Assertion type for categorization
	Expected string      // Human-readable expected outcome
	Actual   string      // Human-readable actual outcome
	Trace    []sim.Event // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull trace:\n")
	for _, event := range e.Trace {
		fmt.Fprintf(&buf, "  [%d] %s\n", event.Seq, describe(event))
	}

	return buf.String()
}

// describe renders one trace event on a single line.
func describe(e sim.Event) string {
	switch e.Type {
	case sim.EventEmit:
		if len(e.Modifiers) > 0 {
			return fmt.Sprintf("emit %s %v", e.Key, e.Modifiers)
		}
		return "emit " + e.Key
	case sim.EventShell:
		return "shell " + e.Command
	case sim.EventSetVariable:
		return fmt.Sprintf("set %s = %d", e.Variable, *e.Value)
	case sim.EventSelectInputSource:
		return "select input source " + e.Language
	default:
		return fmt.Sprintf("%s %s", e.Type, e.Key)
	}
}

// assertEmitted checks that the key was emitted, with exactly the given
// modifiers when any are listed.
func assertEmitted(trace []sim.Event, a Assertion) error {
	if findEmit(trace, a) >= 0 {
		return nil
	}
	return &AssertionError{
		Type:     AssertEmitted,
		Expected: fmt.Sprintf("emit %s %v", a.Key, a.Modifiers),
		Actual:   emittedSummary(trace),
		Trace:    trace,
	}
}

// assertNotEmitted checks that no matching emit occurred.
func assertNotEmitted(trace []sim.Event, a Assertion) error {
	i := findEmit(trace, a)
	if i < 0 {
		return nil
	}
	return &AssertionError{
		Type:     AssertNotEmitted,
		Expected: fmt.Sprintf("no emit of %s %v", a.Key, a.Modifiers),
		Actual:   fmt.Sprintf("emitted at seq %d", trace[i].Seq),
		Trace:    trace,
	}
}

func findEmit(trace []sim.Event, a Assertion) int {
	return slices.IndexFunc(trace, func(e sim.Event) bool {
		if e.Type != sim.EventEmit || e.Key != a.Key {
			return false
		}
		return len(a.Modifiers) == 0 || sameModifiers(e.Modifiers, a.Modifiers)
	})
}

func sameModifiers(a, b []keycode.Modifier) bool {
	x, y := slices.Clone(a), slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}

func emittedSummary(trace []sim.Event) string {
	var keys []string
	for _, e := range sim.Filter(trace, sim.EventEmit) {
		keys = append(keys, describe(e))
	}
	if len(keys) == 0 {
		return "nothing emitted"
	}
	return strings.Join(keys, ", ")
}

// assertShell checks that a shell command containing a.Command ran.
func assertShell(trace []sim.Event, a Assertion) error {
	var ran []string
	for _, e := range sim.Filter(trace, sim.EventShell) {
		if strings.Contains(e.Command, a.Command) {
			return nil
		}
		ran = append(ran, e.Command)
	}

	actual := "no shell commands"
	if len(ran) > 0 {
		actual = strings.Join(ran, "; ")
	}
	return &AssertionError{
		Type:     AssertShell,
		Expected: fmt.Sprintf("shell command containing %q", a.Command),
		Actual:   actual,
		Trace:    trace,
	}
}

// assertVariable checks a final variable value.
func assertVariable(result *Result, a Assertion) error {
	if got := result.Variables[a.Variable]; got != a.Value {
		return &AssertionError{
			Type:     AssertVariable,
			Expected: fmt.Sprintf("%s = %d", a.Variable, a.Value),
			Actual:   fmt.Sprintf("%s = %d", a.Variable, got),
			Trace:    result.Trace,
		}
	}
	return nil
}

// assertInputSource checks the final input source language.
func assertInputSource(result *Result, a Assertion) error {
	if result.Language != a.Language {
		return &AssertionError{
			Type:     AssertInputSource,
			Expected: a.Language,
			Actual:   result.Language,
			Trace:    result.Trace,
		}
	}
	return nil
}

// assertEventCount checks how many events of a type occurred, optionally
// for one key.
func assertEventCount(trace []sim.Event, a Assertion) error {
	count := 0
	for _, e := range sim.Filter(trace, a.Event) {
		if a.Key == "" || e.Key == a.Key {
			count++
		}
	}

	if count != a.Count {
		subject := string(a.Event)
		if a.Key != "" {
			subject += " " + a.Key
		}
		return &AssertionError{
			Type:     AssertEventCount,
			Expected: fmt.Sprintf("%d occurrences of %s", a.Count, subject),
			Actual:   fmt.Sprintf("%d occurrences", count),
			Trace:    trace,
		}
	}
	return nil
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertEmitted:
			err = assertEmitted(result.Trace, assertion)
		case AssertNotEmitted:
			err = assertNotEmitted(result.Trace, assertion)
		case AssertShell:
			err = assertShell(result.Trace, assertion)
		case AssertVariable:
			err = assertVariable(result, assertion)
		case AssertInputSource:
			err = assertInputSource(result, assertion)
		case AssertEventCount:
			err = assertEventCount(result.Trace, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
