package harness

import "github.com/roach88/hyperkey/internal/sim"

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every step expectation and assertion held.
	Pass bool `json:"pass"`

	// Trace is every simulator event in order.
	Trace []sim.Event `json:"trace"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Variables is the final variable store.
	Variables map[string]int `json:"variables,omitempty"`

	// Language is the final input source language.
	Language string `json:"language"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:      true,
		Trace:     []sim.Event{},
		Errors:    []string{},
		Variables: make(map[string]int),
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
