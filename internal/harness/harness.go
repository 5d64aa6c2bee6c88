package harness

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/roach88/hyperkey/internal/rules"
	"github.com/roach88/hyperkey/internal/sim"
)

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	logger *zap.Logger
}

// WithLogger routes simulator debug output to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *runConfig) { c.logger = logger }
}

// Run builds the rules the scenario asks for, drives a fresh simulator
// through its steps and evaluates its assertions.
//
// An error is returned only when the rules cannot be built. Failed step
// expectations, invalid key sequences and failed assertions are reported
// in the Result.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	cfg := runConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger.With(zap.String("scenario", scenario.Name))

	rs, err := rules.Build(rules.Options{Laptop: scenario.Laptop, Extras: scenario.Extras})
	if err != nil {
		return nil, fmt.Errorf("failed to build rules: %w", err)
	}

	simOpts := []sim.Option{sim.WithLogger(log)}
	if scenario.Language != "" {
		simOpts = append(simOpts, sim.WithLanguage(scenario.Language))
	}
	machine := sim.New(rs, simOpts...)

	result := NewResult()
	for i, step := range scenario.Steps {
		if err := apply(machine, step); err != nil {
			result.AddError(fmt.Sprintf("steps[%d] (%s): %v", i, step, err))
			continue
		}
		checkStep(machine, i, step, result)
	}

	result.Trace = machine.Trace()
	result.Variables = machine.Variables()
	result.Language = machine.Language()

	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(errMsg)
	}

	log.Debug("scenario finished",
		zap.Bool("pass", result.Pass),
		zap.Int("events", len(result.Trace)))
	return result, nil
}

func apply(m *sim.Machine, step Step) error {
	switch {
	case step.Down != "":
		return m.KeyDown(step.Down)
	case step.Up != "":
		return m.KeyUp(step.Up)
	case step.Tap != "":
		return m.Tap(step.Tap)
	default:
		m.Wait(step.Wait)
		return nil
	}
}

// checkStep compares the state right after a step with its expectations.
func checkStep(m *sim.Machine, i int, step Step, result *Result) {
	for _, name := range slices.Sorted(maps.Keys(step.Variables)) {
		want := step.Variables[name]
		if got := m.Variable(name); got != want {
			result.AddError(fmt.Sprintf("steps[%d] (%s): expected %s = %d, got %d", i, step, name, want, got))
		}
	}
	if step.Language != "" && m.Language() != step.Language {
		result.AddError(fmt.Sprintf("steps[%d] (%s): expected input source %s, got %s", i, step, step.Language, m.Language()))
	}
}
