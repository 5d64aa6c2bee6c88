package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/hyperkey/internal/keycode"
	"github.com/roach88/hyperkey/internal/sim"
)

// Scenario is a sequence of key events plus assertions on the outcome.
type Scenario struct {
	// Name identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario checks.
	Description string `yaml:"description"`

	// Laptop builds the laptop variant of the rules.
	Laptop bool `yaml:"laptop,omitempty"`

	// Extras enables optional rule sets by name.
	Extras []string `yaml:"extras,omitempty"`

	// Language is the initial input source. Defaults to "en".
	Language string `yaml:"language,omitempty"`

	Steps      []Step      `yaml:"steps"`
	Assertions []Assertion `yaml:"assertions"`
}

// Step is one input event. Exactly one of Down, Up, Tap and Wait is set.
type Step struct {
	Down string `yaml:"down,omitempty"`
	Up   string `yaml:"up,omitempty"`
	Tap  string `yaml:"tap,omitempty"`
	Wait int64  `yaml:"wait,omitempty"`

	// Variables are expected values right after the step.
	Variables map[string]int `yaml:"variables,omitempty"`

	// Language is the expected input source right after the step.
	Language string `yaml:"language,omitempty"`
}

// String describes the step for error messages.
func (s Step) String() string {
	switch {
	case s.Down != "":
		return "down " + s.Down
	case s.Up != "":
		return "up " + s.Up
	case s.Tap != "":
		return "tap " + s.Tap
	default:
		return fmt.Sprintf("wait %d", s.Wait)
	}
}

// Assertion checks the final trace or state.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Key is the emitted key (emitted, not_emitted, event_count).
	Key string `yaml:"key,omitempty"`

	// Modifiers, when set, must equal the emitted modifiers as a set.
	Modifiers []keycode.Modifier `yaml:"modifiers,omitempty"`

	// Command is a substring of the shell command (shell).
	Command string `yaml:"command,omitempty"`

	// Variable and Value are the expected final variable (variable).
	Variable string `yaml:"variable,omitempty"`
	Value    int    `yaml:"value,omitempty"`

	// Language is the expected final input source (input_source).
	Language string `yaml:"language,omitempty"`

	// Event and Count are the trace event type and expected number
	// (event_count).
	Event sim.EventType `yaml:"event,omitempty"`
	Count int           `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertEmitted     = "emitted"
	AssertNotEmitted  = "not_emitted"
	AssertShell       = "shell"
	AssertVariable    = "variable"
	AssertInputSource = "input_source"
	AssertEventCount  = "event_count"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Reject unknown fields so typos like "assertion:" fail loudly
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// FindScenarioFiles returns the .yaml and .yml files directly in dir,
// sorted by name.
func FindScenarioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		set := 0
		for _, key := range []string{step.Down, step.Up, step.Tap} {
			if key != "" {
				set++
			}
		}
		if step.Wait > 0 {
			set++
		}
		if step.Wait < 0 {
			return fmt.Errorf("steps[%d]: wait must be non-negative", i)
		}
		if set != 1 {
			return fmt.Errorf("steps[%d]: exactly one of down, up, tap or wait is required", i)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertEmitted, AssertNotEmitted:
		if a.Key == "" {
			return fmt.Errorf("assertions[%d]: key is required for %s", index, a.Type)
		}
	case AssertShell:
		if a.Command == "" {
			return fmt.Errorf("assertions[%d]: command is required for shell", index)
		}
	case AssertVariable:
		if a.Variable == "" {
			return fmt.Errorf("assertions[%d]: variable is required for variable", index)
		}
	case AssertInputSource:
		if a.Language == "" {
			return fmt.Errorf("assertions[%d]: language is required for input_source", index)
		}
	case AssertEventCount:
		if a.Event == "" {
			return fmt.Errorf("assertions[%d]: event is required for event_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for event_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
