// Package harness runs YAML conformance scenarios against a real
// computation module and compares their traces to golden files.
//
// A scenario wires a module from declarative configuration, drives a
// sequence of Compute calls, and states expectations on per-step results,
// the final instrumentation count, and the derived exit status. Scenarios
// live in testdata/scenarios, goldens in testdata/golden.
package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines one conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Config wires the module under test.
	Config ScenarioConfig `yaml:"config"`

	// SkipInitialize leaves the module uninitialized so a scenario can
	// exercise the not-initialized path.
	SkipInitialize bool `yaml:"skip_initialize,omitempty"`

	// Steps is the sequence of Compute calls.
	Steps []Step `yaml:"steps"`

	// ExpectCounter, when set, is the required final instrumentation count.
	ExpectCounter *int64 `yaml:"expect_counter,omitempty"`

	// ExpectExit, when set, is the required derived exit status, computed
	// from the last successful result and the final count with the
	// descending comparator.
	ExpectExit *int `yaml:"expect_exit,omitempty"`
}

// ScenarioConfig mirrors the subset of startup configuration a scenario
// controls.
type ScenarioConfig struct {
	Stats  bool         `yaml:"stats"`
	Mode   string       `yaml:"mode"`
	Bounds BoundsConfig `yaml:"bounds"`
}

// BoundsConfig is the scenario's clamping range.
type BoundsConfig struct {
	Low  int `yaml:"low"`
	High int `yaml:"high"`
}

// Step is one Compute call.
type Step struct {
	// Base is the input value.
	Base int `yaml:"base"`

	// Expect, when set, is the required result.
	Expect *int `yaml:"expect,omitempty"`

	// ExpectError, when set, names the required failure:
	// "not_initialized" or "invalid_range".
	ExpectError string `yaml:"expect_error,omitempty"`
}

// Error names accepted in Step.ExpectError.
const (
	ErrNameNotInitialized = "not_initialized"
	ErrNameInvalidRange   = "invalid_range"
)

// defaultConfig is the baseline scenarios layer over: stats on, mode "a",
// bounds [0, 1000] - the entry point's own wiring.
func defaultConfig() ScenarioConfig {
	return ScenarioConfig{
		Stats:  true,
		Mode:   "a",
		Bounds: BoundsConfig{Low: 0, High: 1000},
	}
}

// Load reads a scenario from a YAML file, layered over the default
// configuration.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	sc := &Scenario{Config: defaultConfig()}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s: at least one step is required", path)
	}
	for i, step := range sc.Steps {
		switch step.ExpectError {
		case "", ErrNameNotInitialized, ErrNameInvalidRange:
		default:
			return nil, fmt.Errorf("scenario %s: step %d: unknown expect_error %q", path, i, step.ExpectError)
		}
	}
	return sc, nil
}
