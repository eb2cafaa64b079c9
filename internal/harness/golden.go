package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"boundcalc/internal/trace"
)

// snapshot converts a run result to the canonical map form.
func snapshot(sc *Scenario, result *Result) map[string]any {
	events := make([]any, len(result.Trace))
	for i, ev := range result.Trace {
		m := map[string]any{
			"seq":  ev.Seq,
			"base": ev.Base,
		}
		if ev.Error != "" {
			m["error"] = ev.Error
		} else {
			m["result"] = ev.Result
		}
		events[i] = m
	}

	return map[string]any{
		"scenario_name": sc.Name,
		"trace":         events,
		"counter":       result.Counter,
		"exit_status":   result.ExitStatus,
	}
}

// RunWithGolden executes a scenario and compares its trace against the
// golden file testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, sc *Scenario) error {
	t.Helper()

	result, err := Run(sc)
	if err != nil {
		return err
	}

	data, err := trace.MarshalCanonical(snapshot(sc, result))
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, sc.Name, data)
	return nil
}
