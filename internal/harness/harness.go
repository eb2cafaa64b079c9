package harness

import (
	"fmt"

	"boundcalc/internal/bounds"
	"boundcalc/internal/compute"
	"boundcalc/internal/stats"
	"boundcalc/internal/testutil"
)

// TraceEvent is one entry of a scenario trace.
type TraceEvent struct {
	Seq    int64
	Base   int
	Result int
	// Error is the named error class when the step failed, empty otherwise.
	Error string
}

// Result holds the outcome of a scenario run.
type Result struct {
	Trace []TraceEvent

	// Counter is the final instrumentation count.
	Counter int64

	// LastResult is the result of the last successful step.
	LastResult int

	// ExitStatus is derived from LastResult and Counter with the
	// descending comparator, matching the entry point's contract.
	ExitStatus int
}

// Run executes a scenario against a freshly wired module.
//
// Per-step expectations are checked as the flow executes; the first
// mismatch aborts the run with an error. Scenario-level expectations
// (counter, exit status) are checked after the flow completes.
func Run(sc *Scenario) (*Result, error) {
	counter := stats.NewCounter(sc.Config.Stats)
	module := compute.New(counter, bounds.Range{Low: sc.Config.Bounds.Low, High: sc.Config.Bounds.High})

	if !sc.SkipInitialize {
		mode, err := compute.ParseMode(sc.Config.Mode)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		if err := module.Initialize(mode); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
	}

	clock := testutil.NewDeterministicClock()
	result := &Result{}

	for i, step := range sc.Steps {
		value, err := module.Compute(step.Base)
		event := TraceEvent{Seq: clock.Next(), Base: step.Base}

		if err != nil {
			event.Error = classifyError(err)
			result.Trace = append(result.Trace, event)

			if step.ExpectError == "" {
				return nil, fmt.Errorf("scenario %s: step %d: unexpected error: %w", sc.Name, i, err)
			}
			if event.Error != step.ExpectError {
				return nil, fmt.Errorf("scenario %s: step %d: expected error %q, got %q",
					sc.Name, i, step.ExpectError, event.Error)
			}
			continue
		}

		if step.ExpectError != "" {
			return nil, fmt.Errorf("scenario %s: step %d: expected error %q, got result %d",
				sc.Name, i, step.ExpectError, value)
		}
		if step.Expect != nil && value != *step.Expect {
			return nil, fmt.Errorf("scenario %s: step %d: expected %d, got %d",
				sc.Name, i, *step.Expect, value)
		}

		event.Result = value
		result.Trace = append(result.Trace, event)
		result.LastResult = value
	}

	result.Counter = counter.Read()
	result.ExitStatus = compute.ExitStatus(compute.Descending, result.LastResult, result.Counter)

	if sc.ExpectCounter != nil && result.Counter != *sc.ExpectCounter {
		return nil, fmt.Errorf("scenario %s: expected counter %d, got %d",
			sc.Name, *sc.ExpectCounter, result.Counter)
	}
	if sc.ExpectExit != nil && result.ExitStatus != *sc.ExpectExit {
		return nil, fmt.Errorf("scenario %s: expected exit status %d, got %d",
			sc.Name, *sc.ExpectExit, result.ExitStatus)
	}

	return result, nil
}

// classifyError maps component errors to the scenario error names.
func classifyError(err error) string {
	switch {
	case compute.IsNotInitialized(err):
		return ErrNameNotInitialized
	case bounds.IsInvalidRange(err):
		return ErrNameInvalidRange
	default:
		return "unknown"
	}
}
