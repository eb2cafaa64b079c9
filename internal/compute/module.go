package compute

import (
	"fmt"
	"sync"

	"boundcalc/internal/bounds"
	"boundcalc/internal/stats"
)

// Mode is an opaque configuration tag accepted by Initialize.
//
// Every known mode currently produces the same adjustment. The tag is a
// deliberate extension point for mode-dependent adjustments, not dead
// surface - callers pass it, the module validates it, and behavior stays
// uniform until a requirement defines otherwise.
type Mode string

const (
	ModeA Mode = "a"
	ModeB Mode = "b"
)

// ParseMode converts a configuration string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeA, ModeB:
		return m, nil
	default:
		return "", &UnknownModeError{Mode: m}
	}
}

// AdjustmentConstant is the fixed offset applied to every base value.
// Initialize always resets the module's adjustment to this value regardless
// of mode. The module's own copy stays private; the constant is exported for
// journaling and tests.
const AdjustmentConstant = 42

// Module is the bounded stateful computation module.
//
// Construct with New, then Initialize before the first Compute. The range
// and counter are fixed at construction; only the adjustment and the
// initialized flag mutate, and only under mu.
type Module struct {
	mu          sync.Mutex
	adjustment  int
	initialized bool

	counter *stats.Counter
	rng     bounds.Range
}

// New creates a module in the Uninitialized state.
//
// counter must not be nil; the module increments it on every Compute call
// (a disabled counter makes that a no-op). rng is the clamping range applied
// to every result.
func New(counter *stats.Counter, rng bounds.Range) *Module {
	return &Module{counter: counter, rng: rng}
}

// Initialize moves the module to the Ready state, resetting the adjustment
// to its fixed constant.
//
// Idempotent - calling it again re-applies the same constant, so repeated
// initialization cannot change observable behavior. mode is validated
// against the known set but does not affect the adjustment.
func (m *Module) Initialize(mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.adjustment = AdjustmentConstant
	m.initialized = true
	return nil
}

// Compute adds the module's adjustment to base and clamps the sum into the
// module's range.
//
// Requires the Ready state; in Uninitialized it fails with
// NotInitializedError, which the caller can recover from by calling
// Initialize and retrying. When instrumentation is enabled the counter is
// incremented exactly once per call, before the arithmetic, so the count
// reflects attempts that reached a Ready module.
func (m *Module) Compute(base int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return 0, &NotInitializedError{Op: "compute"}
	}

	m.counter.Increment()

	result, err := bounds.Clamp(base+m.adjustment, m.rng)
	if err != nil {
		return 0, fmt.Errorf("compute: %w", err)
	}
	return result, nil
}

// Range returns the clamping range the module applies.
func (m *Module) Range() bounds.Range {
	return m.rng
}

// Ready reports whether the module has been initialized.
func (m *Module) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}
