// Package stats implements the process-wide instrumentation counter.
//
// The counter tracks how many computations the module has performed. Whether
// counting is active is decided once, at construction, from configuration -
// never per call. A disabled counter accepts Increment calls as no-ops and
// reads 0 forever, so callers never branch on the flag themselves.
//
// The count is monotonically non-decreasing for the life of the process:
// there is no reset and no decrement.
package stats

import "sync/atomic"

// Counter counts computation invocations.
//
// Thread-safety: Counter is safe for concurrent use (atomic operations).
// The single-threaded entry point does not need this, but the module is
// allowed to be shared across callers and the counter must stay exact.
type Counter struct {
	enabled bool
	n       atomic.Int64
}

// NewCounter creates a counter starting at 0.
//
// enabled is resolved from the startup configuration and is fixed for the
// counter's lifetime. When false, Increment is a no-op and Read always
// returns 0.
func NewCounter(enabled bool) *Counter {
	return &Counter{enabled: enabled}
}

// Increment adds 1 to the counter when instrumentation is enabled.
// Calls are atomic - concurrent increments are never lost.
func (c *Counter) Increment() {
	if !c.enabled {
		return
	}
	c.n.Add(1)
}

// Read returns the current count.
func (c *Counter) Read() int64 {
	return c.n.Load()
}

// Enabled reports whether instrumentation is active for this counter.
func (c *Counter) Enabled() bool {
	return c.enabled
}
