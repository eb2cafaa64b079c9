// Package compute implements the bounded stateful computation module.
//
// The module owns a private adjustment value, set only by Initialize, and
// exposes a single operation, Compute, that adds the adjustment to a
// caller-supplied base and clamps the sum into a fixed range.
//
// STATE MACHINE:
//
//	Uninitialized --Initialize--> Ready
//
// Compute is only valid in Ready. Calling it in Uninitialized returns
// NotInitializedError - an error, not a panic, because the caller can
// recover by initializing and retrying. Initialize is idempotent: every
// call resets the adjustment to the same constant, so repeated calls are
// safe and observationally equivalent to one.
//
// CONCURRENCY:
//
// The intended execution model is single-threaded and synchronous, but the
// module may be shared. All state transitions are guarded by a mutex so a
// concurrent Compute never observes a half-updated adjustment, and the
// instrumentation counter is atomic. No cancellation or retry semantics
// apply - every operation completes immediately and deterministically.
package compute
