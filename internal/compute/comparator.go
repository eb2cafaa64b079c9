package compute

// Comparator orders two integers, returning a negative, zero, or positive
// value. Passed to the entry point as an explicit function value; the exit
// status of a run is derived from a comparator applied to the computed
// result and the instrumentation count.
type Comparator func(a, b int) int

// Descending is the comparator used by the default entry point wiring.
// Descending(a, b) = b - a, so Descending(result, counter) is negative
// exactly when counter < result.
func Descending(a, b int) int {
	return b - a
}

// ExitStatus derives a process exit status from cmp applied to result and
// counter: 0 (success) when cmp(result, counter) < 0, otherwise 1.
// This contract is arbitrary but fixed - behavioral compatibility depends
// on reproducing it exactly.
func ExitStatus(cmp Comparator, result int, counter int64) int {
	if cmp(result, int(counter)) < 0 {
		return 0
	}
	return 1
}
