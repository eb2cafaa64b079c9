package compute

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boundcalc/internal/bounds"
	"boundcalc/internal/stats"
)

func newTestModule(statsEnabled bool) (*Module, *stats.Counter) {
	c := stats.NewCounter(statsEnabled)
	return New(c, bounds.Range{Low: 0, High: 1000}), c
}

func TestModule_ComputeBeforeInitialize(t *testing.T) {
	m, _ := newTestModule(true)

	_, err := m.Compute(4)
	require.Error(t, err)
	assert.True(t, IsNotInitialized(err))
	assert.False(t, m.Ready())
}

func TestModule_RecoverByInitializing(t *testing.T) {
	m, _ := newTestModule(true)

	_, err := m.Compute(4)
	require.True(t, IsNotInitialized(err))

	// The caller may recover: initialize and retry.
	require.NoError(t, m.Initialize(ModeA))
	got, err := m.Compute(4)
	require.NoError(t, err)
	assert.Equal(t, 46, got)
}

func TestModule_ComputeAddsAdjustmentAndClamps(t *testing.T) {
	tests := []struct {
		name string
		base int
		want int
	}{
		{"in range", 4, 46},
		{"clamped high", 2000, 1000},
		{"clamped low", -100, 0},
		{"at high edge", 958, 1000},
		{"just over high edge", 959, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModule(true)
			require.NoError(t, m.Initialize(ModeA))

			got, err := m.Compute(tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, m.Range().Contains(got))
		})
	}
}

func TestModule_Initialize_Idempotent(t *testing.T) {
	once, _ := newTestModule(false)
	require.NoError(t, once.Initialize(ModeA))
	wantOnce, err := once.Compute(17)
	require.NoError(t, err)

	twice, _ := newTestModule(false)
	require.NoError(t, twice.Initialize(ModeA))
	require.NoError(t, twice.Initialize(ModeA))
	wantTwice, err := twice.Compute(17)
	require.NoError(t, err)

	assert.Equal(t, wantOnce, wantTwice, "double initialize must not change behavior")
}

func TestModule_Initialize_ModesEquivalent(t *testing.T) {
	// Every known mode yields the same adjustment today.
	for _, mode := range []Mode{ModeA, ModeB} {
		m, _ := newTestModule(false)
		require.NoError(t, m.Initialize(mode))

		got, err := m.Compute(0)
		require.NoError(t, err)
		assert.Equal(t, 42, got, "mode %q must use the fixed adjustment", mode)
	}
}

func TestModule_Initialize_UnknownMode(t *testing.T) {
	m, _ := newTestModule(false)

	err := m.Initialize(Mode("z"))
	require.Error(t, err)
	assert.True(t, IsUnknownMode(err))
	assert.False(t, m.Ready(), "failed initialize must not mark the module ready")
}

func TestModule_ComputeIncrementsCounter(t *testing.T) {
	m, c := newTestModule(true)
	require.NoError(t, m.Initialize(ModeA))

	for i := 0; i < 5; i++ {
		_, err := m.Compute(i)
		require.NoError(t, err)
	}

	assert.Equal(t, int64(5), c.Read())
}

func TestModule_ComputeStatsDisabled(t *testing.T) {
	m, c := newTestModule(false)
	require.NoError(t, m.Initialize(ModeA))

	got, err := m.Compute(4)
	require.NoError(t, err)
	assert.Equal(t, 46, got, "result must not depend on the stats flag")
	assert.Equal(t, int64(0), c.Read())
}

func TestModule_FailedComputeDoesNotCount(t *testing.T) {
	m, c := newTestModule(true)

	_, err := m.Compute(4)
	require.True(t, IsNotInitialized(err))
	assert.Equal(t, int64(0), c.Read(), "uninitialized calls must not be counted")
}

func TestModule_InvalidRangeSurfaces(t *testing.T) {
	c := stats.NewCounter(false)
	m := New(c, bounds.Range{Low: 10, High: 5})
	require.NoError(t, m.Initialize(ModeA))

	_, err := m.Compute(1)
	require.Error(t, err)
	assert.True(t, bounds.IsInvalidRange(err))
}

func TestModule_ConcurrentInitializeAndCompute(t *testing.T) {
	m, c := newTestModule(true)
	require.NoError(t, m.Initialize(ModeA))

	const goroutines = 50
	const callsPerGoroutine = 20

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < callsPerGoroutine; j++ {
				if j%7 == 0 {
					// Concurrent re-initialization must serialize with Compute.
					assert.NoError(t, m.Initialize(ModeA))
				}
				got, err := m.Compute(i + j)
				if assert.NoError(t, err) {
					// Adjustment is constant, so every result is base+42 clamped.
					assert.True(t, m.Range().Contains(got))
				}
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(goroutines*callsPerGoroutine), c.Read())
}

func TestDescending(t *testing.T) {
	assert.Equal(t, -45, Descending(46, 1))
	assert.Equal(t, 45, Descending(1, 46))
	assert.Equal(t, 0, Descending(3, 3))
}

func TestExitStatus(t *testing.T) {
	// counter - result < 0 => success.
	assert.Equal(t, 0, ExitStatus(Descending, 46, 1))
	// counter >= result => failure.
	assert.Equal(t, 1, ExitStatus(Descending, 1, 46))
	assert.Equal(t, 1, ExitStatus(Descending, 3, 3))
}
