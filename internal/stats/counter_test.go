package stats

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter_StartsAtZero(t *testing.T) {
	assert.Equal(t, int64(0), NewCounter(true).Read())
	assert.Equal(t, int64(0), NewCounter(false).Read())
}

func TestCounter_Enabled_CountsEveryCall(t *testing.T) {
	c := NewCounter(true)
	const calls = 100

	for i := 0; i < calls; i++ {
		c.Increment()
	}

	assert.Equal(t, int64(calls), c.Read())
	assert.True(t, c.Enabled())
}

func TestCounter_Disabled_StaysZero(t *testing.T) {
	c := NewCounter(false)

	for i := 0; i < 100; i++ {
		c.Increment()
	}

	assert.Equal(t, int64(0), c.Read(), "disabled counter must never change")
	assert.False(t, c.Enabled())
}

func TestCounter_Monotonic(t *testing.T) {
	c := NewCounter(true)

	prev := c.Read()
	for i := 0; i < 50; i++ {
		c.Increment()
		cur := c.Read()
		assert.GreaterOrEqual(t, cur, prev, "count must never decrease")
		prev = cur
	}
}

func TestCounter_ThreadSafe(t *testing.T) {
	c := NewCounter(true)
	const goroutines = 100
	const callsPerGoroutine = 100

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < callsPerGoroutine; j++ {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(goroutines*callsPerGoroutine), c.Read(),
		"no increments may be lost under concurrency")
}
