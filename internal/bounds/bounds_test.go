package bounds

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp_WithinRange(t *testing.T) {
	tests := []struct {
		name string
		v    int
		r    Range
		want int
	}{
		{"below low", -5, Range{0, 1000}, 0},
		{"at low", 0, Range{0, 1000}, 0},
		{"inside", 46, Range{0, 1000}, 46},
		{"at high", 1000, Range{0, 1000}, 1000},
		{"above high", 2042, Range{0, 1000}, 1000},
		{"negative range", -7, Range{-10, -1}, -7},
		{"degenerate range", 99, Range{5, 5}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Clamp(tt.v, tt.r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, tt.r.Contains(got), "clamped value must lie in %s", tt.r)
		})
	}
}

func TestClamp_IdentityInRange(t *testing.T) {
	r := Range{Low: 0, High: 1000}
	for _, v := range []int{0, 1, 42, 500, 999, 1000} {
		got, err := Clamp(v, r)
		require.NoError(t, err)
		assert.Equal(t, v, got, "in-range value must pass through unchanged")
	}
}

func TestClamp_InvalidRange(t *testing.T) {
	_, err := Clamp(10, Range{Low: 5, High: 1})
	require.Error(t, err)
	assert.True(t, IsInvalidRange(err))
	assert.Contains(t, err.Error(), "low 5 > high 1")
}

func TestClamp_InvalidRange_Wrapped(t *testing.T) {
	_, err := Clamp(10, Range{Low: 1000, High: 0})
	require.Error(t, err)

	wrapped := fmt.Errorf("compute: %w", err)
	assert.True(t, IsInvalidRange(wrapped), "IsInvalidRange must see through wrapping")
}

func TestIsInvalidRange_OtherError(t *testing.T) {
	assert.False(t, IsInvalidRange(fmt.Errorf("boom")))
	assert.False(t, IsInvalidRange(nil))
}

func TestRange_Valid(t *testing.T) {
	assert.True(t, Range{0, 1000}.Valid())
	assert.True(t, Range{7, 7}.Valid())
	assert.False(t, Range{1, 0}.Valid())
}

func TestMax(t *testing.T) {
	assert.Equal(t, 4, Max(3, 4))
	assert.Equal(t, 4, Max(4, 3))
	assert.Equal(t, -1, Max(-1, -2))
	assert.Equal(t, 0, Max(0, 0))
}
