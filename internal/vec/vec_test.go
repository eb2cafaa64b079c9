package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	sum := Add(Vec3{1, 2, 3}, Vec3{4, 5, 6})
	assert.Equal(t, Vec3{X: 5, Y: 7, Z: 9}, sum)
}

func TestAdd_Zero(t *testing.T) {
	v := Vec3{X: 1.5, Y: -2.5, Z: 0}
	assert.Equal(t, v, Add(v, Vec3{}))
}
