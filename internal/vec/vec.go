// Package vec provides the 3-component vector used for display output.
// Vector math never feeds the computation path; results are formatting-only.
package vec

// Vec3 is a 3-component float vector.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of a and b.
func Add(a, b Vec3) Vec3 {
	return Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}
