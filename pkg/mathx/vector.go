package mathx

import "math"

// normEpsilon is the norm below which a vector is treated as zero.
// Normalizing and direction-dependent forces guard on this to avoid
// dividing by a vanishing magnitude.
const normEpsilon = 1e-9

// Vector3 is an immutable 3D vector. All operations return new values.
type Vector3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// NewVector3 creates a vector from its components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale returns the vector multiplied by a scalar.
func (v Vector3) Scale(factor float64) Vector3 {
	return Vector3{X: v.X * factor, Y: v.Y * factor, Z: v.Z * factor}
}

// Dot returns the dot product of two vectors.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Norm returns the Euclidean norm of the vector.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector in the direction of v. A vector with
// norm below 1e-9 normalizes to the zero vector rather than NaN.
func (v Vector3) Normalize() Vector3 {
	n := v.Norm()
	if n < normEpsilon {
		return Vector3{}
	}
	return Vector3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// DistanceTo returns the straight-line distance between two points.
func (v Vector3) DistanceTo(other Vector3) float64 {
	return v.Sub(other).Norm()
}

// IsZero reports whether the vector norm is below the zero guard.
func (v Vector3) IsZero() bool {
	return v.Norm() < normEpsilon
}
