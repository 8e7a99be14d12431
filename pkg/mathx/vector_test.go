package mathx

import (
	"math"
	"testing"
)

func TestVectorArithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, -2, 1)

	sum := a.Add(b)
	if sum != (Vector3{5, 0, 4}) {
		t.Errorf("Add: expected {5 0 4}, got %v", sum)
	}

	diff := a.Sub(b)
	if diff != (Vector3{-3, 4, 2}) {
		t.Errorf("Sub: expected {-3 4 2}, got %v", diff)
	}

	scaled := a.Scale(2)
	if scaled != (Vector3{2, 4, 6}) {
		t.Errorf("Scale: expected {2 4 6}, got %v", scaled)
	}
}

func TestVectorNorm(t *testing.T) {
	v := NewVector3(3, 4, 0)
	if v.Norm() != 5 {
		t.Errorf("Expected norm 5, got %f", v.Norm())
	}

	if NewVector3(0, 0, 0).Norm() != 0 {
		t.Errorf("Zero vector must have norm 0")
	}
}

func TestNormalize(t *testing.T) {
	v := NewVector3(10, 0, 0).Normalize()
	if v != (Vector3{1, 0, 0}) {
		t.Errorf("Expected unit x vector, got %v", v)
	}

	n := NewVector3(1, 2, 2).Normalize().Norm()
	if math.Abs(n-1.0) > 1e-12 {
		t.Errorf("Normalized vector must have unit norm, got %f", n)
	}
}

func TestNormalizeNearZeroReturnsZeroVector(t *testing.T) {
	// Below the 1e-9 guard the result must be the zero vector, never NaN.
	v := NewVector3(1e-10, -1e-10, 0).Normalize()
	if v != (Vector3{}) {
		t.Errorf("Expected zero vector, got %v", v)
	}
	if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) {
		t.Errorf("Normalize must never produce NaN")
	}
}

func TestDistanceTo(t *testing.T) {
	a := NewVector3(0, 0, 0)
	b := NewVector3(1000, 1000, 0)
	expected := math.Sqrt(2) * 1000
	if math.Abs(a.DistanceTo(b)-expected) > 1e-9 {
		t.Errorf("Expected distance %f, got %f", expected, a.DistanceTo(b))
	}
}
