package core

import (
	"errors"
	"math"
	"testing"

	"github.com/aegirsim/missile-simulations/pkg/mathx"
)

func TestGuidanceClosedForm(t *testing.T) {
	// Interceptor at rest at origin, target 100 m ahead moving at 10 m/s:
	// a = N * v_rel / distance = 3 * 10 / 100 = 0.3 along x.
	acc, err := GuidanceAcceleration(
		mathx.Vector3{}, mathx.Vector3{},
		mathx.NewVector3(100, 0, 0), mathx.NewVector3(10, 0, 0),
		3.0,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(acc.X-0.3) > 1e-12 || acc.Y != 0 || acc.Z != 0 {
		t.Errorf("Expected acceleration {0.3 0 0}, got %v", acc)
	}
}

func TestGuidanceDegenerateGeometry(t *testing.T) {
	tests := []struct {
		name      string
		targetPos mathx.Vector3
	}{
		{name: "coincident", targetPos: mathx.Vector3{}},
		{name: "below threshold", targetPos: mathx.NewVector3(1e-7, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc, err := GuidanceAcceleration(
				mathx.Vector3{}, mathx.Vector3{},
				tt.targetPos, mathx.NewVector3(5, 0, 0),
				3.0,
			)
			if !errors.Is(err, ErrDegenerateGeometry) {
				t.Fatalf("Expected ErrDegenerateGeometry, got %v", err)
			}
			if math.IsNaN(acc.X) || math.IsNaN(acc.Y) || math.IsNaN(acc.Z) {
				t.Errorf("Degenerate geometry must not produce NaN, got %v", acc)
			}
		})
	}
}

func TestGuidanceJustAboveThreshold(t *testing.T) {
	_, err := GuidanceAcceleration(
		mathx.Vector3{}, mathx.Vector3{},
		mathx.NewVector3(1e-5, 0, 0), mathx.Vector3{},
		3.0,
	)
	if err != nil {
		t.Errorf("Separation above threshold must not error, got %v", err)
	}
}
