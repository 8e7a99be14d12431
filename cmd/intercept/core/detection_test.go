package core

import (
	"math"
	"testing"

	"github.com/aegirsim/missile-simulations/pkg/mathx"
)

func standardEnvelope() SensorEnvelope {
	return SensorEnvelope{
		Position:     mathx.Vector3{},
		Range:        1000,
		AzimuthMin:   0,
		AzimuthMax:   90,
		ElevationMin: -10,
		ElevationMax: 10,
	}
}

func TestDetectionWithinEnvelope(t *testing.T) {
	env := standardEnvelope()
	// azimuth 45 deg, elevation 0, distance ~707 m
	if !env.Contains(mathx.NewVector3(500, 500, 0)) {
		t.Errorf("Target at (500,500,0) must be detected")
	}
}

func TestDetectionOutOfRange(t *testing.T) {
	env := standardEnvelope()
	// distance ~1414 m > 1000 m, azimuth would otherwise pass
	if env.Contains(mathx.NewVector3(1000, 1000, 0)) {
		t.Errorf("Target at (1000,1000,0) is beyond detection range")
	}
}

func TestDetectionOutOfAzimuth(t *testing.T) {
	env := standardEnvelope()
	// azimuth 135 deg, outside [0, 90]
	if env.Contains(mathx.NewVector3(-500, 500, 0)) {
		t.Errorf("Target at azimuth 135 must not be detected")
	}
}

func TestDetectionOutOfElevation(t *testing.T) {
	env := standardEnvelope()
	env.AzimuthMax = 360
	// elevation ~19.1 deg > 10 deg
	if env.Contains(mathx.NewVector3(500, 500, 200)) {
		t.Errorf("Target at elevation ~19 deg must not be detected")
	}
}

// positionAtAzimuth builds a level target at the given azimuth in degrees,
// 100 m out.
func positionAtAzimuth(deg float64) mathx.Vector3 {
	rad := deg * math.Pi / 180.0
	return mathx.NewVector3(100*math.Cos(rad), 100*math.Sin(rad), 0)
}

func TestAzimuthWrapAround(t *testing.T) {
	env := standardEnvelope()
	env.AzimuthMin = 350
	env.AzimuthMax = 10

	tests := []struct {
		name     string
		azimuth  float64
		detected bool
	}{
		{name: "inside after seam", azimuth: 5, detected: true},
		{name: "inside before seam", azimuth: 355, detected: true},
		{name: "at lower boundary", azimuth: 350, detected: true},
		{name: "at upper boundary", azimuth: 10, detected: true},
		{name: "just outside upper", azimuth: 20, detected: false},
		{name: "opposite side", azimuth: 200, detected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := env.Contains(positionAtAzimuth(tt.azimuth))
			if got != tt.detected {
				t.Errorf("azimuth %.0f: expected detected=%t, got %t", tt.azimuth, tt.detected, got)
			}
		})
	}
}

func TestObserveCarriesBearing(t *testing.T) {
	env := standardEnvelope()
	det := env.Observe("missile-1", mathx.NewVector3(500, 500, 0))
	if !det.Detected {
		t.Fatalf("Expected detection")
	}
	if det.TargetID != "missile-1" {
		t.Errorf("Expected target id missile-1, got %s", det.TargetID)
	}
	if math.Abs(det.Azimuth-45) > 1e-9 {
		t.Errorf("Expected azimuth 45, got %f", det.Azimuth)
	}
	if math.Abs(det.Elevation) > 1e-9 {
		t.Errorf("Expected elevation 0, got %f", det.Elevation)
	}
	if det.Position != mathx.NewVector3(500, 500, 0) {
		t.Errorf("Detection must carry the target position")
	}
}

func TestObserveMissReturnsZeroRecord(t *testing.T) {
	env := standardEnvelope()
	det := env.Observe("missile-1", mathx.NewVector3(-500, 500, 0))
	if det.Detected {
		t.Fatalf("Expected no detection")
	}
	if det.Position != (mathx.Vector3{}) {
		t.Errorf("Missed observation must carry the zero position")
	}
}
