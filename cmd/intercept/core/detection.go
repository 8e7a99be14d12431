package core

import (
	"math"

	"github.com/aegirsim/missile-simulations/pkg/mathx"
)

// SensorEnvelope is the geometric detection envelope of one radar: a maximum
// range plus azimuth and elevation windows in degrees. An azimuth window
// with Min > Max wraps through 0/360 (e.g. [350, 10] covers the 20 degrees
// centered on north).
type SensorEnvelope struct {
	Position     mathx.Vector3
	Range        float64 // m
	AzimuthMin   float64 // deg
	AzimuthMax   float64 // deg
	ElevationMin float64 // deg
	ElevationMax float64 // deg
}

// Detection is the result of one sensor sweep: whether a target satisfied
// the envelope, and if so which one and where.
type Detection struct {
	Detected bool
	TargetID string
	Position mathx.Vector3
	Azimuth  float64 // deg, [0, 360)
	// Elevation in degrees; bounded to [-90, 90] by construction.
	Elevation float64
}

// Contains reports whether a target position lies inside the envelope.
func (s SensorEnvelope) Contains(target mathx.Vector3) bool {
	rel := target.Sub(s.Position)
	if rel.Norm() > s.Range {
		return false
	}

	azimuth, elevation := bearingTo(rel)
	return azimuthInWindow(azimuth, s.AzimuthMin, s.AzimuthMax) &&
		elevation >= s.ElevationMin && elevation <= s.ElevationMax
}

// Observe runs the envelope test and returns the full detection record for
// a target, including the bearing angles at which it was seen.
func (s SensorEnvelope) Observe(targetID string, target mathx.Vector3) Detection {
	rel := target.Sub(s.Position)
	azimuth, elevation := bearingTo(rel)

	detected := rel.Norm() <= s.Range &&
		azimuthInWindow(azimuth, s.AzimuthMin, s.AzimuthMax) &&
		elevation >= s.ElevationMin && elevation <= s.ElevationMax
	if !detected {
		return Detection{}
	}

	return Detection{
		Detected:  true,
		TargetID:  targetID,
		Position:  target,
		Azimuth:   azimuth,
		Elevation: elevation,
	}
}

// bearingTo converts a relative position vector into azimuth [0, 360) and
// elevation [-90, 90], both in degrees. The horizontal distance fed to the
// elevation atan2 is non-negative, which is what bounds elevation.
func bearingTo(rel mathx.Vector3) (azimuth, elevation float64) {
	azimuth = math.Atan2(rel.Y, rel.X) * 180.0 / math.Pi
	if azimuth < 0 {
		azimuth += 360.0
	}

	horizontal := math.Sqrt(rel.X*rel.X + rel.Y*rel.Y)
	elevation = math.Atan2(rel.Z, horizontal) * 180.0 / math.Pi
	return azimuth, elevation
}

// azimuthInWindow tests azimuth membership in [min, max], handling windows
// that wrap through 0/360 when min > max.
func azimuthInWindow(azimuth, min, max float64) bool {
	if min <= max {
		return azimuth >= min && azimuth <= max
	}
	return azimuth >= min || azimuth <= max
}
