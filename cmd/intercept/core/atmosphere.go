package core

import "math"

// Atmosphere is the exponential scale-height density model:
//
//	rho(alt) = Rho0 * exp(-alt / ScaleHeight)
//
// Altitudes below zero are evaluated at sea level, so density never exceeds
// the reference value.
type Atmosphere struct {
	Rho0        float64 // sea-level density, kg/m^3
	ScaleHeight float64 // e-folding altitude, m
}

// DensityAt returns the air density at the given altitude in meters.
func (a Atmosphere) DensityAt(altitude float64) float64 {
	if altitude < 0 {
		altitude = 0
	}
	return a.Rho0 * math.Exp(-altitude/a.ScaleHeight)
}
