package core

import (
	"errors"

	"github.com/aegirsim/missile-simulations/pkg/mathx"
)

// guidanceEpsilon is the interceptor-target separation below which the
// guidance geometry degenerates.
const guidanceEpsilon = 1e-6

// ErrDegenerateGeometry reports that the interceptor and target are (near)
// coincident, so the guidance law has no defined direction. Callers recover
// by holding the interceptor's previous state for the cycle; the error is
// never fatal and never yields NaN.
var ErrDegenerateGeometry = errors.New("guidance: degenerate geometry, target range below threshold")

// GuidanceAcceleration computes the proportional-navigation acceleration
// command for an interceptor chasing a target.
//
// The law implemented is the closed-form simplification a = N * v_rel / |r|,
// which accelerates toward closing the relative velocity rather than using
// the line-of-sight angular rate of true proportional navigation.
func GuidanceAcceleration(interceptorPos, interceptorVel, targetPos, targetVel mathx.Vector3, navigationGain float64) (mathx.Vector3, error) {
	rel := targetPos.Sub(interceptorPos)
	distance := rel.Norm()
	if distance < guidanceEpsilon {
		return mathx.Vector3{}, ErrDegenerateGeometry
	}

	relVel := targetVel.Sub(interceptorVel)
	return relVel.Scale(navigationGain / distance), nil
}
