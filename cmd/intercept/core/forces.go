package core

import (
	"math"

	"github.com/aegirsim/missile-simulations/pkg/mathx"
)

// speedEpsilon guards the drag direction against division by a vanishing
// speed: below this, drag is the zero vector.
const speedEpsilon = 1e-9

// Body is the kinematic/propulsive state a force evaluation needs. Both
// missiles and interceptors reduce to this shape.
type Body struct {
	Position mathx.Vector3
	Velocity mathx.Vector3
	Mass     float64 // kg
	Thrust   float64 // thrust magnitude, N
	Theta    float64 // pitch, rad
	Psi      float64 // yaw, rad
}

// AeroParams are the aerodynamic/propulsive parameters shared by every
// entity of one kind. Loaded once, read-only afterwards.
type AeroParams struct {
	DragCoefficient float64
	ReferenceArea   float64 // m^2
	Atmosphere      Atmosphere
	Gravity         float64 // magnitude, m/s^2 (acts along -z)
}

// DragForce computes the aerodynamic drag force on a body moving at the
// given velocity through air of the given density. Zero velocity yields the
// zero vector, never NaN.
func DragForce(velocity mathx.Vector3, airDensity, dragCoefficient, area float64) mathx.Vector3 {
	speed := velocity.Norm()
	if speed < speedEpsilon {
		return mathx.Vector3{}
	}
	magnitude := 0.5 * airDensity * speed * speed * dragCoefficient * area
	return velocity.Scale(-magnitude / speed)
}

// ThrustForce resolves a thrust magnitude through the body's pitch (theta)
// and yaw (psi) angles into a force vector.
func ThrustForce(thrust, theta, psi float64) mathx.Vector3 {
	return mathx.Vector3{
		X: thrust * math.Cos(theta) * math.Cos(psi),
		Y: thrust * math.Cos(theta) * math.Sin(psi),
		Z: thrust * math.Sin(theta),
	}
}

// GravityForce returns the weight vector for the given mass.
func GravityForce(mass, gravity float64) mathx.Vector3 {
	return mathx.Vector3{Z: -gravity * mass}
}

// Acceleration computes the net acceleration on a body from thrust, drag and
// gravity, plus an optional extra acceleration (guidance) that is applied as
// a force term scaled by mass.
//
// A body whose mass has reached zero is inert: no force is evaluated and the
// returned acceleration is zero, so the caller holds velocity constant. The
// division below never sees mass = 0.
func Acceleration(body Body, params AeroParams, extra mathx.Vector3) mathx.Vector3 {
	if body.Mass <= 0 {
		return mathx.Vector3{}
	}

	rho := params.Atmosphere.DensityAt(body.Position.Z)
	drag := DragForce(body.Velocity, rho, params.DragCoefficient, params.ReferenceArea)
	thrust := ThrustForce(body.Thrust, body.Theta, body.Psi)
	gravity := GravityForce(body.Mass, params.Gravity)

	net := thrust.Add(drag).Add(gravity).Add(extra.Scale(body.Mass))
	return net.Scale(1.0 / body.Mass)
}

// ConsumeFuel returns the body mass after one step of fuel burn at the given
// consumption rate. Mass is floored at zero and never increases.
func ConsumeFuel(mass, consumptionRate, dt float64) float64 {
	next := mass - consumptionRate*dt
	if next < 0 {
		return 0
	}
	return next
}
