package simulation

import (
	"math"

	"github.com/aegirsim/missile-simulations/cmd/intercept/config"
	"github.com/aegirsim/missile-simulations/cmd/intercept/core"
	"github.com/aegirsim/missile-simulations/pkg/mathx"
)

// MissileStatus is the closed state set of a missile. Impacted and
// Intercepted are terminal; a missile never leaves them.
type MissileStatus string

const (
	MissileFlying      MissileStatus = "FLYING"
	MissileImpacted    MissileStatus = "IMPACTED"
	MissileIntercepted MissileStatus = "INTERCEPTED"
)

// InterceptorStatus is the closed state set of an interceptor. The only
// transition is Unlaunched -> Flying, fired by a radar cue; there is no way
// back.
type InterceptorStatus string

const (
	InterceptorUnlaunched InterceptorStatus = "UNLAUNCHED"
	InterceptorFlying     InterceptorStatus = "FLYING"
)

// Missile is one scenario-declared ballistic missile. It owns its
// integrator and filter triples (one per velocity axis) for its entire
// lifetime; they are never shared and never live in a parallel array.
type Missile struct {
	ID       string
	Position mathx.Vector3
	Velocity mathx.Vector3
	Mass     float64
	Thrust   float64
	Theta    float64 // pitch, rad
	Psi      float64 // yaw, rad
	Status   MissileStatus

	integrators [3]*mathx.AdamsBashforth2
	filters     [3]*mathx.LowPassFilter
}

// Interceptor is one scenario-declared guided interceptor. Same ownership
// discipline as Missile.
type Interceptor struct {
	ID       string
	Position mathx.Vector3
	Velocity mathx.Vector3
	Mass     float64
	Thrust   float64
	Theta    float64
	Psi      float64
	Status   InterceptorStatus

	integrators [3]*mathx.AdamsBashforth2
	filters     [3]*mathx.LowPassFilter
}

// Radar is one scenario-declared sensor site. It holds no mutable state
// beyond its identity; the envelope comes from the shared parameters.
type Radar struct {
	ID            string
	Envelope      core.SensorEnvelope
	RevisitPeriod float64 // s
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func newAxisTriples(alpha float64) ([3]*mathx.AdamsBashforth2, [3]*mathx.LowPassFilter) {
	var integrators [3]*mathx.AdamsBashforth2
	var filters [3]*mathx.LowPassFilter
	for i := 0; i < 3; i++ {
		integrators[i] = mathx.NewAdamsBashforth2()
		filters[i] = mathx.NewLowPassFilter(alpha)
	}
	return integrators, filters
}

// NewMissile builds a missile from its spawn declaration and the shared
// parameters. Scenario angles are degrees; internal angles are radians.
func NewMissile(spawn config.MissileSpawn, params config.MissileParameters) *Missile {
	integrators, filters := newAxisTriples(params.FilterAlpha)
	return &Missile{
		ID:          spawn.ID,
		Position:    spawn.Position,
		Velocity:    spawn.Velocity,
		Mass:        params.InitialMass,
		Thrust:      spawn.Thrust,
		Theta:       degToRad(spawn.Theta),
		Psi:         degToRad(spawn.Psi),
		Status:      MissileFlying,
		integrators: integrators,
		filters:     filters,
	}
}

// NewInterceptor builds an interceptor from its spawn declaration and the
// shared parameters.
func NewInterceptor(spawn config.InterceptorSpawn, params config.InterceptorParameters) *Interceptor {
	status := InterceptorUnlaunched
	if spawn.Launched {
		status = InterceptorFlying
	}
	integrators, filters := newAxisTriples(params.FilterAlpha)
	return &Interceptor{
		ID:          spawn.ID,
		Position:    spawn.Position,
		Velocity:    spawn.Velocity,
		Mass:        params.InitialMass,
		Thrust:      spawn.Thrust,
		Theta:       degToRad(spawn.Theta),
		Psi:         degToRad(spawn.Psi),
		Status:      status,
		integrators: integrators,
		filters:     filters,
	}
}

// NewRadar builds a radar site from its placement and the shared envelope
// parameters.
func NewRadar(site config.RadarSite, params config.RadarParameters) *Radar {
	return &Radar{
		ID: site.ID,
		Envelope: core.SensorEnvelope{
			Position:     site.Position,
			Range:        params.DetectionRange,
			AzimuthMin:   params.AzimuthMin,
			AzimuthMax:   params.AzimuthMax,
			ElevationMin: params.ElevationMin,
			ElevationMax: params.ElevationMax,
		},
		RevisitPeriod: params.RevisitPeriod,
	}
}

// body packages the kinematic state for the force model.
func (m *Missile) body() core.Body {
	return core.Body{
		Position: m.Position,
		Velocity: m.Velocity,
		Mass:     m.Mass,
		Thrust:   m.Thrust,
		Theta:    m.Theta,
		Psi:      m.Psi,
	}
}

func (it *Interceptor) body() core.Body {
	return core.Body{
		Position: it.Position,
		Velocity: it.Velocity,
		Mass:     it.Mass,
		Thrust:   it.Thrust,
		Theta:    it.Theta,
		Psi:      it.Psi,
	}
}

// advanceKinematics runs the shared per-axis pipeline: acceleration ->
// Adams-Bashforth integration -> low-pass filter -> Euler position update
// from the filtered velocity. The stored velocity is the filtered one.
func advanceKinematics(pos, vel mathx.Vector3,
	integrators [3]*mathx.AdamsBashforth2, filters [3]*mathx.LowPassFilter,
	acc mathx.Vector3, dt float64,
) (newPos, newVel mathx.Vector3) {
	velAxes := [3]float64{vel.X, vel.Y, vel.Z}
	accAxes := [3]float64{acc.X, acc.Y, acc.Z}

	var filtered [3]float64
	for i := 0; i < 3; i++ {
		integrated := integrators[i].Integrate(accAxes[i], dt, velAxes[i])
		filtered[i] = filters[i].Apply(integrated)
	}

	newVel = mathx.NewVector3(filtered[0], filtered[1], filtered[2])
	newPos = pos.Add(newVel.Scale(dt))
	return newPos, newVel
}

// Advance moves the missile through one time step under the shared force
// model. Terminal missiles are never advanced; the stepper enforces that.
func (m *Missile) Advance(params core.AeroParams, fuelRate, dt float64) {
	acc := core.Acceleration(m.body(), params, mathx.Vector3{})
	m.Position, m.Velocity = advanceKinematics(m.Position, m.Velocity, m.integrators, m.filters, acc, dt)
	m.Mass = core.ConsumeFuel(m.Mass, fuelRate, dt)
}

// Advance moves a flying interceptor through one time step, adding the
// guidance acceleration to the force model. Unlaunched interceptors are
// frozen and must not be advanced.
func (it *Interceptor) Advance(params core.AeroParams, guidance mathx.Vector3, fuelRate, dt float64) {
	acc := core.Acceleration(it.body(), params, guidance)
	it.Position, it.Velocity = advanceKinematics(it.Position, it.Velocity, it.integrators, it.filters, acc, dt)
	it.Mass = core.ConsumeFuel(it.Mass, fuelRate, dt)
}

// Launch fires the interceptor. The transition is one-way.
func (it *Interceptor) Launch() {
	it.Status = InterceptorFlying
}

// ThetaDeg returns the pitch angle in degrees for output records.
func (m *Missile) ThetaDeg() float64 {
	return m.Theta * 180.0 / math.Pi
}

// ThetaDeg returns the pitch angle in degrees for output records.
func (it *Interceptor) ThetaDeg() float64 {
	return it.Theta * 180.0 / math.Pi
}
