package simulation

import (
	"math"
	"sync"

	"github.com/aegirsim/missile-simulations/cmd/intercept/config"
	"github.com/aegirsim/missile-simulations/cmd/intercept/core"
	"github.com/aegirsim/missile-simulations/cmd/intercept/reporting"
)

// World is the aggregate state advanced each cycle: every entity plus the
// orchestration bookkeeping. It is a deterministic synchronous step
// function; the same configuration and scenario always produce the same
// trajectory, for any worker count.
type World struct {
	missiles     []*Missile
	interceptors []*Interceptor
	radars       []*Radar

	missileAero          core.AeroParams
	interceptorAero      core.AeroParams
	missileFuelRate      float64
	interceptorFuelRate  float64
	navigationGain       float64
	interceptRadius      float64
	dt                   float64
	maxCycles            int
	maxElapsed           float64
	workers              int

	// Last reading per radar, held between sweeps; index-aligned with radars.
	readings  []core.Detection
	nextSweep []float64

	cycle         int
	simTime       float64
	fireCommanded bool

	terminalTimes   map[string]float64
	closestApproach map[string]float64

	events *reporting.SimulationLogger // optional
}

// NewWorld builds the world from a validated configuration and scenario.
// The events logger may be nil (tests drive the stepper directly).
func NewWorld(cfg *config.Config, sc *config.Scenario, events *reporting.SimulationLogger) *World {
	w := &World{
		missileAero: core.AeroParams{
			DragCoefficient: cfg.Missile.DragCoefficient,
			ReferenceArea:   cfg.Missile.ReferenceArea,
			Atmosphere:      core.Atmosphere{Rho0: cfg.Missile.ReferenceDensity, ScaleHeight: cfg.Missile.ScaleHeight},
			Gravity:         cfg.Simulation.Gravity,
		},
		interceptorAero: core.AeroParams{
			DragCoefficient: cfg.Interceptor.DragCoefficient,
			ReferenceArea:   cfg.Interceptor.ReferenceArea,
			Atmosphere:      core.Atmosphere{Rho0: cfg.Interceptor.ReferenceDensity, ScaleHeight: cfg.Interceptor.ScaleHeight},
			Gravity:         cfg.Simulation.Gravity,
		},
		missileFuelRate:     cfg.Missile.FuelConsumptionRate,
		interceptorFuelRate: cfg.Interceptor.FuelConsumptionRate,
		navigationGain:      cfg.Interceptor.NavigationGain,
		interceptRadius:     cfg.Simulation.InterceptRadius,
		dt:                  cfg.Simulation.TimeStep,
		maxCycles:           cfg.Simulation.MaxCycles,
		maxElapsed:          cfg.Simulation.MaxElapsedTime,
		workers:             cfg.Simulation.Workers,
		terminalTimes:       make(map[string]float64),
		closestApproach:     make(map[string]float64),
		events:              events,
	}

	for _, spawn := range sc.Missiles {
		w.missiles = append(w.missiles, NewMissile(spawn, cfg.Missile))
	}
	for _, spawn := range sc.Interceptors {
		it := NewInterceptor(spawn, cfg.Interceptor)
		w.interceptors = append(w.interceptors, it)
		w.closestApproach[it.ID] = math.Inf(1)
	}
	for _, site := range sc.Radars {
		w.radars = append(w.radars, NewRadar(site, cfg.Radar))
	}

	w.readings = make([]core.Detection, len(w.radars))
	w.nextSweep = make([]float64, len(w.radars))

	return w
}

// parallelFor runs fn over [0, n) partitioned into contiguous index chunks,
// one goroutine per chunk. Each index is visited by exactly one goroutine,
// which is what makes concurrent entity updates safe: every entity and its
// integrator/filter state has a single owner per cycle.
func parallelFor(n, workers int, fn func(i int)) {
	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// designatedTarget returns the first still-flying missile in declaration
// order, the fixed engagement policy for every interceptor.
func (w *World) designatedTarget() *Missile {
	for _, m := range w.missiles {
		if m.Status == MissileFlying {
			return m
		}
	}
	return nil
}

// Step advances the world one cycle in the fixed orchestration order and
// returns the cycle's output record.
func (w *World) Step() reporting.CycleRecord {
	w.cycle++
	w.simTime += w.dt

	// 1. Missile kinematics. Flying missiles only; each update touches only
	// its own entity, so the loop is partitioned across workers.
	parallelFor(len(w.missiles), w.workers, func(i int) {
		m := w.missiles[i]
		if m.Status != MissileFlying {
			return
		}
		m.Advance(w.missileAero, w.missileFuelRate, w.dt)
	})

	// 2. Radar sweeps against the post-update snapshot; collect fire
	// commands. Sweeps honor each radar's revisit period; between sweeps the
	// last reading is held.
	fireCommand := w.sweepRadars()

	// 3. Interceptor transitions and kinematics.
	for _, it := range w.interceptors {
		if it.Status == InterceptorUnlaunched && fireCommand {
			it.Launch()
			if w.events != nil {
				w.events.Launch(w.simTime, w.cycle, it.ID)
			}
		}
	}

	target := w.designatedTarget()
	parallelFor(len(w.interceptors), w.workers, func(i int) {
		it := w.interceptors[i]
		if it.Status != InterceptorFlying || target == nil {
			return
		}

		guidance, err := core.GuidanceAcceleration(
			it.Position, it.Velocity, target.Position, target.Velocity, w.navigationGain)
		if err != nil {
			// Degenerate geometry: hold the previous state for this cycle.
			if w.events != nil {
				w.events.GuidanceHold(w.simTime, w.cycle, it.ID)
			}
			return
		}
		it.Advance(w.interceptorAero, guidance, w.interceptorFuelRate, w.dt)
	})

	// 4. Interception test against the designated target.
	if target != nil {
		for _, it := range w.interceptors {
			if it.Status != InterceptorFlying {
				continue
			}
			distance := it.Position.DistanceTo(target.Position)
			if distance < w.closestApproach[it.ID] {
				w.closestApproach[it.ID] = distance
			}
			if distance <= w.interceptRadius && target.Status == MissileFlying {
				target.Status = MissileIntercepted
				w.terminalTimes[target.ID] = w.simTime
				if w.events != nil {
					w.events.Interception(w.simTime, w.cycle, it.ID, target.ID, distance)
				}
			}
		}
	}

	// 5. Ground impact.
	for _, m := range w.missiles {
		if m.Status == MissileFlying && m.Position.Z <= 0 {
			m.Status = MissileImpacted
			w.terminalTimes[m.ID] = w.simTime
			if w.events != nil {
				w.events.Impact(w.simTime, w.cycle, m.ID)
			}
		}
	}

	// 6. Cycle record.
	return w.record()
}

// sweepRadars runs due radar sweeps and reports whether any radar currently
// holds a detection (the fire command). Targets are tested in declaration
// order; the first live missile inside the envelope wins the reading, which
// keeps multi-target cycles deterministic.
func (w *World) sweepRadars() bool {
	for i, radar := range w.radars {
		if w.simTime < w.nextSweep[i] {
			continue
		}
		if radar.RevisitPeriod > w.dt {
			w.nextSweep[i] += radar.RevisitPeriod
		} else {
			w.nextSweep[i] = w.simTime + w.dt
		}

		previous := w.readings[i]
		w.readings[i] = core.Detection{}
		for _, m := range w.missiles {
			if m.Status != MissileFlying {
				continue
			}
			det := radar.Envelope.Observe(m.ID, m.Position)
			if det.Detected {
				w.readings[i] = det
				if w.events != nil && (!previous.Detected || previous.TargetID != det.TargetID) {
					w.events.Detection(w.simTime, w.cycle, radar.ID, det.TargetID)
				}
				break
			}
		}
	}

	for i, reading := range w.readings {
		if reading.Detected {
			if !w.fireCommanded {
				w.fireCommanded = true
				if w.events != nil {
					w.events.FireCommand(w.simTime, w.cycle, w.radars[i].ID)
				}
			}
			return true
		}
	}
	return false
}

// record builds the per-cycle output in scenario declaration order.
func (w *World) record() reporting.CycleRecord {
	rec := reporting.CycleRecord{Time: w.simTime}

	for _, m := range w.missiles {
		rec.Missiles = append(rec.Missiles, reporting.EntityState{
			ID:       m.ID,
			Position: m.Position,
			ThetaDeg: m.ThetaDeg(),
		})
	}
	for _, it := range w.interceptors {
		rec.Interceptors = append(rec.Interceptors, reporting.EntityState{
			ID:       it.ID,
			Position: it.Position,
			ThetaDeg: it.ThetaDeg(),
		})
	}
	for i, radar := range w.radars {
		rec.Radars = append(rec.Radars, reporting.RadarReading{
			ID:       radar.ID,
			Detected: w.readings[i].Detected,
			Position: w.readings[i].Position,
		})
	}

	return rec
}

// Done reports whether the run has terminated: every missile terminal, or
// the cycle/time bound reached, whichever comes first.
func (w *World) Done() bool {
	if w.cycle >= w.maxCycles {
		return true
	}
	if w.maxElapsed > 0 && w.simTime >= w.maxElapsed {
		return true
	}
	return w.allMissilesTerminal()
}

func (w *World) allMissilesTerminal() bool {
	for _, m := range w.missiles {
		if m.Status == MissileFlying {
			return false
		}
	}
	return true
}

// TerminationNote names the condition that ended the run.
func (w *World) TerminationNote() string {
	switch {
	case w.allMissilesTerminal():
		return "all missiles terminal"
	case w.cycle >= w.maxCycles:
		return "max cycle count reached"
	case w.maxElapsed > 0 && w.simTime >= w.maxElapsed:
		return "max elapsed time reached"
	default:
		return "running"
	}
}

// Cycle returns the number of completed cycles.
func (w *World) Cycle() int {
	return w.cycle
}

// SimTime returns the elapsed simulated time in seconds.
func (w *World) SimTime() float64 {
	return w.simTime
}

// MissileIDs returns missile ids in declaration order.
func (w *World) MissileIDs() []string {
	ids := make([]string, len(w.missiles))
	for i, m := range w.missiles {
		ids[i] = m.ID
	}
	return ids
}

// InterceptorIDs returns interceptor ids in declaration order.
func (w *World) InterceptorIDs() []string {
	ids := make([]string, len(w.interceptors))
	for i, it := range w.interceptors {
		ids[i] = it.ID
	}
	return ids
}

// RadarIDs returns radar ids in declaration order.
func (w *World) RadarIDs() []string {
	ids := make([]string, len(w.radars))
	for i, r := range w.radars {
		ids[i] = r.ID
	}
	return ids
}

// Outcomes summarizes the final disposition of every entity.
func (w *World) Outcomes() ([]reporting.MissileOutcome, []reporting.InterceptorOutcome) {
	missiles := make([]reporting.MissileOutcome, 0, len(w.missiles))
	for _, m := range w.missiles {
		missiles = append(missiles, reporting.MissileOutcome{
			ID:      m.ID,
			Status:  string(m.Status),
			SimTime: w.terminalTimes[m.ID],
		})
	}

	interceptors := make([]reporting.InterceptorOutcome, 0, len(w.interceptors))
	for _, it := range w.interceptors {
		interceptors = append(interceptors, reporting.InterceptorOutcome{
			ID:              it.ID,
			Status:          string(it.Status),
			ClosestApproach: w.closestApproach[it.ID],
		})
	}

	return missiles, interceptors
}
