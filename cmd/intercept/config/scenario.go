package config

import (
	"fmt"

	"github.com/aegirsim/missile-simulations/pkg/mathx"
)

// Scenario declares the units taking part in one run: their identifiers,
// initial kinematics and orientations. Declaration order is significant; it
// fixes the output column order and all deterministic tie-breaks.
type Scenario struct {
	Missiles     []MissileSpawn     `yaml:"missiles"`
	Interceptors []InterceptorSpawn `yaml:"interceptors"`
	Radars       []RadarSite        `yaml:"radars"`
}

// MissileSpawn is the initial condition of one missile. Orientation angles
// are given in degrees in the scenario file.
type MissileSpawn struct {
	ID       string        `yaml:"id"`
	Position mathx.Vector3 `yaml:"position"` // m
	Velocity mathx.Vector3 `yaml:"velocity"` // m/s
	Thrust   float64       `yaml:"thrust"`   // N
	Theta    float64       `yaml:"theta"`    // pitch, deg
	Psi      float64       `yaml:"psi"`      // yaw, deg
}

// InterceptorSpawn is the initial condition of one interceptor. Interceptors
// start unlaunched unless the scenario says otherwise; an unlaunched
// interceptor is kinematically frozen until a radar cue fires it.
type InterceptorSpawn struct {
	ID       string        `yaml:"id"`
	Position mathx.Vector3 `yaml:"position"`
	Velocity mathx.Vector3 `yaml:"velocity"`
	Thrust   float64       `yaml:"thrust"`
	Theta    float64       `yaml:"theta"`
	Psi      float64       `yaml:"psi"`
	Launched bool          `yaml:"launched"`
}

// RadarSite places one radar. The detection envelope comes from the shared
// RadarParameters.
type RadarSite struct {
	ID       string        `yaml:"id"`
	Position mathx.Vector3 `yaml:"position"`
}

// Validate checks identifier uniqueness and basic sanity. Violations are
// fatal at startup.
func (s *Scenario) Validate() error {
	if len(s.Missiles) == 0 {
		return fmt.Errorf("scenario declares no missiles")
	}

	if err := uniqueIDs("missile", missileIDs(s.Missiles)); err != nil {
		return err
	}
	if err := uniqueIDs("interceptor", interceptorIDs(s.Interceptors)); err != nil {
		return err
	}
	if err := uniqueIDs("radar", radarIDs(s.Radars)); err != nil {
		return err
	}
	return nil
}

func uniqueIDs(kind string, ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("%s with empty id", kind)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate %s id %q", kind, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func missileIDs(spawns []MissileSpawn) []string {
	ids := make([]string, len(spawns))
	for i, m := range spawns {
		ids[i] = m.ID
	}
	return ids
}

func interceptorIDs(spawns []InterceptorSpawn) []string {
	ids := make([]string, len(spawns))
	for i, it := range spawns {
		ids[i] = it.ID
	}
	return ids
}

func radarIDs(sites []RadarSite) []string {
	ids := make([]string, len(sites))
	for i, r := range sites {
		ids[i] = r.ID
	}
	return ids
}

// DefaultScenario returns a minimal one-missile, one-interceptor, one-radar
// engagement used when no scenario file is given.
func DefaultScenario() *Scenario {
	return &Scenario{
		Missiles: []MissileSpawn{
			{
				ID:       "missile-1",
				Position: mathx.NewVector3(0, 0, 0),
				Velocity: mathx.NewVector3(100, 0, 50),
				Thrust:   30000,
				Theta:    45,
				Psi:      0,
			},
		},
		Interceptors: []InterceptorSpawn{
			{
				ID:       "interceptor-1",
				Position: mathx.NewVector3(50000, 0, 0),
				Velocity: mathx.NewVector3(0, 0, 0),
				Thrust:   25000,
				Theta:    60,
				Psi:      180,
			},
		},
		Radars: []RadarSite{
			{ID: "radar-1", Position: mathx.NewVector3(40000, 0, 0)},
		},
	}
}
