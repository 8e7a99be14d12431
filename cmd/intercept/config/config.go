package config

import (
	"fmt"
	"math"
)

// Config holds the complete simulation configuration: the run settings plus
// the shared physical parameter groups. Parameter groups are loaded once and
// treated as read-only for the life of the run.
type Config struct {
	// Basic simulation settings
	Simulation SimulationSettings `yaml:"simulation"`

	// Missile physical parameters (shared by every missile)
	Missile MissileParameters `yaml:"missile"`

	// Interceptor physical parameters (shared by every interceptor)
	Interceptor InterceptorParameters `yaml:"interceptor"`

	// Radar sensor parameters (shared by every radar site)
	Radar RadarParameters `yaml:"radar"`
}

// SimulationSettings holds the run-level constants. None of these are
// hard-coded in the engine; they always come from configuration.
type SimulationSettings struct {
	Name            string  `yaml:"name"`
	Description     string  `yaml:"description"`
	TimeStep        float64 `yaml:"time_step"`        // s
	MaxCycles       int     `yaml:"max_cycles"`       // cycle bound
	MaxElapsedTime  float64 `yaml:"max_elapsed_time"` // s, 0 disables the time bound
	Gravity         float64 `yaml:"gravity"`          // m/s^2
	InterceptRadius float64 `yaml:"intercept_radius"` // m
	Workers         int     `yaml:"workers"`          // parallel entity updates, 1 = serial
	OutputPath      string  `yaml:"output_path"`      // trajectory CSV destination
}

// MissileParameters are the aerodynamic/propulsive parameters shared by all
// missiles in a scenario.
type MissileParameters struct {
	InitialMass         float64 `yaml:"initial_mass"`          // kg
	FuelConsumptionRate float64 `yaml:"fuel_consumption_rate"` // kg/s
	DragCoefficient     float64 `yaml:"drag_coefficient"`
	ReferenceArea       float64 `yaml:"reference_area"`    // m^2
	ReferenceDensity    float64 `yaml:"reference_density"` // kg/m^3 at sea level
	ScaleHeight         float64 `yaml:"scale_height"`      // m
	FilterAlpha         float64 `yaml:"filter_alpha"`      // velocity low-pass coefficient
}

// InterceptorParameters carry the same aerodynamic/propulsive fields as
// missiles plus the proportional-navigation gain.
type InterceptorParameters struct {
	InitialMass         float64 `yaml:"initial_mass"`
	FuelConsumptionRate float64 `yaml:"fuel_consumption_rate"`
	DragCoefficient     float64 `yaml:"drag_coefficient"`
	ReferenceArea       float64 `yaml:"reference_area"`
	ReferenceDensity    float64 `yaml:"reference_density"`
	ScaleHeight         float64 `yaml:"scale_height"`
	FilterAlpha         float64 `yaml:"filter_alpha"`
	NavigationGain      float64 `yaml:"navigation_gain"` // proportional-navigation constant N
}

// RadarParameters define the detection envelope shared by all radar sites.
// The azimuth window may wrap: min > max means the window crosses 0/360.
type RadarParameters struct {
	DetectionRange float64 `yaml:"detection_range"` // m
	AzimuthMin     float64 `yaml:"azimuth_min"`     // deg, any real, normalized mod 360
	AzimuthMax     float64 `yaml:"azimuth_max"`     // deg
	ElevationMin   float64 `yaml:"elevation_min"`   // deg, within [-90, 90]
	ElevationMax   float64 `yaml:"elevation_max"`   // deg
	RevisitPeriod  float64 `yaml:"revisit_period"`  // s, <= time step means every cycle
}

// normalizeAzimuth maps any real azimuth into [0, 360).
// normalizeAzimuth maps any real angle into [0, 360]. An exact 360 is kept
// rather than folded to 0, so a [0, 360] window means full coverage instead
// of collapsing to a single bearing.
func normalizeAzimuth(deg float64) float64 {
	if deg == 360 {
		return deg
	}
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// Validate checks the configuration. Any violation is fatal at startup; the
// run must not begin with invalid parameters.
func (c *Config) Validate() error {
	if c.Simulation.Name == "" {
		return fmt.Errorf("simulation name is required")
	}
	if c.Simulation.TimeStep <= 0 {
		return fmt.Errorf("time step must be positive")
	}
	if c.Simulation.MaxCycles <= 0 {
		return fmt.Errorf("max cycles must be positive")
	}
	if c.Simulation.MaxElapsedTime < 0 {
		return fmt.Errorf("max elapsed time must not be negative")
	}
	if c.Simulation.Gravity < 0 {
		return fmt.Errorf("gravity magnitude must not be negative")
	}
	if c.Simulation.InterceptRadius <= 0 {
		return fmt.Errorf("intercept radius must be positive")
	}
	if c.Simulation.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}

	if err := validateAeroParams("missile", c.Missile.InitialMass, c.Missile.FuelConsumptionRate,
		c.Missile.DragCoefficient, c.Missile.ReferenceArea, c.Missile.ReferenceDensity,
		c.Missile.ScaleHeight, c.Missile.FilterAlpha); err != nil {
		return err
	}
	if err := validateAeroParams("interceptor", c.Interceptor.InitialMass, c.Interceptor.FuelConsumptionRate,
		c.Interceptor.DragCoefficient, c.Interceptor.ReferenceArea, c.Interceptor.ReferenceDensity,
		c.Interceptor.ScaleHeight, c.Interceptor.FilterAlpha); err != nil {
		return err
	}
	if c.Interceptor.NavigationGain <= 0 {
		return fmt.Errorf("interceptor navigation gain must be positive")
	}

	if c.Radar.DetectionRange <= 0 {
		return fmt.Errorf("radar detection range must be positive")
	}
	if c.Radar.ElevationMin < -90 || c.Radar.ElevationMax > 90 {
		return fmt.Errorf("radar elevation window must lie within [-90, 90]")
	}
	if c.Radar.ElevationMin > c.Radar.ElevationMax {
		return fmt.Errorf("radar elevation window min must not exceed max")
	}
	if c.Radar.RevisitPeriod < 0 {
		return fmt.Errorf("radar revisit period must not be negative")
	}

	// Azimuth accepts any real value, interpreted mod 360. Normalize here so
	// the detection envelope only ever sees [0, 360).
	c.Radar.AzimuthMin = normalizeAzimuth(c.Radar.AzimuthMin)
	c.Radar.AzimuthMax = normalizeAzimuth(c.Radar.AzimuthMax)

	return nil
}

func validateAeroParams(kind string, mass, fuelRate, cd, area, rho0, scaleHeight, alpha float64) error {
	if mass <= 0 {
		return fmt.Errorf("%s initial mass must be positive", kind)
	}
	if fuelRate < 0 {
		return fmt.Errorf("%s fuel consumption rate must not be negative", kind)
	}
	if cd < 0 {
		return fmt.Errorf("%s drag coefficient must not be negative", kind)
	}
	if area <= 0 {
		return fmt.Errorf("%s reference area must be positive", kind)
	}
	if rho0 < 0 {
		return fmt.Errorf("%s reference density must not be negative", kind)
	}
	if scaleHeight <= 0 {
		return fmt.Errorf("%s scale height must be positive", kind)
	}
	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("%s filter alpha must lie in [0, 1]", kind)
	}
	return nil
}

// String returns a human-readable summary logged at startup.
func (c *Config) String() string {
	return fmt.Sprintf(`Simulation Configuration:
  Name: %s
  Description: %s
  Time Step: %.3f s
  Max Cycles: %d
  Max Elapsed Time: %.1f s
  Gravity: %.3f m/s^2
  Intercept Radius: %.1f m
  Workers: %d
  Output: %s

Missile:
  Initial Mass: %.1f kg
  Fuel Consumption: %.2f kg/s
  Drag Coefficient: %.3f
  Reference Area: %.2f m^2
  Filter Alpha: %.2f

Interceptor:
  Initial Mass: %.1f kg
  Fuel Consumption: %.2f kg/s
  Navigation Gain: %.2f
  Filter Alpha: %.2f

Radar:
  Detection Range: %.0f m
  Azimuth Window: [%.1f, %.1f] deg
  Elevation Window: [%.1f, %.1f] deg
  Revisit Period: %.2f s`,
		c.Simulation.Name,
		c.Simulation.Description,
		c.Simulation.TimeStep,
		c.Simulation.MaxCycles,
		c.Simulation.MaxElapsedTime,
		c.Simulation.Gravity,
		c.Simulation.InterceptRadius,
		c.Simulation.Workers,
		c.Simulation.OutputPath,
		c.Missile.InitialMass,
		c.Missile.FuelConsumptionRate,
		c.Missile.DragCoefficient,
		c.Missile.ReferenceArea,
		c.Missile.FilterAlpha,
		c.Interceptor.InitialMass,
		c.Interceptor.FuelConsumptionRate,
		c.Interceptor.NavigationGain,
		c.Interceptor.FilterAlpha,
		c.Radar.DetectionRange,
		c.Radar.AzimuthMin,
		c.Radar.AzimuthMax,
		c.Radar.ElevationMin,
		c.Radar.ElevationMax,
		c.Radar.RevisitPeriod,
	)
}

// DefaultConfig returns a working configuration for a single-missile
// engagement.
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationSettings{
			Name:            "intercept",
			Description:     "Ballistic missile vs radar-cued interceptor engagement",
			TimeStep:        0.1,
			MaxCycles:       20000,
			MaxElapsedTime:  2000,
			Gravity:         9.81,
			InterceptRadius: 50,
			Workers:         1,
			OutputPath:      "output/simulation_results.csv",
		},
		Missile: MissileParameters{
			InitialMass:         5000,
			FuelConsumptionRate: 10,
			DragCoefficient:     0.3,
			ReferenceArea:       1.0,
			ReferenceDensity:    1.225,
			ScaleHeight:         8500,
			FilterAlpha:         0.5,
		},
		Interceptor: InterceptorParameters{
			InitialMass:         2000,
			FuelConsumptionRate: 8,
			DragCoefficient:     0.25,
			ReferenceArea:       0.8,
			ReferenceDensity:    1.225,
			ScaleHeight:         8500,
			FilterAlpha:         0.5,
			NavigationGain:      3.0,
		},
		Radar: RadarParameters{
			DetectionRange: 100000,
			AzimuthMin:     0,
			AzimuthMax:     360,
			ElevationMin:   -10,
			ElevationMax:   90,
			RevisitPeriod:  0.1,
		},
	}
}
