package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config validation failed: %v", err)
	}

	if cfg.Simulation.TimeStep != 0.1 {
		t.Errorf("Expected default time step 0.1, got %f", cfg.Simulation.TimeStep)
	}
	if cfg.Simulation.InterceptRadius != 50 {
		t.Errorf("Expected default intercept radius 50, got %f", cfg.Simulation.InterceptRadius)
	}
	if cfg.Missile.InitialMass != 5000 {
		t.Errorf("Expected default missile mass 5000, got %f", cfg.Missile.InitialMass)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		hasErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
			hasErr: false,
		},
		{
			name:   "empty name",
			mutate: func(c *Config) { c.Simulation.Name = "" },
			hasErr: true,
		},
		{
			name:   "zero time step",
			mutate: func(c *Config) { c.Simulation.TimeStep = 0 },
			hasErr: true,
		},
		{
			name:   "negative missile mass",
			mutate: func(c *Config) { c.Missile.InitialMass = -1 },
			hasErr: true,
		},
		{
			name:   "negative fuel rate",
			mutate: func(c *Config) { c.Missile.FuelConsumptionRate = -0.5 },
			hasErr: true,
		},
		{
			name:   "filter alpha above one",
			mutate: func(c *Config) { c.Interceptor.FilterAlpha = 1.5 },
			hasErr: true,
		},
		{
			name:   "zero detection range",
			mutate: func(c *Config) { c.Radar.DetectionRange = 0 },
			hasErr: true,
		},
		{
			name:   "elevation window out of bounds",
			mutate: func(c *Config) { c.Radar.ElevationMax = 95 },
			hasErr: true,
		},
		{
			name:   "elevation window inverted",
			mutate: func(c *Config) { c.Radar.ElevationMin = 20; c.Radar.ElevationMax = 10 },
			hasErr: true,
		},
		{
			name:   "zero intercept radius",
			mutate: func(c *Config) { c.Simulation.InterceptRadius = 0 },
			hasErr: true,
		},
		{
			name:   "zero navigation gain",
			mutate: func(c *Config) { c.Interceptor.NavigationGain = 0 },
			hasErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.hasErr && err == nil {
				t.Errorf("Expected validation error for %s", tt.name)
			}
			if !tt.hasErr && err != nil {
				t.Errorf("Unexpected validation error for %s: %v", tt.name, err)
			}
		})
	}
}

func TestAzimuthNormalization(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Radar.AzimuthMin = -10 // any real value is accepted, interpreted mod 360
	cfg.Radar.AzimuthMax = 370

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Unexpected validation error: %v", err)
	}
	if cfg.Radar.AzimuthMin != 350 {
		t.Errorf("Expected azimuth min normalized to 350, got %f", cfg.Radar.AzimuthMin)
	}
	if cfg.Radar.AzimuthMax != 10 {
		t.Errorf("Expected azimuth max normalized to 10, got %f", cfg.Radar.AzimuthMax)
	}
}

func TestAzimuthFullCircleWindowPreserved(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Radar.AzimuthMin = 0
	cfg.Radar.AzimuthMax = 360

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Unexpected validation error: %v", err)
	}
	if cfg.Radar.AzimuthMax != 360 {
		t.Errorf("Expected full-circle azimuth max kept at 360, got %f", cfg.Radar.AzimuthMax)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("MSLSIM_TIME_STEP", "0.05")
	t.Setenv("MSLSIM_MAX_CYCLES", "500")
	t.Setenv("MSLSIM_INTERCEPT_RADIUS", "25")
	t.Setenv("MSLSIM_OUTPUT_PATH", "/tmp/results.csv")

	cfg := DefaultConfig()
	MergeWithEnvironment(cfg)

	if cfg.Simulation.TimeStep != 0.05 {
		t.Errorf("Expected time step override 0.05, got %f", cfg.Simulation.TimeStep)
	}
	if cfg.Simulation.MaxCycles != 500 {
		t.Errorf("Expected max cycles override 500, got %d", cfg.Simulation.MaxCycles)
	}
	if cfg.Simulation.InterceptRadius != 25 {
		t.Errorf("Expected intercept radius override 25, got %f", cfg.Simulation.InterceptRadius)
	}
	if cfg.Simulation.OutputPath != "/tmp/results.csv" {
		t.Errorf("Expected output path override, got %s", cfg.Simulation.OutputPath)
	}
}

func TestInvalidEnvironmentValuesIgnored(t *testing.T) {
	t.Setenv("MSLSIM_TIME_STEP", "not-a-number")
	t.Setenv("MSLSIM_MAX_CYCLES", "-5")

	cfg := DefaultConfig()
	MergeWithEnvironment(cfg)

	if cfg.Simulation.TimeStep != 0.1 {
		t.Errorf("Malformed env override must be ignored, got %f", cfg.Simulation.TimeStep)
	}
	if cfg.Simulation.MaxCycles != 20000 {
		t.Errorf("Out-of-range env override must be ignored, got %d", cfg.Simulation.MaxCycles)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
simulation:
  name: test-run
  time_step: 0.2
  max_cycles: 100
  gravity: 9.81
  intercept_radius: 40
  workers: 2
  output_path: out.csv
missile:
  initial_mass: 4000
  fuel_consumption_rate: 12
  drag_coefficient: 0.3
  reference_area: 1.0
  reference_density: 1.225
  scale_height: 8500
  filter_alpha: 0.6
interceptor:
  initial_mass: 1500
  fuel_consumption_rate: 6
  drag_coefficient: 0.25
  reference_area: 0.8
  reference_density: 1.225
  scale_height: 8500
  filter_alpha: 0.5
  navigation_gain: 4.0
radar:
  detection_range: 50000
  azimuth_min: 0
  azimuth_max: 360
  elevation_min: -10
  elevation_max: 80
  revisit_period: 0.1
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Simulation.Name != "test-run" {
		t.Errorf("Expected name 'test-run', got %q", cfg.Simulation.Name)
	}
	if cfg.Simulation.TimeStep != 0.2 {
		t.Errorf("Expected time step 0.2, got %f", cfg.Simulation.TimeStep)
	}
	if cfg.Interceptor.NavigationGain != 4.0 {
		t.Errorf("Expected navigation gain 4.0, got %f", cfg.Interceptor.NavigationGain)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected error for missing config file")
	}
}

func TestScenarioValidation(t *testing.T) {
	sc := DefaultScenario()
	if err := sc.Validate(); err != nil {
		t.Fatalf("Default scenario validation failed: %v", err)
	}

	dup := DefaultScenario()
	dup.Missiles = append(dup.Missiles, dup.Missiles[0])
	if err := dup.Validate(); err == nil {
		t.Errorf("Expected duplicate missile id to fail validation")
	}

	empty := &Scenario{}
	if err := empty.Validate(); err == nil {
		t.Errorf("Expected empty scenario to fail validation")
	}
}

func TestLoadScenarioFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")

	content := `
missiles:
  - id: m1
    position: {x: 0, y: 0, z: 0}
    velocity: {x: 100, y: 0, z: 50}
    thrust: 30000
    theta: 45
    psi: 0
interceptors:
  - id: i1
    position: {x: 50000, y: 0, z: 0}
    velocity: {x: 0, y: 0, z: 0}
    thrust: 25000
    theta: 60
    psi: 180
radars:
  - id: r1
    position: {x: 40000, y: 0, z: 0}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test scenario: %v", err)
	}

	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("Failed to load scenario: %v", err)
	}
	if len(sc.Missiles) != 1 || sc.Missiles[0].ID != "m1" {
		t.Errorf("Unexpected missiles: %+v", sc.Missiles)
	}
	if sc.Missiles[0].Velocity.Z != 50 {
		t.Errorf("Expected missile vz 50, got %f", sc.Missiles[0].Velocity.Z)
	}
	if len(sc.Radars) != 1 || sc.Radars[0].Position.X != 40000 {
		t.Errorf("Unexpected radars: %+v", sc.Radars)
	}
}
