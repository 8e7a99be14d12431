package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads and validates a configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadConfigOrDefault loads a config from path if given, otherwise returns
// the defaults. Environment overrides are always applied, then the result is
// revalidated.
func LoadConfigOrDefault(path string) (*Config, error) {
	var cfg *Config
	var err error

	if path != "" {
		cfg, err = LoadConfig(path)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = DefaultConfig()
	}

	MergeWithEnvironment(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration invalid after environment overrides: %w", err)
	}
	return cfg, nil
}

// LoadScenario loads and validates a scenario document from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading scenario file: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("error parsing scenario file: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &sc, nil
}

// LoadScenarioOrDefault loads a scenario from path if given, otherwise
// returns the built-in default engagement.
func LoadScenarioOrDefault(path string) (*Scenario, error) {
	if path == "" {
		return DefaultScenario(), nil
	}
	return LoadScenario(path)
}

// MergeWithEnvironment applies MSLSIM_* environment variable overrides to
// the run settings.
func MergeWithEnvironment(cfg *Config) {
	if v := os.Getenv("MSLSIM_TIME_STEP"); v != "" {
		if dt, err := strconv.ParseFloat(v, 64); err == nil && dt > 0 {
			cfg.Simulation.TimeStep = dt
		}
	}

	if v := os.Getenv("MSLSIM_MAX_CYCLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Simulation.MaxCycles = n
		}
	}

	if v := os.Getenv("MSLSIM_MAX_ELAPSED_TIME"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil && t >= 0 {
			cfg.Simulation.MaxElapsedTime = t
		}
	}

	if v := os.Getenv("MSLSIM_GRAVITY"); v != "" {
		if g, err := strconv.ParseFloat(v, 64); err == nil && g >= 0 {
			cfg.Simulation.Gravity = g
		}
	}

	if v := os.Getenv("MSLSIM_INTERCEPT_RADIUS"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r > 0 {
			cfg.Simulation.InterceptRadius = r
		}
	}

	if v := os.Getenv("MSLSIM_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.Simulation.Workers = n
		}
	}

	if v := os.Getenv("MSLSIM_OUTPUT_PATH"); v != "" {
		cfg.Simulation.OutputPath = v
	}
}
