package simulation

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aegirsim/missile-simulations/cmd/intercept/config"
	"github.com/aegirsim/missile-simulations/cmd/intercept/reporting"
	"github.com/aegirsim/missile-simulations/pkg/logger"
	"github.com/aegirsim/missile-simulations/pkg/simulation"
)

func init() {
	simulation.DefaultRegistry.MustRegister("intercept", func() simulation.Simulation {
		return NewInterceptSimulation()
	})
}

// InterceptSimulation runs a full engagement: threat missiles fly ballistic
// profiles, radars sweep for them, and interceptors launch on detection and
// guide to a kill or a miss. Output is a per-cycle trajectory CSV plus a run
// summary.
type InterceptSimulation struct {
	cfg      *config.Config
	scenario *config.Scenario

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewInterceptSimulation creates the simulation with default configuration;
// Configure replaces it from files or parameter overrides.
func NewInterceptSimulation() *InterceptSimulation {
	return &InterceptSimulation{
		cfg:      config.DefaultConfig(),
		scenario: config.DefaultScenario(),
		stopChan: make(chan struct{}),
	}
}

// Name returns the name of the simulation
func (s *InterceptSimulation) Name() string {
	return "intercept"
}

// Description returns a brief description of what the simulation does
func (s *InterceptSimulation) Description() string {
	return "Ballistic missile defense engagement with radar detection and proportional-navigation interceptors"
}

// Configure sets up the simulation with the provided parameters
func (s *InterceptSimulation) Configure(params map[string]interface{}) error {
	configPath := stringParam(params, "config_file")
	cfg, err := config.LoadConfigOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	scenarioPath := stringParam(params, "scenario_file")
	scenario, err := config.LoadScenarioOrDefault(scenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	if v := stringParam(params, "output_path"); v != "" {
		cfg.Simulation.OutputPath = v
	}
	if v := stringParam(params, "workers"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil || workers < 1 {
			return fmt.Errorf("invalid workers value %q", v)
		}
		cfg.Simulation.Workers = workers
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := scenario.Validate(); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	s.cfg = cfg
	s.scenario = scenario
	return nil
}

func stringParam(params map[string]interface{}, key string) string {
	v, ok := params[key]
	if !ok {
		return ""
	}
	str, ok := v.(string)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	return str
}

// Run executes the simulation until it terminates, the context is canceled,
// or Stop is called
func (s *InterceptSimulation) Run(ctx context.Context) error {
	logger.Info("Starting intercept simulation")
	logger.Info(s.cfg.String())

	events := reporting.NewSimulationLogger()
	logger.WithField("run_id", events.RunID().String()).Info("Run initialized")

	world := NewWorld(s.cfg, s.scenario, events)

	recorder, err := reporting.CreateCSVRecorder(
		s.cfg.Simulation.OutputPath,
		world.MissileIDs(), world.InterceptorIDs(), world.RadarIDs())
	if err != nil {
		return fmt.Errorf("failed to create trajectory recorder: %w", err)
	}

	started := time.Now()
	interrupted := false
	progress := logger.NewProgressBar(s.cfg.Simulation.MaxCycles, "Simulating")

loop:
	for !world.Done() {
		select {
		case <-ctx.Done():
			logger.Warnf("Simulation canceled at cycle %d", world.Cycle())
			interrupted = true
			break loop
		case <-s.stopChan:
			logger.Warnf("Simulation stopped at cycle %d", world.Cycle())
			interrupted = true
			break loop
		default:
		}

		rec := world.Step()
		if err := recorder.WriteRecord(rec); err != nil {
			recorder.Close()
			return fmt.Errorf("failed to write trajectory record: %w", err)
		}
		progress.Update(world.Cycle())
	}
	progress.Finish()

	if err := recorder.Close(); err != nil {
		return fmt.Errorf("failed to finalize trajectory output: %w", err)
	}
	logger.Infof("Trajectory written to %s", s.cfg.Simulation.OutputPath)

	summary := s.buildSummary(world, events, time.Since(started), interrupted)
	summary.Log()

	summaryPath := summaryPathFor(s.cfg.Simulation.OutputPath)
	if err := summary.WriteFile(summaryPath); err != nil {
		return fmt.Errorf("failed to write run summary: %w", err)
	}
	logger.Infof("Summary written to %s", summaryPath)

	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

func (s *InterceptSimulation) buildSummary(world *World, events *reporting.SimulationLogger, wall time.Duration, interrupted bool) *reporting.RunSummary {
	missiles, interceptors := world.Outcomes()

	note := world.TerminationNote()
	if interrupted {
		note = "interrupted"
	}

	return &reporting.RunSummary{
		RunID:           events.RunID().String(),
		Cycles:          world.Cycle(),
		ElapsedSimTime:  world.SimTime(),
		WallClock:       wall,
		Missiles:        missiles,
		Interceptors:    interceptors,
		Detections:      events.CountByType(reporting.EventTypeDetection),
		Launches:        events.CountByType(reporting.EventTypeLaunch),
		Interceptions:   events.CountByType(reporting.EventTypeInterception),
		Impacts:         events.CountByType(reporting.EventTypeImpact),
		TerminationNote: note,
	}
}

// summaryPathFor derives the summary file path from the trajectory CSV path.
func summaryPathFor(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + "_summary.txt"
}

// Stop gracefully shuts down the simulation
func (s *InterceptSimulation) Stop() error {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	return nil
}
