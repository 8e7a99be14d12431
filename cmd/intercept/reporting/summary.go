package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aegirsim/missile-simulations/pkg/logger"
)

// MissileOutcome is the final disposition of one missile.
type MissileOutcome struct {
	ID      string
	Status  string  // FLYING, IMPACTED, INTERCEPTED
	SimTime float64 // time of the terminal transition, s; 0 when still flying
}

// InterceptorOutcome is the final disposition of one interceptor.
type InterceptorOutcome struct {
	ID              string
	Status          string
	ClosestApproach float64 // m; +Inf when it never chased a target
}

// RunSummary is the end-of-run report.
type RunSummary struct {
	RunID           string
	Cycles          int
	ElapsedSimTime  float64
	WallClock       time.Duration
	Missiles        []MissileOutcome
	Interceptors    []InterceptorOutcome
	Detections      int
	Launches        int
	Interceptions   int
	Impacts         int
	TerminationNote string
}

// Render formats the summary for the console and the report file.
func (s *RunSummary) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Run Summary (%s)\n", s.RunID)
	fmt.Fprintf(&b, "  Cycles: %d  Sim time: %.1f s  Wall clock: %s\n", s.Cycles, s.ElapsedSimTime, s.WallClock.Round(time.Millisecond))
	fmt.Fprintf(&b, "  Termination: %s\n", s.TerminationNote)
	fmt.Fprintf(&b, "  Detections: %d  Launches: %d  Interceptions: %d  Impacts: %d\n",
		s.Detections, s.Launches, s.Interceptions, s.Impacts)

	b.WriteString("  Missiles:\n")
	for _, m := range s.Missiles {
		if m.Status == "FLYING" {
			fmt.Fprintf(&b, "    %-15s %s\n", m.ID, m.Status)
			continue
		}
		fmt.Fprintf(&b, "    %-15s %s at t=%.1f s\n", m.ID, m.Status, m.SimTime)
	}

	b.WriteString("  Interceptors:\n")
	for _, it := range s.Interceptors {
		fmt.Fprintf(&b, "    %-15s %s closest approach %.1f m\n", it.ID, it.Status, it.ClosestApproach)
	}

	return b.String()
}

// WriteFile writes the rendered summary next to the CSV output. I/O failure
// surfaces to the caller.
func (s *RunSummary) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(s.Render()), 0644); err != nil {
		return fmt.Errorf("failed to write run summary: %w", err)
	}
	return nil
}

// Log prints the summary through the leveled logger.
func (s *RunSummary) Log() {
	for _, line := range strings.Split(strings.TrimRight(s.Render(), "\n"), "\n") {
		logger.Info(line)
	}
}
