package reporting

import (
	"fmt"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/aegirsim/missile-simulations/pkg/logger"
)

// Event types emitted by the engagement.
const (
	EventTypeDetection    = "detection"
	EventTypeFireCommand  = "fire_command"
	EventTypeLaunch       = "launch"
	EventTypeInterception = "interception"
	EventTypeImpact       = "impact"
	EventTypeGuidanceHold = "guidance_hold"
	EventTypeSystem       = "system"
)

// Severity constants
const (
	SeverityDebug    = "debug"
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Color definitions per event type
var (
	colorDetection    = color.New(color.FgCyan)
	colorLaunch       = color.New(color.FgBlue, color.Bold)
	colorInterception = color.New(color.FgGreen, color.Bold)
	colorImpact       = color.New(color.FgRed, color.Bold)
	colorWarning      = color.New(color.FgYellow)
	colorSystem       = color.New(color.FgHiBlack)
)

// SimulationEvent is one logged engagement event.
type SimulationEvent struct {
	Timestamp time.Time
	SimTime   float64 // s since run start
	Cycle     int
	Type      string
	Severity  string
	EntityID  string
	Message   string
}

// SimulationLogger collects engagement events for the run summary and
// mirrors them to the console with per-type colors.
type SimulationLogger struct {
	runID     uuid.UUID
	startTime time.Time
	events    []SimulationEvent
	mu        sync.RWMutex
}

// NewSimulationLogger creates an event logger with a fresh run id.
func NewSimulationLogger() *SimulationLogger {
	sl := &SimulationLogger{
		runID:     uuid.New(),
		startTime: time.Now(),
		events:    make([]SimulationEvent, 0),
	}
	logger.Infof("Run %s started at %s", sl.runID, sl.startTime.Format("15:04:05"))
	return sl
}

// RunID returns the unique id of this run.
func (sl *SimulationLogger) RunID() uuid.UUID {
	return sl.runID
}

// LogEvent records one engagement event and prints it.
func (sl *SimulationLogger) LogEvent(simTime float64, cycle int, eventType, severity, entityID, message string) {
	sl.mu.Lock()
	sl.events = append(sl.events, SimulationEvent{
		Timestamp: time.Now(),
		SimTime:   simTime,
		Cycle:     cycle,
		Type:      eventType,
		Severity:  severity,
		EntityID:  entityID,
		Message:   message,
	})
	sl.mu.Unlock()

	line := fmt.Sprintf("[t=%7.1fs] %-13s %-15s %s", simTime, eventType, entityID, message)
	switch eventType {
	case EventTypeDetection, EventTypeFireCommand:
		logger.Info(colorDetection.Sprint(line))
	case EventTypeLaunch:
		logger.Info(colorLaunch.Sprint(line))
	case EventTypeInterception:
		logger.Info(colorInterception.Sprint(line))
	case EventTypeImpact:
		logger.Info(colorImpact.Sprint(line))
	case EventTypeGuidanceHold:
		logger.Debug(colorWarning.Sprint(line))
	default:
		logger.Debug(colorSystem.Sprint(line))
	}
}

// Detection logs a radar detection event.
func (sl *SimulationLogger) Detection(simTime float64, cycle int, radarID, targetID string) {
	sl.LogEvent(simTime, cycle, EventTypeDetection, SeverityInfo, radarID,
		fmt.Sprintf("detected %s", targetID))
}

// FireCommand logs the fire command raised when a radar first holds a
// detection.
func (sl *SimulationLogger) FireCommand(simTime float64, cycle int, radarID string) {
	sl.LogEvent(simTime, cycle, EventTypeFireCommand, SeverityInfo, radarID, "fire command issued")
}

// Launch logs an interceptor launch caused by a fire command.
func (sl *SimulationLogger) Launch(simTime float64, cycle int, interceptorID string) {
	sl.LogEvent(simTime, cycle, EventTypeLaunch, SeverityInfo, interceptorID, "launched on radar cue")
}

// Interception logs a successful interception.
func (sl *SimulationLogger) Interception(simTime float64, cycle int, interceptorID, missileID string, distance float64) {
	sl.LogEvent(simTime, cycle, EventTypeInterception, SeverityInfo, interceptorID,
		fmt.Sprintf("intercepted %s at %.1f m separation", missileID, distance))
}

// Impact logs a missile ground impact.
func (sl *SimulationLogger) Impact(simTime float64, cycle int, missileID string) {
	sl.LogEvent(simTime, cycle, EventTypeImpact, SeverityWarning, missileID, "ground impact")
}

// GuidanceHold logs a degenerate-geometry recovery (the interceptor held its
// previous state for the cycle).
func (sl *SimulationLogger) GuidanceHold(simTime float64, cycle int, interceptorID string) {
	sl.LogEvent(simTime, cycle, EventTypeGuidanceHold, SeverityDebug, interceptorID,
		"degenerate guidance geometry, holding state")
}

// Events returns a copy of all recorded events.
func (sl *SimulationLogger) Events() []SimulationEvent {
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	out := make([]SimulationEvent, len(sl.events))
	copy(out, sl.events)
	return out
}

// CountByType returns the number of recorded events of one type.
func (sl *SimulationLogger) CountByType(eventType string) int {
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	n := 0
	for _, ev := range sl.events {
		if ev.Type == eventType {
			n++
		}
	}
	return n
}
