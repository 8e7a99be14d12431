package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aegirsim/missile-simulations/pkg/mathx"
)

// EntityState is the per-cycle output of one missile or interceptor.
type EntityState struct {
	ID       string
	Position mathx.Vector3
	ThetaDeg float64
}

// RadarReading is the per-cycle output of one radar: whether it holds a
// detection and where. Position is the zero vector when nothing is held.
type RadarReading struct {
	ID       string
	Detected bool
	Position mathx.Vector3
}

// CycleRecord summarizes one simulation cycle for the result sink. Entity
// order inside the slices follows scenario declaration order.
type CycleRecord struct {
	Time         float64
	Missiles     []EntityState
	Interceptors []EntityState
	Radars       []RadarReading
}

// Recorder is the result sink the stepper writes one record per cycle to.
type Recorder interface {
	WriteRecord(rec CycleRecord) error
	Close() error
}

// CSVRecorder writes the trajectory time series as CSV: a header row naming
// every column {entity_id}_{field}, then one row per cycle. The column order
// is fixed by the id lists given at construction.
type CSVRecorder struct {
	w              *csv.Writer
	closer         io.Closer
	missileIDs     []string
	interceptorIDs []string
	radarIDs       []string
}

// NewCSVRecorder wraps an open writer and emits the header row immediately.
func NewCSVRecorder(w io.Writer, missileIDs, interceptorIDs, radarIDs []string) (*CSVRecorder, error) {
	r := &CSVRecorder{
		w:              csv.NewWriter(w),
		missileIDs:     missileIDs,
		interceptorIDs: interceptorIDs,
		radarIDs:       radarIDs,
	}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	if err := r.writeHeader(); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	return r, nil
}

// CreateCSVRecorder creates the output file (and its directory) and returns
// a recorder writing to it. A failure here is fatal to the run.
func CreateCSVRecorder(path string, missileIDs, interceptorIDs, radarIDs []string) (*CSVRecorder, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	rec, err := NewCSVRecorder(f, missileIDs, interceptorIDs, radarIDs)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return rec, nil
}

func (r *CSVRecorder) writeHeader() error {
	header := []string{"time(s)"}
	for _, id := range r.missileIDs {
		header = append(header,
			id+"_x(m)", id+"_y(m)", id+"_z(m)", id+"_theta(deg)")
	}
	for _, id := range r.interceptorIDs {
		header = append(header,
			id+"_x(m)", id+"_y(m)", id+"_z(m)", id+"_theta(deg)")
	}
	for _, id := range r.radarIDs {
		header = append(header,
			id+"_detected(bool)", id+"_detect_x(m)", id+"_detect_y(m)", id+"_detect_z(m)")
	}
	return r.w.Write(header)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteRecord appends one cycle row. The record's entity counts must match
// the id lists the recorder was built with.
func (r *CSVRecorder) WriteRecord(rec CycleRecord) error {
	if len(rec.Missiles) != len(r.missileIDs) ||
		len(rec.Interceptors) != len(r.interceptorIDs) ||
		len(rec.Radars) != len(r.radarIDs) {
		return fmt.Errorf("cycle record entity counts do not match recorder columns")
	}

	row := []string{formatFloat(rec.Time)}
	for _, m := range rec.Missiles {
		row = append(row,
			formatFloat(m.Position.X), formatFloat(m.Position.Y), formatFloat(m.Position.Z),
			formatFloat(m.ThetaDeg))
	}
	for _, it := range rec.Interceptors {
		row = append(row,
			formatFloat(it.Position.X), formatFloat(it.Position.Y), formatFloat(it.Position.Z),
			formatFloat(it.ThetaDeg))
	}
	for _, rd := range rec.Radars {
		row = append(row,
			strconv.FormatBool(rd.Detected),
			formatFloat(rd.Position.X), formatFloat(rd.Position.Y), formatFloat(rd.Position.Z))
	}

	if err := r.w.Write(row); err != nil {
		return fmt.Errorf("failed to write cycle record: %w", err)
	}
	return nil
}

// Close flushes buffered rows and closes the underlying file. Any pending
// write error surfaces here; a run whose Close fails must not be treated as
// complete.
func (r *CSVRecorder) Close() error {
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	if r.closer != nil {
		if err := r.closer.Close(); err != nil {
			return fmt.Errorf("failed to close output: %w", err)
		}
	}
	return nil
}
