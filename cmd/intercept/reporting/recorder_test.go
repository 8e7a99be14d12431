package reporting

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aegirsim/missile-simulations/pkg/mathx"
)

func TestCSVRecorderHeader(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewCSVRecorder(&buf, []string{"m1", "m2"}, []string{"i1"}, []string{"r1"})
	if err != nil {
		t.Fatalf("NewCSVRecorder failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	got := strings.TrimSpace(buf.String())
	want := "time(s)," +
		"m1_x(m),m1_y(m),m1_z(m),m1_theta(deg)," +
		"m2_x(m),m2_y(m),m2_z(m),m2_theta(deg)," +
		"i1_x(m),i1_y(m),i1_z(m),i1_theta(deg)," +
		"r1_detected(bool),r1_detect_x(m),r1_detect_y(m),r1_detect_z(m)"
	if got != want {
		t.Errorf("header = %q, want %q", got, want)
	}
}

func TestCSVRecorderWriteRecord(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewCSVRecorder(&buf, []string{"m1"}, nil, []string{"r1"})
	if err != nil {
		t.Fatalf("NewCSVRecorder failed: %v", err)
	}

	rec := CycleRecord{
		Time: 0.1,
		Missiles: []EntityState{
			{ID: "m1", Position: mathx.NewVector3(10, 20.5, 30), ThetaDeg: 45},
		},
		Radars: []RadarReading{
			{ID: "r1", Detected: true, Position: mathx.NewVector3(10, 20.5, 30)},
		},
	}
	if err := r.WriteRecord(rec); err != nil {
		t.Fatalf("WriteRecord failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[1] != "0.1,10,20.5,30,45,true,10,20.5,30" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestCSVRecorderUndetectedRadarWritesZeroVector(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewCSVRecorder(&buf, nil, nil, []string{"r1"})
	if err != nil {
		t.Fatalf("NewCSVRecorder failed: %v", err)
	}

	rec := CycleRecord{
		Time:   0.1,
		Radars: []RadarReading{{ID: "r1"}},
	}
	if err := r.WriteRecord(rec); err != nil {
		t.Fatalf("WriteRecord failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[1] != "0.1,false,0,0,0" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestCSVRecorderRejectsCountMismatch(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewCSVRecorder(&buf, []string{"m1"}, nil, nil)
	if err != nil {
		t.Fatalf("NewCSVRecorder failed: %v", err)
	}

	if err := r.WriteRecord(CycleRecord{Time: 0.1}); err == nil {
		t.Error("expected an error for a record missing its missile state")
	}
}

func TestCreateCSVRecorderMakesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "run.csv")
	r, err := CreateCSVRecorder(path, []string{"m1"}, nil, nil)
	if err != nil {
		t.Fatalf("CreateCSVRecorder failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file not created: %v", err)
	}
	if !strings.HasPrefix(string(data), "time(s)") {
		t.Errorf("file content = %q", string(data))
	}
}
