package utils

import (
	"testing"
	"time"

	"github.com/aegirsim/missile-simulations/pkg/simulation"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		value     string
		paramType string
		want      interface{}
		wantErr   bool
	}{
		{"42", "integer", 42, false},
		{"4.5", "float", 4.5, false},
		{"hello", "string", "hello", false},
		{"true", "boolean", true, false},
		{"90s", "duration", 90 * time.Second, false},
		{"abc", "integer", nil, true},
		{"42", "unknown", nil, true},
	}

	for _, tt := range tests {
		got, err := parseValue(tt.value, tt.paramType)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseValue(%q, %q) expected error", tt.value, tt.paramType)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseValue(%q, %q) failed: %v", tt.value, tt.paramType, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseValue(%q, %q) = %v, want %v", tt.value, tt.paramType, got, tt.want)
		}
	}
}

func TestPromptForParametersSkipped(t *testing.T) {
	t.Setenv("MSLSIM_SKIP_PROMPTS", "true")
	t.Setenv("MSLSIM_WORKERS", "8")

	params := []simulation.Parameter{
		{Name: "workers", Type: "integer", Default: 1},
		{Name: "output_path", Type: "string", Default: "results/run.csv"},
		{Name: "note", Type: "string"}, // optional, no default
	}

	result, err := PromptForParameters(params)
	if err != nil {
		t.Fatalf("PromptForParameters failed: %v", err)
	}

	if result["workers"] != 8 {
		t.Errorf("workers = %v, want env override 8", result["workers"])
	}
	if result["output_path"] != "results/run.csv" {
		t.Errorf("output_path = %v, want default", result["output_path"])
	}
	if _, ok := result["note"]; ok {
		t.Error("optional parameter without default should be omitted")
	}
}

func TestPromptForParametersSkippedRequiredMissing(t *testing.T) {
	t.Setenv("MSLSIM_SKIP_PROMPTS", "true")

	params := []simulation.Parameter{
		{Name: "scenario_file", Type: "string", Required: true},
	}
	if _, err := PromptForParameters(params); err == nil {
		t.Error("expected an error for a missing required parameter")
	}
}

func TestCheckRange(t *testing.T) {
	param := simulation.Parameter{Min: 1, Max: 16}
	if err := checkRange(8, param); err != nil {
		t.Errorf("in-range value rejected: %v", err)
	}
	if err := checkRange(0, param); err == nil {
		t.Error("below-minimum value accepted")
	}
	if err := checkRange(32, param); err == nil {
		t.Error("above-maximum value accepted")
	}
}
