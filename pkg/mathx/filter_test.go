package mathx

import (
	"math"
	"testing"
)

func TestFilterZeroAlphaHoldsPrevious(t *testing.T) {
	f := NewLowPassFilter(0.0)
	out := f.Apply(10.0)
	if out != 0.0 {
		t.Errorf("alpha=0 must hold the previous value, got %f", out)
	}
	out = f.Apply(-3.0)
	if out != 0.0 {
		t.Errorf("alpha=0 must keep holding the previous value, got %f", out)
	}
}

func TestFilterUnitAlphaPassesInput(t *testing.T) {
	f := NewLowPassFilter(1.0)
	f.Apply(3.0)
	out := f.Apply(7.0)
	if out != 7.0 {
		t.Errorf("alpha=1 must return the input unchanged, got %f", out)
	}
}

func TestFilterConvexCombination(t *testing.T) {
	tests := []struct {
		name     string
		alpha    float64
		previous float64
		input    float64
		expected float64
	}{
		{name: "half mix", alpha: 0.5, previous: 0.0, input: 10.0, expected: 5.0},
		{name: "weighted toward previous", alpha: 0.3, previous: 5.0, input: 15.0, expected: 8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &LowPassFilter{alpha: tt.alpha, previous: tt.previous}
			out := f.Apply(tt.input)
			if math.Abs(out-tt.expected) > 1e-12 {
				t.Errorf("Expected %f, got %f", tt.expected, out)
			}

			// For alpha in (0,1) the output lies strictly between input and previous.
			lo, hi := math.Min(tt.previous, tt.input), math.Max(tt.previous, tt.input)
			if out < lo || out > hi {
				t.Errorf("Output %f outside convex range [%f, %f]", out, lo, hi)
			}
		})
	}
}
