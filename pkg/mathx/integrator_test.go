package mathx

import (
	"math"
	"testing"
)

func TestIntegratorFirstStepIsEuler(t *testing.T) {
	ab := NewAdamsBashforth2()

	// y_next = y + f*dt = 0 + 2*0.1 = 0.2
	next := ab.Integrate(2.0, 0.1, 0.0)
	if math.Abs(next-0.2) > 1e-12 {
		t.Errorf("Expected Euler bootstrap 0.2, got %f", next)
	}
}

func TestIntegratorSubsequentStepIsAdamsBashforth(t *testing.T) {
	ab := NewAdamsBashforth2()
	ab.Integrate(1.5, 0.1, 0.0) // prime with derivative 1.5

	// y_next = y + (dt/2)*(3*c - p) = 0.2 + 0.05*(3*2.5 - 1.5) = 0.5
	next := ab.Integrate(2.5, 0.1, 0.2)
	if math.Abs(next-0.5) > 1e-12 {
		t.Errorf("Expected 0.5, got %f", next)
	}
}

func TestIntegratorZeroDt(t *testing.T) {
	tests := []struct {
		name   string
		primed bool
	}{
		{name: "bootstrap step", primed: false},
		{name: "primed step", primed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := NewAdamsBashforth2()
			if tt.primed {
				ab.Integrate(3.0, 0.1, 1.0)
			}
			next := ab.Integrate(7.0, 0.0, 42.0)
			if next != 42.0 {
				t.Errorf("dt=0 must return the value unchanged, got %f", next)
			}
		})
	}
}

func TestIntegratorReset(t *testing.T) {
	ab := NewAdamsBashforth2()
	ab.Integrate(10.0, 0.1, 0.0)
	ab.Reset()

	// After a reset the next call must be an Euler step again.
	next := ab.Integrate(2.0, 0.1, 0.0)
	if math.Abs(next-0.2) > 1e-12 {
		t.Errorf("Expected Euler step after reset, got %f", next)
	}
}
