package mathx

// AdamsBashforth2 is a stateful two-step Adams-Bashforth integrator for a
// single scalar degree of freedom. The first call has no previous derivative
// and falls back to an explicit Euler step; every later call extrapolates
// from the current and previous derivative.
//
// Each integrator instance is exclusively owned by the axis it advances and
// must never be shared between entities.
type AdamsBashforth2 struct {
	prevDeriv float64
	primed    bool
}

// NewAdamsBashforth2 creates an integrator with no stored derivative.
func NewAdamsBashforth2() *AdamsBashforth2 {
	return &AdamsBashforth2{}
}

// Integrate advances the value one step of size dt using the current
// derivative. dt = 0 is legal and returns the value unchanged (the
// derivative history still updates). There are no error conditions.
func (ab *AdamsBashforth2) Integrate(currentDeriv, dt, currentValue float64) float64 {
	var next float64
	if ab.primed {
		next = currentValue + (dt/2.0)*(3.0*currentDeriv-ab.prevDeriv)
	} else {
		// Euler bootstrap for the first step.
		next = currentValue + currentDeriv*dt
	}
	ab.prevDeriv = currentDeriv
	ab.primed = true
	return next
}

// Reset clears the derivative history, returning the integrator to its
// bootstrap state.
func (ab *AdamsBashforth2) Reset() {
	ab.prevDeriv = 0
	ab.primed = false
}
