package mathx

// LowPassFilter is a first-order exponential smoothing filter for a single
// scalar channel: out = alpha*in + (1-alpha)*prev.
//
// Alpha is expected to lie in [0,1]; values outside that range are accepted
// numerically and produce divergent or inverted behavior. Keeping alpha in
// range is the caller's responsibility (configuration validation enforces it
// at load time), the filter itself never clamps.
type LowPassFilter struct {
	alpha    float64
	previous float64
}

// NewLowPassFilter creates a filter with the given coefficient and an
// initial previous value of zero.
func NewLowPassFilter(alpha float64) *LowPassFilter {
	return &LowPassFilter{alpha: alpha}
}

// Apply feeds one input sample through the filter and returns the smoothed
// output, which also becomes the stored previous value.
func (f *LowPassFilter) Apply(input float64) float64 {
	f.previous = f.alpha*input + (1.0-f.alpha)*f.previous
	return f.previous
}

// Previous returns the last filtered value.
func (f *LowPassFilter) Previous() float64 {
	return f.previous
}
