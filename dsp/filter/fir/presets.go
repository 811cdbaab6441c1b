package fir

// DefaultLowPass returns the default 5-tap symmetric low-pass weighting,
// a normalized binomial window (1 4 6 4 1)/16. Unity gain at DC.
func DefaultLowPass() []float64 {
	return []float64{1.0 / 16, 4.0 / 16, 6.0 / 16, 4.0 / 16, 1.0 / 16}
}

// MovingAverage returns n equal taps summing to one.
func MovingAverage(n int) []float64 {
	if n <= 0 {
		return nil
	}
	taps := make([]float64, n)
	w := 1 / float64(n)
	for i := range taps {
		taps[i] = w
	}
	return taps
}
