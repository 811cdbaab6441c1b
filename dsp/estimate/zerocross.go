package estimate

import (
	"fmt"
	"math"
)

// ZeroCrossing estimates the dominant frequency of a stream by counting
// zero crossings over a fixed sample window.
type ZeroCrossing struct {
	sampleRate float64
	window     int

	prev      float64
	crossings int
	count     int
}

// Option configures a ZeroCrossing estimator.
type Option func(*ZeroCrossing)

// WithWindow overrides the estimation window length in samples. The default
// is one second at the configured sample rate; estimates are always scaled
// to Hz, so shorter windows trade resolution for update rate.
func WithWindow(samples int) Option {
	return func(z *ZeroCrossing) {
		if samples > 0 {
			z.window = samples
		}
	}
}

// NewZeroCrossing creates an estimator for the given sample rate.
func NewZeroCrossing(sampleRate float64, opts ...Option) (*ZeroCrossing, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("estimate: sample rate must be > 0: %v", sampleRate)
	}

	z := &ZeroCrossing{
		sampleRate: sampleRate,
		window:     int(math.Round(sampleRate)),
	}
	if z.window < 1 {
		z.window = 1
	}
	for _, opt := range opts {
		if opt != nil {
			opt(z)
		}
	}
	return z, nil
}

// WindowSize returns the estimation window length in samples.
func (z *ZeroCrossing) WindowSize() int {
	return z.window
}

// Observe feeds one sample into the estimator. When a full window has
// elapsed it returns the frequency estimate in Hz and true, then starts the
// next window from zeroed counters; otherwise it returns 0 and false.
//
// A crossing is a sign transition between consecutive samples: the current
// sample is strictly positive with a non-positive predecessor, or strictly
// negative with a non-negative predecessor. The first sample is compared
// against a zero predecessor.
func (z *ZeroCrossing) Observe(x float64) (float64, bool) {
	if (x > 0 && z.prev <= 0) || (x < 0 && z.prev >= 0) {
		z.crossings++
	}
	z.prev = x
	z.count++

	if z.count < z.window {
		return 0, false
	}

	// Two crossings per cycle; scale to Hz for non-default windows. With
	// the default one-second window the factor is 1.
	est := float64(z.crossings) / 2 * z.sampleRate / float64(z.window)
	z.crossings = 0
	z.count = 0
	return est, true
}

// ProcessBlock feeds a whole buffer through Observe and returns the
// estimates emitted along the way, one per completed window.
func (z *ZeroCrossing) ProcessBlock(buf []float64) []float64 {
	var out []float64
	for _, x := range buf {
		if est, ok := z.Observe(x); ok {
			out = append(out, est)
		}
	}
	return out
}

// Reset returns the estimator to its initial state: zero counters and a
// zero previous sample.
func (z *ZeroCrossing) Reset() {
	z.prev = 0
	z.crossings = 0
	z.count = 0
}
