package biquad

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateCoefficients reports a notch design whose normalization
// coefficient a0 evaluated to zero.
var ErrDegenerateCoefficients = errors.New("biquad: degenerate coefficients, a0 is zero")

// Notch designs a second-order notch that rejects targetHz with the given
// rejection bandwidth, both in Hz at the given sample rate.
//
// The design computes w0 = 2*pi*targetHz/sampleRate and
// alpha = sin(pi*bandwidthHz/sampleRate), giving the unnormalized transfer
// function
//
//	b = {1, -2*cos(w0), 1}
//	a = {1+alpha, -2*cos(w0), 1-alpha}
//
// The returned coefficients are normalized by a0. The bandwidth must lie
// strictly inside (0, sampleRate/2); values outside are rejected, not
// clamped.
func Notch(targetHz, sampleRate, bandwidthHz float64) (Coefficients, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return Coefficients{}, fmt.Errorf("notch sample rate must be > 0: %v", sampleRate)
	}
	if targetHz < 0 || targetHz > sampleRate/2 || math.IsNaN(targetHz) {
		return Coefficients{}, fmt.Errorf("notch target frequency must be between 0 and sampleRate/2: %v", targetHz)
	}
	if bandwidthHz <= 0 || bandwidthHz >= sampleRate/2 || math.IsNaN(bandwidthHz) {
		return Coefficients{}, fmt.Errorf("notch bandwidth must be in (0, sampleRate/2): %v", bandwidthHz)
	}

	w0 := 2 * math.Pi * targetHz / sampleRate
	alpha := math.Sin(math.Pi * bandwidthHz / sampleRate)
	cosw := math.Cos(w0)

	a0 := 1 + alpha
	if a0 == 0 {
		return Coefficients{}, ErrDegenerateCoefficients
	}

	inv := 1 / a0
	return Coefficients{
		B0: inv,
		B1: -2 * cosw * inv,
		B2: inv,
		A1: -2 * cosw * inv,
		A2: (1 - alpha) * inv,
	}, nil
}

// ApplyNotch filters signal through a freshly designed notch and returns a
// new slice of identical length. The filter starts from zero history on
// every call; this is the whole-buffer contract. For streaming with
// persisted history, design once with [Notch] and keep a [Section].
func ApplyNotch(signal []float64, targetHz, sampleRate, bandwidthHz float64) ([]float64, error) {
	c, err := Notch(targetHz, sampleRate, bandwidthHz)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out, nil
	}
	NewSection(c).ProcessBlockTo(out, signal)
	return out, nil
}
