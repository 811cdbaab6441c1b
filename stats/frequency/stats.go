// Package frequency computes summary statistics of a one-sided magnitude
// spectrum: basic extrema and energy plus the spectral centroid, and the
// peak frequency in Hz.
package frequency

import (
	"github.com/cwbudde/algo-signal/dsp/core"
)

// Stats holds frequency-domain statistics computed from a magnitude spectrum.
type Stats struct {
	BinCount int
	DC       float64 // bin 0 magnitude
	Sum      float64 // sum of magnitudes
	Max      float64
	MaxBin   int
	Min      float64
	MinBin   int
	Average  float64
	Max_dB   float64
	Energy   float64 // sum of squared magnitudes
	Power    float64 // Energy / BinCount
	Centroid float64 // spectral centroid (Hz)
}

// binFreq returns the frequency in Hz of a given bin index for a one-sided
// spectrum of binCount bins (fftSize = 2*(binCount-1)).
func binFreq(i int, sampleRate float64, binCount int) float64 {
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Calculate computes statistics from a one-sided magnitude spectrum (linear
// scale, bins 0 through Nyquist). An empty spectrum yields zero statistics.
func Calculate(magnitude []float64, sampleRate float64) Stats {
	n := len(magnitude)
	if n == 0 {
		return Stats{}
	}

	var s Stats
	s.BinCount = n
	s.DC = magnitude[0]
	s.Min = magnitude[0]
	s.Max = magnitude[0]

	weighted := 0.0
	for i, v := range magnitude {
		s.Sum += v
		s.Energy += v * v
		if v > s.Max {
			s.Max = v
			s.MaxBin = i
		}
		if v < s.Min {
			s.Min = v
			s.MinBin = i
		}
		if n > 1 {
			weighted += v * binFreq(i, sampleRate, n)
		}
	}

	s.Average = s.Sum / float64(n)
	s.Max_dB = core.LinearToDB(s.Max)
	s.Power = s.Energy / float64(n)
	if s.Sum > 0 && n > 1 {
		s.Centroid = weighted / s.Sum
	}

	return s
}

// PeakFrequency returns the frequency in Hz of the strongest bin.
func (s Stats) PeakFrequency(sampleRate float64) float64 {
	if s.BinCount < 2 {
		return 0
	}
	return binFreq(s.MaxBin, sampleRate, s.BinCount)
}
