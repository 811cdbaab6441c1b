package spectrum

import (
	"fmt"

	"github.com/mjibson/go-dsp/window"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/fft"
)

// Analyzer performs offline spectral inspection of sample buffers: a
// Hann-windowed magnitude spectrum and a refined dominant-frequency
// estimate.
//
// The configured block size is the transform length and must be a power of
// two. Buffers longer than one block are analyzed over their most recent
// block; shorter buffers are zero-padded.
type Analyzer struct {
	cfg core.ProcessorConfig
	win []float64

	scratch []float64
}

// NewAnalyzer creates an analyzer from processor options.
func NewAnalyzer(opts ...core.ProcessorOption) (*Analyzer, error) {
	cfg := core.ApplyProcessorOptions(opts...)
	if cfg.BlockSize < 2 || !fft.IsPowerOfTwo(cfg.BlockSize) {
		return nil, fmt.Errorf("spectrum: analyzer block size must be a power of two >= 2: %d", cfg.BlockSize)
	}

	return &Analyzer{
		cfg: cfg,
		win: window.Hann(cfg.BlockSize),
	}, nil
}

// Config returns the analyzer processor configuration.
func (a *Analyzer) Config() core.ProcessorConfig {
	return a.cfg
}

// BinWidth returns the frequency spacing between adjacent bins in Hz.
func (a *Analyzer) BinWidth() float64 {
	return a.cfg.SampleRate / float64(a.cfg.BlockSize)
}

// MagnitudeSpectrum returns the one-sided magnitude spectrum of buf,
// bins 0 (DC) through BlockSize/2 (Nyquist).
func (a *Analyzer) MagnitudeSpectrum(buf []float64) ([]float64, error) {
	n := a.cfg.BlockSize
	if len(buf) > n {
		buf = buf[len(buf)-n:]
	}

	a.scratch = core.EnsureLen(a.scratch, n)
	core.Zero(a.scratch)
	core.CopyInto(a.scratch, buf)
	for i := range a.scratch {
		a.scratch[i] *= a.win[i]
	}

	bins, err := fft.TransformReal(a.scratch)
	if err != nil {
		return nil, err
	}
	return Magnitude(bins[:n/2+1]), nil
}

// DominantFrequency returns the frequency of the strongest spectral
// component of buf in Hz, refined by parabolic interpolation around the
// peak bin.
func (a *Analyzer) DominantFrequency(buf []float64) (float64, error) {
	mags, err := a.MagnitudeSpectrum(buf)
	if err != nil {
		return 0, err
	}

	// Skip DC when searching for the peak.
	peak := 1
	for i := 2; i < len(mags); i++ {
		if mags[i] > mags[peak] {
			peak = i
		}
	}

	freq := float64(peak) * a.BinWidth()
	if peak <= 0 || peak >= len(mags)-1 {
		return freq, nil
	}

	y1 := mags[peak-1]
	y2 := mags[peak]
	y3 := mags[peak+1]
	den := 2 * (2*y2 - y1 - y3)
	if den == 0 {
		return freq, nil
	}
	delta := core.Clamp((y3-y1)/den, -0.5, 0.5)
	return (float64(peak) + delta) * a.BinWidth(), nil
}
