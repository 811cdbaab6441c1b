// Package spectrum provides frequency-domain inspection utilities: magnitude,
// power and phase extraction from complex transform bins, a Goertzel
// single-bin analyzer, and a windowed [Analyzer] for offline spectral
// inspection of any sample buffer.
package spectrum
