// Package signal synthesizes sampled test and source waveforms from analytic
// parameters: sine waves, deterministic white noise, and linear sweeps.
// Generation is pure; a [Generator] holds only its configuration and seed.
package signal
