// Package fir provides a direct-form FIR filter runtime with static
// coefficients. A [Filter] applies its taps to an input stream through a
// circular-buffer delay line; missing history at stream start counts as
// zero, so the first len(coeffs)-1 outputs see a zero-padded signal.
//
// The package provides the processing runtime and a small default low-pass
// tap set; general coefficient design is a separate concern.
package fir
