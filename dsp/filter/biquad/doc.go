// Package biquad provides second-order recursive (feedback) filter sections
// and the coefficient designs this toolkit needs, most importantly the
// adaptive notch used to reject energy at a target frequency.
//
// A [Section] implements the Direct Form II Transposed difference equation
// and owns its delay-line state exclusively. [Notch] computes normalized
// coefficients from target frequency, sample rate, and rejection bandwidth;
// [ApplyNotch] is the whole-buffer convenience that starts from zero state on
// every call. For streaming use across buffers, keep a Section and call
// [Section.ProcessBlock] repeatedly; [Section.Reset] is the explicit way to
// drop accumulated history.
package biquad
