// Package fft implements a radix-2 Cooley-Tukey discrete Fourier transform
// via recursive even/odd decomposition.
//
// [Transform] is strict about input length: anything that is not a power of
// two is rejected with [ErrNotPowerOfTwo]. Callers that want best-effort
// behavior use [TransformPadded], which zero-pads to the next power of two.
// [Inverse] completes the round trip with 1/N scaling.
//
// The transform is pure and deterministic; no state is shared between calls.
package fft
