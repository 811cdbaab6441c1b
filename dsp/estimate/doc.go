// Package estimate provides real-time dominant-frequency estimation from a
// sample stream.
//
// [ZeroCrossing] counts sign transitions over a fixed window (one second at
// the configured sample rate by default) and emits one estimate per window:
// half the crossing count, since every full cycle crosses zero twice. The
// estimator is a small synchronous state machine that accepts exactly one
// sample per call and buffers nothing beyond the previous sample value.
package estimate
