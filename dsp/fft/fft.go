package fft

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrNotPowerOfTwo reports a transform input whose length is not a power of two.
var ErrNotPowerOfTwo = errors.New("fft: input length must be a power of two")

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n. For n <= 1 it
// returns 1.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Transform computes the discrete Fourier transform of in and returns a new
// slice in natural frequency-bin order.
//
// The input length must be a power of two; other lengths return
// [ErrNotPowerOfTwo]. A zero-length input returns an empty spectrum.
func Transform(in []complex128) ([]complex128, error) {
	if len(in) == 0 {
		return []complex128{}, nil
	}
	if !IsPowerOfTwo(len(in)) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, len(in))
	}

	out := make([]complex128, len(in))
	copy(out, in)
	recurse(out)
	return out, nil
}

// TransformPadded computes the transform of in after zero-padding it to the
// next power of two. It never fails; the returned spectrum has
// NextPowerOfTwo(len(in)) bins.
func TransformPadded(in []complex128) []complex128 {
	n := NextPowerOfTwo(len(in))
	buf := make([]complex128, n)
	copy(buf, in)
	recurse(buf)
	return buf
}

// TransformReal computes the transform of a real-valued buffer.
func TransformReal(in []float64) ([]complex128, error) {
	buf := make([]complex128, len(in))
	for i, v := range in {
		buf[i] = complex(v, 0)
	}
	return Transform(buf)
}

// Inverse computes the inverse discrete Fourier transform of in, including
// the 1/N normalization, so that Inverse(Transform(x)) == x up to rounding.
//
// The input length must be a power of two; other lengths return
// [ErrNotPowerOfTwo].
func Inverse(in []complex128) ([]complex128, error) {
	if len(in) == 0 {
		return []complex128{}, nil
	}
	if !IsPowerOfTwo(len(in)) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, len(in))
	}

	n := len(in)
	out := make([]complex128, n)
	for i, v := range in {
		out[i] = cmplx.Conj(v)
	}
	recurse(out)
	scale := complex(1/float64(n), 0)
	for i := range out {
		out[i] = cmplx.Conj(out[i]) * scale
	}
	return out, nil
}

// recurse performs the radix-2 decimation-in-time butterfly in place.
// len(buf) must be a power of two.
func recurse(buf []complex128) {
	n := len(buf)
	if n <= 1 {
		return
	}

	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)
	for i := range half {
		even[i] = buf[2*i]
		odd[i] = buf[2*i+1]
	}

	recurse(even)
	recurse(odd)

	for k := range half {
		angle := -2 * math.Pi * float64(k) / float64(n)
		twiddle := cmplx.Exp(complex(0, angle))
		t := twiddle * odd[k]
		buf[k] = even[k] + t
		buf[k+half] = even[k] - t
	}
}
