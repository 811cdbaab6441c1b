package fft

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
	godsp "github.com/mjibson/go-dsp/fft"
)

const eps = 1e-9

func requireComplexNear(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if cmplx.Abs(got[i]-want[i]) > tol {
			t.Fatalf("bin %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func randomComplex(seed int64, n int) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return out
}

func TestTransformImpulse(t *testing.T) {
	in := []complex128{1, 0, 0, 0}
	got, err := Transform(in)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	requireComplexNear(t, got, []complex128{1, 1, 1, 1}, eps)
}

func TestTransformDC(t *testing.T) {
	in := []complex128{1, 1, 1, 1}
	got, err := Transform(in)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	requireComplexNear(t, got, []complex128{4, 0, 0, 0}, eps)
}

func TestTransformSineBin(t *testing.T) {
	const n = 64
	const k = 5 // cycles within the block
	in := make([]float64, n)
	for i := range in {
		in[i] = math.Sin(2 * math.Pi * k * float64(i) / n)
	}

	got, err := TransformReal(in)
	if err != nil {
		t.Fatalf("TransformReal() error = %v", err)
	}

	for bin := range n {
		mag := cmplx.Abs(got[bin])
		want := 0.0
		if bin == k || bin == n-k {
			want = n / 2
		}
		if math.Abs(mag-want) > 1e-8 {
			t.Errorf("bin %d: magnitude %v, want %v", bin, mag, want)
		}
	}
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	in := []complex128{1, 2, 3, 4}
	saved := append([]complex128(nil), in...)
	if _, err := Transform(in); err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	for i := range in {
		if in[i] != saved[i] {
			t.Fatalf("input mutated at %d: %v != %v", i, in[i], saved[i])
		}
	}
}

func TestTransformRejectsNonPowerOfTwo(t *testing.T) {
	for _, n := range []int{3, 5, 6, 7, 12, 100} {
		_, err := Transform(make([]complex128, n))
		if !errors.Is(err, ErrNotPowerOfTwo) {
			t.Errorf("length %d: error = %v, want ErrNotPowerOfTwo", n, err)
		}
	}
}

func TestTransformEmpty(t *testing.T) {
	got, err := Transform(nil)
	if err != nil {
		t.Fatalf("Transform(nil) error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestTransformPadded(t *testing.T) {
	in := make([]complex128, 100)
	in[0] = 1
	got := TransformPadded(in)
	if len(got) != 128 {
		t.Fatalf("padded length = %d, want 128", len(got))
	}
	// Zero-padded impulse still has a flat spectrum.
	for i, v := range got {
		if cmplx.Abs(v-1) > eps {
			t.Fatalf("bin %d: got %v, want 1", i, v)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	in := randomComplex(7, 256)
	spec, err := Transform(in)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	back, err := Inverse(spec)
	if err != nil {
		t.Fatalf("Inverse() error = %v", err)
	}
	requireComplexNear(t, back, in, 1e-10)
}

func TestRoundTripPaddedSignal(t *testing.T) {
	// Zero-padded real signal of non-power-of-two length survives the
	// round trip within floating-point tolerance.
	raw := make([]float64, 300)
	for i := range raw {
		raw[i] = math.Sin(2 * math.Pi * 17 * float64(i) / 300)
	}
	n := NextPowerOfTwo(len(raw))
	padded := make([]complex128, n)
	for i, v := range raw {
		padded[i] = complex(v, 0)
	}

	spec, err := Transform(padded)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	back, err := Inverse(spec)
	if err != nil {
		t.Fatalf("Inverse() error = %v", err)
	}
	for i, v := range raw {
		if math.Abs(real(back[i])-v) > 1e-10 || math.Abs(imag(back[i])) > 1e-10 {
			t.Fatalf("sample %d: got %v, want %v", i, back[i], v)
		}
	}
}

func TestInverseRejectsNonPowerOfTwo(t *testing.T) {
	_, err := Inverse(make([]complex128, 9))
	if !errors.Is(err, ErrNotPowerOfTwo) {
		t.Fatalf("error = %v, want ErrNotPowerOfTwo", err)
	}
}

func TestAgainstPlanBackend(t *testing.T) {
	const n = 128
	in := randomComplex(11, n)

	got, err := Transform(in)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		t.Fatalf("NewPlan64() error = %v", err)
	}
	want := make([]complex128, n)
	if err := plan.Forward(want, in); err != nil {
		t.Fatalf("plan.Forward() error = %v", err)
	}

	requireComplexNear(t, got, want, 1e-9)
}

func TestAgainstGoDSP(t *testing.T) {
	const n = 64
	in := randomComplex(13, n)

	got, err := Transform(in)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	want := godsp.FFT(in)
	requireComplexNear(t, got, want, 1e-9)
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 1024} {
		if !IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = false, want true", n)
		}
	}
	for _, n := range []int{0, -4, 3, 12} {
		if IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = true, want false", n)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 100: 128, 1024: 1024}
	for n, want := range cases {
		if got := NextPowerOfTwo(n); got != want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", n, got, want)
		}
	}
}
