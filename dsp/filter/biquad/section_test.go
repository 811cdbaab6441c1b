package biquad

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-12

// directForm1 evaluates the reference difference equation
// y[n] = b0*x[n] + b1*x[n-1] + b2*x[n-2] - a1*y[n-1] - a2*y[n-2]
// with zero initial history.
func directForm1(c Coefficients, in []float64) []float64 {
	out := make([]float64, len(in))
	var x1, x2, y1, y2 float64
	for i, x := range in {
		y := c.B0*x + c.B1*x1 + c.B2*x2 - c.A1*y1 - c.A2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		out[i] = y
	}
	return out
}

func mag(h complex128) float64 {
	return math.Hypot(real(h), imag(h))
}

func randomSignal(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

func TestProcessSampleMatchesDirectForm1(t *testing.T) {
	c, err := Notch(1000, 8000, 200)
	if err != nil {
		t.Fatalf("Notch() error = %v", err)
	}

	in := randomSignal(3, 512)
	want := directForm1(c, in)

	s := NewSection(c)
	for i, x := range in {
		y := s.ProcessSample(x)
		if math.Abs(y-want[i]) > 1e-9 {
			t.Fatalf("sample %d: got %v, want %v", i, y, want[i])
		}
	}
}

func TestProcessBlockMatchesSample(t *testing.T) {
	c, err := Notch(500, 8000, 100)
	if err != nil {
		t.Fatalf("Notch() error = %v", err)
	}

	in := randomSignal(5, 256)

	s1 := NewSection(c)
	ref := make([]float64, len(in))
	for i, x := range in {
		ref[i] = s1.ProcessSample(x)
	}

	s2 := NewSection(c)
	block := append([]float64(nil), in...)
	s2.ProcessBlock(block)

	for i := range ref {
		if math.Abs(block[i]-ref[i]) > eps {
			t.Fatalf("sample %d: block %v, sample %v", i, block[i], ref[i])
		}
	}

	s3 := NewSection(c)
	dst := make([]float64, len(in))
	s3.ProcessBlockTo(dst, in)
	for i := range ref {
		if math.Abs(dst[i]-ref[i]) > eps {
			t.Fatalf("sample %d: blockTo %v, sample %v", i, dst[i], ref[i])
		}
	}
}

func TestReset(t *testing.T) {
	c, err := Notch(1000, 8000, 200)
	if err != nil {
		t.Fatalf("Notch() error = %v", err)
	}

	s := NewSection(c)
	for _, x := range []float64{1, -0.5, 0.25} {
		s.ProcessSample(x)
	}
	s.Reset()
	if s.State() != [2]float64{} {
		t.Fatalf("state after Reset = %v, want zeros", s.State())
	}
}

func TestStateRoundTrip(t *testing.T) {
	c, err := Notch(1000, 8000, 200)
	if err != nil {
		t.Fatalf("Notch() error = %v", err)
	}

	s := NewSection(c)
	in := randomSignal(9, 64)
	for _, x := range in {
		s.ProcessSample(x)
	}
	saved := s.State()
	next := s.ProcessSample(0.5)

	s.SetState(saved)
	if got := s.ProcessSample(0.5); got != next {
		t.Fatalf("restored state produced %v, want %v", got, next)
	}
}

func TestImpulseResponseLeadingSample(t *testing.T) {
	c, err := Notch(1000, 8000, 200)
	if err != nil {
		t.Fatalf("Notch() error = %v", err)
	}

	s := NewSection(c)
	ir := s.ImpulseResponse(8)
	if len(ir) != 8 {
		t.Fatalf("len = %d, want 8", len(ir))
	}
	if math.Abs(ir[0]-c.B0) > eps {
		t.Fatalf("ir[0] = %v, want B0 = %v", ir[0], c.B0)
	}
	if s.State() != [2]float64{} {
		t.Fatalf("ImpulseResponse must not disturb state: %v", s.State())
	}
}

func TestChainMatchesCascadedSections(t *testing.T) {
	c, err := Notch(1000, 8000, 200)
	if err != nil {
		t.Fatalf("Notch() error = %v", err)
	}

	chain := NewChain([]Coefficients{c, c})
	if chain.Len() != 2 {
		t.Fatalf("Len = %d, want 2", chain.Len())
	}

	s1 := NewSection(c)
	s2 := NewSection(c)

	in := randomSignal(21, 128)
	for i, x := range in {
		want := s2.ProcessSample(s1.ProcessSample(x))
		got := chain.ProcessSample(x)
		if math.Abs(got-want) > eps {
			t.Fatalf("sample %d: chain %v, cascade %v", i, got, want)
		}
	}
}

func TestChainDeepensNotch(t *testing.T) {
	c, err := Notch(1000, 8000, 200)
	if err != nil {
		t.Fatalf("Notch() error = %v", err)
	}

	// Slightly off center so neither magnitude underflows to exactly zero.
	single := 20 * math.Log10(mag(c.Response(1010, 8000)))
	double := NewChain([]Coefficients{c, c}).MagnitudeDB(1010, 8000)
	if double >= single {
		t.Fatalf("cascade near notch = %v dB, want below single section %v dB", double, single)
	}
}
