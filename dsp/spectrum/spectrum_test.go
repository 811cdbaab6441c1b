package spectrum

import (
	"math"
	"testing"
)

func TestMagnitude(t *testing.T) {
	in := []complex128{complex(3, 4), complex(0, 0), complex(-1, 0), complex(0, -2)}
	want := []float64{5, 0, 1, 2}

	got := Magnitude(in)
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("bin %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMagnitudeEmpty(t *testing.T) {
	if got := Magnitude(nil); got != nil {
		t.Fatalf("Magnitude(nil) = %v, want nil", got)
	}
}

func TestPower(t *testing.T) {
	in := []complex128{complex(3, 4), complex(1, 1)}
	want := []float64{25, 2}

	got := Power(in)
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("bin %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFromParts(t *testing.T) {
	re := []float64{3, 0, -1}
	im := []float64{4, 2, 0}

	mag := make([]float64, 3)
	MagnitudeFromParts(mag, re, im)
	for i, want := range []float64{5, 2, 1} {
		if math.Abs(mag[i]-want) > 1e-12 {
			t.Errorf("magnitude bin %d: got %v, want %v", i, mag[i], want)
		}
	}

	pow := make([]float64, 3)
	PowerFromParts(pow, re, im)
	for i, want := range []float64{25, 4, 1} {
		if math.Abs(pow[i]-want) > 1e-12 {
			t.Errorf("power bin %d: got %v, want %v", i, pow[i], want)
		}
	}
}

func TestPhase(t *testing.T) {
	in := []complex128{complex(1, 0), complex(0, 1), complex(-1, 0)}
	want := []float64{0, math.Pi / 2, math.Pi}

	got := Phase(in)
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("bin %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if Phase(nil) != nil {
		t.Fatal("Phase(nil) must be nil")
	}
}
