package estimate_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-signal/dsp/estimate"
)

func ExampleZeroCrossing_Observe() {
	const rate = 8000.0
	z, err := estimate.NewZeroCrossing(rate)
	if err != nil {
		panic(err)
	}

	// Two seconds of a 440 Hz tone: one estimate per one-second window.
	for i := range int(2 * rate) {
		x := math.Sin(2 * math.Pi * 440 * float64(i) / rate)
		if est, ok := z.Observe(x); ok {
			fmt.Printf("%.0f Hz\n", est)
		}
	}
	// Output:
	// 440 Hz
	// 440 Hz
}
