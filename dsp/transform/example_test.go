package transform_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectrogram/dsp/transform"
)

func ExampleNaive_Forward() {
	samples := []float64{1, 0, 0, 0}
	bins, _ := transform.NewNaive().Forward(samples)
	for _, b := range bins {
		fmt.Printf("(%.0f%+.0fi) ", real(b), imag(b))
	}
	fmt.Println()
	// Output:
	// (1+0i) (1+0i) (1+0i) (1+0i)
}

func ExampleForwardSamples() {
	samples := []int16{1, 0, 0, 0, 0, 0, 0, 0}
	bins, _ := transform.ForwardSamples(transform.NewSIMD(), samples)
	fmt.Println(len(bins))
	// Output:
	// 8
}

func ExampleNewFFT() {
	kernel, err := transform.NewFFT(8)
	if err != nil {
		fmt.Println(err)
		return
	}

	// The plan is keyed by the window length and reused across calls.
	bins, _ := kernel.Forward([]float64{1, 0, 0, 0, 0, 0, 0, 0})
	fmt.Println(len(bins))
	// Output:
	// 5
}

func ExampleBinFrequency() {
	fmt.Printf("%.1f Hz\n", transform.BinFrequency(3, 48000, 1024))
	// Output:
	// 140.6 Hz
}
