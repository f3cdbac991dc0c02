package spectrogram_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectrogram/dsp/spectrogram"
	"github.com/cwbudde/algo-spectrogram/dsp/transform"
)

func ExampleBuilder_Compute() {
	b, err := spectrogram.New(spectrogram.Config{
		Columns: 2,
		Rows:    2,
		Kernel:  transform.TypeNaive,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	// First window holds an impulse, second window is silent.
	samples := []float64{1, 0, 0, 0, 0, 0, 0, 0}

	m, err := b.Compute(samples)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(m.Data)
	// Output:
	// [1 1 0 0]
}

func ExampleComputeSamples() {
	b, err := spectrogram.New(spectrogram.Config{
		Columns: 1,
		Rows:    2,
		Kernel:  transform.TypeSIMD,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	m, err := spectrogram.ComputeSamples(b, []int16{1, 0, 0, 0})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(m.Columns, m.Rows)
	// Output:
	// 1 2
}
