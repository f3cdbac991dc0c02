package spectrogram

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-spectrogram/dsp/transform"
	"github.com/cwbudde/algo-spectrogram/internal/testutil"
)

func BenchmarkCompute(b *testing.B) {
	cases := []struct {
		name   string
		kernel transform.Type
	}{
		{"Naive", transform.TypeNaive},
		{"SIMD", transform.TypeSIMD},
		{"FFT", transform.TypeFFT},
	}

	const (
		columns = 16
		rows    = 128
	)
	samples := testutil.DeterministicNoise(1, 10000, columns*2*rows)

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			builder, err := New(Config{Columns: columns, Rows: rows, Kernel: tc.kernel})
			if err != nil {
				b.Fatalf("New error: %v", err)
			}

			b.ResetTimer()
			for range b.N {
				if _, err := builder.Compute(samples); err != nil {
					b.Fatalf("Compute error: %v", err)
				}
			}
		})
	}
}

func BenchmarkComputeParallel(b *testing.B) {
	const (
		columns = 64
		rows    = 128
	)
	samples := testutil.DeterministicNoise(1, 10000, columns*2*rows)

	for _, workers := range []int{1, 2, 4, 8} {
		name := "Workers" + strconv.Itoa(workers)
		b.Run(name, func(b *testing.B) {
			builder, err := New(Config{Columns: columns, Rows: rows, Kernel: transform.TypeFFT},
				WithWorkers(workers))
			if err != nil {
				b.Fatalf("New error: %v", err)
			}

			b.ResetTimer()
			for range b.N {
				if _, err := builder.Compute(samples); err != nil {
					b.Fatalf("Compute error: %v", err)
				}
			}
		})
	}
}
