package transform

import "math"

// Naive evaluates the DFT by direct O(N^2) summation.
//
// It is the reference kernel: every other kernel must match its output on
// overlapping bins within documented tolerances. The zero value is ready
// to use and stateless.
type Naive struct{}

// NewNaive returns the scalar reference kernel.
func NewNaive() *Naive { return &Naive{} }

// Forward computes X[k] = sum_n x[n]*(cos th - i*sin th) with
// th = 2*pi*k*n/N for every k in [0, N).
func (*Naive) Forward(samples []float64) ([]complex128, error) {
	out := make([]complex128, len(samples))
	n := float64(len(samples))
	for k := range out {
		kf := float64(k)
		var re, im float64
		for idx, x := range samples {
			sin, cos := math.Sincos(2 * math.Pi * kf * float64(idx) / n)
			re += x * cos
			im -= x * sin
		}
		out[k] = complex(re, im)
	}
	return out, nil
}

// Inverse computes x[n] = (1/N)*sum_k Y[k]*(cos th + i*sin th), with the
// 1/N scale applied once per output value.
func (*Naive) Inverse(spectrum []complex128) ([]complex128, error) {
	return inverseScalar(spectrum), nil
}

// inverseScalar is the shared scalar inverse summation. The lane-blocked
// kernel reuses it: only the forward path is vectorized.
func inverseScalar(spectrum []complex128) []complex128 {
	out := make([]complex128, len(spectrum))
	n := float64(len(spectrum))
	for k := range out {
		kf := float64(k)
		var acc complex128
		for idx, y := range spectrum {
			sin, cos := math.Sincos(2 * math.Pi * kf * float64(idx) / n)
			acc += y * complex(cos, sin)
		}
		out[k] = acc / complex(n, 0)
	}
	return out
}
