package transform

import (
	"fmt"
	"math"
	"strings"
)

// Kernel is the abstract transform capability shared by all
// implementations.
//
// Forward maps a real sample sequence to complex frequency bins; Inverse
// maps frequency bins back to a complex time sequence. Implementations
// differ only in execution strategy and in how many bins Forward returns
// (full length for the summation kernels, size/2+1 for [FFT]).
type Kernel interface {
	Forward(samples []float64) ([]complex128, error)
	Inverse(spectrum []complex128) ([]complex128, error)
}

// Type selects a kernel implementation.
type Type int

const (
	// TypeNaive is the scalar O(N^2) reference implementation.
	TypeNaive Type = iota
	// TypeSIMD blocks the forward summation into 8-sample lanes.
	TypeSIMD
	// TypeFFT delegates to a precomputed algo-fft plan.
	TypeFFT
)

// String returns the kernel name used by ParseType.
func (t Type) String() string {
	switch t {
	case TypeNaive:
		return "naive"
	case TypeSIMD:
		return "simd"
	case TypeFFT:
		return "fft"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType maps a kernel name to its Type.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "naive":
		return TypeNaive, nil
	case "simd":
		return TypeSIMD, nil
	case "fft":
		return TypeFFT, nil
	default:
		return 0, fmt.Errorf("transform: %w: %q", errUnknownType, name)
	}
}

// New returns a kernel of the given type.
//
// size is the window length the kernel will be applied to. Only TypeFFT
// uses it (its plan is keyed by size); the summation kernels accept input
// of any length.
func New(t Type, size int) (Kernel, error) {
	switch t {
	case TypeNaive:
		return NewNaive(), nil
	case TypeSIMD:
		return NewSIMD(), nil
	case TypeFFT:
		return NewFFT(size)
	default:
		return nil, fmt.Errorf("transform: %w: %d", errUnknownType, int(t))
	}
}

// Signed constrains the integer sample types accepted by ConvertSamples.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// ConvertSamples converts integer samples to float64 transform input.
//
// The conversion is checked: a value that does not convert to a finite
// float64 aborts the call with an error. This cannot happen for the
// integer widths admitted today but guards the contract against future
// sample types.
func ConvertSamples[T Signed](samples []T) ([]float64, error) {
	out := make([]float64, len(samples))
	for i, s := range samples {
		f := float64(s)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("transform: sample %d: %w", i, errNonFiniteSample)
		}
		out[i] = f
	}
	return out, nil
}

// ForwardSamples converts integer samples and applies k.Forward.
func ForwardSamples[T Signed](k Kernel, samples []T) ([]complex128, error) {
	converted, err := ConvertSamples(samples)
	if err != nil {
		return nil, err
	}
	return k.Forward(converted)
}

// BinFrequency returns the center frequency in Hz represented by bin k of
// a transform over size samples taken at sampleRate.
func BinFrequency(bin int, sampleRate float64, size int) float64 {
	if size <= 0 {
		return 0
	}
	return float64(bin) * sampleRate / float64(size)
}
