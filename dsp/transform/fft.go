package transform

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FFT delegates the transform to a precomputed algo-fft plan.
//
// The plan is created once in [NewFFT], keyed by the window length, and
// reused across calls. It is exclusively owned by this kernel and not safe
// for concurrent use; callers that transform windows in parallel must hold
// one kernel per worker. Forward returns only the size/2+1 unique bins of
// the half spectrum, exploiting the conjugate symmetry of real input.
//
// Engine faults during plan creation or execution are propagated to the
// caller unchanged; there is no retry and no partial result.
type FFT struct {
	size int
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
}

// NewFFT creates a kernel holding a plan for transforms of length size.
//
// Plan creation is expensive relative to a single transform; callers that
// transform many windows of one length should create the kernel once and
// reuse it. A kernel of size zero accepts only empty input.
func NewFFT(size int) (*FFT, error) {
	if size < 0 {
		return nil, fmt.Errorf("transform: fft size must be >= 0: %d", size)
	}

	k := &FFT{size: size}
	if size == 0 {
		return k, nil
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("transform: fft plan for size %d: %w", size, err)
	}

	k.plan = plan
	k.in = make([]complex128, size)
	k.out = make([]complex128, size)
	return k, nil
}

// Size returns the window length the plan was created for.
func (k *FFT) Size() int { return k.size }

// Forward transforms one window of exactly Size samples and returns the
// Size/2+1 unique bins of the real-input half spectrum.
func (k *FFT) Forward(samples []float64) ([]complex128, error) {
	if len(samples) != k.size {
		return nil, fmt.Errorf("transform: fft input length %d, plan size %d: %w",
			len(samples), k.size, errSizeMismatch)
	}
	if k.size == 0 {
		return []complex128{}, nil
	}

	for i, s := range samples {
		k.in[i] = complex(s, 0)
	}
	if err := k.plan.Forward(k.out, k.in); err != nil {
		return nil, fmt.Errorf("transform: fft forward: %w", err)
	}

	half := make([]complex128, k.size/2+1)
	copy(half, k.out)
	return half, nil
}

// Inverse transforms a spectrum back to the complex time sequence of
// length Size.
//
// It accepts either the Size/2+1 half spectrum produced by Forward, which
// is expanded through conjugate symmetry, or a full Size-length spectrum.
func (k *FFT) Inverse(spectrum []complex128) ([]complex128, error) {
	if k.size == 0 {
		if len(spectrum) != 0 {
			return nil, fmt.Errorf("transform: fft spectrum length %d, plan size 0: %w",
				len(spectrum), errSizeMismatch)
		}
		return []complex128{}, nil
	}

	switch len(spectrum) {
	case k.size:
		copy(k.in, spectrum)
	case k.size/2 + 1:
		copy(k.in, spectrum)
		for i := len(spectrum); i < k.size; i++ {
			c := spectrum[k.size-i]
			k.in[i] = complex(real(c), -imag(c))
		}
	default:
		return nil, fmt.Errorf("transform: fft spectrum length %d, plan size %d: %w",
			len(spectrum), k.size, errSizeMismatch)
	}

	out := make([]complex128, k.size)
	if err := k.plan.Inverse(out, k.in); err != nil {
		return nil, fmt.Errorf("transform: fft inverse: %w", err)
	}
	return out, nil
}

// FFTForward is a one-shot convenience that creates a plan for
// len(samples), transforms, and discards the plan.
//
// It trades throughput for simplicity; hot paths should keep a kernel
// from [NewFFT] and reuse its plan instead.
func FFTForward(samples []float64) ([]complex128, error) {
	k, err := NewFFT(len(samples))
	if err != nil {
		return nil, err
	}
	return k.Forward(samples)
}
