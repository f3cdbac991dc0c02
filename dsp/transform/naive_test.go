package transform

import (
	"testing"

	"github.com/cwbudde/algo-spectrogram/internal/testutil"
)

var (
	impulseAtOriginBins = []complex128{
		1, 1, 1, 1, 1, 1, 1, 1,
	}
	impulseAtOneBins = []complex128{
		complex(1, 0),
		complex(0.707, -0.707),
		complex(0, -1),
		complex(-0.707, -0.707),
		complex(-1, 0),
		complex(-0.707, 0.707),
		complex(0, 1),
		complex(0.707, 0.707),
	}
)

func TestNaiveForwardImpulseAtOrigin(t *testing.T) {
	bins, err := NewNaive().Forward(testutil.Impulse(8, 0))
	if err != nil {
		t.Fatalf("Forward error: %v", err)
	}

	testutil.RequireComplexSliceNearlyEqual(t, bins, impulseAtOriginBins, 1e-12)
}

func TestNaiveForwardImpulseAtOne(t *testing.T) {
	bins, err := NewNaive().Forward(testutil.Impulse(8, 1))
	if err != nil {
		t.Fatalf("Forward error: %v", err)
	}

	// Expected bins quoted to three decimals (0.707 for sqrt(2)/2).
	testutil.RequireComplexSliceNearlyEqual(t, bins, impulseAtOneBins, 5e-4)
}

func TestNaiveInverseImpulseAtOrigin(t *testing.T) {
	in := make([]complex128, 8)
	in[0] = 1

	out, err := NewNaive().Inverse(in)
	if err != nil {
		t.Fatalf("Inverse error: %v", err)
	}

	want := make([]complex128, 8)
	for i := range want {
		want[i] = complex(0.125, 0)
	}
	testutil.RequireComplexSliceNearlyEqual(t, out, want, 1e-12)
}

func TestNaiveRoundTrip(t *testing.T) {
	for _, pos := range []int{0, 1, 5} {
		x := testutil.Impulse(8, pos)

		k := NewNaive()
		bins, err := k.Forward(x)
		if err != nil {
			t.Fatalf("Forward error: %v", err)
		}
		back, err := k.Inverse(bins)
		if err != nil {
			t.Fatalf("Inverse error: %v", err)
		}

		want := make([]complex128, len(x))
		for i, v := range x {
			want[i] = complex(v, 0)
		}
		testutil.RequireComplexSliceNearlyEqual(t, back, want, 1e-9)
	}
}

func TestNaiveRoundTripNoise(t *testing.T) {
	x := testutil.DeterministicNoise(7, 1000, 96)

	k := NewNaive()
	bins, err := k.Forward(x)
	if err != nil {
		t.Fatalf("Forward error: %v", err)
	}
	back, err := k.Inverse(bins)
	if err != nil {
		t.Fatalf("Inverse error: %v", err)
	}

	want := make([]complex128, len(x))
	for i, v := range x {
		want[i] = complex(v, 0)
	}
	testutil.RequireComplexSliceNearlyEqual(t, back, want, 1e-9)
}

func TestNaiveLinearity(t *testing.T) {
	const (
		a = 2.5
		b = -1.25
		n = 24
	)

	x := testutil.DeterministicNoise(1, 100, n)
	y := testutil.DeterministicNoise(2, 100, n)

	mixed := make([]float64, n)
	for i := range mixed {
		mixed[i] = a*x[i] + b*y[i]
	}

	k := NewNaive()
	fx, err := k.Forward(x)
	if err != nil {
		t.Fatalf("Forward(x) error: %v", err)
	}
	fy, err := k.Forward(y)
	if err != nil {
		t.Fatalf("Forward(y) error: %v", err)
	}
	fm, err := k.Forward(mixed)
	if err != nil {
		t.Fatalf("Forward(mixed) error: %v", err)
	}

	want := make([]complex128, n)
	for i := range want {
		want[i] = complex(a, 0)*fx[i] + complex(b, 0)*fy[i]
	}
	testutil.RequireComplexSliceNearlyEqual(t, fm, want, 1e-9)
}

func TestNaiveConjugateSymmetry(t *testing.T) {
	x := testutil.DeterministicNoise(3, 500, 31)

	bins, err := NewNaive().Forward(x)
	if err != nil {
		t.Fatalf("Forward error: %v", err)
	}

	n := len(bins)
	for k := 1; k < n; k++ {
		mirror := bins[n-k]
		conj := complex(real(bins[k]), -imag(bins[k]))
		if d := mirror - conj; real(d)*real(d)+imag(d)*imag(d) > 1e-18 {
			t.Fatalf("bin %d: %v is not the conjugate of bin %d: %v", n-k, mirror, k, bins[k])
		}
	}
}

func TestNaiveEmptyInput(t *testing.T) {
	k := NewNaive()

	bins, err := k.Forward(nil)
	if err != nil {
		t.Fatalf("Forward(nil) error: %v", err)
	}
	if len(bins) != 0 {
		t.Fatalf("expected empty spectrum, got %d bins", len(bins))
	}

	back, err := k.Inverse(nil)
	if err != nil {
		t.Fatalf("Inverse(nil) error: %v", err)
	}
	if len(back) != 0 {
		t.Fatalf("expected empty sequence, got %d values", len(back))
	}
}

func TestForwardSamplesTypeIndependence(t *testing.T) {
	in16 := []int16{0, 1, 0, 0, 0, 0, 0, 0}
	in64 := []int64{0, 1, 0, 0, 0, 0, 0, 0}

	k := NewNaive()
	got16, err := ForwardSamples(k, in16)
	if err != nil {
		t.Fatalf("ForwardSamples(int16) error: %v", err)
	}
	got64, err := ForwardSamples(k, in64)
	if err != nil {
		t.Fatalf("ForwardSamples(int64) error: %v", err)
	}

	for i := range got16 {
		if got16[i] != got64[i] {
			t.Fatalf("bin %d: int16 gave %v, int64 gave %v", i, got16[i], got64[i])
		}
	}
}
