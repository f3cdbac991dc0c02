// Package transform provides discrete Fourier transform kernels for
// spectrogram construction.
//
// Three interchangeable kernels implement one forward/inverse contract:
//
//   - [Naive] evaluates the DFT by direct O(N^2) summation and serves as
//     the reference implementation.
//   - [SIMD] computes the same summation with the forward inner loop
//     blocked into 8-sample lanes.
//   - [FFT] delegates to a precomputed algo-fft plan and returns the
//     N/2+1 unique bins of the real-input half spectrum.
//
// Callers select an implementation through [New] and depend only on the
// [Kernel] interface. All kernels agree on overlapping bins within
// documented tolerances; an empty input yields an empty spectrum, not an
// error.
package transform
