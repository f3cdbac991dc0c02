// Package spectrogram builds normalized time-frequency intensity grids
// from real-valued sample sequences.
//
// A [Builder] partitions one channel's samples into fixed-length,
// non-overlapping windows, transforms each window with a kernel from
// dsp/transform, and assembles per-window normalized magnitudes into a
// flat column-major [Matrix]. The matrix is rebuilt from scratch on every
// call; the only state reused between builds is the transform plan owned
// by the kernel.
package spectrogram
