package spectrogram

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-dsp/dsp/spectrum"
	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectrogram/dsp/transform"
)

// Config holds the spectrogram resolution and kernel selection.
type Config struct {
	// Columns is the number of time slices.
	Columns int
	// Rows is the number of frequency bins per column. Each column is
	// transformed from a window of 2*Rows samples.
	Rows int
	// Kernel selects the transform strategy.
	Kernel transform.Type
}

// WindowLength returns the samples consumed per column.
func (c Config) WindowLength() int { return 2 * c.Rows }

// Matrix is a flat column-major spectrogram intensity grid.
//
// Values are normalized magnitudes in [0, 1]. Element (column, row) lives
// at Data[column*Rows+row]; the column is the time slice index, the row
// the frequency bin index.
type Matrix struct {
	Data    []float64
	Columns int
	Rows    int
}

// At returns the normalized intensity at (column, row).
func (m *Matrix) At(column, row int) float64 {
	return m.Data[column*m.Rows+row]
}

// Column returns the intensities of one time slice, aliasing Data.
func (m *Matrix) Column(column int) []float64 {
	return m.Data[column*m.Rows : (column+1)*m.Rows]
}

// Option configures a Builder.
type Option func(*builderConfig)

type builderConfig struct {
	taper      bool
	windowType window.Type
	workers    int
}

// WithTaper applies the given analysis window to every sample window
// before transforming. The default is rectangular (no taper).
func WithTaper(t window.Type) Option {
	return func(c *builderConfig) {
		c.taper = true
		c.windowType = t
	}
}

// WithWorkers distributes column transforms across n goroutines.
//
// Column order in the matrix is deterministic regardless of worker count.
// Each worker owns its own kernel, so plan-based kernels allocate one plan
// per worker. Values below 2 keep the serial reference path.
func WithWorkers(n int) Option {
	return func(c *builderConfig) {
		c.workers = n
	}
}

// Builder computes spectrogram matrices for one fixed resolution and
// kernel choice.
//
// A Builder is a pure function of (samples, resolution, kernel): it holds
// no result state between calls. It is not safe for concurrent use; the
// kernel it owns may hold a transform plan that requires exclusive access.
type Builder struct {
	cfg       Config
	taper     []float64
	workers   int
	kernel    transform.Kernel
	newKernel func() (transform.Kernel, error)
}

// New validates the configuration and creates a Builder, including the
// transform kernel (and, for plan-based kernels, its plan keyed by the
// window length).
func New(cfg Config, opts ...Option) (*Builder, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	var bc builderConfig
	for _, opt := range opts {
		opt(&bc)
	}

	b := &Builder{cfg: cfg, workers: bc.workers}
	if bc.taper {
		b.taper = window.Generate(bc.windowType, cfg.WindowLength(), window.WithPeriodic())
	}

	b.newKernel = func() (transform.Kernel, error) {
		return transform.New(cfg.Kernel, cfg.WindowLength())
	}

	kernel, err := b.newKernel()
	if err != nil {
		return nil, err
	}
	b.kernel = kernel

	return b, nil
}

// Config returns the builder's resolution and kernel selection.
func (b *Builder) Config() Config { return b.cfg }

// Compute builds the full intensity matrix for one channel of samples.
//
// The sequence must contain at least Columns*2*Rows samples; shorter
// input is an error, never silent truncation. Window i covers samples
// [i*W, (i+1)*W) with W = 2*Rows. Each window is transformed, reduced to
// the magnitudes of its first Rows bins, and normalized by its own peak
// magnitude; an all-zero window yields an all-zero column rather than a
// division by zero. Any transform failure aborts the whole build.
func (b *Builder) Compute(samples []float64) (*Matrix, error) {
	w := b.cfg.WindowLength()
	need := b.cfg.Columns * w
	if len(samples) < need {
		return nil, fmt.Errorf("spectrogram: %d windows of %d samples need %d, have %d: %w",
			b.cfg.Columns, w, need, len(samples), errShortInput)
	}

	m := &Matrix{
		Data:    make([]float64, b.cfg.Columns*b.cfg.Rows),
		Columns: b.cfg.Columns,
		Rows:    b.cfg.Rows,
	}

	if b.workers > 1 {
		if err := b.computeParallel(samples, m); err != nil {
			return nil, err
		}
		return m, nil
	}

	scratch := b.newScratch()
	for col := range b.cfg.Columns {
		if err := b.column(b.kernel, samples, m, col, scratch); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ComputeSamples converts integer samples and computes the matrix.
func ComputeSamples[T transform.Signed](b *Builder, samples []T) (*Matrix, error) {
	converted, err := transform.ConvertSamples(samples)
	if err != nil {
		return nil, err
	}
	return b.Compute(converted)
}

func (b *Builder) newScratch() []float64 {
	if b.taper == nil {
		return nil
	}
	return make([]float64, b.cfg.WindowLength())
}

// column transforms window col and writes its normalized magnitudes into
// the matrix. The window either contributes completely or not at all.
func (b *Builder) column(kernel transform.Kernel, samples []float64, m *Matrix, col int, scratch []float64) error {
	w := b.cfg.WindowLength()
	win := samples[col*w : (col+1)*w]

	if b.taper != nil {
		vecmath.MulBlock(scratch, win, b.taper)
		win = scratch
	}

	bins, err := kernel.Forward(win)
	if err != nil {
		return fmt.Errorf("spectrogram: window %d: %w", col, err)
	}

	mags := spectrum.Magnitude(bins[:b.cfg.Rows])
	dst := m.Column(col)

	peak := floats.Max(mags)
	if peak == 0 {
		// Silent window: leave the column at zero instead of dividing.
		return nil
	}

	vecmath.ScaleBlock(dst, mags, 1/peak)
	return nil
}

// computeParallel fans columns out over worker goroutines. Every worker
// creates its own kernel so plan-based kernels never share a plan.
func (b *Builder) computeParallel(samples []float64, m *Matrix) error {
	workers := min(b.workers, b.cfg.Columns)

	cols := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	record := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			kernel, err := b.newKernel()
			if err != nil {
				record(err)
				for range cols {
					// Drain so the producer never blocks.
				}
				return
			}

			scratch := b.newScratch()
			for col := range cols {
				if err := b.column(kernel, samples, m, col, scratch); err != nil {
					record(err)
				}
			}
		}()
	}

	for col := range b.cfg.Columns {
		cols <- col
	}
	close(cols)
	wg.Wait()

	return firstErr
}
