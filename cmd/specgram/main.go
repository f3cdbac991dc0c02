// Command specgram renders the spectrogram of a WAV file as a PNG image.
//
// Usage:
//
//	specgram [flags] input.wav
//
// The file is decoded, one channel is selected, and the channel's samples
// are partitioned into as many non-overlapping windows as the requested
// column count allows. Each column of the image is one window's
// normalized magnitude spectrum with low frequencies at the bottom.
//
// Examples:
//
//	specgram recording.wav
//	specgram -columns 200 -kernel fft -o out.png recording.wav
//	specgram -channel 1 -workers 4 recording.wav
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/faiface/beep/wav"

	"github.com/cwbudde/algo-spectrogram/dsp/spectrogram"
	"github.com/cwbudde/algo-spectrogram/dsp/transform"
	"github.com/cwbudde/algo-spectrogram/units"
)

func main() {
	columns := flag.Int("columns", 100, "number of time slices")
	kernelName := flag.String("kernel", "fft", "transform kernel: naive, simd or fft")
	channel := flag.Int("channel", 0, "channel to analyze")
	workers := flag.Int("workers", 1, "worker goroutines for column transforms")
	output := flag.String("o", "", "output PNG path (default: input path with .png appended)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: specgram [flags] input.wav\n\n")
		fmt.Fprintf(os.Stderr, "Renders the spectrogram of a WAV file as a PNG image.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	input := flag.Arg(0)
	out := *output
	if out == "" {
		out = input + ".png"
	}

	if err := run(input, out, *columns, *channel, *workers, *kernelName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output string, columns, channel, workers int, kernelName string) error {
	kernel, err := transform.ParseType(kernelName)
	if err != nil {
		return err
	}

	if columns < 1 {
		return fmt.Errorf("specgram: columns must be positive, got %d", columns)
	}

	samples, sampleRate, err := decodeChannel(input, channel)
	if err != nil {
		return err
	}

	// Rows follow from the sample count so the windows tile the whole
	// channel: W = 2*R and C*W <= N.
	rows := len(samples) / columns / 2
	if rows < 1 {
		return fmt.Errorf("specgram: %d samples are too few for %d columns", len(samples), columns)
	}

	var opts []spectrogram.Option
	if workers > 1 {
		opts = append(opts, spectrogram.WithWorkers(workers))
	}

	builder, err := spectrogram.New(spectrogram.Config{
		Columns: columns,
		Rows:    rows,
		Kernel:  kernel,
	}, opts...)
	if err != nil {
		return err
	}

	m, err := spectrogram.ComputeSamples(builder, samples)
	if err != nil {
		return err
	}

	if err := writePNG(output, m); err != nil {
		return err
	}

	duration := float64(len(samples)) / sampleRate
	fmt.Printf("%s: %d x %d cells, window %d samples, %s .. %s, %s\n",
		output, m.Columns, m.Rows, builder.Config().WindowLength(),
		units.Format(0, units.UnitHz),
		units.Format(sampleRate/2, units.UnitHz),
		units.Format(duration, units.UnitSecond))
	return nil
}

// decodeChannel decodes one channel of a WAV file into 16-bit samples.
func decodeChannel(path string, channel int) ([]int16, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("specgram: open input: %w", err)
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("specgram: decode %s: %w", path, err)
	}
	defer stream.Close()

	if channel < 0 || channel >= format.NumChannels {
		return nil, 0, fmt.Errorf("specgram: channel %d out of range, file has %d", channel, format.NumChannels)
	}

	var out []int16
	frames := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(frames)
		for _, frame := range frames[:n] {
			v := math.Max(-1, math.Min(1, frame[channel]))
			out = append(out, int16(v*math.MaxInt16))
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, 0, fmt.Errorf("specgram: read %s: %w", path, err)
	}

	return out, float64(format.SampleRate), nil
}

// writePNG renders the matrix with time left to right and frequency
// bottom to top.
func writePNG(path string, m *spectrogram.Matrix) error {
	img := image.NewGray(image.Rect(0, 0, m.Columns, m.Rows))
	for col := range m.Columns {
		for row := range m.Rows {
			v := uint8(math.Round(m.At(col, row) * 255))
			img.SetGray(col, m.Rows-row-1, color.Gray{Y: v})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("specgram: create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("specgram: encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("specgram: close output: %w", err)
	}
	return nil
}
