// Package units maps spectrogram coordinates to display values and
// formats them for axis labels.
//
// A [Scale] describes one axis: its value range, its display unit, and
// whether positions map linearly or logarithmically. Formatting covers
// seconds, Hertz, and tempered-scale note names.
package units

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Unit identifies how an axis value is displayed.
type Unit int

const (
	UnitSecond Unit = iota
	UnitHz
	UnitNote
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case UnitSecond:
		return "second"
	case UnitHz:
		return "hz"
	case UnitNote:
		return "note"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Mapping selects how values distribute along an axis.
type Mapping int

const (
	MappingLinear Mapping = iota
	MappingLog10
)

// Scale describes one axis of the spectrogram display.
type Scale struct {
	Min     float64
	Max     float64
	Unit    Unit
	Mapping Mapping
}

// logMin returns the lower bound of the scale in log10 space, clamped to
// zero so sub-unity minima (including zero) anchor at 10^0.
func (s Scale) logMin() float64 {
	return math.Max(math.Log10(s.Min), 0)
}

// Normalize maps value to a position in [0, 1] under the scale's mapping.
func (s Scale) Normalize(value float64) float64 {
	if s.Mapping == MappingLog10 {
		lo := s.logMin()
		return (math.Max(math.Log10(value), 0) - lo) / (math.Log10(s.Max) - lo)
	}
	return (value - s.Min) / (s.Max - s.Min)
}

// Denormalize maps a position in [0, 1] back to an axis value.
func (s Scale) Denormalize(normalized float64) float64 {
	if s.Mapping == MappingLog10 {
		return math.Pow(10, s.logMin()+normalized*(math.Log10(s.Max)-s.logMin()))
	}
	return s.Min + normalized*(s.Max-s.Min)
}

// Ticks returns n evenly spaced axis values under the scale's mapping.
//
// With inclusive set, the values span the full range in n-1 steps so the
// last tick lands on Max; otherwise the range is divided into n steps and
// Max is left for the axis edge.
func (s Scale) Ticks(n int, inclusive bool) []float64 {
	if n <= 0 {
		return nil
	}

	steps := float64(n)
	if inclusive && n > 1 {
		steps = float64(n - 1)
	}

	out := make([]float64, n)
	if s.Mapping == MappingLog10 {
		step := (math.Log10(s.Max) - s.logMin()) / steps
		for i := range out {
			out[i] = math.Pow(10, s.logMin()+float64(i)*step)
		}
		return out
	}

	step := (s.Max - s.Min) / steps
	for i := range out {
		out[i] = s.Min + float64(i)*step
	}
	return out
}

// c0Frequency anchors the note scale at C0.
const c0Frequency = 16.35

var noteNames = [...]string{
	"C", "C#/Db", "D", "D#/Eb", "E", "F", "F#/Gb", "G", "G#/Ab", "A", "A#/Bb", "B", "C",
}

// NoteName returns the tempered-scale note closest to freqHz, such as
// "A4". Frequencies at or below C0 collapse to "C0".
func NoteName(freqHz float64) string {
	octaves := math.Max(math.Log2(freqHz/c0Frequency), 0)
	whole, frac := math.Modf(octaves)

	semitone := int(math.Round(frac * 12))
	name := noteNames[semitone]
	octave := int(whole)
	if semitone == 12 {
		octave++
	}
	return fmt.Sprintf("%s%d", name, octave)
}

// Format renders an axis value with its unit.
func Format(value float64, unit Unit) string {
	switch unit {
	case UnitSecond:
		d := time.Duration(value*1000) * time.Millisecond
		return d.String()
	case UnitHz:
		return strconv.FormatFloat(math.Round(value), 'f', -1, 64) + " Hz"
	case UnitNote:
		return NoteName(value)
	default:
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
}
