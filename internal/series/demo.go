package series

import (
	"errors"
	"math"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/termzoom/internal/zoom"
)

// Demo signal parameters.
const (
	DemoSamples = 5000
	DemoStart   = 0.0
	DemoEnd     = 10.0
	DemoTitle   = "Two Superimposed Waveforms"
)

// Linspace returns n evenly spaced values from start to end inclusive.
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = end
	return out
}

// Demo returns sin(8x) and a slightly shifted, scaled copy
// 0.97·sin(8x+0.1) sampled over [0, 10].
func Demo() []zoom.Series {
	x := Linspace(DemoStart, DemoEnd, DemoSamples)
	y1 := make([]float64, len(x))
	y2 := make([]float64, len(x))
	for i, v := range x {
		y1[i] = math.Sin(8 * v)
		y2[i] = math.Sin(8*v+0.1) * 0.97
	}
	return []zoom.Series{
		{Label: "Signal 1", X: x, Y: y1, Color: lipgloss.Color("#5c9cff"), LineWidth: 1.2},
		{Label: "Signal 2", X: x, Y: y2, Color: lipgloss.Color("#ff5f5f"), LineWidth: 1.2},
	}
}

// RelativeL2 returns ||a - b||₂ / ||a||₂.
func RelativeL2(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	var num, den float64
	for i := range a {
		d := a[i] - b[i]
		num += d * d
		den += a[i] * a[i]
	}
	if den == 0 {
		return 0, errors.New("reference signal has zero norm")
	}
	return math.Sqrt(num) / math.Sqrt(den), nil
}
