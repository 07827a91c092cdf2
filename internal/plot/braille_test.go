package plot

import (
	"image/color"
	"math"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

var red = color.RGBA{R: 0xff, A: 0xff}

func TestGridDots(t *testing.T) {
	tests := []struct {
		name string
		dots [][2]int
		want string
	}{
		{"top left", [][2]int{{0, 0}}, "⠁ "},
		{"bottom right", [][2]int{{1, 3}}, "⢀ "},
		{"full cell", [][2]int{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}, {1, 3}}, "⣿ "},
		{"second cell", [][2]int{{2, 0}}, " ⠁"},
		{"out of range", [][2]int{{-1, 0}, {4, 0}, {0, 4}}, "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(2, 1, false)
			for _, d := range tt.dots {
				g.SetDot(d[0], d[1], nil)
			}
			if got := g.Lines()[0]; got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGridLine(t *testing.T) {
	g := NewGrid(2, 1, false)
	g.Line(0, 0, 3, 0, nil)
	if got := g.Lines()[0]; got != "⠉⠉" {
		t.Errorf("horizontal line = %q", got)
	}

	g = NewGrid(1, 1, false)
	g.Line(0, 3, 0, 0, nil)
	if got := g.Lines()[0]; got != "⡇" {
		t.Errorf("vertical line drawn upwards = %q", got)
	}
}

func TestGridRunes(t *testing.T) {
	g := NewGrid(3, 1, false)
	g.SetDot(0, 0, nil)
	g.SetRune(0, 0, '┌', nil)
	g.SetDot(1, 1, nil)
	g.SetString(1, 0, "abc", nil)

	if got := g.Lines()[0]; got != "┌ab" {
		t.Errorf("got %q", got)
	}
	if g.Empty(0, 0) || g.Empty(2, 0) {
		t.Error("cells with glyphs are not empty")
	}
	if g.Empty(5, 0) {
		t.Error("out of range cells are not empty")
	}
}

func TestGridASCII(t *testing.T) {
	g := NewGrid(2, 1, true)
	g.SetDot(2, 1, nil)
	if got := g.Lines()[0]; got != " *" {
		t.Errorf("got %q", got)
	}
}

func TestGridColorRuns(t *testing.T) {
	g := NewGrid(3, 1, false)
	g.SetRune(0, 0, 'a', red)
	g.SetRune(1, 0, 'b', red)
	g.SetRune(2, 0, 'c', nil)
	line := g.Lines()[0]
	if ansi.Strip(line) != "abc" {
		t.Errorf("stripped = %q", ansi.Strip(line))
	}
	if w := ansi.StringWidth(line); w != 3 {
		t.Errorf("width = %d", w)
	}
}

func TestNewGridNegativeSize(t *testing.T) {
	g := NewGrid(-3, -1, false)
	if w, h := g.Size(); w != 0 || h != 0 {
		t.Errorf("size = %dx%d", w, h)
	}
	g.SetDot(0, 0, nil)
	if len(g.Lines()) != 0 {
		t.Error("empty grid should have no lines")
	}
}

func TestClipSegment(t *testing.T) {
	const eps = 1e-6
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		ok             bool
		want           [4]float64
	}{
		{"inside", 1, 1, 3, 3, true, [4]float64{1, 1, 3, 3}},
		{"crosses horizontally", -10, 5, 10, 5, true, [4]float64{0, 5, 8, 5}},
		{"crosses diagonally", -2, -2, 4, 4, true, [4]float64{0, 0, 4, 4}},
		{"outside", -5, -5, -1, -1, false, [4]float64{}},
		{"parallel outside", -1, 0, -1, 8, false, [4]float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, c, d, ok := clipSegment(tt.x0, tt.y0, tt.x1, tt.y1, 8, 8)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			got := [4]float64{a, b, c, d}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > eps {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}
