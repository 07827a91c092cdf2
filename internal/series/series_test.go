package series

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantLabels []string
		wantLen    int
		wantErr    error
	}{
		{
			name:       "header",
			in:         "t, voltage, current\n0, 1, 2\n1, 3, 4\n",
			wantLabels: []string{"voltage", "current"},
			wantLen:    2,
		},
		{
			name:       "no header",
			in:         "0,1\n1,2\n2,3\n",
			wantLabels: []string{"y1"},
			wantLen:    3,
		},
		{
			name:       "comments and ragged rows",
			in:         "# recorded\nx,a,b\n0,1\n1,2,3\n",
			wantLabels: []string{"a", "b"},
			wantLen:    2,
		},
		{
			name:    "single column",
			in:      "1\n2\n",
			wantErr: ErrNoData,
		},
		{
			name:    "empty",
			in:      "",
			wantErr: ErrNoData,
		},
		{
			name:    "header only",
			in:      "x,y\n",
			wantErr: ErrNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCSV(strings.NewReader(tt.in))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCSV: %v", err)
			}
			if len(got) != len(tt.wantLabels) {
				t.Fatalf("got %d series, want %d", len(got), len(tt.wantLabels))
			}
			for i, s := range got {
				if s.Label != tt.wantLabels[i] {
					t.Errorf("series %d label = %q, want %q", i, s.Label, tt.wantLabels[i])
				}
				if len(s.X) != tt.wantLen || len(s.Y) != tt.wantLen {
					t.Errorf("series %d len = %d/%d, want %d", i, len(s.X), len(s.Y), tt.wantLen)
				}
			}
		})
	}
}

func TestParseCSVGaps(t *testing.T) {
	got, err := ParseCSV(strings.NewReader("x,a,b\n0,1\n1,n/a,3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(got[1].Y[0]) {
		t.Error("missing cell should be NaN")
	}
	if !math.IsNaN(got[0].Y[1]) {
		t.Error("non-numeric cell should be NaN")
	}
	if got[1].Y[1] != 3 {
		t.Errorf("b[1] = %v", got[1].Y[1])
	}
}

func TestParseCSVBadX(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("0,1\nbad,2\n")); err == nil {
		t.Fatal("expected error for non-numeric x")
	}
}

func TestParseJSON(t *testing.T) {
	doc := `{"series": [
		{"label": "measured", "x": [0, 1, 2], "y": [1, null, 3], "color": "#ff0000", "width": 2},
		{"y": [5, 6]},
		{"label": "empty", "y": []}
	]}`
	got, err := ParseJSON([]byte(doc))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d series, want 2", len(got))
	}
	m := got[0]
	if m.Label != "measured" || m.LineWidth != 2 || m.Color == nil {
		t.Errorf("first series = %+v", m)
	}
	if !math.IsNaN(m.Y[1]) {
		t.Error("null should become NaN")
	}
	idx := got[1]
	if idx.Label != "y2" || idx.X[1] != 1 || idx.LineWidth != 1 {
		t.Errorf("index series = %+v", idx)
	}
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"invalid", `{"series": [`, nil},
		{"no series", `{"data": []}`, ErrNoData},
		{"mismatch", `{"series": [{"x": [1, 2], "y": [1]}]}`, ErrLengthMismatch},
		{"all empty", `{"series": [{"y": []}]}`, ErrNoData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "data.csv")
	jsonPath := filepath.Join(dir, "data.JSON")
	if err := os.WriteFile(csvPath, []byte("x,y\n0,1\n1,2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(jsonPath, []byte(`{"series":[{"label":"j","y":[1,2,3]}]}`), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(csvPath)
	if err != nil || c[0].Label != "y" {
		t.Errorf("csv: %v %+v", err, c)
	}
	j, err := Load(jsonPath)
	if err != nil || j[0].Label != "j" {
		t.Errorf("json: %v %+v", err, j)
	}
	if _, err := Load(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLinspace(t *testing.T) {
	got := Linspace(0, 10, 5)
	want := []float64{0, 2.5, 5, 7.5, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Linspace[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if Linspace(0, 1, 0) != nil {
		t.Error("n = 0 should be nil")
	}
	if got := Linspace(3, 9, 1); len(got) != 1 || got[0] != 3 {
		t.Errorf("n = 1: %v", got)
	}
}

func TestDemo(t *testing.T) {
	d := Demo()
	if len(d) != 2 {
		t.Fatalf("demo has %d series", len(d))
	}
	for _, s := range d {
		if len(s.X) != DemoSamples || len(s.Y) != DemoSamples {
			t.Errorf("%s has %d samples", s.Label, len(s.X))
		}
		if s.X[0] != DemoStart || s.X[len(s.X)-1] != DemoEnd {
			t.Errorf("%s spans [%v, %v]", s.Label, s.X[0], s.X[len(s.X)-1])
		}
	}
	if d[0].Y[0] != 0 {
		t.Errorf("sin(0) = %v", d[0].Y[0])
	}
	if want := math.Sin(0.1) * 0.97; math.Abs(d[1].Y[0]-want) > 1e-12 {
		t.Errorf("signal 2 at 0 = %v, want %v", d[1].Y[0], want)
	}
}

func TestRelativeL2(t *testing.T) {
	d := Demo()
	got, err := RelativeL2(d[0].Y, d[1].Y)
	if err != nil {
		t.Fatal(err)
	}
	// Phase shift of 0.1 rad and 3% amplitude loss give roughly 0.103.
	if got < 0.09 || got > 0.12 {
		t.Errorf("relative L2 = %v, want about 0.103", got)
	}

	if v, _ := RelativeL2([]float64{3, 4}, []float64{3, 4}); v != 0 {
		t.Errorf("identical signals = %v", v)
	}
	if v, _ := RelativeL2([]float64{3, 4}, []float64{0, 0}); v != 1 {
		t.Errorf("zero estimate = %v, want 1", v)
	}
	if _, err := RelativeL2([]float64{1}, []float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("mismatch err = %v", err)
	}
	if _, err := RelativeL2([]float64{0, 0}, []float64{1, 1}); err == nil {
		t.Error("zero reference should error")
	}
}
