// Package series loads plot data from CSV and JSON files and generates the
// built-in demo signals.
package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/termzoom/internal/zoom"
	"github.com/tidwall/gjson"
)

var (
	// ErrNoData is returned when a file holds no plottable series.
	ErrNoData = errors.New("no data series found")
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("x and y lengths differ")
)

// Load reads series from path. Files ending in .json are parsed as JSON,
// everything else as CSV.
func Load(path string) ([]zoom.Series, error) {
	// #nosec G304 - path is supplied by the user on the command line
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read data file: %w", err)
		}
		return ParseJSON(data)
	}
	return ParseCSV(f)
}

// ParseCSV reads a table whose first column is x and whose other columns
// are y series. A first row that does not parse as numbers is a header
// naming the series; without one they are named y1..yn. Rows with a
// malformed y cell leave a gap in that series.
func ParseCSV(r io.Reader) ([]zoom.Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}

	var header []string
	if _, err := strconv.ParseFloat(strings.TrimSpace(records[0][0]), 64); err != nil {
		header, records = records[0], records[1:]
	}

	cols := 0
	for _, rec := range records {
		cols = max(cols, len(rec))
	}
	if header != nil {
		cols = max(cols, len(header))
	}
	if cols < 2 {
		return nil, ErrNoData
	}

	out := make([]zoom.Series, cols-1)
	for i := range out {
		out[i].Label = fmt.Sprintf("y%d", i+1)
		if i+1 < len(header) && strings.TrimSpace(header[i+1]) != "" {
			out[i].Label = strings.TrimSpace(header[i+1])
		}
		out[i].LineWidth = 1
	}

	for line, rec := range records {
		x, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid x value %q", line+1, rec[0])
		}
		for i := range out {
			y := math.NaN()
			if i+1 < len(rec) {
				if v, err := strconv.ParseFloat(strings.TrimSpace(rec[i+1]), 64); err == nil {
					y = v
				}
			}
			out[i].X = append(out[i].X, x)
			out[i].Y = append(out[i].Y, y)
		}
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}
	return out, nil
}

// ParseJSON reads {"series": [{"label", "x", "y", "color", "width"}]}.
// When x is omitted the sample index is used.
func ParseJSON(data []byte) ([]zoom.Series, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("failed to parse JSON: invalid document")
	}
	list := gjson.GetBytes(data, "series")
	if !list.IsArray() {
		return nil, fmt.Errorf("failed to parse JSON: %w: missing \"series\" array", ErrNoData)
	}

	var out []zoom.Series
	for i, item := range list.Array() {
		s := zoom.Series{
			Label:     item.Get("label").String(),
			LineWidth: 1,
		}
		if s.Label == "" {
			s.Label = fmt.Sprintf("y%d", i+1)
		}
		if w := item.Get("width"); w.Exists() {
			s.LineWidth = w.Float()
		}
		if c := item.Get("color").String(); c != "" {
			s.Color = lipgloss.Color(c)
		}

		s.Y = floats(item.Get("y"))
		if xs := item.Get("x"); xs.Exists() {
			s.X = floats(xs)
		} else {
			s.X = make([]float64, len(s.Y))
			for j := range s.X {
				s.X[j] = float64(j)
			}
		}
		if len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("series %q: %w (%d vs %d)", s.Label, ErrLengthMismatch, len(s.X), len(s.Y))
		}
		if len(s.Y) == 0 {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, ErrNoData
	}
	return out, nil
}

// floats converts a JSON array to float64s; null and non-numeric entries
// become NaN gaps.
func floats(r gjson.Result) []float64 {
	arr := r.Array()
	out := make([]float64, len(arr))
	for i, v := range arr {
		if v.Type == gjson.Number {
			out[i] = v.Float()
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}
