package zoom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Anchor is the host corner an inset is pinned to.
type Anchor int

const (
	UpperRight Anchor = iota
	UpperLeft
	LowerLeft
	LowerRight
)

var anchorNames = map[Anchor]string{
	UpperRight: "upper-right",
	UpperLeft:  "upper-left",
	LowerLeft:  "lower-left",
	LowerRight: "lower-right",
}

func (a Anchor) String() string {
	if s, ok := anchorNames[a]; ok {
		return s
	}
	return "unknown"
}

// ParseAnchor accepts "upper-right", "upper right", "upper_right" and the
// other three corners in the same forms.
func ParseAnchor(s string) (Anchor, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "-", "_", "-").Replace(norm)
	for a, name := range anchorNames {
		if name == norm {
			return a, nil
		}
	}
	return UpperRight, fmt.Errorf("unknown anchor %q", s)
}

// InsetSize is the on-screen footprint of the preview, either a percentage
// of the parent or an absolute number of cells.
type InsetSize struct {
	Value   float64
	Percent bool
}

// String formats the size the way ParseInsetSize accepts it.
func (s InsetSize) String() string {
	v := strconv.FormatFloat(s.Value, 'f', -1, 64)
	if s.Percent {
		return v + "%"
	}
	return v
}

// Resolve returns the size in cells for a parent of the given extent.
// The result is at least one cell and at most the parent extent.
func (s InsetSize) Resolve(parent int) int {
	n := int(s.Value)
	if s.Percent {
		n = int(float64(parent) * s.Value / 100)
	}
	if n < 1 {
		n = 1
	}
	if n > parent {
		n = parent
	}
	return n
}

// ParseInsetSize parses "30%" or "24".
func ParseInsetSize(spec string) (InsetSize, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return InsetSize{}, fmt.Errorf("%w: empty", ErrInvalidInsetSize)
	}

	percent := strings.HasSuffix(spec, "%")
	num := strings.TrimSpace(strings.TrimSuffix(spec, "%"))
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return InsetSize{}, fmt.Errorf("%w: %q", ErrInvalidInsetSize, spec)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || (percent && v > 100) {
		return InsetSize{}, fmt.Errorf("%w: %q out of range", ErrInvalidInsetSize, spec)
	}
	return InsetSize{Value: v, Percent: percent}, nil
}
