package config

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/Gaurav-Gosain/termzoom/internal/zoom"
)

// ValidationIssue is one problem found in the config.
type ValidationIssue struct {
	Field   string
	Key     string
	Message string
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Field, i.Key, i.Message)
}

// ValidationResult collects errors and warnings. Errors make
// LoadUserConfig fail, and callers then fall back to the defaults with a
// warning on stderr. Warnings are only logged.
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors reports whether any error was found.
func (v *ValidationResult) HasErrors() bool { return len(v.Errors) > 0 }

// HasWarnings reports whether any warning was found.
func (v *ValidationResult) HasWarnings() bool { return len(v.Warnings) > 0 }

func (v *ValidationResult) Error() string {
	msgs := make([]string, len(v.Errors))
	for i, e := range v.Errors {
		msgs[i] = e.String()
	}
	return strings.Join(msgs, "; ")
}

func (v *ValidationResult) errorf(field, key, format string, args ...any) {
	v.Errors = append(v.Errors, ValidationIssue{field, key, fmt.Sprintf(format, args...)})
}

func (v *ValidationResult) warnf(field, key, format string, args ...any) {
	v.Warnings = append(v.Warnings, ValidationIssue{field, key, fmt.Sprintf(format, args...)})
}

// ValidateConfig checks value ranges and key names.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	v := &ValidationResult{}

	for _, f := range []struct {
		key string
		val float64
	}{
		{"zoom_width", cfg.Zoom.ZoomWidth},
		{"zoom_height", cfg.Zoom.ZoomHeight},
	} {
		if math.IsNaN(f.val) || f.val <= 0 || f.val > 1 {
			v.errorf("zoom", f.key, "must be in (0, 1], got %v", f.val)
		}
	}
	if _, err := zoom.ParseInsetSize(cfg.Zoom.InsetSize); err != nil {
		v.errorf("zoom", "inset_size", "%v", err)
	}
	if _, err := zoom.ParseAnchor(cfg.Zoom.InsetAnchor); err != nil {
		v.errorf("zoom", "inset_anchor", "must be one of %s", strings.Join(ValidAnchors, ", "))
	}
	if m := cfg.Zoom.ResizeMargin; math.IsNaN(m) || m <= 0 {
		v.errorf("zoom", "resize_margin", "must be positive, got %v", m)
	} else if m > 0.5 {
		v.warnf("zoom", "resize_margin", "%v makes most of the selection a resize handle", m)
	}

	if !slices.Contains(ValidBorderStyles, cfg.Appearance.BorderStyle) {
		v.warnf("appearance", "border_style", "unknown style %q, using rounded", cfg.Appearance.BorderStyle)
	}

	seen := make(map[string]string)
	for action, keys := range cfg.Keybindings.Plot {
		if !slices.Contains(Actions, action) {
			v.warnf("keybindings.plot", action, "unknown action")
			continue
		}
		if len(keys) == 0 {
			v.warnf("keybindings.plot", action, "no keys bound")
		}
		for _, k := range keys {
			k = NormalizeKey(k)
			if k == "" {
				v.errorf("keybindings.plot", action, "empty key")
				continue
			}
			if other, ok := seen[k]; ok && other != action {
				v.errorf("keybindings.plot", action, "key %q is also bound to %s", k, other)
				continue
			}
			seen[k] = action
		}
	}
	return v
}
