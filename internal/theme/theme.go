// Package theme maps the active bubbletint palette onto plot roles: data
// series, axes, grid, selection overlay, preview inset and status bar.
package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize loads the registry, registers custom themes and activates
// themeName. An empty name disables theming; an unknown name falls back to
// the registry default.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if dir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(dir); err != nil {
			log.Warn("error loading custom themes", "err", err)
		}
	}

	if !tint.SetTintID(themeName) {
		log.Warn("unknown theme, using default", "theme", themeName)
		tint.SetTintID("default")
	}
	return nil
}

// IsEnabled reports whether a theme is active.
func IsEnabled() bool { return enabled }

// Current returns the active theme, or nil when theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// IDs lists every registered theme.
func IDs() []string {
	return tint.TintIDs()
}

// pick returns the themed color, or fallback when theming is off.
func pick(fallback string, themed func(t *tint.Tint) color.Color) color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color(fallback)
	}
	if c := themed(t); c != nil {
		return c
	}
	return lipgloss.Color(fallback)
}

// SeriesPalette returns the colors cycled through for series without an
// explicit color.
func SeriesPalette() []color.Color {
	t := Current()
	if t == nil {
		return []color.Color{
			lipgloss.Color("#5c9cff"),
			lipgloss.Color("#ffb000"),
			lipgloss.Color("#00c896"),
			lipgloss.Color("#d075ff"),
			lipgloss.Color("#00cdcd"),
			lipgloss.Color("#cdcd00"),
		}
	}
	return []color.Color{
		t.BrightBlue, t.Yellow, t.BrightGreen, t.BrightPurple, t.Cyan, t.BrightYellow,
	}
}

// SelectionEdge is the default outline of the selection rectangle.
func SelectionEdge() color.Color {
	return pick("#ff3030", func(t *tint.Tint) color.Color { return t.BrightRed })
}

// AxisColor is used for axis lines, tick labels and legend text.
func AxisColor() color.Color {
	return pick("#a0a0a8", func(t *tint.Tint) color.Color { return t.Fg })
}

// GridColor is the faint grid dot color.
func GridColor() color.Color {
	return pick("#404050", func(t *tint.Tint) color.Color { return t.BrightBlack })
}

// InsetBorder frames the zoom preview.
func InsetBorder() color.Color {
	return pick("#AFFFFF", func(t *tint.Tint) color.Color { return t.BrightCyan })
}

// InsetTitle is the preview title color.
func InsetTitle() color.Color {
	return pick("#ffffff", func(t *tint.Tint) color.Color { return t.BrightWhite })
}

// StatusBarBg returns the status line background.
func StatusBarBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

// StatusBarFg returns the status line text color.
func StatusBarFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

// StatusMode returns the badge color for an interaction mode name.
func StatusMode(mode string) color.Color {
	switch mode {
	case "dragging":
		return pick("#5c5cff", func(t *tint.Tint) color.Color { return t.BrightBlue })
	case "resizing":
		return pick("#ffff00", func(t *tint.Tint) color.Color { return t.Yellow })
	default:
		return pick("#00ff00", func(t *tint.Tint) color.Color { return t.BrightGreen })
	}
}

// HelpBorder returns the border color of the help overlay.
func HelpBorder() color.Color {
	return lipgloss.Color("14")
}

// HelpKey returns the color for key badges in the help overlay.
func HelpKey() color.Color {
	return lipgloss.Color("5")
}

// HelpText returns the help overlay text color.
func HelpText() color.Color {
	return lipgloss.Color("7")
}

// Notification returns the color for transient status messages.
func Notification(isError bool) color.Color {
	if isError {
		return pick("#cd0000", func(t *tint.Tint) color.Color { return t.Red })
	}
	return pick("#00cd00", func(t *tint.Tint) color.Color { return t.Green })
}

// ANSIPalette returns the 16 ANSI colors of the active theme, used by the
// theme preview.
func ANSIPalette() [16]color.Color {
	t := Current()
	if t == nil {
		return [16]color.Color{
			lipgloss.Color("#000000"), lipgloss.Color("#cd0000"), lipgloss.Color("#00cd00"), lipgloss.Color("#cdcd00"),
			lipgloss.Color("#0000ee"), lipgloss.Color("#cd00cd"), lipgloss.Color("#00cdcd"), lipgloss.Color("#e5e5e5"),
			lipgloss.Color("#7f7f7f"), lipgloss.Color("#ff0000"), lipgloss.Color("#00ff00"), lipgloss.Color("#ffff00"),
			lipgloss.Color("#5c5cff"), lipgloss.Color("#ff00ff"), lipgloss.Color("#00ffff"), lipgloss.Color("#ffffff"),
		}
	}
	return [16]color.Color{
		t.Black, t.Red, t.Green, t.Yellow, t.Blue, t.Purple, t.Cyan, t.White,
		t.BrightBlack, t.BrightRed, t.BrightGreen, t.BrightYellow,
		t.BrightBlue, t.BrightPurple, t.BrightCyan, t.BrightWhite,
	}
}

// ColorToString formats c as #rrggbb.
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
