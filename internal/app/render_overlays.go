package app

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/termzoom/internal/config"
	"github.com/Gaurav-Gosain/termzoom/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// StatusText is the plain status line: mode and selection bounds.
func (v *Viewer) StatusText() string {
	if v.Zoom == nil {
		return "no selection"
	}
	b := v.Zoom.Rect().Bounds()
	return fmt.Sprintf("x [%s, %s]  y [%s, %s]",
		formatCoord(b.XMin), formatCoord(b.XMax),
		formatCoord(b.YMin), formatCoord(b.YMax))
}

func (v *Viewer) renderStatusBar() string {
	base := lipgloss.NewStyle().
		Background(theme.StatusBarBg()).
		Foreground(theme.StatusBarFg())

	mode := v.Mode().String()
	badge := lipgloss.NewStyle().
		Background(theme.StatusMode(mode)).
		Foreground(lipgloss.Color("0")).
		Bold(true).
		Padding(0, 1).
		Render(strings.ToUpper(mode))

	left := badge + base.Padding(0, 1).Render(v.StatusText())
	if n := v.Notification; n != nil {
		left += base.Foreground(theme.Notification(n.IsError)).Padding(0, 1).Render(n.Message)
	}

	right := ""
	if keys := v.KeybindRegistry.GetKeysForDisplay(config.ActionToggleHelp); keys != "" {
		right = base.Padding(0, 1).Render(keys + " help")
	}

	gap := v.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		tail := "…"
		if config.UseASCIIOnly {
			tail = "~"
		}
		return ansi.Truncate(left, v.Width, tail)
	}
	return left + base.Render(strings.Repeat(" ", gap)) + right
}

// renderHelp returns the keybinding overlay centered on the screen.
func (v *Viewer) renderHelp() *lipgloss.Layer {
	title := lipgloss.NewStyle().Foreground(theme.HelpBorder()).Bold(true)
	key := lipgloss.NewStyle().Foreground(theme.HelpKey()).Bold(true)
	text := lipgloss.NewStyle().Foreground(theme.HelpText())

	sections := config.GetKeybindings(v.KeybindRegistry)
	keyWidth := 0
	for _, s := range sections {
		for _, b := range s.Bindings {
			keyWidth = max(keyWidth, ansi.StringWidth(b.Key))
		}
	}

	var lines []string
	for i, s := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, title.Render(s.Title))
		for _, b := range s.Bindings {
			pad := strings.Repeat(" ", keyWidth-ansi.StringWidth(b.Key))
			lines = append(lines, key.Render(b.Key)+pad+"  "+text.Render(b.Description))
		}
	}

	box := lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(theme.HelpBorder()).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))

	w, h := lipgloss.Width(box), lipgloss.Height(box)
	return lipgloss.NewLayer(box).
		X(max((v.Width-w)/2, 0)).
		Y(max((v.Height-h)/2, 0)).
		Z(zHelp).
		ID("help")
}
