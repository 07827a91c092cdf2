package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/termzoom/internal/config"
	"github.com/Gaurav-Gosain/termzoom/internal/plot"
)

// Z order of the canvas layers. The figure uses zFigure and up, one level
// per inset.
const (
	zFigure    = 0
	zStatusBar = 50
	zHelp      = 100
)

// RenderOptions returns the figure options for the current toggles.
func (v *Viewer) RenderOptions() plot.RenderOptions {
	return plot.RenderOptions{
		ASCII:      v.ASCII,
		ShowGrid:   v.ShowGrid,
		ShowLegend: v.ShowLegend,
		Border:     config.GetBorderForStyle(),
	}
}

// GetCanvas composes the figure, the status bar and any overlay.
func (v *Viewer) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(v.Width, v.Height)

	layers := v.Figure.Layers(v.RenderOptions(), zFigure)
	layers = append(layers, lipgloss.NewLayer(v.renderStatusBar()).
		X(0).Y(max(v.Height-config.StatusBarHeight, 0)).Z(zStatusBar).ID("status"))
	if v.ShowHelp {
		layers = append(layers, v.renderHelp())
	}

	for _, l := range layers {
		canvas.Compose(l)
	}
	return canvas
}

// View implements tea.Model. The frame is cached until the figure asks for
// a repaint.
func (v *Viewer) View() tea.View {
	var view tea.View

	if v.Figure.TakeRedraw() || v.cachedView == "" {
		v.cachedView = lipgloss.Sprint(v.GetCanvas().Render())
	}
	view.SetContent(v.cachedView)

	view.AltScreen = true
	// Cell motion reports movement only while a button is held, which is
	// all a drag or resize needs.
	view.MouseMode = tea.MouseModeCellMotion
	return view
}
