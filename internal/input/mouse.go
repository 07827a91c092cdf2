package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/termzoom/internal/app"
	"github.com/Gaurav-Gosain/termzoom/internal/zoom"
)

// Mouse events are forwarded to the figure as-is; the zoom controller
// subscribed to it decides what a press, motion or release means.

func handleMouseClick(msg tea.MouseClickMsg, v *app.Viewer) (tea.Model, tea.Cmd) {
	m := msg.Mouse()
	if v.ShowHelp {
		v.ShowHelp = false
		v.Invalidate()
		return v, nil
	}
	v.Figure.Dispatch(zoom.EventPress, m.X, m.Y, int(m.Button))
	return v, nil
}

func handleMouseMotion(msg tea.MouseMotionMsg, v *app.Viewer) (tea.Model, tea.Cmd) {
	m := msg.Mouse()
	v.Figure.Dispatch(zoom.EventMotion, m.X, m.Y, int(m.Button))
	return v, nil
}

func handleMouseRelease(msg tea.MouseReleaseMsg, v *app.Viewer) (tea.Model, tea.Cmd) {
	m := msg.Mouse()
	v.Figure.Dispatch(zoom.EventRelease, m.X, m.Y, int(m.Button))
	return v, nil
}
