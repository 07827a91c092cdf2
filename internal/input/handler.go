// Package input routes key and mouse messages to the termzoom viewer.
package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/termzoom/internal/app"
)

// HandleInput is the input coordinator registered with app.SetInputHandler.
func HandleInput(msg tea.Msg, v *app.Viewer) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, v)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, v)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, v)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, v)
	}
	return v, nil
}

// FilterMouseMotion drops pointer motion unless a drag or resize is in
// progress. It is installed with tea.WithFilter.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	v, ok := model.(*app.Viewer)
	if !ok || v.Interacting() {
		return msg
	}
	return nil
}
