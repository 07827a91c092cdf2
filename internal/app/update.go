package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// InputHandler handles key and mouse messages. It lives in the input
// package, which imports app, so main registers it at startup.
type InputHandler func(msg tea.Msg, v *Viewer) (tea.Model, tea.Cmd)

var inputHandler InputHandler

// SetInputHandler registers the input handler. It must be called before the
// program starts.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// ClearNotificationMsg expires the status line notification.
type ClearNotificationMsg struct{}

// ClearNotificationCmd fires ClearNotificationMsg after d.
func ClearNotificationCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return ClearNotificationMsg{} })
}

// Init implements tea.Model.
func (v *Viewer) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.Resize(msg.Width, msg.Height)
		return v, nil

	case ClearNotificationMsg:
		if v.Notification != nil && !time.Now().Before(v.Notification.Until) {
			v.Notification = nil
			v.Figure.RequestRedraw()
		}
		return v, nil
	}

	if inputHandler == nil {
		return v, nil
	}
	hadNote := v.Notification
	model, cmd := inputHandler(msg, v)
	if v.Notification != nil && v.Notification != hadNote {
		cmd = tea.Batch(cmd, ClearNotificationCmd(time.Until(v.Notification.Until)))
	}
	return model, cmd
}
