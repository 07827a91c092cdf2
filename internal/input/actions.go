package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/termzoom/internal/app"
	"github.com/Gaurav-Gosain/termzoom/internal/config"
)

// ActionHandler handles a bound action.
type ActionHandler func(_ tea.KeyPressMsg, v *app.Viewer) (*app.Viewer, tea.Cmd)

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a dispatcher with every action registered.
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

func (d *ActionDispatcher) registerHandlers() {
	d.Register(config.ActionQuit, handleQuit)
	d.Register(config.ActionReset, handleReset)
	d.Register(config.ActionToggleHelp, handleToggleHelp)
	d.Register(config.ActionToggleGrid, handleToggleGrid)
	d.Register(config.ActionToggleLegend, handleToggleLegend)
}

// Register adds an action handler
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action
func (d *ActionDispatcher) Dispatch(action string, msg tea.KeyPressMsg, v *app.Viewer) (*app.Viewer, tea.Cmd) {
	if handler, ok := d.handlers[action]; ok {
		return handler(msg, v)
	}
	return v, nil
}

// HasAction checks if an action is registered
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

func handleQuit(_ tea.KeyPressMsg, v *app.Viewer) (*app.Viewer, tea.Cmd) {
	return v, tea.Quit
}

func handleReset(_ tea.KeyPressMsg, v *app.Viewer) (*app.Viewer, tea.Cmd) {
	if err := v.ResetSelection(); err != nil {
		v.Notify(err.Error(), true)
	}
	return v, nil
}

func handleToggleHelp(_ tea.KeyPressMsg, v *app.Viewer) (*app.Viewer, tea.Cmd) {
	v.ShowHelp = !v.ShowHelp
	v.Invalidate()
	return v, nil
}

func handleToggleGrid(_ tea.KeyPressMsg, v *app.Viewer) (*app.Viewer, tea.Cmd) {
	v.ShowGrid = !v.ShowGrid
	v.Notify(onOff("Grid", v.ShowGrid), false)
	return v, nil
}

func handleToggleLegend(_ tea.KeyPressMsg, v *app.Viewer) (*app.Viewer, tea.Cmd) {
	v.ShowLegend = !v.ShowLegend
	v.Notify(onOff("Legend", v.ShowLegend), false)
	return v, nil
}

func onOff(what string, on bool) string {
	if on {
		return what + " on"
	}
	return what + " off"
}
