package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/termzoom/internal/app"
	"github.com/Gaurav-Gosain/termzoom/internal/config"
)

// HandleKeyPress resolves a key through the viewer's keybind registry.
func HandleKeyPress(msg tea.KeyPressMsg, v *app.Viewer) (tea.Model, tea.Cmd) {
	key := msg.String()

	if v.ShowHelp && key == "esc" {
		v.ShowHelp = false
		v.Invalidate()
		return v, nil
	}

	action := v.KeybindRegistry.GetAction(key)
	if action == "" {
		return v, nil
	}
	config.Logger().Debug("key action", "key", key, "action", action)
	return GetDispatcher().Dispatch(action, msg, v)
}
