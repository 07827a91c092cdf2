package config

import (
	"slices"
	"strings"
)

// Plot actions that can be bound to keys.
const (
	ActionQuit         = "quit"
	ActionReset        = "reset_selection"
	ActionToggleHelp   = "toggle_help"
	ActionToggleGrid   = "toggle_grid"
	ActionToggleLegend = "toggle_legend"
)

// Actions lists every bindable action in help order.
var Actions = []string{
	ActionReset,
	ActionToggleGrid,
	ActionToggleLegend,
	ActionToggleHelp,
	ActionQuit,
}

var actionDescriptions = map[string]string{
	ActionQuit:         "Quit",
	ActionReset:        "Reset selection",
	ActionToggleHelp:   "Toggle help",
	ActionToggleGrid:   "Toggle grid",
	ActionToggleLegend: "Toggle legend",
}

// Keybinding is one row of the help listing.
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection groups related bindings.
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// NormalizeKey lowercases modifiers and trims whitespace so "Ctrl+C" and
// "ctrl+c" match. Single printable keys keep their case.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	parts := strings.Split(key, "+")
	if len(parts) == 1 {
		if len([]rune(key)) == 1 {
			return key
		}
		return strings.ToLower(key)
	}
	for i := range parts[:len(parts)-1] {
		parts[i] = strings.ToLower(strings.TrimSpace(parts[i]))
	}
	last := strings.TrimSpace(parts[len(parts)-1])
	if len([]rune(last)) > 1 {
		last = strings.ToLower(last)
	}
	parts[len(parts)-1] = last
	return strings.Join(parts, "+")
}

// KeybindRegistry resolves pressed keys to actions.
type KeybindRegistry struct {
	keyToAction  map[string]string
	actionToKeys map[string][]string
}

// NewKeybindRegistry builds a registry from cfg, falling back to the
// defaults when cfg is nil.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &KeybindRegistry{
		keyToAction:  make(map[string]string),
		actionToKeys: make(map[string][]string),
	}
	for _, action := range Actions {
		for _, k := range cfg.Keybindings.Plot[action] {
			k = NormalizeKey(k)
			if k == "" {
				continue
			}
			if _, taken := r.keyToAction[k]; taken {
				continue
			}
			r.keyToAction[k] = action
			r.actionToKeys[action] = append(r.actionToKeys[action], k)
		}
	}
	return r
}

// GetAction returns the action bound to key, or "".
func (r *KeybindRegistry) GetAction(key string) string {
	return r.keyToAction[NormalizeKey(key)]
}

// GetKeys returns the keys bound to action.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return slices.Clone(r.actionToKeys[action])
}

// GetKeysForDisplay joins the keys for action, e.g. "q, ctrl+c".
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	return strings.Join(r.actionToKeys[action], ", ")
}

// GetKeybindings returns the help sections for registry, or for the default
// bindings when registry is nil.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(nil)
	}
	keys := KeybindingSection{Title: "KEYS"}
	for _, action := range Actions {
		if k := registry.GetKeysForDisplay(action); k != "" {
			keys.Bindings = append(keys.Bindings, Keybinding{k, actionDescriptions[action]})
		}
	}
	return []KeybindingSection{keys, mouseSection()}
}

func handleGlyph() string {
	if UseASCIIOnly {
		return "#"
	}
	return "◢"
}

func mouseSection() KeybindingSection {
	return KeybindingSection{
		Title: "MOUSE",
		Bindings: []Keybinding{
			{"Drag inside", "Move selection"},
			{"Drag " + handleGlyph() + " corner", "Resize selection"},
		},
	}
}
