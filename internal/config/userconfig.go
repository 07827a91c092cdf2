package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const configRelPath = "termzoom/config.toml"

// UserConfig is the on-disk configuration.
type UserConfig struct {
	Zoom        ZoomConfig        `toml:"zoom"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// ZoomConfig holds the selection and preview settings.
type ZoomConfig struct {
	ZoomWidth    float64 `toml:"zoom_width"`    // Selection width as a fraction of the x range, (0, 1]
	ZoomHeight   float64 `toml:"zoom_height"`   // Selection height as a fraction of the y range, (0, 1]
	InsetSize    string  `toml:"inset_size"`    // Preview size: "30%" of the plot or "24" cells
	InsetAnchor  string  `toml:"inset_anchor"`  // upper-right, upper-left, lower-left, lower-right
	ResizeMargin float64 `toml:"resize_margin"` // Resize hit tolerance as a fraction of the rectangle size
}

// AppearanceConfig holds rendering settings.
type AppearanceConfig struct {
	Theme       string `toml:"theme"`        // Color theme name (e.g., dracula, nord, my-custom-theme)
	BorderStyle string `toml:"border_style"` // Preview border: rounded, normal, thick, double, hidden, block, ascii
	ShowGrid    *bool  `toml:"show_grid"`    // Draw grid dots (default: true)
	ShowLegend  *bool  `toml:"show_legend"`  // Draw series labels (default: true)
	ASCIIOnly   bool   `toml:"ascii_only"`   // Use ASCII instead of braille and box glyphs
}

// KeybindingsConfig maps actions to keys.
type KeybindingsConfig struct {
	Plot map[string][]string `toml:"plot"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *UserConfig {
	on := true
	legend := true
	return &UserConfig{
		Zoom: ZoomConfig{
			ZoomWidth:    DefaultZoomWidth,
			ZoomHeight:   DefaultZoomHeight,
			InsetSize:    DefaultInsetSize,
			InsetAnchor:  DefaultInsetAnchor,
			ResizeMargin: DefaultResizeMargin,
		},
		Appearance: AppearanceConfig{
			BorderStyle: "rounded",
			ShowGrid:    &on,
			ShowLegend:  &legend,
		},
		Keybindings: KeybindingsConfig{
			Plot: map[string][]string{
				ActionQuit:         {"q", "ctrl+c"},
				ActionReset:        {"r"},
				ActionToggleHelp:   {"?"},
				ActionToggleGrid:   {"g"},
				ActionToggleLegend: {"l"},
			},
		},
	}
}

// LoadUserConfig reads the config file from the XDG config directory,
// writing a commented default file first if none exists.
func LoadUserConfig() (*UserConfig, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		path, err = xdg.ConfigFile(configRelPath)
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		return writeDefaultConfig(path)
	}
	return LoadUserConfigFrom(path)
}

// LoadUserConfigFrom reads, fills and validates the config at path.
func LoadUserConfigFrom(path string) (*UserConfig, error) {
	// #nosec G304 - path is the user's own config file
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return writeDefaultConfig(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaults := DefaultConfig()
	fillMissingZoom(&cfg, defaults)
	fillMissingAppearance(&cfg, defaults)
	fillMissingKeybinds(&cfg, defaults)

	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		for _, e := range validation.Errors {
			Logger().Error("config error", "section", e.Field, "key", e.Key, "msg", e.Message)
		}
		return nil, fmt.Errorf("configuration has %d error(s): %w", len(validation.Errors), validation)
	}
	for _, w := range validation.Warnings {
		Logger().Warn("config warning", "section", w.Field, "key", w.Key, "msg", w.Message)
	}
	return &cfg, nil
}

// writeDefaultConfig writes the defaults to path with a comment header.
func writeDefaultConfig(path string) (*UserConfig, error) {
	cfg := DefaultConfig()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# termzoom configuration\n")
	sb.WriteString("#\n")
	sb.WriteString("# Location: " + path + "\n")
	sb.WriteString("# For keybindings, run: termzoom keybinds list\n")
	sb.WriteString("#\n")
	sb.WriteString("# [zoom]\n")
	sb.WriteString("#   zoom_width, zoom_height: initial selection size as a fraction of the\n")
	sb.WriteString("#     visible range, in (0, 1]. Default: 0.15\n")
	sb.WriteString("#   inset_size: preview size, \"30%\" of the plot area or \"24\" cells. Default: 30%\n")
	sb.WriteString("#   inset_anchor: upper-right, upper-left, lower-left, lower-right\n")
	sb.WriteString("#   resize_margin: corner grab tolerance as a fraction of the selection. Default: 0.03\n")
	sb.WriteString("#\n")
	sb.WriteString("# [appearance]\n")
	sb.WriteString("#   theme: bubbletint theme id; empty uses terminal colors.\n")
	sb.WriteString("#     Custom themes: $XDG_CONFIG_HOME/termzoom/themes/*.json\n")
	sb.WriteString("#   border_style: rounded, normal, thick, double, hidden, block, ascii\n\n")
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}
	return cfg, nil
}

// ResetConfig overwrites the config file with the defaults.
func ResetConfig() (string, error) {
	path, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	if _, err := writeDefaultConfig(path); err != nil {
		return "", err
	}
	return path, nil
}

func fillMissingZoom(cfg, defaults *UserConfig) {
	z := &cfg.Zoom
	if z.ZoomWidth == 0 {
		z.ZoomWidth = defaults.Zoom.ZoomWidth
	}
	if z.ZoomHeight == 0 {
		z.ZoomHeight = defaults.Zoom.ZoomHeight
	}
	if z.InsetSize == "" {
		z.InsetSize = defaults.Zoom.InsetSize
	}
	if z.InsetAnchor == "" {
		z.InsetAnchor = defaults.Zoom.InsetAnchor
	}
	if z.ResizeMargin == 0 {
		z.ResizeMargin = defaults.Zoom.ResizeMargin
	}
}

func fillMissingAppearance(cfg, defaults *UserConfig) {
	a := &cfg.Appearance
	if a.BorderStyle == "" {
		a.BorderStyle = defaults.Appearance.BorderStyle
	}
	if a.ShowGrid == nil {
		a.ShowGrid = defaults.Appearance.ShowGrid
	}
	if a.ShowLegend == nil {
		a.ShowLegend = defaults.Appearance.ShowLegend
	}
}

func fillMissingKeybinds(cfg, defaults *UserConfig) {
	if cfg.Keybindings.Plot == nil {
		cfg.Keybindings.Plot = make(map[string][]string)
	}
	for k, v := range defaults.Keybindings.Plot {
		if _, ok := cfg.Keybindings.Plot[k]; !ok {
			cfg.Keybindings.Plot[k] = v
		}
	}
}

// GetConfigPath returns the config file path, existing or not.
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return xdg.ConfigFile(configRelPath)
	}
	return path, nil
}
