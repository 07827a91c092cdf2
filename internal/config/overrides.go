package config

import (
	"os"
	"strconv"

	"github.com/Gaurav-Gosain/termzoom/internal/theme"
	"github.com/joho/godotenv"
)

// Environment variables read from the process or a .env file.
const (
	EnvTheme     = "TERMZOOM_THEME"
	EnvInsetSize = "TERMZOOM_INSET_SIZE"
	EnvDebug     = "TERMZOOM_DEBUG"
)

// Overrides contains CLI flag values layered over the user config.
// Zero values mean the flag was not set.
type Overrides struct {
	ASCIIOnly   bool
	BorderStyle string
	ThemeName   string
	InsetSize   string
	InsetAnchor string
	ZoomWidth   float64
	ZoomHeight  float64
	NoGrid      bool
	NoLegend    bool
}

// LoadEnv loads a .env file from the working directory if present. Variables
// already set in the environment win.
func LoadEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			Logger().Warn("failed to load env file", "path", p, "err", err)
		}
	}
}

// EnvOverrides returns the overrides carried by TERMZOOM_* variables.
func EnvOverrides() Overrides {
	return Overrides{
		ThemeName: os.Getenv(EnvTheme),
		InsetSize: os.Getenv(EnvInsetSize),
	}
}

// EnvDebugEnabled reports whether TERMZOOM_DEBUG is set to a true value.
func EnvDebugEnabled() bool {
	on, _ := strconv.ParseBool(os.Getenv(EnvDebug))
	return on
}

// Merge layers o over base: any field set in o wins.
func (o Overrides) Merge(base Overrides) Overrides {
	out := base
	out.ASCIIOnly = base.ASCIIOnly || o.ASCIIOnly
	out.NoGrid = base.NoGrid || o.NoGrid
	out.NoLegend = base.NoLegend || o.NoLegend
	if o.BorderStyle != "" {
		out.BorderStyle = o.BorderStyle
	}
	if o.ThemeName != "" {
		out.ThemeName = o.ThemeName
	}
	if o.InsetSize != "" {
		out.InsetSize = o.InsetSize
	}
	if o.InsetAnchor != "" {
		out.InsetAnchor = o.InsetAnchor
	}
	if o.ZoomWidth != 0 {
		out.ZoomWidth = o.ZoomWidth
	}
	if o.ZoomHeight != 0 {
		out.ZoomHeight = o.ZoomHeight
	}
	return out
}

// ApplyOverrides writes the runtime settings from overrides, falling back
// to userConfig, and initializes the theme. userConfig may be nil.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	if userConfig == nil {
		userConfig = DefaultConfig()
	}
	z, a := userConfig.Zoom, userConfig.Appearance

	UseASCIIOnly = overrides.ASCIIOnly || a.ASCIIOnly
	ShowGrid = !overrides.NoGrid && (a.ShowGrid == nil || *a.ShowGrid)
	ShowLegend = !overrides.NoLegend && (a.ShowLegend == nil || *a.ShowLegend)

	BorderStyle = pickString(overrides.BorderStyle, a.BorderStyle, "rounded")
	InsetSize = pickString(overrides.InsetSize, z.InsetSize, DefaultInsetSize)
	InsetAnchor = pickString(overrides.InsetAnchor, z.InsetAnchor, DefaultInsetAnchor)
	ZoomWidth = pickFloat(overrides.ZoomWidth, z.ZoomWidth, DefaultZoomWidth)
	ZoomHeight = pickFloat(overrides.ZoomHeight, z.ZoomHeight, DefaultZoomHeight)
	ResizeMargin = pickFloat(0, z.ResizeMargin, DefaultResizeMargin)

	themeName := pickString(overrides.ThemeName, a.Theme, "")
	if err := theme.Initialize(themeName); err != nil {
		Logger().Warn("failed to load theme", "theme", themeName, "err", err)
	}
}

func pickString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func pickFloat(vals ...float64) float64 {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}
