package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/termzoom/internal/app"
	"github.com/Gaurav-Gosain/termzoom/internal/config"
	"github.com/Gaurav-Gosain/termzoom/internal/input"
	"github.com/Gaurav-Gosain/termzoom/internal/series"
	"github.com/Gaurav-Gosain/termzoom/internal/theme"
	"github.com/Gaurav-Gosain/termzoom/internal/zoom"
	"github.com/charmbracelet/colorprofile"
	"golang.org/x/term"
)

var errNoTTY = errors.New("termzoom needs an interactive terminal")

// loadUserConfig loads the user config, falling back to the defaults with a
// warning on stderr when it cannot be read or fails validation.
func loadUserConfig(stderr io.Writer) *config.UserConfig {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: failed to load config, using defaults: %v\n", err)
		config.Logger().Warn("failed to load config, using defaults", "err", err)
		return config.DefaultConfig()
	}
	return userConfig
}

// loadSettings reads .env, the user config and the flags into the runtime
// settings and returns the user config.
func loadSettings() *config.UserConfig {
	config.LoadEnv()

	userConfig := loadUserConfig(os.Stderr)

	flags := config.Overrides{
		ASCIIOnly:   asciiOnly,
		BorderStyle: borderStyle,
		ThemeName:   themeName,
		InsetSize:   insetSize,
		InsetAnchor: insetAnchor,
		ZoomWidth:   zoomWidth,
		ZoomHeight:  zoomHeight,
		NoGrid:      noGrid,
		NoLegend:    noLegend,
	}
	config.ApplyOverrides(flags.Merge(config.EnvOverrides()), userConfig)
	return userConfig
}

// zoomOptions builds the controller options from the runtime settings.
func zoomOptions() ([]zoom.Option, error) {
	anchor, err := zoom.ParseAnchor(config.InsetAnchor)
	if err != nil {
		return nil, err
	}
	return []zoom.Option{
		zoom.WithZoomWidth(config.ZoomWidth),
		zoom.WithZoomHeight(config.ZoomHeight),
		zoom.WithInsetSize(config.InsetSize),
		zoom.WithAnchor(anchor),
		zoom.WithResizeMargin(config.ResizeMargin),
		zoom.WithOverlayStyle(zoom.OverlayStyle{
			EdgeColor: theme.SelectionEdge(),
			LineWidth: 1.5,
		}),
	}, nil
}

func loadSeries(path string) ([]zoom.Series, string, error) {
	if path == "" {
		return series.Demo(), series.DemoTitle, nil
	}
	s, err := series.Load(path)
	if err != nil {
		return nil, "", err
	}
	return s, path, nil
}

// filterMouseMotion drops pointer motion while nothing is being dragged
// and logs the other events at debug level.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		config.Logger().Debug("key", "key", msg.String())
	case tea.MouseClickMsg, tea.MouseReleaseMsg:
		config.Logger().Debug("mouse", "msg", msg)
	}
	return input.FilterMouseMotion(model, msg)
}

func runLocal(path string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTTY
	}

	logPath, closeLog, err := config.SetupLogging(debugMode || config.EnvDebugEnabled())
	if err != nil {
		return err
	}
	defer closeLog()
	if logPath != "" {
		fmt.Println("Debug log:", logPath)
	}

	userConfig := loadSettings()

	profile := colorprofile.Detect(os.Stdout, os.Environ())
	if profile == colorprofile.Ascii || profile == colorprofile.NoTTY {
		config.UseASCIIOnly = true
	}
	config.Logger().Debug("terminal", "profile", profile.String(), "ascii", config.UseASCIIOnly)

	data, title, err := loadSeries(path)
	if err != nil {
		return err
	}
	opts, err := zoomOptions()
	if err != nil {
		return err
	}

	app.SetInputHandler(input.HandleInput)

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	viewer, err := app.NewViewer(app.Options{
		Series:          data,
		Title:           title,
		ZoomOptions:     opts,
		KeybindRegistry: config.NewKeybindRegistry(userConfig),
		Logger:          config.Logger(),
		Width:           width,
		Height:          height,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		viewer,
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	finalModel, err := p.Run()
	signal.Stop(sigChan)

	if v, ok := finalModel.(*app.Viewer); ok {
		v.Cleanup()
	}

	if err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}
