package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/termzoom/internal/config"
	"github.com/Gaurav-Gosain/termzoom/internal/series"
	"github.com/Gaurav-Gosain/termzoom/internal/theme"
)

var ansiNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright black", "bright red", "bright green", "bright yellow",
	"bright blue", "bright magenta", "bright cyan", "bright white",
}

func printThemes() error {
	if err := theme.Initialize("default"); err != nil {
		return fmt.Errorf("failed to initialize themes: %w", err)
	}
	for _, id := range theme.IDs() {
		fmt.Println(id)
	}
	return nil
}

func previewThemeColors(name string) error {
	if err := theme.Initialize("default"); err != nil {
		return fmt.Errorf("failed to initialize themes: %w", err)
	}
	if !slices.Contains(theme.IDs(), name) {
		return fmt.Errorf("unknown theme %q (see --list-themes)", name)
	}
	if err := theme.Initialize(name); err != nil {
		return fmt.Errorf("failed to load theme %q: %w", name, err)
	}

	lipgloss.Println(lipgloss.NewStyle().Bold(true).Render(name))
	for i, c := range theme.ANSIPalette() {
		swatch := lipgloss.NewStyle().Background(c).Render("    ")
		lipgloss.Printf("%s %-15s %s\n", swatch, ansiNames[i], theme.ColorToString(c))
	}

	sample := []struct {
		label string
		style lipgloss.Style
	}{
		{"selection", lipgloss.NewStyle().Foreground(theme.SelectionEdge())},
		{"inset", lipgloss.NewStyle().Foreground(theme.InsetBorder())},
		{"axes", lipgloss.NewStyle().Foreground(theme.AxisColor())},
		{"grid", lipgloss.NewStyle().Foreground(theme.GridColor())},
	}
	fmt.Println()
	for _, s := range sample {
		lipgloss.Println(s.style.Render("━━━━ " + s.label))
	}
	return nil
}

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func findEditor() (string, error) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if e := os.Getenv(env); e != "" {
			return e, nil
		}
	}
	for _, e := range []string{"vim", "vi", "nano", "emacs"} {
		if p, err := exec.LookPath(e); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no editor found: set $EDITOR")
}

func editConfigFile() error {
	// Creates the file with defaults when missing.
	if _, err := config.LoadUserConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	editor, err := findEditor()
	if err != nil {
		return err
	}

	fields := strings.Fields(editor)
	// #nosec G204 - the editor comes from the user's environment
	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	cfg, err := config.LoadUserConfig()
	if err != nil {
		return fmt.Errorf("configuration has errors: %w", err)
	}
	if res := config.ValidateConfig(cfg); res.HasWarnings() {
		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
	}
	return nil
}

func resetConfigToDefaults(in io.Reader, yes bool) error {
	if !yes {
		fmt.Print("This will overwrite your configuration. Continue? [y/N] ")
		answer, _ := bufio.NewReader(in).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}
	path, err := config.ResetConfig()
	if err != nil {
		return err
	}
	fmt.Println("Configuration reset:", path)
	return nil
}

func listKeybindings() error {
	cfg, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cfg = config.DefaultConfig()
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	key := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Width(20)

	for i, section := range config.GetKeybindings(config.NewKeybindRegistry(cfg)) {
		if i > 0 {
			fmt.Println()
		}
		lipgloss.Println(title.Render(section.Title))
		for _, b := range section.Bindings {
			lipgloss.Println("  " + key.Render(b.Key) + b.Description)
		}
	}
	return nil
}

func printDemoStats() error {
	s := series.Demo()
	l2, err := series.RelativeL2(s[0].Y, s[1].Y)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", series.DemoTitle)
	for _, d := range s {
		fmt.Printf("  %-10s %d samples over [%g, %g]\n", d.Label, len(d.Y), d.X[0], d.X[len(d.X)-1])
	}
	fmt.Printf("  relative L2 difference: %.6f\n", l2)
	return nil
}
