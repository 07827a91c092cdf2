// Package main implements termzoom, a terminal plot with a draggable zoom
// selection and a live preview inset.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode    bool
	asciiOnly    bool
	themeName    string
	listThemes   bool
	previewTheme string
	borderStyle  string
	insetSize    string
	insetAnchor  string
	zoomWidth    float64
	zoomHeight   float64
	noGrid       bool
	noLegend     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "termzoom [file]",
		Short: "Terminal plot with a draggable zoom window",
		Long: `termzoom - zoom into a plot from the terminal

Plots the series of a CSV or JSON file (or demo data when no file is given)
with a selection rectangle. Drag the rectangle to move it and drag its
lower-right corner to resize it; the inset in the corner shows the selected
region at full resolution.`,
		Example: `  # Plot the demo waveforms
  termzoom

  # Plot a CSV file (first column x, other columns y)
  termzoom data.csv

  # Plot a JSON file with the preview in the lower left
  termzoom series.json --inset-anchor lower-left

  # Run with a specific theme
  termzoom --theme dracula

  # Interactively select theme with fzf and preview
  termzoom --theme $(termzoom --list-themes | fzf --preview 'termzoom --preview-theme {}')

  # Edit configuration
  termzoom config edit`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if previewTheme != "" {
				return previewThemeColors(previewTheme)
			}
			if listThemes {
				return printThemes()
			}
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runLocal(path)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write debug logs to the state directory")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Draw with ASCII instead of braille and box characters")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty for standard terminal colors")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().StringVar(&previewTheme, "preview-theme", "", "Preview a theme's 16 ANSI colors")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Border style: rounded, normal, thick, double, hidden, block, ascii (default: from config or rounded)")
	rootCmd.PersistentFlags().StringVar(&insetSize, "inset-size", "", `Preview size as a percentage ("30%") or a cell count (default: from config or 30%)`)
	rootCmd.PersistentFlags().StringVar(&insetAnchor, "inset-anchor", "", "Preview corner: upper-right, upper-left, lower-left, lower-right")
	rootCmd.PersistentFlags().Float64Var(&zoomWidth, "zoom-width", 0, "Initial selection width as a fraction of the x range (0, 1]")
	rootCmd.PersistentFlags().Float64Var(&zoomHeight, "zoom-height", 0, "Initial selection height as a fraction of the y range (0, 1]")
	rootCmd.PersistentFlags().BoolVar(&noGrid, "no-grid", false, "Hide the grid")
	rootCmd.PersistentFlags().BoolVar(&noLegend, "no-legend", false, "Hide the legend")

	var demoStats bool
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Plot two superimposed waveforms",
		Long: `Plot sin(8x) and 0.97*sin(8x+0.1) over [0, 10] with 5000 samples each.

With --stats, print the relative L2 difference of the two waveforms instead
of starting the viewer.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if demoStats {
				return printDemoStats()
			}
			return runLocal("")
		},
	}
	demoCmd.Flags().BoolVar(&demoStats, "stats", false, "Print waveform statistics and exit")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage termzoom configuration",
		Long:  `Manage the termzoom configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the termzoom configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	var resetYes bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the termzoom configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return resetConfigToDefaults(cmd.InOrStdin(), resetYes)
		},
	}
	configResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings()
		},
	}
	keybindsCmd.AddCommand(keybindsListCmd)

	rootCmd.AddCommand(demoCmd, configCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
