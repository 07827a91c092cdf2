package theme

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	tint "github.com/lrstanley/bubbletint/v2"
)

func writeTheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCustomThemeFile(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		body        string
		wantID      string
		wantDisplay string
		wantErr     bool
	}{
		{
			name:        "explicit id and display name",
			file:        "plot-dark.json",
			body:        `{"id": "plot-dark", "display_name": "Plot Dark", "dark": true, "fg": "#d4d4d4", "bg": "#1e1e2e", "red": "#f38ba8"}`,
			wantID:      "plot-dark",
			wantDisplay: "Plot Dark",
		},
		{
			name:        "id from file name",
			file:        "My-Scope.json",
			body:        `{"fg": "#ffffff", "bg": "#000000"}`,
			wantID:      "my-scope",
			wantDisplay: "my-scope",
		},
		{
			name:    "invalid json",
			file:    "bad.json",
			body:    "not valid json{{{",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTheme(t, t.TempDir(), tt.file, tt.body)
			got, err := LoadCustomThemeFile(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadCustomThemeFile failed: %v", err)
			}
			if got.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", got.ID, tt.wantID)
			}
			if got.DisplayName != tt.wantDisplay {
				t.Errorf("DisplayName = %q, want %q", got.DisplayName, tt.wantDisplay)
			}
		})
	}
}

func TestFillDefaults(t *testing.T) {
	th := &tint.Tint{Fg: tint.FromHex("#c0c0c0"), Red: tint.FromHex("#ff0000")}
	fillDefaults(th)

	all := []*tint.Color{
		th.Fg, th.Bg, th.Cursor,
		th.Black, th.Red, th.Green, th.Yellow, th.Blue, th.Purple, th.Cyan, th.White,
		th.BrightBlack, th.BrightRed, th.BrightGreen, th.BrightYellow,
		th.BrightBlue, th.BrightPurple, th.BrightCyan, th.BrightWhite,
	}
	for i, c := range all {
		if c == nil {
			t.Errorf("color %d is nil after fillDefaults", i)
		}
	}
	if ColorToString(th.Cursor) != ColorToString(th.Fg) {
		t.Error("Cursor should default to Fg")
	}
	if ColorToString(th.BrightRed) != ColorToString(th.Red) {
		t.Error("BrightRed should default to Red")
	}
	if th.BrightRed == th.Red {
		t.Error("derived colors must not alias their source")
	}
}

func TestCopyColor(t *testing.T) {
	orig := &tint.Color{R: 255, G: 128, B: 0, A: 255}
	dup := copyColor(orig)
	if dup == orig {
		t.Fatal("copyColor returned the same pointer")
	}
	dup.R = 0
	if orig.R != 255 {
		t.Error("modifying the copy changed the original")
	}
	if copyColor(nil) != nil {
		t.Error("copyColor(nil) should be nil")
	}
}

func TestLoadCustomThemes(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "termzoom-test-unique.json", `{"fg": "#ffffff", "bg": "#000000"}`)
	writeTheme(t, dir, "broken.json", "{")
	writeTheme(t, dir, "notes.md", "not a theme")
	if err := os.Mkdir(filepath.Join(dir, "nested.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	tint.NewDefaultRegistry()
	loaded, err := LoadCustomThemes(dir)
	if err != nil {
		t.Fatalf("LoadCustomThemes failed: %v", err)
	}
	if !slices.Equal(loaded, []string{"termzoom-test-unique"}) {
		t.Fatalf("loaded = %v", loaded)
	}
	if !slices.Contains(tint.TintIDs(), "termzoom-test-unique") {
		t.Error("custom theme missing from registry")
	}
}

func TestLoadCustomThemesMissingDir(t *testing.T) {
	if _, err := LoadCustomThemes(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestRolesWithoutTheme(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := Initialize(""); err != nil {
		t.Fatal(err)
	}
	if IsEnabled() || Current() != nil {
		t.Fatal("empty theme name should disable theming")
	}
	if got := ColorToString(SelectionEdge()); got != "#ff3030" {
		t.Errorf("SelectionEdge = %s, want #ff3030", got)
	}
	if len(SeriesPalette()) == 0 {
		t.Error("palette is empty")
	}
	if ColorToString(StatusMode("dragging")) == ColorToString(StatusMode("idle")) {
		t.Error("dragging and idle badges should differ")
	}
}

func TestRolesFollowTheme(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := Initialize("no-such-theme"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = Initialize("") })

	cur := Current()
	if cur == nil {
		t.Fatal("theming should be enabled")
	}
	if got, want := ColorToString(SelectionEdge()), ColorToString(cur.BrightRed); got != want {
		t.Errorf("SelectionEdge = %s, want theme bright red %s", got, want)
	}
	if got, want := ColorToString(InsetBorder()), ColorToString(cur.BrightCyan); got != want {
		t.Errorf("InsetBorder = %s, want %s", got, want)
	}
}

func TestColorToString(t *testing.T) {
	if got := ColorToString(nil); got != "#000000" {
		t.Errorf("nil = %s", got)
	}
	if got := ColorToString(tint.FromHex("#12ab34")); got != "#12ab34" {
		t.Errorf("got %s", got)
	}
}
