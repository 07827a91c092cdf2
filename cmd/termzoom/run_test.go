package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gaurav-Gosain/termzoom/internal/config"
	"github.com/Gaurav-Gosain/termzoom/internal/series"
	"github.com/adrg/xdg"
)

func TestZoomOptions(t *testing.T) {
	saved := config.InsetAnchor
	t.Cleanup(func() { config.InsetAnchor = saved })

	config.InsetAnchor = "lower-left"
	opts, err := zoomOptions()
	if err != nil {
		t.Fatalf("zoomOptions: %v", err)
	}
	if len(opts) == 0 {
		t.Fatal("no options")
	}

	config.InsetAnchor = "middle"
	if _, err := zoomOptions(); err == nil {
		t.Fatal("expected error for unknown anchor")
	}
}

func TestLoadSeries(t *testing.T) {
	s, title, err := loadSeries("")
	if err != nil {
		t.Fatalf("loadSeries demo: %v", err)
	}
	if title != series.DemoTitle || len(s) != 2 {
		t.Errorf("demo: title=%q series=%d", title, len(s))
	}

	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("x,a\n0,1\n1,2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, title, err = loadSeries(path)
	if err != nil {
		t.Fatalf("loadSeries csv: %v", err)
	}
	if title != path || len(s) != 1 || s[0].Label != "a" {
		t.Errorf("csv: title=%q series=%+v", title, s)
	}

	if _, _, err := loadSeries(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResetConfigAborts(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := resetConfigToDefaults(strings.NewReader("n\n"), false); err != nil {
		t.Fatalf("reset: %v", err)
	}
}

func TestFilterPassesKeys(t *testing.T) {
	if filterMouseMotion(nil, "key") != "key" {
		t.Error("non-mouse message dropped")
	}
}

func TestLoadUserConfigWarnsOnStderr(t *testing.T) {
	t.Cleanup(xdg.Reload)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()

	path := filepath.Join(dir, "termzoom", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[zoom]\nzoom_width = 1.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	cfg := loadUserConfig(&stderr)
	if cfg == nil || cfg.Zoom.ZoomWidth != config.DefaultConfig().Zoom.ZoomWidth {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if !strings.Contains(stderr.String(), "using defaults") {
		t.Errorf("stderr = %q, want a fallback warning", stderr.String())
	}
}
