package termzoom

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/termzoom/internal/config"
)

var ramp = []Series{{Label: "ramp", X: []float64{0, 100}, Y: []float64{0, 50}}}

func TestNew(t *testing.T) {
	m, err := New(ramp,
		WithUserConfig(config.DefaultConfig()),
		WithTitle("ramp"),
		WithSize(100, 30),
		WithAnchor(LowerLeft),
		WithInsetSize("12"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Cleanup()

	if m.Width != 100 || m.Height != 30 {
		t.Errorf("size = %dx%d", m.Width, m.Height)
	}
	insets := m.Figure.Axes().Insets()
	if len(insets) != 1 {
		t.Fatalf("insets = %d, want 1", len(insets))
	}
	if x, _, w, _ := insets[0].Bounds(); w != 12 || x != 10 {
		t.Errorf("inset x=%d w=%d, want x=10 w=12", x, w)
	}
}

func TestNewRejectsBadZoomSize(t *testing.T) {
	if _, err := New(ramp, WithUserConfig(config.DefaultConfig()), WithZoomSize(0, 0.5)); err == nil {
		t.Fatal("expected error for zero zoom width")
	}
}

func TestZoomWindowOnFigure(t *testing.T) {
	f := NewFigure(80, 24)
	defer f.Close()
	ax := f.Axes()
	ax.Plot(ramp[0])

	c, err := ZoomWindow(ax)
	if err != nil {
		t.Fatalf("ZoomWindow: %v", err)
	}
	if f.Subscriptions() != 3 {
		t.Errorf("subscriptions = %d, want 3", f.Subscriptions())
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if f.Subscriptions() != 0 || len(ax.Insets()) != 0 {
		t.Errorf("Close left subs=%d insets=%d", f.Subscriptions(), len(ax.Insets()))
	}
}

func TestFilterMouseMotion(t *testing.T) {
	m, err := New(ramp, WithUserConfig(config.DefaultConfig()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer m.Cleanup()

	if FilterMouseMotion(m, tea.MouseMotionMsg{X: 1, Y: 1}) != nil {
		t.Error("idle motion passed through")
	}
	if len(ProgramOptions()) == 0 {
		t.Error("no program options")
	}
}
