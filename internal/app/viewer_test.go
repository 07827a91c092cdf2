package app

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/termzoom/internal/zoom"
	"github.com/charmbracelet/x/ansi"
)

// frame renders v and returns the cached frame.
func frame(v *Viewer) string {
	v.View()
	return v.cachedView
}

func testViewer(t *testing.T) *Viewer {
	t.Helper()
	v, err := NewViewer(Options{
		Series: []zoom.Series{{Label: "ramp", X: []float64{0, 80}, Y: []float64{0, 20}}},
		Title:  "Ramp",
		Width:  89,
		Height: 24,
	})
	if err != nil {
		t.Fatalf("NewViewer: %v", err)
	}
	t.Cleanup(v.Cleanup)
	return v
}

func TestNewViewerRequiresSeries(t *testing.T) {
	if _, err := NewViewer(Options{Width: 80, Height: 24}); err == nil {
		t.Fatal("expected error for empty series")
	}
}

func TestNewViewerInvalidZoomOptions(t *testing.T) {
	_, err := NewViewer(Options{
		Series:      []zoom.Series{{X: []float64{0, 1}, Y: []float64{0, 1}}},
		ZoomOptions: []zoom.Option{zoom.WithZoomWidth(2)},
		Width:       80,
		Height:      24,
	})
	if err == nil {
		t.Fatal("expected error for zoom width 2")
	}
}

func TestNewViewerMinimumSize(t *testing.T) {
	v, err := NewViewer(Options{
		Series: []zoom.Series{{X: []float64{0, 1}, Y: []float64{0, 1}}},
		Width:  5,
		Height: 3,
	})
	if err != nil {
		t.Fatalf("NewViewer: %v", err)
	}
	defer v.Cleanup()
	w, h := v.Figure.Size()
	if w < 30 || h < 9 {
		t.Errorf("figure size = %dx%d", w, h)
	}
}

func TestViewShowsFigureAndStatus(t *testing.T) {
	v := testViewer(t)
	out := ansi.Strip(frame(v))
	for _, want := range []string{"Ramp", "IDLE", "x [", "◢"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if lines := strings.Count(out, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, want 24", lines)
	}
}

func TestViewCachedUntilRedraw(t *testing.T) {
	v := testViewer(t)
	first := frame(v)
	v.ShowHelp = true
	if got := frame(v); got != first {
		t.Fatal("view repainted without a redraw request")
	}
	v.Invalidate()
	out := ansi.Strip(frame(v))
	if !strings.Contains(out, "KEYS") || !strings.Contains(out, "MOUSE") {
		t.Error("help overlay missing after redraw")
	}
}

func TestStatusTextFollowsSelection(t *testing.T) {
	v := testViewer(t)
	b := v.Zoom.Rect().Bounds()
	want := "x [" + formatCoord(b.XMin) + ", " + formatCoord(b.XMax) + "]"
	if got := v.StatusText(); !strings.HasPrefix(got, want) {
		t.Errorf("StatusText() = %q, want prefix %q", got, want)
	}
}

func TestUpdateWindowSize(t *testing.T) {
	v := testViewer(t)
	v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if v.Width != 120 || v.Height != 40 {
		t.Fatalf("viewer size = %dx%d", v.Width, v.Height)
	}
	if w, h := v.Figure.Size(); w != 120 || h != 39 {
		t.Errorf("figure size = %dx%d, want 120x39", w, h)
	}
}

func TestNotificationExpiry(t *testing.T) {
	v := testViewer(t)
	v.Notify("hello", false)

	v.Update(ClearNotificationMsg{})
	if v.Notification == nil {
		t.Fatal("notification cleared before it expired")
	}

	v.Notification.Until = time.Now().Add(-time.Second)
	v.Update(ClearNotificationMsg{})
	if v.Notification != nil {
		t.Error("expired notification kept")
	}
}

func TestUpdateRoutesToInputHandler(t *testing.T) {
	var got tea.Msg
	SetInputHandler(func(msg tea.Msg, v *Viewer) (tea.Model, tea.Cmd) {
		got = msg
		v.Notify("routed", false)
		return v, nil
	})
	t.Cleanup(func() { SetInputHandler(nil) })

	v := testViewer(t)
	_, cmd := v.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if _, ok := got.(tea.KeyPressMsg); !ok {
		t.Fatalf("handler got %T", got)
	}
	if cmd == nil {
		t.Error("no expiry command for new notification")
	}
}

func TestResetSelectionKeepsOneInset(t *testing.T) {
	v := testViewer(t)
	for range 3 {
		if err := v.ResetSelection(); err != nil {
			t.Fatalf("ResetSelection: %v", err)
		}
	}
	if n := len(v.Figure.Axes().Insets()); n != 1 {
		t.Errorf("insets = %d, want 1", n)
	}
	if n := v.Figure.Subscriptions(); n != 3 {
		t.Errorf("subscriptions = %d, want 3", n)
	}
}

func TestViewShowsModeOnPress(t *testing.T) {
	v := testViewer(t)
	ax := v.Figure.Axes()
	ax.SetXLim(0, 80)
	ax.SetYLim(0, 20)
	if err := v.ResetSelection(); err != nil {
		t.Fatalf("ResetSelection: %v", err)
	}
	if out := ansi.Strip(frame(v)); !strings.Contains(out, "IDLE") {
		t.Fatal("status missing IDLE before press")
	}

	// (25, 16) lands inside the selection without moving it.
	v.Figure.Dispatch(zoom.EventPress, 25, 16, 1)
	if v.Mode() != zoom.ModeDragging {
		t.Fatalf("mode = %v, want dragging", v.Mode())
	}
	out := ansi.Strip(frame(v))
	if !strings.Contains(out, "DRAGGING") || strings.Contains(out, "IDLE") {
		t.Errorf("status after press not refreshed:\n%s", out[strings.LastIndex(out, "\n")+1:])
	}

	v.Figure.Dispatch(zoom.EventRelease, 25, 16, 1)
	if out := ansi.Strip(frame(v)); !strings.Contains(out, "IDLE") {
		t.Error("status missing IDLE after release")
	}
}
