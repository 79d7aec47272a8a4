package editor

import (
	"testing"

	"github.com/Tanpinsary/CouCouB/pkg/layout"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	engine, err := layout.NewEngine("")
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return New(engine, layout.Assets{})
}

func TestNewSessionStartsOnStyle2(t *testing.T) {
	s := newTestSession(t)
	if s.Style() != layout.Style2 {
		t.Fatalf("initial style = %v, want Style2", s.Style())
	}
	if got := len(s.Captions()); got != layout.Style2.SlotCount() {
		t.Fatalf("initial caption slots = %d, want %d", got, layout.Style2.SlotCount())
	}
}

func TestSetStyleResetsCaptions(t *testing.T) {
	s := newTestSession(t)
	s.SetCaption(0, "hello")
	s.SetCaption(2, "punch")

	s.SetStyle(layout.Style4)

	captions := s.Captions()
	if len(captions) != layout.Style4.SlotCount() {
		t.Fatalf("caption slots = %d, want %d", len(captions), layout.Style4.SlotCount())
	}
	for i, c := range captions {
		if c != "" {
			t.Errorf("slot %d = %q after style change, want empty", i, c)
		}
	}
}

func TestSetCaptionBounds(t *testing.T) {
	s := newTestSession(t)
	s.SetCaption(-1, "under")
	s.SetCaption(99, "over")
	s.SetCaption(1, "mid")

	captions := s.Captions()
	if captions[1] != "mid" {
		t.Fatalf("slot 1 = %q, want %q", captions[1], "mid")
	}
}

func TestCaptionsReturnsCopy(t *testing.T) {
	s := newTestSession(t)
	s.Captions()[0] = "mutated"
	if got := s.Captions()[0]; got != "" {
		t.Fatalf("caption state leaked: slot 0 = %q", got)
	}
}

func TestRenderMatchesStyleCanvas(t *testing.T) {
	s := newTestSession(t)
	for _, style := range []layout.Style{layout.Style2, layout.Style3, layout.Style4} {
		s.SetStyle(style)
		w, h := style.CanvasSize()
		got := s.Render().Bounds().Size()
		if got.X != w || got.Y != h {
			t.Errorf("%s render = %v, want %dx%d", style.Name(), got, w, h)
		}
	}
}
