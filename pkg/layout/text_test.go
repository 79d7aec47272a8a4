package layout

import (
	"bytes"
	"image"
	"reflect"
	"strings"
	"testing"

	"github.com/fogleman/gg"
)

// fixedWidthMeasure pretends every rune is 0.6em wide.
func fixedWidthMeasure(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.6
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine("")
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestFitFontSizeKeepsInitialWhenFitting(t *testing.T) {
	got := fitFontSize("ab", 100, 28, fixedWidthMeasure)
	if got != 28 {
		t.Fatalf("expected initial size 28, got %v", got)
	}
}

func TestFitFontSizeNeverBelowFloor(t *testing.T) {
	long := strings.Repeat("x", 500)
	got := fitFontSize(long, 40, 28, fixedWidthMeasure)
	if got != minFontSize {
		t.Fatalf("expected floor %d, got %v", minFontSize, got)
	}
}

func TestFitFontSizeFloorWithRealMetrics(t *testing.T) {
	e := newTestEngine(t)
	dc := gg.NewContext(100, 100)

	got := fitFontSize(strings.Repeat("W", 200), 40, 28, e.measurer(dc))
	if got != minFontSize {
		t.Fatalf("expected floor %d, got %v", minFontSize, got)
	}
}

func TestFitFontSizePunchlineBudget(t *testing.T) {
	// A two-rune punchline caption fits the Style 3 punchline budget
	// at the full initial size of 40.
	e := newTestEngine(t)
	dc := gg.NewContext(1080, 700)

	budget := 0.4*1080 - captionInset
	got := fitFontSize("测试", budget, 40, e.measurer(dc))
	if got != 40 {
		t.Fatalf("expected size 40 within budget %v, got %v", budget, got)
	}
}

func TestWrapToWidthGreedyPacking(t *testing.T) {
	// 0.6em runes at size 10 are 6px wide; 30px holds five of them.
	got := wrapToWidth("abcdefgh", 30, 10, fixedWidthMeasure)
	want := []string{"abcde", "fgh"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrap mismatch: got %q, want %q", got, want)
	}
}

func TestWrapToWidthKeepsOversizedRune(t *testing.T) {
	// A single rune wider than the budget still gets its own line.
	got := wrapToWidth("ab", 1, 10, fixedWidthMeasure)
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrap mismatch: got %q, want %q", got, want)
	}
}

func TestWrapToWidthMultiByteRunes(t *testing.T) {
	got := wrapToWidth("一二三四五六", 40, 10, fixedWidthMeasure)
	want := []string{"一二三四五六"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrap mismatch: got %q, want %q", got, want)
	}
}

func TestWrapToWidthIdempotent(t *testing.T) {
	text := strings.Repeat("coucou", 20)
	first := wrapToWidth(text, 50, 12, fixedWidthMeasure)
	again := wrapToWidth(strings.Join(first, ""), 50, 12, fixedWidthMeasure)
	if !reflect.DeepEqual(first, again) {
		t.Fatalf("re-wrap changed line breaks:\nfirst: %q\nagain: %q", first, again)
	}
}

func TestDrawCaptionEmptyDrawsNothing(t *testing.T) {
	e := newTestEngine(t)

	for _, text := range []string{"", "   ", "\t\n"} {
		dc := gg.NewContext(80, 40)
		dc.SetRGB(1, 1, 1)
		dc.Clear()
		before := snapshot(dc)

		if got := e.DrawCaption(dc, text, 40, 5, 60, 28); got != 0 {
			t.Fatalf("DrawCaption(%q) height = %v, want 0", text, got)
		}
		if !bytes.Equal(before, snapshot(dc)) {
			t.Fatalf("DrawCaption(%q) modified the surface", text)
		}
	}
}

func TestDrawCaptionHeightMatchesLines(t *testing.T) {
	e := newTestEngine(t)
	dc := gg.NewContext(400, 300)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	text := "the quick brown fox jumps over the lazy dog"
	maxWidth, initial := 120.0, 28.0

	size := fitFontSize(text, maxWidth, initial, e.measurer(dc))
	lines := wrapToWidth(text, maxWidth, size, e.measurer(dc))
	want := float64(len(lines)) * size * linePitch

	got := e.DrawCaption(dc, text, 200, 10, maxWidth, initial)
	if got != want {
		t.Fatalf("height = %v, want %v (%d lines at size %v)", got, want, len(lines), size)
	}
	if len(lines) < 2 {
		t.Fatalf("expected the text to wrap, got %d line(s)", len(lines))
	}
}

func snapshot(dc *gg.Context) []byte {
	rgba := dc.Image().(*image.RGBA)
	return append([]byte(nil), rgba.Pix...)
}
