// text.go - Caption layout: auto-shrinking font size and greedy
// rune-wise wrapping, then centered line-by-line drawing.
package layout

import (
	"strings"

	"github.com/fogleman/gg"
)

const (
	// minFontSize is the floor for auto-shrinking; below this the text
	// wraps instead.
	minFontSize = 12

	// linePitch is the vertical distance between wrapped lines, as a
	// multiple of the font size.
	linePitch = 1.45
)

// measureFunc reports the rendered width of s at the given font size.
type measureFunc func(s string, size float64) float64

// fitFontSize returns the largest size <= initial at which text fits on
// one line of maxWidth, floored at minFontSize.
func fitFontSize(text string, maxWidth, initial float64, measure measureFunc) float64 {
	size := initial
	for size > minFontSize && measure(text, size) > maxWidth {
		size--
	}
	return size
}

// wrapToWidth packs runes greedily into lines of at most maxWidth.
// A line is flushed when the next rune would overflow it; a rune wider
// than maxWidth still gets a line of its own rather than being dropped.
// Operating on runes, not bytes, keeps multi-byte scripts intact.
func wrapToWidth(text string, maxWidth, size float64, measure measureFunc) []string {
	var lines []string
	var line []rune
	for _, r := range text {
		candidate := append(line, r)
		if measure(string(candidate), size) > maxWidth && len(line) > 0 {
			lines = append(lines, string(line))
			line = []rune{r}
			continue
		}
		line = candidate
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}

// DrawCaption renders text centered on centerX, stacked downward from
// topY. The font size shrinks from size until the whole string fits in
// maxWidth (floored at minFontSize); whatever still overflows wraps.
// Returns the total consumed height, lineCount * size * 1.45.
//
// Empty or whitespace-only text draws nothing and returns 0. The
// context's fill color and font face are left modified.
func (e *Engine) DrawCaption(dc *gg.Context, text string, centerX, topY, maxWidth, size float64) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	size = fitFontSize(text, maxWidth, size, e.measurer(dc))
	lines := wrapToWidth(text, maxWidth, size, e.measurer(dc))

	dc.SetFontFace(e.fonts.Face(size))
	dc.SetRGB(0, 0, 0)
	pitch := size * linePitch
	for i, line := range lines {
		// Baseline one em below the line's top edge.
		dc.DrawStringAnchored(line, centerX, topY+float64(i)*pitch+size, 0.5, 0)
	}
	return float64(len(lines)) * pitch
}

// measurer adapts the context's string metrics to a measureFunc.
func (e *Engine) measurer(dc *gg.Context) measureFunc {
	return func(s string, size float64) float64 {
		dc.SetFontFace(e.fonts.Face(size))
		w, _ := dc.MeasureString(s)
		return w
	}
}
