// style4.go - Four alternating panels across the top 53% of the
// canvas, one centered fixed-width punchline block below.
package layout

import (
	"image"

	"github.com/fogleman/gg"
)

// punchBlockW is the fixed width of the bottom punchline block.
const punchBlockW = 380.0

func (e *Engine) drawStyle4(dc *gg.Context, a Assets, captions []string) {
	w := float64(dc.Width())
	h := float64(dc.Height())
	topH := h * 0.53
	colW := w / 4

	// Top row: right, left, right, left.
	sources := [4]image.Image{a.Right, a.Left, a.Right, a.Left}
	for i, src := range sources {
		x := float64(i) * colW
		cx := x + colW/2
		e.DrawCaption(dc, captions[i], cx, 12, colW-captionInset, 28)
		DrawArrow(dc, cx, 64, 26)
		PlaceImage(dc, src, x+14, 96, colW-captionInset, topH-96-10, true)
	}

	// Bottom: centered punchline block.
	x := (w - punchBlockW) / 2
	cx := w / 2
	e.DrawCaption(dc, captions[4], cx, topH+10, punchBlockW-captionInset, 40)
	DrawArrow(dc, cx, topH+66, defaultArrowLength)
	PlaceImage(dc, a.Middle, x+14, topH+100, punchBlockW-captionInset, h-(topH+100)-12, true)
}
