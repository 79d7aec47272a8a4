// style2.go - Three equal columns: right-profile, left-profile, then
// the punchline image, each under its own caption and arrow.
package layout

import (
	"image"

	"github.com/fogleman/gg"
)

// captionInset is the total horizontal padding subtracted from a
// region's width to get its caption and image budget (14px per side).
const captionInset = 28

func (e *Engine) drawStyle2(dc *gg.Context, a Assets, captions []string) {
	w := float64(dc.Width())
	h := float64(dc.Height())
	colW := w / 3

	sources := [3]image.Image{a.Right, a.Left, a.Middle}
	for i, src := range sources {
		x := float64(i) * colW
		cx := x + colW/2

		// Caption band [0,60), arrow [60,86), image in the remainder.
		e.DrawCaption(dc, captions[i], cx, 12, colW-captionInset, 28)
		DrawArrow(dc, cx, 60, 26)
		PlaceImage(dc, src, x+14, 94, colW-captionInset, h-94-14, true)
	}
}
