// arrow.go - The downward arrow drawn between a caption and its image.
package layout

import "github.com/fogleman/gg"

// defaultArrowLength is the stem-plus-head height used by most regions.
const defaultArrowLength = 30

// DrawArrow draws a vertical black arrow: a 2.5px round-capped stem
// from (centerX, topY) and a filled triangular head 14px wide with its
// apex at topY+length. The head overlaps the last 9px of the span.
func DrawArrow(dc *gg.Context, centerX, topY, length float64) {
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2.5)
	dc.SetLineCapRound()
	dc.DrawLine(centerX, topY, centerX, topY+length-9)
	dc.Stroke()

	dc.MoveTo(centerX-7, topY+length-9)
	dc.LineTo(centerX+7, topY+length-9)
	dc.LineTo(centerX, topY+length)
	dc.ClosePath()
	dc.Fill()
}
