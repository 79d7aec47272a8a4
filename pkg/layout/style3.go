// style3.go - Unequal three-column layout: a 36% column with two
// stacked right-profile cells, a 24% column with one centered
// left-profile block, and a 40% punchline column.
package layout

import "github.com/fogleman/gg"

// Punchline-column recipe. These offsets were tuned visually, not
// derived; keep the literal values.
const (
	punchCaptionTop  = 150.0
	punchArrowTop    = 120.0 + 80
	punchArrowLen    = 36.0
	punchImageMaxH   = 280.0
	punchImageYShift = -30.0
	punchImageHTrim  = -20.0
)

func (e *Engine) drawStyle3(dc *gg.Context, a Assets, captions []string) {
	w := float64(dc.Width())
	h := float64(dc.Height())
	col1 := w * 0.36
	col2 := w * 0.24
	col3 := w * 0.40

	// Column 1: two stacked half-height cells, right-profile in each.
	cellH := h / 2
	for i := 0; i < 2; i++ {
		y := float64(i) * cellH
		cx := col1 / 2
		e.DrawCaption(dc, captions[i], cx, y+18, col1-captionInset, 28)
		DrawArrow(dc, cx, y+78, defaultArrowLength)
		PlaceImage(dc, a.Right, 14, y+116, col1-captionInset, cellH-130, true)
	}

	// Column 2: one left-profile block, vertically centered.
	{
		cx := col1 + col2/2
		const imgH = 240.0
		blockH := 60 + defaultArrowLength + imgH
		top := (h - blockH) / 2
		e.DrawCaption(dc, captions[2], cx, top, col2-captionInset, 28)
		DrawArrow(dc, cx, top+64, defaultArrowLength)
		PlaceImage(dc, a.Left, col1+14, top+104, col2-captionInset, imgH, true)
	}

	// Column 3: the punchline, with a larger caption budget and a
	// taller arrow.
	{
		x := col1 + col2
		cx := x + col3/2
		e.DrawCaption(dc, captions[3], cx, punchCaptionTop, col3-captionInset, 40)
		DrawArrow(dc, cx, punchArrowTop, punchArrowLen)

		imgTop := punchArrowTop + punchArrowLen + 40 + punchImageYShift
		imgH := h - imgTop + punchImageHTrim
		if imgH > punchImageMaxH {
			imgH = punchImageMaxH
		}
		PlaceImage(dc, a.Middle, x+14, imgTop, col3-captionInset, imgH, false)
	}
}
