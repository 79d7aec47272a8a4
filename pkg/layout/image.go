// image.go - Aspect-preserving image placement ("contain" fit).
package layout

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// ContainFit computes the destination rectangle for scaling a srcW×srcH
// image into the box (x, y, w, h) without cropping: the longer source
// dimension spans the box, the shorter one is centered. With
// alignBottom the vertical centering is replaced by pinning the bottom
// edge to y+h.
func ContainFit(srcW, srcH int, x, y, w, h float64, alignBottom bool) (dx, dy, dw, dh float64) {
	srcRatio := float64(srcW) / float64(srcH)
	boxRatio := w / h

	if srcRatio > boxRatio {
		dw = w
		dh = w / srcRatio
	} else {
		dh = h
		dw = h * srcRatio
	}

	dx = x + (w-dw)/2
	dy = y + (h-dh)/2
	if alignBottom {
		dy = y + h - dh
	}
	return dx, dy, dw, dh
}

// PlaceImage scales img into the box (x, y, w, h) with contain
// semantics and draws it. A nil or zero-sized image is treated as
// "still loading" and silently skipped.
func PlaceImage(dc *gg.Context, img image.Image, x, y, w, h float64, alignBottom bool) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return
	}

	dx, dy, dw, dh := ContainFit(b.Dx(), b.Dy(), x, y, w, h, alignBottom)
	if dw < 1 || dh < 1 {
		return
	}

	scaled := imaging.Resize(img, int(dw+0.5), int(dh+0.5), imaging.Lanczos)
	dc.DrawImage(scaled, int(dx+0.5), int(dy+0.5))
}
