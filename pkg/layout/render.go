// Package layout renders the CouCou meme templates: three fixed styles
// that compose captions, arrows, and the shared image triple onto a
// per-style canvas. Every render is a stateless full repaint from
// declarative inputs; nothing here fails visibly — missing images and
// over-long captions degrade on the canvas instead of erroring.
package layout

import (
	"image"

	"github.com/fogleman/gg"
)

// Assets is the shared triple of source images. It is built once after
// loading completes and treated as read-only by every render. A nil
// member means the image is missing or still loading and its slot is
// skipped.
type Assets struct {
	Right  image.Image // "right-profile"
	Left   image.Image // "left-profile"
	Middle image.Image // "middle-punchline", the punchline panel
}

// Engine renders meme templates. It holds only the font manager and is
// safe to reuse across renders.
type Engine struct {
	fonts *FontManager
}

// NewEngine creates an engine drawing captions with the font at
// fontPath, or the embedded bold fallback when fontPath is empty.
func NewEngine(fontPath string) (*Engine, error) {
	fm, err := NewFontManager(fontPath)
	if err != nil {
		return nil, err
	}
	return &Engine{fonts: fm}, nil
}

// Render paints the full template for style onto a fresh white canvas
// of the style's fixed dimensions and returns it. Empty caption slots
// fall back to the style's defaults; captions never mutate.
func (e *Engine) Render(style Style, captions []string, assets Assets) image.Image {
	if !style.Valid() {
		style = Style2
	}

	w, h := style.CanvasSize()
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	resolved := style.ResolveCaptions(captions)

	switch style {
	case Style3:
		e.drawStyle3(dc, assets, resolved)
	case Style4:
		e.drawStyle4(dc, assets, resolved)
	default:
		e.drawStyle2(dc, assets, resolved)
	}

	return dc.Image()
}
