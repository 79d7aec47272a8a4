// Package editor owns the mutable render inputs: the active style and
// its caption slots. The layout engine is stateless; a Session is the
// collaborator that feeds it fully-resolved inputs and asks for a full
// repaint after every change.
package editor

import (
	"image"

	"github.com/Tanpinsary/CouCouB/pkg/export"
	"github.com/Tanpinsary/CouCouB/pkg/layout"
)

// Session binds an engine, the loaded asset triple, and the current
// style/caption state. Not safe for concurrent use; renders are
// synchronous.
type Session struct {
	engine *layout.Engine
	assets layout.Assets

	style    layout.Style
	captions []string
}

// New creates a session starting on Style2 with empty captions.
func New(engine *layout.Engine, assets layout.Assets) *Session {
	s := &Session{engine: engine, assets: assets}
	s.SetStyle(layout.Style2)
	return s
}

// SetStyle switches the active template and resets every caption slot
// to empty. Default texts are displayed at render time but never
// stored.
func (s *Session) SetStyle(style layout.Style) {
	if !style.Valid() {
		style = layout.Style2
	}
	s.style = style
	s.captions = make([]string, style.SlotCount())
}

// Style returns the active style.
func (s *Session) Style() layout.Style { return s.style }

// SetCaption stores the caption for slot i. Out-of-range slots are
// ignored.
func (s *Session) SetCaption(i int, text string) {
	if i < 0 || i >= len(s.captions) {
		return
	}
	s.captions[i] = text
}

// Captions returns a copy of the raw (unresolved) caption slots.
func (s *Session) Captions() []string {
	return append([]string(nil), s.captions...)
}

// Render repaints the full canvas from the current state.
func (s *Session) Render() image.Image {
	return s.engine.Render(s.style, s.captions, s.assets)
}

// Export renders the current state and writes it as PNG to path.
func (s *Session) Export(path string) error {
	return export.WriteFile(path, s.Render())
}
