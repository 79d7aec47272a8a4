// fonts.go - Font loading with custom TTF support and an embedded bold
// fallback. Captions are always bold; the face size varies per call, so
// faces are cached by size.
package layout

import (
	"fmt"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// FontManager parses one bold TTF and hands out faces by size.
type FontManager struct {
	parsed *truetype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewFontManager creates a font manager with the specified font.
// If customPath is empty or invalid, the embedded Go Bold font is used.
// Supply a CJK-capable TTF for non-Latin captions; the embedded
// fallback only covers Latin scripts.
func NewFontManager(customPath string) (*FontManager, error) {
	var fontData []byte
	var err error

	if customPath != "" {
		fontData, err = os.ReadFile(customPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load custom font %q, using default\n", customPath)
			fontData = nil
		}
	}

	if fontData == nil {
		fontData = gobold.TTF
	}

	parsed, err := truetype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	return &FontManager{
		parsed: parsed,
		faces:  make(map[float64]font.Face),
	}, nil
}

// Face returns a cached font.Face at the specified size.
func (fm *FontManager) Face(size float64) font.Face {
	fm.mu.Lock()
	defer fm.mu.Unlock()

	if face, ok := fm.faces[size]; ok {
		return face
	}

	face := truetype.NewFace(fm.parsed, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	fm.faces[size] = face
	return face
}
