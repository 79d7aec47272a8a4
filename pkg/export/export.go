// Package export serializes a rendered surface to PNG.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// DefaultFilename is the download name offered for exported memes.
const DefaultFilename = "coucou-meme.png"

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

// WriteFile encodes img to a PNG file at path.
func WriteFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	return EncodePNG(f, img)
}
