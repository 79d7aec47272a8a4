// Package assets loads the three fixed meme source images. The three
// loads fan out concurrently and join once; the resulting triple is
// immutable afterward. Loading never fails a render: a missing or
// undecodable image becomes an empty slot plus a warning.
package assets

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/Tanpinsary/CouCouB/pkg/layout"
)

// Fixed asset names. Any extension from extensions is accepted.
const (
	RightProfile    = "right-profile"
	LeftProfile     = "left-profile"
	MiddlePunchline = "middle-punchline"
)

var extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff"}

// Load decodes the asset triple from dir, loading all three images
// concurrently and returning after the last attempt finishes. Slots
// that fail to load stay nil and are reported as warnings; the error
// return is reserved for context cancellation.
func Load(ctx context.Context, dir string) (layout.Assets, []string, error) {
	var (
		mu       sync.Mutex
		triple   layout.Assets
		warnings []string
	)

	slots := []struct {
		name string
		dst  *image.Image
	}{
		{RightProfile, &triple.Right},
		{LeftProfile, &triple.Left},
		{MiddlePunchline, &triple.Middle},
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, slot := range slots {
		slot := slot
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			img, err := open(dir, slot.name)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("asset %q: %v — slot will render empty", slot.name, err))
				return nil
			}
			*slot.dst = img
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return layout.Assets{}, warnings, err
	}

	return triple, warnings, nil
}

// open finds name with any known extension under dir and decodes it.
func open(dir, name string) (image.Image, error) {
	for _, ext := range extensions {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		img, err := imaging.Open(path)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("no %s.* found in %s", name, dir)
}
