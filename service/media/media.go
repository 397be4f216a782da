// Package media generates cached WebP thumbnails for catalog images.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const thumbQuality = 80

var mkdirOnce sync.Once

// Thumbnail resizes the source image to the given width and encodes it as
// WebP under cacheDir. The cached file is reused if it is already present.
// Returns the cached file path.
func Thumbnail(srcPath string, width int, cacheDir string) (string, error) {
	if width <= 0 {
		return "", fmt.Errorf("media: invalid width %d", width)
	}

	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	out := filepath.Join(cacheDir, fmt.Sprintf("%s_w%d.webp", base, width))

	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return "", fmt.Errorf("media: source: %w", err)
	}
	if outInfo, err := os.Stat(out); err == nil && outInfo.ModTime().After(srcInfo.ModTime()) {
		return out, nil
	}

	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("media: decode: %w", err)
	}
	if img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	mkdirOnce.Do(func() { os.MkdirAll(cacheDir, 0o755) })

	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("media: create: %w", err)
	}
	defer f.Close()
	if err := webp.Encode(f, img, &webp.Options{Quality: thumbQuality}); err != nil {
		os.Remove(out)
		return "", fmt.Errorf("media: encode: %w", err)
	}
	return out, nil
}
