package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
)

// ErrDecode marks an asset that exists but cannot be decoded. This is fatal
// to session start: an entity cannot render without its frames.
var ErrDecode = errors.New("assets: decode failed")

// LoadImageFile reads and decodes an image from disk.
func LoadImageFile(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return img, nil
}

// loadOrGenerate prefers a file on disk (so dropped-in art overrides the
// placeholders) and falls back to the generated placeholder. A file that is
// present but corrupt is an error, not a fallback.
func loadOrGenerate(dir, name string, generate func() image.Image) (image.Image, error) {
	if dir != "" {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadImageFile(path)
		}
	}
	return generate(), nil
}
