package handlers

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

// formImage pulls the named upload out of a multipart form and normalizes
// it: decode, shrink to max 800px wide, re-encode as JPEG quality 80. The
// backend services store whatever bytes arrive, so oversized uploads are
// trimmed here. A missing file is fine; every image is optional.
func formImage(r *http.Request, field string) ([]byte, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, errors.New("Failed to read image upload.")
	}
	defer file.Close()

	var img image.Image
	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".png":
		img, err = png.Decode(file)
	case ".jpeg", ".jpg":
		img, err = jpeg.Decode(file)
	default:
		return nil, errors.New("Unsupported image format. Only PNG, JPG, JPEG are allowed.")
	}
	if err != nil {
		return nil, errors.New("Failed to decode image.")
	}

	// Resize image (max width 800px, preserve aspect ratio)
	shrunk := resize.Resize(800, 0, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, shrunk, &jpeg.Options{Quality: 80}); err != nil {
		return nil, errors.New("Failed to encode image.")
	}
	return buf.Bytes(), nil
}
