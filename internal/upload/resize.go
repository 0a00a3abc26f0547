package upload

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

// DefaultResizeBound is the longest-edge cap applied to images when resizing
// is enabled and no other bound is configured.
const DefaultResizeBound = 1920

const jpegQuality = 90

// resizableExts lists the image formats we can both decode and re-encode.
// GIFs keep their animation frames and webp has no encoder, so both upload
// as-is.
var resizableExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
}

// ResizeImage downscales an image so neither edge exceeds maxEdge, keeping
// the aspect ratio. Images already within the bound, and formats outside
// resizableExts, pass through untouched. The second return value reports
// whether the bytes were re-encoded.
func ResizeImage(data []byte, filename string, maxEdge int) ([]byte, bool, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !resizableExts[ext] || maxEdge <= 0 {
		return data, false, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("decoding %s: %w", filename, err)
	}

	b := img.Bounds()
	if b.Dx() <= maxEdge && b.Dy() <= maxEdge {
		return data, false, nil
	}

	scaled := resize.Thumbnail(uint(maxEdge), uint(maxEdge), img, resize.Lanczos3)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, scaled)
	default:
		err = jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, false, fmt.Errorf("encoding %s: %w", filename, err)
	}
	return buf.Bytes(), true, nil
}
