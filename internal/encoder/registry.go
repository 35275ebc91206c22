// Package encoder picks and runs the codec that turns a rectified
// document's preview raster into bytes on disk.
package encoder

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
)

// Registry selects a preview codec from a profile's requested format
// list. document.ExtractDocument's output is always fully opaque
// (rectify.Perspective fills alpha unconditionally), so unlike a general
// image pipeline there's no alpha-driven fallback to carry here: jpeg
// and png, both from the standard library, are the only previews a
// rectified document ever needs.
type Registry struct{}

// NewRegistry returns a ready-to-use registry. There's no external
// process or codec availability to probe.
func NewRegistry() *Registry {
	return &Registry{}
}

// Encode tries each of formats in priority order and returns the bytes
// and format name of the first one that succeeds. Unrecognized format
// names are skipped. If none succeed, it falls back to jpeg.
func (r *Registry) Encode(img image.Image, formats []string, quality int) (data []byte, format string, err error) {
	for _, f := range formats {
		f = strings.ToLower(f)
		if data, err = encodeOne(f, img, quality); err == nil {
			return data, f, nil
		}
	}
	data, err = encodeOne("jpeg", img, quality)
	return data, "jpeg", err
}

func encodeOne(format string, img image.Image, quality int) ([]byte, error) {
	switch format {
	case "jpeg":
		return encodeJPEG(img, quality)
	case "png":
		return encodePNG(img)
	default:
		return nil, fmt.Errorf("encoder: unsupported format %q", format)
	}
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = 82
	}
	var buf bytes.Buffer
	buf.Grow(256 * 1024) // pre-alloc — avoids repeated grow for typical previews

	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodePNG always uses best compression: document rectification outputs
// are mostly flat white background with dark text/lines, which png's
// filters compress far better than typical photographs, making the
// slower compression level worth paying for the archival profile.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(512 * 1024)

	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
