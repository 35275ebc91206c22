package encoder

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	return img
}

func TestEncodePrefersFirstRequestedFormat(t *testing.T) {
	r := NewRegistry()
	img := solidImage(8, 8)

	data, format, err := r.Encode(img, []string{"png", "jpeg"}, 80)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if format != "png" {
		t.Fatalf("got format %q want png", format)
	}
	if len(data) == 0 {
		t.Fatal("empty output")
	}
}

func TestEncodeSkipsUnsupportedFormat(t *testing.T) {
	r := NewRegistry()
	img := solidImage(8, 8)

	data, format, err := r.Encode(img, []string{"avif", "jpeg"}, 80)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if format != "jpeg" {
		t.Fatalf("got format %q want jpeg", format)
	}
	if len(data) == 0 {
		t.Fatal("empty output")
	}
}

func TestEncodeFallsBackToJPEGWhenNoFormatsGiven(t *testing.T) {
	r := NewRegistry()
	img := solidImage(8, 8)

	_, format, err := r.Encode(img, nil, 80)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if format != "jpeg" {
		t.Fatalf("got format %q want jpeg", format)
	}
}

func TestEncodeJPEGClampsInvalidQuality(t *testing.T) {
	if _, err := encodeJPEG(solidImage(4, 4), 0); err != nil {
		t.Fatalf("quality 0: %v", err)
	}
	if _, err := encodeJPEG(solidImage(4, 4), 150); err != nil {
		t.Fatalf("quality 150: %v", err)
	}
}
