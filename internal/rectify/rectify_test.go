package rectify

import (
	"testing"

	"github.com/AnyUserName/docscan-cli/internal/imageops"
	"github.com/AnyUserName/docscan-cli/internal/quadassembly"
)

func checkerboard(w, h int) *imageops.RGBAImage {
	data := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := (y*w + x) * 4
			var v byte = 40
			if (x/4+y/4)%2 == 0 {
				v = 220
			}
			data[o], data[o+1], data[o+2], data[o+3] = v, v, v, 255
		}
	}
	return &imageops.RGBAImage{Data: data, Width: w, Height: h}
}

func TestPerspectiveIdentityReproducesSource(t *testing.T) {
	w, h := 32, 32
	src := checkerboard(w, h)
	quad := quadassembly.Quad{
		A: quadassembly.Point{X: 0, Y: float32(h)},
		B: quadassembly.Point{X: 0, Y: 0},
		C: quadassembly.Point{X: float32(w), Y: 0},
		D: quadassembly.Point{X: float32(w), Y: float32(h)},
	}
	out := Perspective(src, quad, w, h)
	for i := range src.Data {
		if i%4 == 3 {
			continue // alpha is always forced to 255
		}
		diff := int(src.Data[i]) - int(out.Data[i])
		if diff < -1 || diff > 1 {
			t.Fatalf("byte %d: src=%d out=%d, expected near-exact identity reproduction", i, src.Data[i], out.Data[i])
		}
	}
}

func TestPerspectiveOutsideSourceIsWhite(t *testing.T) {
	w, h := 16, 16
	src := checkerboard(w, h)
	// A quad twice the source's size maps the output's right and bottom
	// halves past the source bounds, so those pixels must be filled white.
	quad := quadassembly.Quad{
		A: quadassembly.Point{X: 0, Y: float32(2 * h)},
		B: quadassembly.Point{X: 0, Y: 0},
		C: quadassembly.Point{X: float32(2 * w), Y: 0},
		D: quadassembly.Point{X: float32(2 * w), Y: float32(2 * h)},
	}
	out := Perspective(src, quad, w, h)
	for i := 3; i < len(out.Data); i += 4 {
		if out.Data[i] != 255 {
			t.Fatalf("alpha byte %d = %d, want 255", i, out.Data[i])
		}
	}
	o := ((h-1)*w + (w - 1)) * 4
	if out.Data[o] != 255 || out.Data[o+1] != 255 || out.Data[o+2] != 255 {
		t.Fatalf("outside pixel = (%d,%d,%d), want white", out.Data[o], out.Data[o+1], out.Data[o+2])
	}
}
