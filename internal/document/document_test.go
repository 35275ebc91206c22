package document

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AnyUserName/docscan-cli/internal/imageops"
)

func solidRGBA(w, h int, v byte) *imageops.RGBAImage {
	data := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		o := i * 4
		data[o], data[o+1], data[o+2], data[o+3] = v, v, v, 255
	}
	return &imageops.RGBAImage{Data: data, Width: w, Height: h}
}

// whiteSquareOnBlack draws an axis-aligned white square on a black
// background, matching the end-to-end scenario in spec.md section 8.
func whiteSquareOnBlack(size int, x0, y0, x1, y1 int) *imageops.RGBAImage {
	img := solidRGBA(size, size, 0)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			o := (y*size + x) * 4
			img.Data[o], img.Data[o+1], img.Data[o+2], img.Data[o+3] = 255, 255, 255, 255
		}
	}
	return img
}

func TestFindDocumentUniformGrayReturnsNoQuad(t *testing.T) {
	img := solidRGBA(100, 100, 128)
	_, ok := FindDocument(img, 4)
	assert.False(t, ok, "a uniform image carries no edge evidence and should not yield a quad")
}

func TestFindDocumentSyntheticSquare(t *testing.T) {
	img := whiteSquareOnBlack(200, 40, 40, 160, 160)
	quad, ok := FindDocument(img, 4)
	if !ok {
		t.Fatalf("expected a detected quad for a clean synthetic square")
	}

	corners := []struct{ x, y float32 }{
		{quad.A.X, quad.A.Y}, {quad.B.X, quad.B.Y}, {quad.C.X, quad.C.Y}, {quad.D.X, quad.D.Y},
	}
	expected := [][2]float32{{40, 40}, {160, 40}, {160, 160}, {40, 160}}

	for _, c := range corners {
		best := float32(1 << 30)
		for _, e := range expected {
			dx := c.x - e[0]
			dy := c.y - e[1]
			d := dx*dx + dy*dy
			if d < best {
				best = d
			}
		}
		assert.LessOrEqual(t, best, float32(20*20), "corner (%v,%v) too far from any expected corner", c.x, c.y)
	}
}

func TestExtractDocumentDerivesHeightFromAspect(t *testing.T) {
	img := whiteSquareOnBlack(200, 40, 40, 160, 160)
	quad, ok := FindDocument(img, 4)
	if !ok {
		t.Skip("quad detection did not converge for this synthetic fixture")
	}
	out := ExtractDocument(img, quad, 128, 0)
	if out.Width != 128 {
		t.Fatalf("width = %d, want 128", out.Width)
	}
	if out.Height < 64 || out.Height > 256 {
		t.Fatalf("derived height %d implausible for a roughly square source quad", out.Height)
	}
}
