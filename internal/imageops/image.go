// Package imageops implements the grayscale, area-averaging downscale, and
// fixed-kernel Gaussian blur operators the detection pipeline runs before
// voting. Each operator consumes an owned input and produces a freshly
// allocated output; there is no shared mutable state between stages.
package imageops

// Image is a single-channel float32 raster, row-major, height rows of
// width samples each.
type Image struct {
	Data   []float32
	Width  int
	Height int
}

// At returns the sample at (x, y). Callers in hot loops index Data
// directly; this is for tests and clarity.
func (m *Image) At(x, y int) float32 {
	return m.Data[y*m.Width+x]
}

// RGBAImage is a 4-byte-per-pixel raster, row-major.
type RGBAImage struct {
	Data   []byte
	Width  int
	Height int
}

// NewImage allocates a zeroed Image of the given size.
func NewImage(width, height int) *Image {
	return &Image{Data: make([]float32, width*height), Width: width, Height: height}
}
