package imageops

// Grayscale weights: the Rec. 601 luma weights (0.299, 0.587, 0.114)
// divided by 256, favoring green the way the reference document-scanner
// crate's RGB->luminance mix does.
const (
	weightR = 0.00116796875
	weightG = 0.00229296875
	weightB = 0.0004453125
)

// Grayscale converts an RGBA raster to a single-channel float32 raster in
// [0, 255/256]. Alpha is ignored.
func Grayscale(src *RGBAImage) *Image {
	n := src.Width * src.Height
	out := make([]float32, n)
	pix := src.Data
	for i := 0; i < n; i++ {
		o := i * 4
		out[i] = float32(pix[o])*weightR + float32(pix[o+1])*weightG + float32(pix[o+2])*weightB
	}
	return &Image{Data: out, Width: src.Width, Height: src.Height}
}
