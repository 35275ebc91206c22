package imageops

import (
	"image"
	"image/color"
)

// FromImage converts a decoded image.Image into an owned RGBAImage with
// straight (non-premultiplied) alpha, the representation the detection
// and rectification stages operate on.
func FromImage(img image.Image) *RGBAImage {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	data := make([]byte, w*h*4)

	if src, ok := img.(*image.NRGBA); ok && bounds.Min == (image.Point{}) {
		for y := 0; y < h; y++ {
			srcRow := src.Pix[y*src.Stride : y*src.Stride+w*4]
			copy(data[y*w*4:(y+1)*w*4], srcRow)
		}
		return &RGBAImage{Data: data, Width: w, Height: h}
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			data[i], data[i+1], data[i+2], data[i+3] = c.R, c.G, c.B, c.A
			i += 4
		}
	}
	return &RGBAImage{Data: data, Width: w, Height: h}
}

// ToImage wraps an RGBAImage as a standard library image.Image without
// copying, for handoff to the encoder registry and the preview resizer.
func ToImage(img *RGBAImage) image.Image {
	return &image.NRGBA{
		Pix:    img.Data,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
}
