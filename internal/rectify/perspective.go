package rectify

import (
	"github.com/chewxy/math32"

	"github.com/AnyUserName/docscan-cli/internal/imageops"
	"github.com/AnyUserName/docscan-cli/internal/quadassembly"
)

// Perspective builds the homography mapping the output rectangle
// (0,h), (0,0), (w,0), (w,h) onto quad's corners a, b, c, d, then for each
// output pixel maps it into src and bilinearly samples. Output pixels
// whose source coordinates fall outside src are opaque white. Interior
// samples always have alpha 255.
func Perspective(src *imageops.RGBAImage, quad quadassembly.Quad, outW, outH int) *imageops.RGBAImage {
	fw, fh := float32(outW), float32(outH)
	srcRect := [4]quadassembly.Point{
		{X: 0, Y: fh},
		{X: 0, Y: 0},
		{X: fw, Y: 0},
		{X: fw, Y: fh},
	}
	dst := [4]quadassembly.Point{quad.A, quad.B, quad.C, quad.D}
	h := createProjector(srcRect, dst)

	out := &imageops.RGBAImage{
		Data:   make([]byte, outW*outH*4),
		Width:  outW,
		Height: outH,
	}

	for oy := 0; oy < outH; oy++ {
		for ox := 0; ox < outW; ox++ {
			v := mulv(h, [3]float32{float32(ox) + 0.5, float32(oy) + 0.5, 1})
			sx := v[0] / v[2]
			sy := v[1] / v[2]

			idx := (oy*outW + ox) * 4
			r, g, b, ok := bilinearSample(src, sx, sy)
			if !ok {
				out.Data[idx], out.Data[idx+1], out.Data[idx+2], out.Data[idx+3] = 255, 255, 255, 255
				continue
			}
			out.Data[idx], out.Data[idx+1], out.Data[idx+2], out.Data[idx+3] = r, g, b, 255
		}
	}
	return out
}

// bilinearSample reads src at floating-point coordinates (x, y), treating
// each sample as centered at (px+0.5, py+0.5). It reports false if the
// coordinate falls entirely outside the source bounds.
func bilinearSample(src *imageops.RGBAImage, x, y float32) (r, g, b byte, ok bool) {
	x -= 0.5
	y -= 0.5
	if x < 0 || y < 0 || x > float32(src.Width-1) || y > float32(src.Height-1) {
		return 0, 0, 0, false
	}

	x0 := int(math32.Floor(x))
	y0 := int(math32.Floor(y))
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 > src.Width-1 {
		x1 = src.Width - 1
	}
	if y1 > src.Height-1 {
		y1 = src.Height - 1
	}

	fx := x - float32(x0)
	fy := y - float32(y0)

	sample := func(px, py int) (float32, float32, float32) {
		o := (py*src.Width + px) * 4
		return float32(src.Data[o]), float32(src.Data[o+1]), float32(src.Data[o+2])
	}

	r00, g00, b00 := sample(x0, y0)
	r10, g10, b10 := sample(x1, y0)
	r01, g01, b01 := sample(x0, y1)
	r11, g11, b11 := sample(x1, y1)

	lerp := func(a, b, t float32) float32 { return a + (b-a)*t }

	rt := lerp(lerp(r00, r10, fx), lerp(r01, r11, fx), fy)
	gt := lerp(lerp(g00, g10, fx), lerp(g01, g11, fx), fy)
	bt := lerp(lerp(b00, b10, fx), lerp(b01, b11, fx), fy)

	return byte(clamp255(rt)), byte(clamp255(gt)), byte(clamp255(bt)), true
}

func clamp255(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
