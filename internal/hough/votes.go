// Package hough implements the gradient-orientation Hough accumulator and
// the line-extraction pass that turns it into a short list of line
// candidates, per the document-detector's core pipeline.
package hough

import (
	"github.com/chewxy/math32"

	"github.com/AnyUserName/docscan-cli/internal/imageops"
)

// GradientVotes is the accumulator produced by Vote: a 2-D histogram over
// (distance bin, angle bin) plus the per-pixel gradient magnitude map that
// later stages (quad assembly's edge-evidence integral) read back.
type GradientVotes struct {
	Buf      []float32 // num_bins * NumAngles, distance-major
	GradBuf  []float32 // height * width
	Width    int
	Height   int
	Diag     float32
	NumBins  int
	AvgGrad  float32
	MaxGrad  float32
}

// At returns the accumulator cell for a given distance and angle bin.
func (g *GradientVotes) At(distBin, angleBin int) float32 {
	return g.Buf[distBin*NumAngles+angleBin]
}

func clampBin(b, numBins int) int {
	if b < 0 {
		return 0
	}
	if b >= numBins {
		return numBins - 1
	}
	return b
}

// Vote computes the Scharr gradient of a smoothed single-channel image and
// casts votes into a Hough accumulator over signed distance and quantized
// orientation. The image must be at least 3x3; smaller inputs are a
// programming error and Vote does not defend against them.
func Vote(img *imageops.Image) *GradientVotes {
	w, h := img.Width, img.Height
	diag := math32.Floor(math32.Sqrt(float32(w*w + h*h)))
	numBins := int(diag)
	if numBins < 1 {
		numBins = 1
	}

	g := &GradientVotes{
		Buf:     make([]float32, numBins*NumAngles),
		GradBuf: make([]float32, w*h),
		Width:   w,
		Height:  h,
		Diag:    diag,
		NumBins: numBins,
	}

	data := img.Data
	var totalGrad float32
	var maxGrad float32

	at := func(x, y int) float32 { return data[y*w+x] }

	for i := 1; i <= h-2; i++ {
		for j := 1; j <= w-2; j++ {
			n := at(j, i-1)
			s := at(j, i+1)
			e := at(j+1, i)
			wv := at(j-1, i)
			ne := at(j+1, i-1)
			nw := at(j-1, i-1)
			se := at(j+1, i+1)
			sw := at(j-1, i+1)

			sx := 10*(e-wv) + 3*(ne+se-nw-sw)
			sy := 10*(n-s) + 3*(ne+nw-se-sw)

			mag := math32.Pow(sx*sx+sy*sy, 0.3)
			if mag < 0 {
				mag = 0
			}

			g.GradBuf[i*w+j] = mag
			totalGrad += mag

			theta := math32.Atan(sy / sx)
			if math32.IsNaN(theta) {
				continue
			}

			k := angleBin(theta)
			fi, fj := float32(i), float32(j)

			cast := func(kk int, weight float32) {
				bin := clampBin(int(math32.Floor((COS[kk]*fi+SIN[kk]*fj+diag)/2)), numBins)
				idx := bin*NumAngles + kk
				v := mag * weight
				g.Buf[idx] += v
				if g.Buf[idx] > maxGrad {
					maxGrad = g.Buf[idx]
				}
			}

			cast(k, 1.0/3.0)
			for off := 1; off <= GradientError; off++ {
				weight := 1 / (float32(off*off) + 3)
				cast((k+off)%NumAngles, weight)
				cast((k-off+NumAngles)%NumAngles, weight)
			}
		}
	}

	g.MaxGrad = maxGrad
	area := float32((h - 2) * (w - 2))
	if area > 0 {
		g.AvgGrad = totalGrad / area
	}
	return g
}
