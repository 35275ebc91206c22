package imageops

// 5x5 separable-equivalent Gaussian weights, summing to 1.
const (
	gCenter    = 0.09434
	gRing1Orth = 0.07547
	gRing1Diag = 0.0566
	gRing2Orth = 0.03145
	gRing2Diag1 = 0.02516
	gRing2Diag  = 0.01258
)

// Gaussian applies the fixed 5x5 kernel described in spec.md section 4.5.
// The 2-pixel border is replicated outward from the interior rather than
// computed with a partial kernel.
func Gaussian(src *Image) *Image {
	width, height := src.Width, src.Height
	source := src.Data
	data := make([]float32, len(source))

	wm := width - 2
	hm := height - 2
	e := 1
	s := width
	sw := s - e
	se := s + e
	e2 := e + e
	s2 := s + s
	sw2 := sw + sw
	ssw := s + sw
	sww := sw - e
	se2 := se + se
	sse := s + se
	see := e + se

	for i := 2; i < hm; i++ {
		ib := i * width
		for j := 2; j < wm; j++ {
			bp := ib + j
			data[bp] = (source[bp-se2]+source[bp-sw2]+source[bp+sw2]+source[bp+se2])*gRing2Diag +
				(source[bp-sse]+source[bp-ssw]+source[bp-see]+source[bp-sww]+
					source[bp+sww]+source[bp+see]+source[bp+ssw]+source[bp+sse])*gRing2Diag1 +
				(source[bp-s2]+source[bp-e2]+source[bp+e2]+source[bp+s2])*gRing2Orth +
				(source[bp-se]+source[bp-sw]+source[bp+sw]+source[bp+se])*gRing1Diag +
				(source[bp-s]+source[bp-e]+source[bp+e]+source[bp+s])*gRing1Orth +
				source[bp]*gCenter
		}
	}

	for i := 2; i < hm; i++ {
		ib := i * width
		ibe := ib + wm
		val := data[ib+2]
		data[ib+1] = val
		data[ib] = val
		val = data[ibe-1]
		data[ibe] = val
		data[ibe+1] = val
	}

	hmb := hm * width
	hmb2 := hmb - width
	hmbe := hmb + width
	w2 := width + width
	for j := 0; j < width; j++ {
		val := data[w2+j]
		data[width+j] = val
		data[j] = val
		val = data[hmb2+j]
		data[hmb+j] = val
		data[hmbe+j] = val
	}

	return &Image{Data: data, Width: width, Height: height}
}
