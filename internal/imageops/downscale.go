package imageops

// Downscale reduces an Image by an integer-or-fractional factor `by >= 1`
// using area-weighted averaging: each output pixel is the average of the
// source rectangle it covers, with fractional source pixels along the
// rectangle's edges contributing proportionally to their coverage. The
// 1-pixel border is replicated from the adjacent interior after the
// interior is computed, rather than computing a partial kernel there.
func Downscale(src *Image, by float32) *Image {
	if by < 1 {
		by = 1
	}
	width, height := src.Width, src.Height
	overBy := float32(1) / by
	dw := int(float32(width) * overBy)
	dh := int(float32(height) * overBy)
	data := make([]float32, dw*dh)
	overBy2 := overBy * overBy

	mi := dh - 1
	mj := dw - 1
	source := src.Data

	for i := 1; i < mi; i++ {
		si := float32(i) * by
		sie := si + by
		sif := int(si)
		sic := sif + 1
		sief := int(sie)
		sir := float32(sic) - si
		sire := sie - float32(sief)
		ib := i * dw

		for j := 1; j < mj; j++ {
			sj := float32(j) * by
			sje := sj + by
			sjf := int(sj)
			sjc := sjf + 1
			sjef := int(sje)
			sjr := float32(sjc) - sj
			sjre := sje - float32(sjef)

			var sum float32
			for rsi := sic; rsi < sief; rsi++ {
				rowBase := rsi * width
				for rsj := sjc; rsj < sjef; rsj++ {
					sum += source[rowBase+rsj]
				}
			}
			for rsj := sjc; rsj < sjef; rsj++ {
				sum += source[sif*width+rsj]*sir + source[sief*width+rsj]*sire
			}
			for rsi := sic; rsi < sief; rsi++ {
				sum += source[rsi*width+sjf]*sjr + source[rsi*width+sjef]*sjre
			}
			sum += source[sif*width+sjf] * sir * sjr
			sum += source[sif*width+sjef] * sir * sjre
			sum += source[sief*width+sjf] * sire * sjr
			sum += source[sief*width+sjef] * sire * sjre

			data[ib+j] = sum * overBy2
		}
	}

	for i := 1; i < mi; i++ {
		ib := i * dw
		ibe := ib + mj
		data[ib] = data[ib+1]
		data[ibe] = data[ibe-1]
	}

	mibe := mi * dw
	mib := mibe - dw
	for j := 0; j < dw; j++ {
		data[j] = data[dw+j]
		data[mibe+j] = data[mib+j]
	}

	return &Image{Data: data, Width: dw, Height: dh}
}
