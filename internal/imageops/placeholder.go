package imageops

// placeholderGrid is the side length of the average-color grid PlaceholderHash
// produces. 4x4 is coarse enough to stay tiny but keeps the dominant color
// regions of a rectified document (page vs. background) distinguishable.
const placeholderGrid = 4

// PlaceholderHash returns a small content descriptor for img: its aspect
// ratio packed into one byte, followed by a placeholderGrid x placeholderGrid
// grid of average RGB colors. It lets a manifest consumer render a rough
// preview before the real encoded output is fetched, using the same
// area-averaging idea as Downscale but computed directly over RGB triplets
// since the output doesn't need Downscale's fractional-edge precision.
func PlaceholderHash(img *RGBAImage) []byte {
	out := make([]byte, 1+placeholderGrid*placeholderGrid*3)
	out[0] = aspectByte(img.Width, img.Height)

	idx := 1
	for cy := 0; cy < placeholderGrid; cy++ {
		y0, y1 := cellSpan(cy, placeholderGrid, img.Height)
		for cx := 0; cx < placeholderGrid; cx++ {
			x0, x1 := cellSpan(cx, placeholderGrid, img.Width)
			r, g, b := averageCell(img, x0, x1, y0, y1)
			out[idx], out[idx+1], out[idx+2] = r, g, b
			idx += 3
		}
	}
	return out
}

// HasAlpha reports whether any pixel in img has non-opaque alpha.
func HasAlpha(img *RGBAImage) bool {
	for i := 3; i < len(img.Data); i += 4 {
		if img.Data[i] != 255 {
			return true
		}
	}
	return false
}

func cellSpan(cell, cells, size int) (int, int) {
	start := cell * size / cells
	end := (cell + 1) * size / cells
	if end <= start {
		end = start + 1
	}
	if end > size {
		end = size
	}
	return start, end
}

func averageCell(img *RGBAImage, x0, x1, y0, y1 int) (byte, byte, byte) {
	var rSum, gSum, bSum, n uint32
	for y := y0; y < y1; y++ {
		row := y * img.Width * 4
		for x := x0; x < x1; x++ {
			off := row + x*4
			rSum += uint32(img.Data[off])
			gSum += uint32(img.Data[off+1])
			bSum += uint32(img.Data[off+2])
			n++
		}
	}
	if n == 0 {
		return 0, 0, 0
	}
	return byte(rSum / n), byte(gSum / n), byte(bSum / n)
}

// aspectByte packs width/height into a single byte (0-255) so the
// placeholder can be reconstructed to roughly the right shape without
// carrying the full integer dimensions.
func aspectByte(w, h int) byte {
	if h == 0 {
		return 0
	}
	ratio := float64(w) / float64(h)
	v := int(ratio * 32)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return byte(v)
}
