package quadassembly

import "github.com/AnyUserName/docscan-cli/internal/hough"

// intersect solves for the point where two Hough lines (in their
// normal-form coordinates SIN[k]*x + COS[k]*y = 2*bin - diag) cross, and
// reports whether that point falls inside the inside-ish disk around the
// image center. For parallel lines the solve's denominator is zero, x and
// y become non-finite, and the disk comparison is false by construction
// (NaN comparisons never succeed) -- no explicit parallel check is needed.
func intersect(a, b hough.Line, diag float32, width, height int) (Point, bool) {
	sp, cp := hough.SIN[a.AngleBin], hough.COS[a.AngleBin]
	sq, cq := hough.SIN[b.AngleBin], hough.COS[b.AngleBin]
	rp := 2*float32(a.DistBin) - diag
	rq := 2*float32(b.DistBin) - diag

	det := sp*cq - sq*cp
	x := (rp*cq - rq*cp) / det
	y := (sp*rq - sq*rp) / det

	xr := x/float32(width) - 0.5
	yr := y/float32(height) - 0.5
	inside := xr*xr+yr*yr <= 0.55

	return Point{X: x, Y: y}, inside
}
