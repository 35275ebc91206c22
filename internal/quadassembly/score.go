package quadassembly

import (
	"github.com/chewxy/math32"

	"github.com/AnyUserName/docscan-cli/internal/hough"
)

// edgeLengthPenalty and edgeScorePower are the alpha and beta exponents of
// the edge-evidence score. spec.md gives ranges (alpha in [0.3, 0.6], beta
// in [2, 3]) rather than fixed values; beta is its range's midpoint and
// alpha is 0.5, inside its range but above the midpoint 0.45.
const (
	edgeLengthPenalty = 0.5
	edgeScorePower    = 2.5
	angleScorePower   = -0.1
	lineScorePower    = 0.1
)

// scoreQuad computes a ScoredQuad's score as the product of edge evidence,
// right-angle closeness, and underlying line strength. sides holds the
// lines bounding a->b, b->c, c->d, d->a in traversal order.
func scoreQuad(g *hough.GradientVotes, q Quad, sides [4]hough.Line) float32 {
	corners := [4]Point{q.A, q.B, q.C, q.D}

	var edgeSum float32
	for i := 0; i < 4; i++ {
		from, to := corners[i], corners[(i+1)%4]
		sum, length := edgeEvidence(g, from, to)
		if length == 0 {
			continue
		}
		contribution := sum * math32.Pow(length, -edgeLengthPenalty)
		if contribution > 0 {
			edgeSum += contribution
		}
	}
	if edgeSum <= 0 {
		return 0
	}
	edgeScore := math32.Pow(edgeSum, edgeScorePower)

	var eSumSq float32
	for i := 0; i < 4; i++ {
		a := sides[i].AngleBin
		b := sides[(i+1)%4].AngleBin
		diff := ((a - b) % hough.NumAngles + hough.NumAngles) % hough.NumAngles
		err := math32.Abs(float32(diff) - 128)
		e := err*err + 3
		eSumSq += e * e
	}
	angleScore := math32.Pow(eSumSq, angleScorePower)

	lineProduct := sides[0].Score * sides[1].Score * sides[2].Score * sides[3].Score
	if lineProduct < 0 {
		lineProduct = 0
	}
	lineScore := math32.Pow(lineProduct, lineScorePower)

	return edgeScore * angleScore * lineScore
}

// edgeEvidence rasterizes the segment from->to with Bresenham's algorithm
// and sums grad_buf[y,x]-avg_grad over in-bounds pixels, returning that sum
// and the segment's taxicab length |dx|+|dy|.
func edgeEvidence(g *hough.GradientVotes, from, to Point) (sum float32, length float32) {
	x0, y0 := int(math32.Round(from.X)), int(math32.Round(from.Y))
	x1, y1 := int(math32.Round(to.X)), int(math32.Round(to.Y))

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	length = float32(dx + dy)

	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	x, y := x0, y0
	for {
		if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
			sum += g.GradBuf[y*g.Width+x] - g.AvgGrad
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return sum, length
}
