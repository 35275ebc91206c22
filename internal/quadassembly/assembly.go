package quadassembly

import (
	"sort"

	"github.com/AnyUserName/docscan-cli/internal/hough"
)

// MaxLines is the hard cap on input line count the caller must enforce
// before calling Assemble; complexity is O(L^4). A variable rather than a
// constant so internal/config can override it from docscan.yaml.
var MaxLines = 20

// pairKey identifies one of the six unordered pairs among four line
// indices 0..3 (standing for l1..l4 in the topology table).
type pairKey struct{ i, j int }

// Assemble enumerates unordered quadruples of lines, keeps those whose six
// pairwise intersections match one of the three valid corner topologies,
// scores each resulting quad, and returns the list sorted by score
// descending. lines should already be capped to MaxLines by the caller.
func Assemble(g *hough.GradientVotes, lines []hough.Line) []ScoredQuad {
	n := len(lines)
	var results []ScoredQuad

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for m := k + 1; m < n; m++ {
					quad := []hough.Line{lines[i], lines[j], lines[k], lines[m]}
					if sq, ok := tryAssemble(g, quad); ok {
						results = append(results, sq)
					}
				}
			}
		}
	}

	sort.Slice(results, func(a, b int) bool { return results[a].Score > results[b].Score })
	return results
}

// cornerSpec describes, for one of the three valid topologies, which
// pairwise intersections become the quad's corners a,b,c,d and which
// lines bound each successive side a->b, b->c, c->d, d->a. Indices 0..3
// stand for l1..l4 in the input quadruple.
type cornerSpec struct {
	corners [4]pairKey // intersections giving a, b, c, d
	sides   [4]int     // line index bounding a->b, b->c, c->d, d->a
}

var (
	specTTF = cornerSpec{
		corners: [4]pairKey{{0, 1}, {0, 2}, {2, 3}, {1, 3}},
		sides:   [4]int{0, 2, 3, 1},
	}
	specTFT = cornerSpec{
		corners: [4]pairKey{{0, 1}, {1, 2}, {2, 3}, {0, 3}},
		sides:   [4]int{1, 2, 3, 0},
	}
	specFTT = cornerSpec{
		corners: [4]pairKey{{0, 2}, {1, 2}, {1, 3}, {0, 3}},
		sides:   [4]int{2, 1, 3, 0},
	}
)

// tryAssemble checks the topology of one quadruple of lines and, if valid,
// builds and scores the resulting quad.
func tryAssemble(g *hough.GradientVotes, l []hough.Line) (ScoredQuad, bool) {
	diag, w, h := g.Diag, g.Width, g.Height

	type pr struct {
		pt     Point
		inside bool
	}
	pair := func(i, j int) pr {
		pt, inside := intersect(l[i], l[j], diag, w, h)
		return pr{pt, inside}
	}

	p12 := pair(0, 1)
	p13 := pair(0, 2)
	p23 := pair(1, 2)

	var spec cornerSpec
	switch {
	case p12.inside && p13.inside && !p23.inside:
		spec = specTTF
	case p12.inside && !p13.inside && p23.inside:
		spec = specTFT
	case !p12.inside && p13.inside && p23.inside:
		spec = specFTT
	default:
		return ScoredQuad{}, false
	}

	p14 := pair(0, 3)
	p24 := pair(1, 3)
	p34 := pair(2, 3)

	lookup := func(k pairKey) pr {
		switch {
		case k == pairKey{0, 1}:
			return p12
		case k == pairKey{0, 2}:
			return p13
		case k == pairKey{0, 3}:
			return p14
		case k == pairKey{1, 2}:
			return p23
		case k == pairKey{1, 3}:
			return p24
		case k == pairKey{2, 3}:
			return p34
		}
		return pr{}
	}

	switch spec {
	case specTTF:
		if p14.inside || !p24.inside || !p34.inside {
			return ScoredQuad{}, false
		}
	case specTFT:
		if !p14.inside || p24.inside || !p34.inside {
			return ScoredQuad{}, false
		}
	case specFTT:
		if !p14.inside || !p24.inside || p34.inside {
			return ScoredQuad{}, false
		}
	}

	quad := Quad{
		A: lookup(spec.corners[0]).pt,
		B: lookup(spec.corners[1]).pt,
		C: lookup(spec.corners[2]).pt,
		D: lookup(spec.corners[3]).pt,
	}

	sideLines := [4]hough.Line{
		l[spec.sides[0]],
		l[spec.sides[1]],
		l[spec.sides[2]],
		l[spec.sides[3]],
	}

	score := scoreQuad(g, quad, sideLines)
	if score <= 0 {
		return ScoredQuad{}, false
	}
	return ScoredQuad{Quad: quad, Score: score}, true
}
