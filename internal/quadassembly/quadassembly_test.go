package quadassembly

import (
	"math"
	"testing"

	"github.com/AnyUserName/docscan-cli/internal/hough"
)

func TestCanonicalOrderIsIdempotent(t *testing.T) {
	q := Quad{
		A: Point{X: 10, Y: 90},
		B: Point{X: 10, Y: 10},
		C: Point{X: 90, Y: 15},
		D: Point{X: 90, Y: 85},
	}
	once := CanonicalOrder(q)
	twice := CanonicalOrder(once)
	if once != twice {
		t.Fatalf("CanonicalOrder not idempotent: once=%v twice=%v", once, twice)
	}
}

func TestInsideDiskRejectsParallelLines(t *testing.T) {
	// Two lines with identical angle bins are parallel; the solved
	// intersection must be non-finite and therefore fail the inside test.
	a := hough.Line{AngleBin: 40, DistBin: 10, Score: 1}
	b := hough.Line{AngleBin: 40, DistBin: 50, Score: 1}
	pt, inside := intersect(a, b, 200, 100, 100)
	if inside {
		t.Fatalf("parallel lines should never be classified inside, got point %v", pt)
	}
	if !math.IsNaN(float64(pt.X)) && !math.IsInf(float64(pt.X), 0) {
		t.Fatalf("expected non-finite intersection for parallel lines, got %v", pt.X)
	}
}

func TestAssembleReturnsEmptyForTooFewLines(t *testing.T) {
	g := &hough.GradientVotes{Width: 100, Height: 100, Diag: 141, NumBins: 141, GradBuf: make([]float32, 100*100)}
	lines := []hough.Line{{AngleBin: 0, DistBin: 10, Score: 5}, {AngleBin: 64, DistBin: 10, Score: 5}}
	results := Assemble(g, lines)
	if len(results) != 0 {
		t.Fatalf("expected no quads from fewer than 4 lines, got %d", len(results))
	}
}
