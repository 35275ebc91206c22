package quadassembly

import "github.com/chewxy/math32"

func dist(a, b Point) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math32.Sqrt(dx*dx + dy*dy)
}

// CanonicalOrder relabels a quad's corners so that a->b is its left edge,
// b->c the top, c->d the right, and d->a the bottom. It is a pure
// relabeling; the quad's geometry is unchanged, and it is idempotent.
func CanonicalOrder(q Quad) Quad {
	side := dist(q.A, q.B) + dist(q.C, q.D)
	top := dist(q.B, q.C) + dist(q.D, q.A)

	var tall1a, tall1b, tall2a, tall2b Point
	if side > top {
		tall1a, tall1b = q.A, q.B
		tall2a, tall2b = q.C, q.D
	} else {
		tall1a, tall1b = q.B, q.C
		tall2a, tall2b = q.D, q.A
	}

	mid1 := (tall1a.X + tall1b.X) / 2
	mid2 := (tall2a.X + tall2b.X) / 2

	var leftA, leftB, rightA, rightB Point
	if mid1 <= mid2 {
		leftA, leftB = tall1a, tall1b
		rightA, rightB = tall2a, tall2b
	} else {
		leftA, leftB = tall2a, tall2b
		rightA, rightB = tall1a, tall1b
	}

	var a, b Point
	if leftA.Y > leftB.Y {
		a, b = leftA, leftB
	} else {
		a, b = leftB, leftA
	}

	// c is the right-edge corner adjacent to b (matching y-side), d the
	// remaining one, so a->b->c->d->a stays a consistent winding.
	var c, d Point
	if dist(b, rightA) < dist(b, rightB) {
		c, d = rightA, rightB
	} else {
		c, d = rightB, rightA
	}

	return Quad{A: a, B: b, C: c, D: d}
}
