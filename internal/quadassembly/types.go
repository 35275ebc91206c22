// Package quadassembly enumerates line quadruples with valid document-quad
// topology, scores each by edge evidence, corner angle, and line strength,
// and returns them sorted by score.
package quadassembly

// Point is a coordinate in image space. It may lie outside the image
// bounds; callers that need a guaranteed-interior point should check.
type Point struct {
	X, Y float32
}

// Quad is four corners in traversal order a, b, c, d.
type Quad struct {
	A, B, C, D Point
}

// ScoredQuad pairs a Quad with its assembly score. Score is always >= 0.
type ScoredQuad struct {
	Quad  Quad
	Score float32
}
