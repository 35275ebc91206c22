// Package document exposes the two operations at the detector's boundary:
// finding a document quad in a photograph, and rectifying a chosen quad
// region to a flat output raster.
package document

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/AnyUserName/docscan-cli/internal/hough"
	"github.com/AnyUserName/docscan-cli/internal/imageops"
	"github.com/AnyUserName/docscan-cli/internal/quadassembly"
	"github.com/AnyUserName/docscan-cli/internal/rectify"
)

// ErrNoDocument describes the case where FindDocument ran to completion
// without ever assembling a quad, not that anything went wrong.
// FindDocument and FindDocumentScored report that case with ok == false;
// nothing in this package returns ErrNoDocument.
var ErrNoDocument = errors.New("docscan: no document quad found")

// downscaleTarget is the short-side pixel count a full-resolution image is
// downscaled toward before detection.
const downscaleTarget = 360

// InitialThreshold and DefaultTries mirror the build-time constants
// spec.md section 6 calls out: the first adaptive threshold attempt, and
// the retry budget used when FindDocument's caller passes tries <= 0.
// They are variables so internal/config can override them from
// docscan.yaml.
var (
	InitialThreshold = float32(0.20)
	DefaultTries     = 4
)

// FindDocument locates the most document-like quadrilateral in rgba and
// returns its four corners in source-image coordinates. ok is false if no
// quad survived assembly on any attempt; the retry loop ends when the
// budget is exhausted or, earlier, after the first attempt whose line list
// reached quadassembly.MaxLines.
func FindDocument(rgba *imageops.RGBAImage, tries int) (quad quadassembly.Quad, ok bool) {
	found, ok := FindDocumentScored(rgba, tries)
	if !ok {
		return quadassembly.Quad{}, false
	}
	return found.Quad, true
}

// FindDocumentScored is FindDocument plus the winning quad's assembly
// score, for callers (such as a manifest writer) that want to record it.
func FindDocumentScored(rgba *imageops.RGBAImage, tries int) (quadassembly.ScoredQuad, bool) {
	if tries <= 0 {
		tries = DefaultTries
	}

	minSide := rgba.Width
	if rgba.Height < minSide {
		minSide = rgba.Height
	}
	f := minSide / downscaleTarget
	if f < 2 {
		f = 1
	}

	gray := imageops.Grayscale(rgba)
	working := gray
	if f > 1 {
		working = imageops.Downscale(gray, float32(f))
	}
	blurred := imageops.Gaussian(working)
	votes := hough.Vote(blurred)

	threshold := InitialThreshold
	for attempt := 0; attempt < tries; attempt++ {
		lines := hough.Extract(votes, threshold)

		forceStop := false
		if len(lines) >= quadassembly.MaxLines {
			lines = lines[:quadassembly.MaxLines]
			forceStop = true
		}

		scored := quadassembly.Assemble(votes, lines)
		if len(scored) > 0 {
			best := scored[0]
			best.Quad = scaleQuad(quadassembly.CanonicalOrder(best.Quad), float32(f))
			return best, true
		}
		if forceStop {
			break
		}
		threshold /= 2
	}

	return quadassembly.ScoredQuad{}, false
}

func scaleQuad(q quadassembly.Quad, f float32) quadassembly.Quad {
	if f == 1 {
		return q
	}
	scale := func(p quadassembly.Point) quadassembly.Point {
		return quadassembly.Point{X: p.X * f, Y: p.Y * f}
	}
	return quadassembly.Quad{A: scale(q.A), B: scale(q.B), C: scale(q.C), D: scale(q.D)}
}

// ExtractDocument perspective-resamples rgba through the homography that
// carries quad onto a targetWidth x targetHeight output rectangle. When
// targetHeight is 0 it is derived from the quad's aspect ratio, using the
// same side/top side-length sums as corner ordering.
func ExtractDocument(rgba *imageops.RGBAImage, quad quadassembly.Quad, targetWidth, targetHeight int) *imageops.RGBAImage {
	if targetHeight <= 0 {
		side := dist(quad.A, quad.B) + dist(quad.C, quad.D)
		top := dist(quad.B, quad.C) + dist(quad.D, quad.A)
		if top <= 0 {
			top = 1
		}
		targetHeight = int(side / top * float32(targetWidth))
		if targetHeight < 1 {
			targetHeight = 1
		}
	}
	return rectify.Perspective(rgba, quad, targetWidth, targetHeight)
}

func dist(a, b quadassembly.Point) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math32.Sqrt(dx*dx + dy*dy)
}
