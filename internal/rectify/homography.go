// Package rectify builds the homography mapping an output rectangle onto a
// detected document quad and bilinearly resamples the source image through
// it, producing a flat rectified raster.
package rectify

import "github.com/AnyUserName/docscan-cli/internal/quadassembly"

// mat3 is a row-major 3x3 matrix.
type mat3 [9]float32

func mul(a, b mat3) mat3 {
	var r mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += a[row*3+k] * b[k*3+col]
			}
			r[row*3+col] = sum
		}
	}
	return r
}

func mulv(m mat3, v [3]float32) [3]float32 {
	return [3]float32{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// adj computes the adjugate of a 3x3 matrix -- its inverse scaled by the
// determinant. Using the adjugate instead of dividing out the determinant
// avoids a near-zero-determinant division; the scale factor is harmless
// because the caller always normalizes by the homogeneous w coordinate.
func adj(m mat3) mat3 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]
	return mat3{
		e*i - f*h, c*h - b*i, b*f - c*e,
		f*g - d*i, a*i - c*g, c*d - a*f,
		d*h - e*g, b*g - a*h, a*e - b*d,
	}
}

// basisToPoints builds the matrix mapping the canonical basis points
// (1,0,0), (0,1,0), (0,0,1), and (1,1,1) onto p1, p2, p3, p4 respectively
// (up to the points' homogeneous scale).
func basisToPoints(p1, p2, p3, p4 quadassembly.Point) mat3 {
	a := mat3{
		p1.X, p2.X, p3.X,
		p1.Y, p2.Y, p3.Y,
		1, 1, 1,
	}
	v := mulv(adj(a), [3]float32{p4.X, p4.Y, 1})
	return mat3{
		a[0] * v[0], a[1] * v[1], a[2] * v[2],
		a[3] * v[0], a[4] * v[1], a[5] * v[2],
		a[6] * v[0], a[7] * v[1], a[8] * v[2],
	}
}

// createProjector builds the homography carrying src's four basis points
// onto dst's four basis points, in matching order.
func createProjector(src, dst [4]quadassembly.Point) mat3 {
	msrc := basisToPoints(src[0], src[1], src[2], src[3])
	mdst := basisToPoints(dst[0], dst[1], dst[2], dst[3])
	return mul(mdst, adj(msrc))
}
