package vgo

import "github.com/chewxy/math32"

// Matrix is a 4x4 transform in column-major order, the layout the GPU
// consumes directly. Element (row r, column c) lives at index c*4+r.
//
// Only the 2D affine part participates in CPU-side point transforms; the
// full matrix is uploaded so the evaluator can apply the same transform
// (or its inverse) per pixel.
type Matrix [16]float32

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// matrixTranslate returns a translation matrix.
func matrixTranslate(x, y, z float32) Matrix {
	m := Identity()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// matrixScale returns a scale matrix.
func matrixScale(x, y, z float32) Matrix {
	m := Identity()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// matrixRotateZ returns a rotation about the Z axis by angle radians.
func matrixRotateZ(angle float32) Matrix {
	sin, cos := math32.Sincos(angle)
	m := Identity()
	m[0] = cos
	m[1] = sin
	m[4] = -sin
	m[5] = cos
	return m
}

// matrixRotate returns a rotation by angle radians about an arbitrary
// axis. The axis is normalized here so callers can pass any non-zero
// vector.
func matrixRotate(angle, x, y, z float32) Matrix {
	length := math32.Sqrt(x*x + y*y + z*z)
	if length == 0 {
		return Identity()
	}
	x, y, z = x/length, y/length, z/length

	sin, cos := math32.Sincos(angle)
	t := 1 - cos

	return Matrix{
		t*x*x + cos, t*x*y + sin*z, t*x*z - sin*y, 0,
		t*x*y - sin*z, t*y*y + cos, t*y*z + sin*x, 0,
		t*x*z + sin*y, t*y*z - sin*x, t*z*z + cos, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the product m * o.
func (m Matrix) Mul(o Matrix) Matrix {
	var r Matrix
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = m[row]*o[c*4] +
				m[4+row]*o[c*4+1] +
				m[8+row]*o[c*4+2] +
				m[12+row]*o[c*4+3]
		}
	}
	return r
}

// TransformPoint applies the matrix to a 2D point (z=0, w=1).
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m[0]*p.X + m[4]*p.Y + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[13],
	}
}

// IsIdentity reports whether m is the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// transformBox maps a box through the matrix and returns the axis-aligned
// box of the four transformed corners. Conservative under rotation.
func (m Matrix) transformBox(b Box) Box {
	if m.IsIdentity() {
		return b
	}
	out := EmptyBox()
	out.Hi = Point{X: -math32.MaxFloat32, Y: -math32.MaxFloat32}
	for _, corner := range [4]Point{
		b.Lo,
		{X: b.Hi.X, Y: b.Lo.Y},
		b.Hi,
		{X: b.Lo.X, Y: b.Hi.Y},
	} {
		out = out.ExpandPoint(m.TransformPoint(corner))
	}
	return out
}
