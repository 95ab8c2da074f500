package vgo

import "github.com/chewxy/math32"

// Point represents a 2D point or vector in float32, matching the vec2
// layout the GPU evaluator consumes.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of the vector.
func (p Point) Length() float32 {
	return math32.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float32 {
	return p.Sub(q).Length()
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) * 0.5, Y: (p.Y + q.Y) * 0.5}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// minPoint returns the component-wise minimum of two points.
func minPoint(p, q Point) Point {
	return Point{X: math32.Min(p.X, q.X), Y: math32.Min(p.Y, q.Y)}
}

// maxPoint returns the component-wise maximum of two points.
func maxPoint(p, q Point) Point {
	return Point{X: math32.Max(p.X, q.X), Y: math32.Max(p.Y, q.Y)}
}
