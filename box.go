package vgo

import "math"

// Box is an axis-aligned rectangle given by its low and high corners.
// A live box satisfies Lo.X < Hi.X and Lo.Y < Hi.Y; anything else
// represents a fully clipped or degenerate region and produces no
// geometry when drawn.
type Box struct {
	Lo, Hi Point
}

// EmptyBox returns the inverted box used to represent "nothing": any
// point expanded into it becomes the whole box, and it is degenerate
// until then.
func EmptyBox() Box {
	return Box{
		Lo: Point{X: math.MaxFloat32, Y: math.MaxFloat32},
		Hi: Point{},
	}
}

// IsDegenerate reports whether the box encloses no area.
func (b Box) IsDegenerate() bool {
	return b.Lo.X >= b.Hi.X || b.Lo.Y >= b.Hi.Y
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float32 {
	return b.Hi.X - b.Lo.X
}

// Height returns the vertical extent of the box.
func (b Box) Height() float32 {
	return b.Hi.Y - b.Lo.Y
}

// Center returns the midpoint of the box.
func (b Box) Center() Point {
	return b.Lo.Midpoint(b.Hi)
}

// Intersect returns the overlap of two boxes. The result may be
// degenerate when the boxes do not overlap.
func (b Box) Intersect(o Box) Box {
	return Box{
		Lo: maxPoint(b.Lo, o.Lo),
		Hi: minPoint(b.Hi, o.Hi),
	}
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Lo: minPoint(b.Lo, o.Lo),
		Hi: maxPoint(b.Hi, o.Hi),
	}
}

// ExpandPoint grows the box to include p.
func (b Box) ExpandPoint(p Point) Box {
	return Box{
		Lo: minPoint(b.Lo, p),
		Hi: maxPoint(b.Hi, p),
	}
}

// Inflate grows the box by d on all four sides.
func (b Box) Inflate(d float32) Box {
	return Box{
		Lo: Point{X: b.Lo.X - d, Y: b.Lo.Y - d},
		Hi: Point{X: b.Hi.X + d, Y: b.Hi.Y + d},
	}
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Lo.X && p.X < b.Hi.X && p.Y >= b.Lo.Y && p.Y < b.Hi.Y
}
