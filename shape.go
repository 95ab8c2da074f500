package vgo

import (
	"fmt"

	"github.com/chewxy/math32"
)

// ShapeKind selects the signed-distance primitive a Shape record encodes.
type ShapeKind uint32

const (
	ShapeNone ShapeKind = iota
	ShapeCircle
	ShapeBox
	ShapeBlurredBox
	ShapeArc
	ShapeBezier
	ShapePie
	ShapePath
	ShapePolygon
	ShapeGlyph
)

// String returns a human-readable name for the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeNone:
		return "None"
	case ShapeCircle:
		return "Circle"
	case ShapeBox:
		return "Box"
	case ShapeBlurredBox:
		return "BlurredBox"
	case ShapeArc:
		return "Arc"
	case ShapeBezier:
		return "Bezier"
	case ShapePie:
		return "Pie"
	case ShapePath:
		return "Path"
	case ShapePolygon:
		return "Polygon"
	case ShapeGlyph:
		return "Glyph"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(k))
	}
}

// OutlineKind selects how the evaluator renders a shape's boundary.
type OutlineKind uint32

const (
	// OutlineNone fills the shape.
	OutlineNone OutlineKind = iota
	// OutlineStroke renders a stroke of Shape.Width centered on the boundary.
	OutlineStroke
	// OutlineGlow renders a glow extending Shape.Width outward.
	OutlineGlow
)

// maxChainLength bounds a composition chain. The GPU evaluator walks at
// most this many links per pixel, so longer chains could never render;
// LinkShapes rejects them outright.
const maxChainLength = 16

// CombineMode determines how a chained shape's signed distance combines
// with the shape that links to it.
type CombineMode uint32

const (
	CombineUnion CombineMode = iota
	CombineSubtraction
	CombineIntersection
	CombineXor
)

// String returns a human-readable name for the combine mode.
func (m CombineMode) String() string {
	switch m {
	case CombineUnion:
		return "Union"
	case CombineSubtraction:
		return "Subtraction"
	case CombineIntersection:
		return "Intersection"
	case CombineXor:
		return "Xor"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(m))
	}
}

// Shape is a GPU-evaluated signed-distance primitive. The field order,
// padding and alignment are a wire contract with the fragment evaluator,
// which indexes the uploaded shape array by the vertex Shape field; see
// the layout assertions in layout_test.go. Total size is 80 bytes.
//
// The meaning of CV0..CV2, Radius and Width depends on Kind; use the
// Make* constructors rather than filling records by hand.
//
// Next holds the arena index of a chained shape, with 0 meaning no chain.
// Index 0 of the shape arena is a permanently reserved placeholder record
// so the sentinel can never collide with real geometry.
type Shape struct {
	Kind    ShapeKind
	Next    uint32
	CV0     Point
	CV1     Point
	CV2     Point
	Radius  [4]float32
	Width   float32
	Start   uint32
	Count   uint32
	Outline OutlineKind
	XForm   uint32
	Mode    CombineMode
	_       [2]uint32
}

// MakeCircle creates a circle shape of the given center and radius.
func MakeCircle(center Point, radius float32) Shape {
	return Shape{
		Kind:   ShapeCircle,
		CV0:    center,
		Radius: [4]float32{radius, 0, 0, 0},
	}
}

// MakeBox creates a box shape from its corners with independent corner
// radii ordered top-left, top-right, bottom-right, bottom-left. Radii are
// clamped so opposing corners cannot overlap.
func MakeBox(lo, hi Point, radius [4]float32) Shape {
	limit := math32.Min(hi.X-lo.X, hi.Y-lo.Y) * 0.5
	for i := range radius {
		radius[i] = math32.Max(0, math32.Min(radius[i], limit))
	}
	return Shape{
		Kind:   ShapeBox,
		CV0:    lo,
		CV1:    hi,
		Radius: radius,
	}
}

// MakeBlurredBox creates a gaussian-blurred box, used for drop shadows.
// CV0 is the box center, CV1 its half-extent and Width the blur radius
// (one standard deviation of the kernel).
func MakeBlurredBox(lo, hi Point, blur float32, radius [4]float32) Shape {
	return Shape{
		Kind:   ShapeBlurredBox,
		CV0:    lo.Midpoint(hi),
		CV1:    hi.Sub(lo).Mul(0.5),
		Radius: radius,
		Width:  blur,
	}
}

// MakeArc creates an open ring segment from fromAngle to toAngle (radians)
// between an inner and outer radius. The half-angle sine/cosine pairs are
// precomputed so the evaluator avoids trigonometry.
func MakeArc(center Point, fromAngle, toAngle, inner, outer float32) Shape {
	s := arcAngles(fromAngle, toAngle)
	s.Kind = ShapeArc
	s.CV0 = center
	s.Radius = [4]float32{inner, outer, 0, 0}
	return s
}

// MakePie creates a filled circular sector from fromAngle to toAngle
// (radians) of the given radius.
func MakePie(center Point, fromAngle, toAngle, radius float32) Shape {
	s := arcAngles(fromAngle, toAngle)
	s.Kind = ShapePie
	s.CV0 = center
	s.Radius = [4]float32{radius, 0, 0, 0}
	return s
}

// arcAngles normalizes the angle pair and stores the bisector direction
// in CV1 and the half-span in CV2, both as (sin, cos).
func arcAngles(from, to float32) Shape {
	if from > to {
		from, to = to, from
	}
	half := (to - from) * 0.5
	bisector := math32.Pi - (from + half)

	var s Shape
	s.CV1.X, s.CV1.Y = math32.Sincos(bisector)
	s.CV2.X, s.CV2.Y = math32.Sincos(half)
	return s
}

// MakeBezier creates a stroked quadratic bezier through the three control
// points with the given stroke width.
func MakeBezier(a, control, b Point, width float32) Shape {
	return Shape{
		Kind:  ShapeBezier,
		CV0:   a,
		CV1:   control,
		CV2:   b,
		Width: width,
	}
}

// MakeGlyph creates a glyph shape covering the screen-space rectangle
// lo..hi. The matching atlas region is carried by an AtlasSamplePaint.
func MakeGlyph(lo, hi Point) Shape {
	return Shape{
		Kind: ShapeGlyph,
		CV0:  lo,
		CV1:  hi,
	}
}

// Stroked returns a copy of the shape rendered as a stroke of the given
// width centered on its boundary.
func (s Shape) Stroked(width float32) Shape {
	s.Outline = OutlineStroke
	s.Width = width
	return s
}

// Glowing returns a copy of the shape rendered as a glow extending width
// units outward from its boundary.
func (s Shape) Glowing(width float32) Shape {
	s.Outline = OutlineGlow
	s.Width = width
	return s
}
