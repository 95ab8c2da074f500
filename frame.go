package vgo

import "fmt"

// Frame owns all per-frame scene state: four parallel append-only arenas
// (shapes, paints, control points, transforms) plus the output vertex and
// index streams and the draw-call list. Indices returned by the append
// methods are stable until the next Reset; nothing is ever removed within
// a frame.
//
// The slices are exported for upload: a renderer hands each one to the GPU
// as a tightly packed array. Do not retain them across Reset.
type Frame struct {
	Shapes        []Shape
	Paints        []Paint
	ControlPoints []Point
	Matrices      []Matrix
	Vertices      []Vertex
	Indices       []uint32
	DrawCalls     []DrawCall

	limits Limits

	// one warning per sequence per frame when a limit clamps
	shapesClamped   bool
	paintsClamped   bool
	pointsClamped   bool
	matricesClamped bool
	verticesClamped bool
}

// newFrame creates an empty frame with the given limits and seeds the
// reserved records.
func newFrame(limits Limits) *Frame {
	f := &Frame{limits: limits}
	f.Reset()
	return f
}

// Reset discards the frame's contents, retaining capacity, and re-seeds
// the reserved index-0 records: a placeholder shape (the "no chain / no
// clip" sentinel), the "use vertex color" paint, and the identity matrix.
// Real geometry always starts at index 1.
//
// Reset must not be called while any index from the previous frame is
// still held.
func (f *Frame) Reset() {
	f.Shapes = append(f.Shapes[:0], Shape{})
	f.Paints = append(f.Paints[:0], Paint{})
	f.Matrices = append(f.Matrices[:0], Identity())
	f.ControlPoints = f.ControlPoints[:0]
	f.Vertices = f.Vertices[:0]
	f.Indices = f.Indices[:0]
	f.DrawCalls = f.DrawCalls[:0]
	f.shapesClamped = false
	f.paintsClamped = false
	f.pointsClamped = false
	f.matricesClamped = false
	f.verticesClamped = false
}

// AppendShape stores a shape and returns its index. When the shape limit
// is reached the shape is dropped and the reserved index 0 is returned.
func (f *Frame) AppendShape(s Shape) uint32 {
	if len(f.Shapes) >= f.limits.MaxShapes {
		f.clampWarn(&f.shapesClamped, "shapes", f.limits.MaxShapes)
		return 0
	}
	f.Shapes = append(f.Shapes, s)
	return uint32(len(f.Shapes) - 1)
}

// AppendPaint stores a paint and returns its index. When the paint limit
// is reached the paint is dropped and the reserved index 0 is returned.
func (f *Frame) AppendPaint(p Paint) uint32 {
	if len(f.Paints) >= f.limits.MaxPaints {
		f.clampWarn(&f.paintsClamped, "paints", f.limits.MaxPaints)
		return 0
	}
	f.Paints = append(f.Paints, p)
	return uint32(len(f.Paints) - 1)
}

// AppendControlPoints stores points in the control-point sequence and
// returns the offset of the first one. Points beyond the limit are
// dropped.
func (f *Frame) AppendControlPoints(pts ...Point) uint32 {
	start := uint32(len(f.ControlPoints))
	room := f.limits.MaxControlPoints - len(f.ControlPoints)
	if room < len(pts) {
		f.clampWarn(&f.pointsClamped, "control points", f.limits.MaxControlPoints)
		if room <= 0 {
			return start
		}
		pts = pts[:room]
	}
	f.ControlPoints = append(f.ControlPoints, pts...)
	return start
}

// AppendMatrix stores a transform and returns its index. When the matrix
// limit is reached the identity at index 0 is returned.
func (f *Frame) AppendMatrix(m Matrix) uint32 {
	if len(f.Matrices) >= f.limits.MaxMatrices {
		f.clampWarn(&f.matricesClamped, "matrices", f.limits.MaxMatrices)
		return 0
	}
	f.Matrices = append(f.Matrices, m)
	return uint32(len(f.Matrices) - 1)
}

func (f *Frame) clampWarn(flag *bool, what string, limit int) {
	if *flag {
		return
	}
	*flag = true
	Logger().Warn("vgo: frame limit reached, output truncated",
		"sequence", what, "limit", limit)
}

// ShapeBoundingBox computes an exact or conservative axis-aligned box for
// the shape in its local space, before its transform is applied. Outline
// strokes inflate the box by half the stroke width, glows by the full
// width.
func (f *Frame) ShapeBoundingBox(s Shape) Box {
	box := EmptyBox()
	switch s.Kind {
	case ShapeNone:
		return box
	case ShapeBox, ShapeGlyph:
		box = Box{Lo: s.CV0, Hi: s.CV1}
	case ShapeCircle:
		box = Box{Lo: s.CV0, Hi: s.CV0}.Inflate(s.Radius[0])
	case ShapeArc, ShapePie:
		// Conservative: ignores the angular extent.
		box = Box{Lo: s.CV0, Hi: s.CV0}.Inflate(s.Radius[0] + s.Radius[1])
	case ShapeBezier:
		box = Box{Lo: s.CV0, Hi: s.CV0}
		box = box.ExpandPoint(s.CV1)
		box = box.ExpandPoint(s.CV2)
		box = box.Inflate(2 * s.Width)
	case ShapePath:
		// Fixed 2-unit margin covers the implicit stroke used for
		// SDF antialiasing.
		box = f.controlPointBounds(s, 3).Inflate(2)
	case ShapePolygon:
		box = f.controlPointBounds(s, 1).Inflate(1)
	case ShapeBlurredBox:
		// Conservative: three half-extents each side cover the blur
		// falloff for any practical blur radius.
		box = Box{
			Lo: s.CV0.Sub(s.CV1.Mul(3)),
			Hi: s.CV0.Add(s.CV1.Mul(3)),
		}
	}
	switch s.Outline {
	case OutlineStroke:
		box = box.Inflate(s.Width * 0.5)
	case OutlineGlow:
		box = box.Inflate(s.Width)
	}
	return box
}

// controlPointBounds returns the bounds of the control points referenced
// by a Path or Polygon shape. Referencing points beyond the sequence is a
// caller bug and panics.
func (f *Frame) controlPointBounds(s Shape, stride int) Box {
	end := int(s.Start) + int(s.Count)*stride
	if end > len(f.ControlPoints) {
		panic(fmt.Sprintf("vgo: shape references control points [%d:%d) beyond sequence length %d",
			s.Start, end, len(f.ControlPoints)))
	}
	pts := f.ControlPoints[s.Start:end]
	if len(pts) == 0 {
		return EmptyBox()
	}
	box := Box{Lo: pts[0], Hi: pts[0]}
	for _, p := range pts[1:] {
		box = box.ExpandPoint(p)
	}
	return box
}
