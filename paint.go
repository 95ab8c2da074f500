package vgo

import "fmt"

// PaintKind selects the color source a Paint record encodes.
type PaintKind uint32

const (
	// PaintNone leaves coloring to the vertex color.
	PaintNone PaintKind = iota
	PaintSolid
	PaintAtlasSample
	PaintUserTextureSample
	PaintSkeleton
	PaintLinearGradient
	PaintRadialGradient
)

// String returns a human-readable name for the paint kind.
func (k PaintKind) String() string {
	switch k {
	case PaintNone:
		return "None"
	case PaintSolid:
		return "Solid"
	case PaintAtlasSample:
		return "AtlasSample"
	case PaintUserTextureSample:
		return "UserTextureSample"
	case PaintSkeleton:
		return "Skeleton"
	case PaintLinearGradient:
		return "LinearGradient"
	case PaintRadialGradient:
		return "RadialGradient"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(k))
	}
}

// Paint is a GPU-evaluated color source. Like Shape, its layout is a wire
// contract: 64 bytes, colors pre-normalized to [0, 1]. CV0 and CV1 hold
// gradient endpoints, a center/radius pair, or a texture UV rectangle
// depending on Kind.
//
// Index 0 of the paint arena is permanently reserved as the "no paint, use
// vertex color" slot, so solid-color fills never allocate a paint record.
type Paint struct {
	Kind PaintKind
	_    uint32
	CV0  Point
	CV1  Point
	_    [2]float32
	Col0 [4]float32
	Col1 [4]float32
}

// SolidPaint creates a uniform color paint.
func SolidPaint(c Color) Paint {
	return Paint{
		Kind: PaintSolid,
		Col0: c.normalized(),
	}
}

// LinearGradientPaint creates a gradient from color c0 at point a to
// color c1 at point b.
func LinearGradientPaint(a, b Point, c0, c1 Color) Paint {
	return Paint{
		Kind: PaintLinearGradient,
		CV0:  a,
		CV1:  b,
		Col0: c0.normalized(),
		Col1: c1.normalized(),
	}
}

// RadialGradientPaint creates a gradient from color c0 at the center to
// color c1 at the given radius.
func RadialGradientPaint(center Point, radius float32, c0, c1 Color) Paint {
	return Paint{
		Kind: PaintRadialGradient,
		CV0:  center,
		CV1:  Point{X: radius},
		Col0: c0.normalized(),
		Col1: c1.normalized(),
	}
}

// AtlasSamplePaint samples the glyph atlas over the UV rectangle lo..hi,
// tinted by the given color.
func AtlasSamplePaint(lo, hi Point, tint Color) Paint {
	return Paint{
		Kind: PaintAtlasSample,
		CV0:  lo,
		CV1:  hi,
		Col0: tint.normalized(),
	}
}

// UserTexturePaint samples the draw call's user texture over the UV
// rectangle lo..hi.
func UserTexturePaint(lo, hi Point) Paint {
	return Paint{
		Kind: PaintUserTextureSample,
		CV0:  lo,
		CV1:  hi,
		Col0: White.normalized(),
	}
}

// SkeletonPaint creates the animated loading-shimmer paint sweeping from
// c0 to c1. The time parameter advances the shimmer phase.
func SkeletonPaint(c0, c1 Color, time float32) Paint {
	return Paint{
		Kind: PaintSkeleton,
		CV0:  Point{X: time},
		Col0: c0.normalized(),
		Col1: c1.normalized(),
	}
}

// paintOptionKind tags the three cases of a PaintOption.
type paintOptionKind uint8

const (
	paintOptionNone paintOptionKind = iota
	paintOptionIndex
	paintOptionValue
	paintOptionColor
)

// PaintOption is a caller-supplied paint reference: an existing paint
// index, an inline paint value, or a bare color. The zero value means "no
// paint" and resolves to opaque white vertex color. Resolution happens at
// draw time; see Context.DrawShape.
type PaintOption struct {
	kind  paintOptionKind
	index uint32
	value Paint
	color Color
}

// PaintIndex references a paint already appended this frame.
func PaintIndex(i uint32) PaintOption {
	return PaintOption{kind: paintOptionIndex, index: i}
}

// PaintValue carries an inline paint, appended fresh when the shape is
// drawn.
func PaintValue(p Paint) PaintOption {
	return PaintOption{kind: paintOptionValue, value: p}
}

// PaintColor carries a bare color. It resolves to the reserved paint slot
// 0 with the color written into the quad's vertices, so solid fills never
// allocate a paint record.
func PaintColor(c Color) PaintOption {
	return PaintOption{kind: paintOptionColor, color: c}
}
