package vgo

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// SamplerDescriptor describes the sampler state of a draw call. It is a
// comparable value type; changing any field splits the current draw call.
type SamplerDescriptor struct {
	AddressModeU gputypes.AddressMode
	AddressModeV gputypes.AddressMode
	MagFilter    gputypes.FilterMode
	MinFilter    gputypes.FilterMode
}

// DefaultSamplerDescriptor returns the sampler state draw calls start
// with: clamp-to-edge addressing and linear filtering.
func DefaultSamplerDescriptor() SamplerDescriptor {
	return SamplerDescriptor{
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
	}
}

// DrawCall is one GPU indexed-draw invocation covering a contiguous
// index-buffer range under fixed texture and sampler state.
//
// Index is the ordering key draw calls are sorted by before submission.
// It only grows when texture or sampler state genuinely changes, so in
// practice it equals append order; the sort guarantees caller-intended
// order if calls are ever reordered around state changes.
type DrawCall struct {
	Index      int
	ElemOffset int
	ElemCount  int

	// Texture overrides the glyph atlas when non-nil. It is an opaque
	// handle compared for identity; the renderer type-asserts it to its
	// own texture type (e.g. gpucontext.Texture) at submission.
	Texture any
	Sampler SamplerDescriptor
}

// SetTexture selects the texture sampled by UserTextureSample paints for
// subsequent draws. Passing nil restores the glyph atlas. A genuine
// change closes the current draw call and opens a new one; this is the
// sole mechanism for draw-call splitting.
func (c *Context) SetTexture(tex any) {
	if c.texture == tex {
		return
	}
	c.texture = tex
	c.splitDrawCall()
}

// SetSamplerDescriptor selects the sampler state for subsequent draws,
// splitting the current draw call on a genuine change.
func (c *Context) SetSamplerDescriptor(desc SamplerDescriptor) {
	if c.sampler == desc {
		return
	}
	c.sampler = desc
	c.splitDrawCall()
}

// splitDrawCall closes the current draw call at the already-appended
// index count and opens a new one under the context's texture/sampler
// state. A call that never received geometry is retargeted in place
// instead, so state changes before the first draw don't leave empty
// calls behind.
func (c *Context) splitDrawCall() {
	f := c.frame
	cur := &f.DrawCalls[c.currentCall]
	if cur.ElemCount == 0 {
		cur.Texture = c.texture
		cur.Sampler = c.sampler
		return
	}
	f.DrawCalls = append(f.DrawCalls, DrawCall{
		Index:      cur.Index + 1,
		ElemOffset: len(f.Indices),
		Texture:    c.texture,
		Sampler:    c.sampler,
	})
	c.currentCall = len(f.DrawCalls) - 1
}

// resolvePaint maps a paint option to a paint index and the vertex color
// for the quad. Bare colors resolve to the reserved paint slot 0 with the
// color carried per vertex; inline paints get a fresh arena slot.
func (c *Context) resolvePaint(opt PaintOption) (uint32, Color) {
	switch opt.kind {
	case paintOptionIndex:
		return opt.index, White
	case paintOptionValue:
		return c.frame.AppendPaint(opt.value), White
	case paintOptionColor:
		return 0, opt.color
	default:
		return 0, White
	}
}

// DrawShape emits the screen-space quad for a recorded shape: 4 vertices
// at the corners of the shape's clipped bounding box and 6 indices
// forming two triangles, appended to the current draw call.
//
// The box covers the whole composition chain: every chained shape whose
// mode is not Intersection can extend the visible area and enlarges the
// quad, while intersecting shapes only shrink it and are skipped. The box
// is then narrowed by the active scissor — except for blurred boxes,
// which are drawn beneath other layers and only SDF-clipped — and a
// degenerate result is silently discarded.
//
// Passing an index beyond the shape arena is a caller bug and panics.
func (c *Context) DrawShape(shape uint32, paint PaintOption) {
	f := c.frame
	if int(shape) >= len(f.Shapes) {
		panic(fmt.Sprintf("vgo: shape index %d out of range (%d shapes)", shape, len(f.Shapes)))
	}
	s := f.Shapes[shape]

	box := f.Matrices[s.XForm].transformBox(f.ShapeBoundingBox(s))
	// Bounded like the per-pixel evaluator walk, so a malformed chain can
	// never hang the frame.
	for next, steps := s.Next, 0; next != 0 && steps < maxChainLength; steps++ {
		ns := f.Shapes[next]
		if ns.Mode != CombineIntersection {
			box = box.Union(f.Matrices[ns.XForm].transformBox(f.ShapeBoundingBox(ns)))
		}
		next = ns.Next
	}

	if s.Kind != ShapeBlurredBox {
		if sc, ok := c.CurrentScissor(); ok {
			box = box.Intersect(sc.Box)
		}
	}
	if box.IsDegenerate() {
		return
	}

	paintIndex, col := c.resolvePaint(paint)

	if len(f.Vertices)+4 > f.limits.MaxVertices || len(f.Indices)+6 > f.limits.MaxIndices {
		f.clampWarn(&f.verticesClamped, "vertices", f.limits.MaxVertices)
		return
	}

	v := uint32(len(f.Vertices))
	rgba := [4]uint8{col.R, col.G, col.B, col.A}
	f.Vertices = append(f.Vertices,
		Vertex{Position: box.Lo, UV: Point{X: 0, Y: 0}, Col: rgba, Shape: shape, Paint: paintIndex},
		Vertex{Position: Point{X: box.Hi.X, Y: box.Lo.Y}, UV: Point{X: 1, Y: 0}, Col: rgba, Shape: shape, Paint: paintIndex},
		Vertex{Position: box.Hi, UV: Point{X: 1, Y: 1}, Col: rgba, Shape: shape, Paint: paintIndex},
		Vertex{Position: Point{X: box.Lo.X, Y: box.Hi.Y}, UV: Point{X: 0, Y: 1}, Col: rgba, Shape: shape, Paint: paintIndex},
	)
	f.Indices = append(f.Indices, v, v+1, v+2, v, v+2, v+3)
	f.DrawCalls[c.currentCall].ElemCount += 6
}
