package vgo

import (
	"cmp"
	"fmt"
	"slices"
)

// Renderer consumes a finished frame: it uploads the four arena buffers
// and the vertex/index streams, then records one indexed draw per entry
// of Frame.DrawCalls, already sorted by DrawCall.Index. The renderer
// package provides a wgpu implementation.
type Renderer interface {
	SubmitFrame(*Frame) error
}

// Scissor is one entry of the scissor stack: an axis-aligned clip box,
// optionally refined by an SDF clip shape (0 = box only). Both apply
// simultaneously: the box narrows the emitted quad while the shape is
// carried through the chain for the evaluator to apply per pixel.
type Scissor struct {
	Box   Box
	Shape uint32
}

// Context holds all mutable state for building one frame at a time: the
// frame arena, the transform and scissor stacks, the in-progress path and
// the current draw call. Contexts are independent of each other; create
// one per render surface or test.
//
// A Context is not safe for concurrent use. A single goroutine issues the
// whole call sequence for a frame.
type Context struct {
	frame *Frame

	matrixStack  []Matrix
	scissorStack []Scissor

	// de-duplicates consecutive shapes under an unchanged transform
	lastMatrix Matrix
	lastXForm  uint32

	pathStart  uint32
	pathCursor Point
	pathFirst  Point

	// index into frame.DrawCalls; the slice grows by appending, so the
	// current call is always re-derived by index, never held as a pointer
	currentCall int

	texture any
	sampler SamplerDescriptor
}

// NewContext creates a context with an open frame, ready for drawing.
func NewContext(opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Context{frame: newFrame(o.limits)}
	c.NewFrame()
	return c
}

// Frame returns the context's frame. The frame's contents are only valid
// between NewFrame and the next NewFrame.
func (c *Context) Frame() *Frame {
	return c.frame
}

// NewFrame discards the previous frame's contents and begins a new one.
// One default draw call targeting the glyph atlas is opened immediately,
// so the draw path never checks for a missing call.
func (c *Context) NewFrame() {
	c.frame.Reset()
	c.matrixStack = c.matrixStack[:0]
	c.scissorStack = c.scissorStack[:0]
	c.lastMatrix = Identity()
	c.lastXForm = 0
	c.pathStart = 0
	c.pathCursor = Point{}
	c.pathFirst = Point{}
	c.texture = nil
	c.sampler = DefaultSamplerDescriptor()
	c.frame.DrawCalls = append(c.frame.DrawCalls, DrawCall{Sampler: c.sampler})
	c.currentCall = 0
}

// EndFrame finishes the frame: it validates stack balance and returns the
// frame with its draw calls stable-sorted by index, ready for a Renderer.
// Indices into the frame remain valid until the next NewFrame.
//
// Unbalanced transform or scissor stacks are a caller bug and panic.
func (c *Context) EndFrame() *Frame {
	if n := len(c.matrixStack); n != 0 {
		panic(fmt.Sprintf("vgo: %d matrix stack entries left at end of frame", n))
	}
	if n := len(c.scissorStack); n != 0 {
		panic(fmt.Sprintf("vgo: %d scissor stack entries left at end of frame", n))
	}
	slices.SortStableFunc(c.frame.DrawCalls, func(a, b DrawCall) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return c.frame
}

// Present ends the frame and hands it to the renderer.
func (c *Context) Present(r Renderer) error {
	return r.SubmitFrame(c.EndFrame())
}

// ---------------------------------------------------------------------------
// Transform stack
// ---------------------------------------------------------------------------

// PushMatrix duplicates the current transform (identity if the stack is
// empty) and makes the duplicate the new mutable top.
func (c *Context) PushMatrix() {
	c.matrixStack = append(c.matrixStack, c.currentMatrix())
}

// PopMatrix removes the top transform. Popping an empty stack is a caller
// bug; it is flagged and clamped rather than crashing mid-frame.
func (c *Context) PopMatrix() {
	if len(c.matrixStack) == 0 {
		Logger().Warn("vgo: PopMatrix on empty matrix stack")
		return
	}
	c.matrixStack = c.matrixStack[:len(c.matrixStack)-1]
}

// currentMatrix returns the active transform.
func (c *Context) currentMatrix() Matrix {
	if len(c.matrixStack) == 0 {
		return Identity()
	}
	return c.matrixStack[len(c.matrixStack)-1]
}

// applyMatrix right-multiplies the mutable stack top in place.
func (c *Context) applyMatrix(m Matrix) {
	if len(c.matrixStack) == 0 {
		Logger().Warn("vgo: transform applied with no matrix pushed")
		return
	}
	top := &c.matrixStack[len(c.matrixStack)-1]
	*top = top.Mul(m)
}

// Translate translates the current transform.
func (c *Context) Translate(x, y float32) {
	c.applyMatrix(matrixTranslate(x, y, 0))
}

// Scale scales the current transform.
func (c *Context) Scale(x, y float32) {
	c.applyMatrix(matrixScale(x, y, 1))
}

// Rotate rotates the current transform by angle radians about an
// arbitrary axis.
func (c *Context) Rotate(angle, x, y, z float32) {
	c.applyMatrix(matrixRotate(angle, x, y, z))
}

// RotateZ rotates the current transform by angle radians in the drawing
// plane.
func (c *Context) RotateZ(angle float32) {
	c.applyMatrix(matrixRotateZ(angle))
}

// ---------------------------------------------------------------------------
// Scissor stack
// ---------------------------------------------------------------------------

// PushScissor narrows drawing to the given box, intersected with any
// enclosing scissor.
func (c *Context) PushScissor(box Box) {
	c.pushScissor(box, 0)
}

// PushScissorShape narrows drawing to the given box and additionally
// carries an SDF clip shape (by arena index) that the evaluator applies
// per pixel. Nested clip shapes chain together with intersection
// semantics so they compose across pushes.
func (c *Context) PushScissorShape(box Box, shape uint32) {
	c.pushScissor(box, shape)
}

func (c *Context) pushScissor(box Box, shape uint32) {
	if len(c.scissorStack) > 0 {
		parent := c.scissorStack[len(c.scissorStack)-1]
		box = box.Intersect(parent.Box)
		if shape != 0 && parent.Shape != 0 {
			c.frame.Shapes[shape].Next = parent.Shape
		}
	}
	if shape != 0 {
		c.frame.Shapes[shape].Mode = CombineIntersection
	}
	c.scissorStack = append(c.scissorStack, Scissor{Box: box, Shape: shape})
}

// PopScissor removes the top scissor. Popping an empty stack is a caller
// bug; it is flagged and clamped.
func (c *Context) PopScissor() {
	if len(c.scissorStack) == 0 {
		Logger().Warn("vgo: PopScissor on empty scissor stack")
		return
	}
	c.scissorStack = c.scissorStack[:len(c.scissorStack)-1]
}

// CurrentScissor returns the active scissor, if any.
func (c *Context) CurrentScissor() (Scissor, bool) {
	if len(c.scissorStack) == 0 {
		return Scissor{}, false
	}
	return c.scissorStack[len(c.scissorStack)-1], true
}

// ---------------------------------------------------------------------------
// Shape recording
// ---------------------------------------------------------------------------

// AddShape records a shape without emitting any geometry and returns its
// arena index. The active scissor's clip shape (if any) is chained onto
// the shape, and the active transform is resolved: consecutive shapes
// under an unchanged transform share one matrix slot.
func (c *Context) AddShape(s Shape) uint32 {
	if sc, ok := c.CurrentScissor(); ok && sc.Shape != 0 && s.Next == 0 {
		s.Next = sc.Shape
	}
	s.XForm = c.resolveXForm()
	return c.frame.AppendShape(s)
}

// resolveXForm returns the matrix index for the active transform,
// appending it only when it differs from the last one appended.
func (c *Context) resolveXForm() uint32 {
	top := c.currentMatrix()
	if top == c.lastMatrix {
		return c.lastXForm
	}
	c.lastXForm = c.frame.AppendMatrix(top)
	c.lastMatrix = top
	return c.lastXForm
}

// AddPolygon appends the points to the control-point sequence and records
// a polygon shape referencing them.
func (c *Context) AddPolygon(pts ...Point) uint32 {
	start := c.frame.AppendControlPoints(pts...)
	return c.AddShape(Shape{
		Kind:  ShapePolygon,
		Start: start,
		Count: uint32(len(pts)),
	})
}

// LinkShapes walks the chain starting at base to its last shape and links
// deform onto it. The combine mode is stored on the deforming shape: it
// determines how the evaluator merges deform's signed distance into the
// chain. Linking a shape to itself, linking to or from the reserved
// index 0, passing an out-of-range index, or forming a link cycle is a
// caller bug and panics. Chains are capped at the length the evaluator
// walks per pixel.
func (c *Context) LinkShapes(base, deform uint32, mode CombineMode) {
	if base == 0 || deform == 0 {
		panic("vgo: the reserved shape 0 cannot take part in a chain")
	}
	if int(base) >= len(c.frame.Shapes) || int(deform) >= len(c.frame.Shapes) {
		panic(fmt.Sprintf("vgo: LinkShapes(%d, %d) out of range (%d shapes)",
			base, deform, len(c.frame.Shapes)))
	}
	if base == deform {
		panic("vgo: shape cannot be linked to itself")
	}

	var chain [maxChainLength]uint32
	n := 0
	i := base
	for {
		if n == maxChainLength {
			panic(fmt.Sprintf("vgo: shape chain exceeds %d links", maxChainLength))
		}
		chain[n] = i
		n++
		next := c.frame.Shapes[i].Next
		if next == 0 {
			break
		}
		if next == deform {
			panic(fmt.Sprintf("vgo: shape %d is already part of the chain", deform))
		}
		i = next
	}

	// Deform may carry its own chain; none of its links may reach back
	// into base's chain or the result would cycle.
	for j, steps := deform, 0; j != 0; steps++ {
		if n+steps == maxChainLength {
			panic(fmt.Sprintf("vgo: shape chain exceeds %d links", maxChainLength))
		}
		for k := 0; k < n; k++ {
			if chain[k] == j {
				panic(fmt.Sprintf("vgo: LinkShapes(%d, %d) would create a cycle", base, deform))
			}
		}
		j = c.frame.Shapes[j].Next
	}

	c.frame.Shapes[i].Next = deform
	c.frame.Shapes[deform].Mode = mode
}
