package vgo

// Path construction accumulates quadratic bezier spans directly into the
// frame's control-point sequence: three points per segment, consumed by
// the GPU evaluator as one bezier span. Straight segments are degenerate
// beziers whose control point is the segment midpoint.

// BeginPath starts a new path at the current end of the control-point
// sequence.
func (c *Context) BeginPath() {
	c.pathStart = uint32(len(c.frame.ControlPoints))
	c.pathCursor = Point{}
	c.pathFirst = Point{}
}

// MoveTo sets the path cursor without emitting geometry.
func (c *Context) MoveTo(p Point) {
	c.pathCursor = p
	c.pathFirst = p
}

// QuadraticBezierTo appends one bezier span from the cursor through the
// control point to end, and advances the cursor.
func (c *Context) QuadraticBezierTo(control, end Point) {
	c.frame.AppendControlPoints(c.pathCursor, control, end)
	c.pathCursor = end
}

// LineTo appends a straight segment from the cursor to p. Zero-length
// segments are silently absorbed.
func (c *Context) LineTo(p Point) {
	if p == c.pathCursor {
		return
	}
	c.QuadraticBezierTo(c.pathCursor.Midpoint(p), p)
}

// ClosePath appends a straight segment back to the path's first point.
func (c *Context) ClosePath() {
	c.LineTo(c.pathFirst)
}

// AddPath records the accumulated path as a Path shape without drawing
// it, and returns its arena index. Count is the number of bezier spans.
func (c *Context) AddPath() uint32 {
	count := (uint32(len(c.frame.ControlPoints)) - c.pathStart) / 3
	return c.AddShape(Shape{
		Kind:  ShapePath,
		Start: c.pathStart,
		Count: count,
	})
}

// FillPath records the accumulated path and draws it with the given
// paint, returning the shape's arena index.
func (c *Context) FillPath(paint PaintOption) uint32 {
	i := c.AddPath()
	c.DrawShape(i, paint)
	return i
}
