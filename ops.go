package vgo

// Convenience drawing operations composing the shape constructors with
// AddShape and DrawShape. Each returns the shape's arena index so callers
// can chain further shapes onto it.

// FillBox draws a filled box with independent corner radii.
func (c *Context) FillBox(lo, hi Point, radius [4]float32, paint PaintOption) uint32 {
	i := c.AddShape(MakeBox(lo, hi, radius))
	c.DrawShape(i, paint)
	return i
}

// StrokeBox draws a box outline of the given stroke width.
func (c *Context) StrokeBox(lo, hi Point, width float32, radius [4]float32, paint PaintOption) uint32 {
	i := c.AddShape(MakeBox(lo, hi, radius).Stroked(width))
	c.DrawShape(i, paint)
	return i
}

// FillCircle draws a filled circle.
func (c *Context) FillCircle(center Point, radius float32, paint PaintOption) uint32 {
	i := c.AddShape(MakeCircle(center, radius))
	c.DrawShape(i, paint)
	return i
}

// StrokeCircle draws a circle outline of the given stroke width.
func (c *Context) StrokeCircle(center Point, radius, width float32, paint PaintOption) uint32 {
	i := c.AddShape(MakeCircle(center, radius).Stroked(width))
	c.DrawShape(i, paint)
	return i
}

// FillPie draws a filled circular sector between the two angles (radians).
func (c *Context) FillPie(center Point, fromAngle, toAngle, radius float32, paint PaintOption) uint32 {
	i := c.AddShape(MakePie(center, fromAngle, toAngle, radius))
	c.DrawShape(i, paint)
	return i
}

// FillArc draws a ring segment between the two angles (radians).
func (c *Context) FillArc(center Point, fromAngle, toAngle, inner, outer float32, paint PaintOption) uint32 {
	i := c.AddShape(MakeArc(center, fromAngle, toAngle, inner, outer))
	c.DrawShape(i, paint)
	return i
}

// DrawLine draws a straight line of the given width as a degenerate
// quadratic bezier. Zero-length lines are silently absorbed.
func (c *Context) DrawLine(a, b Point, width float32, paint PaintOption) uint32 {
	if a == b {
		return 0
	}
	return c.FillBezier(a, a.Midpoint(b), b, width, paint)
}

// FillBezier draws a stroked quadratic bezier through the three control
// points.
func (c *Context) FillBezier(a, control, b Point, width float32, paint PaintOption) uint32 {
	i := c.AddShape(MakeBezier(a, control, b, width))
	c.DrawShape(i, paint)
	return i
}

// FillPolygon draws a filled polygon through the given points.
func (c *Context) FillPolygon(paint PaintOption, pts ...Point) uint32 {
	i := c.AddPolygon(pts...)
	c.DrawShape(i, paint)
	return i
}

// BoxShadow draws a gaussian-blurred box beneath the current layer.
// Shadows are SDF-clipped only, never box-clipped.
func (c *Context) BoxShadow(lo, hi Point, blur float32, radius [4]float32, paint PaintOption) uint32 {
	i := c.AddShape(MakeBlurredBox(lo, hi, blur, radius))
	c.DrawShape(i, paint)
	return i
}

// DrawGlyph draws one atlas glyph covering the screen rectangle lo..hi,
// sampling the atlas over uvLo..uvHi tinted with the given color.
func (c *Context) DrawGlyph(lo, hi, uvLo, uvHi Point, color Color) uint32 {
	i := c.AddShape(MakeGlyph(lo, hi))
	c.DrawShape(i, PaintValue(AtlasSamplePaint(uvLo, uvHi, color)))
	return i
}
