// Copyright 2026 The vgo Authors
// SPDX-License-Identifier: MIT

package text

import (
	"github.com/isaiah-parton/vgo"
)

// Drawer shapes strings and emits glyph quads into vgo contexts, packing
// rasterized glyphs into its Atlas on demand.
//
// Drawer is safe for concurrent use, though drawing into a single
// Context must still be externally serialized.
type Drawer struct {
	shaper *Shaper
	atlas  *Atlas
}

// NewDrawer creates a drawer with an atlasSize x atlasSize glyph atlas.
// Pass 0 for the default size.
func NewDrawer(atlasSize int) *Drawer {
	return &Drawer{
		shaper: NewShaper(),
		atlas:  NewAtlas(atlasSize),
	}
}

// Atlas returns the drawer's glyph atlas, for uploading to the renderer.
func (d *Drawer) Atlas() *Atlas { return d.atlas }

// DrawText shapes str at the given pixel size and emits one glyph quad
// per visible glyph, with pos as the pen origin on the baseline. It
// returns the total advance width. Glyphs that no longer fit in the
// atlas stop the draw and report ErrAtlasFull.
func (d *Drawer) DrawText(ctx *vgo.Context, f *Font, size float32, pos vgo.Point, str string, tint vgo.Color) (float32, error) {
	var advance float32
	for _, g := range d.shaper.Shape(f, size, str) {
		advance += g.XAdvance
		region, err := d.atlas.Glyph(f, g.GID, size)
		if err != nil {
			return advance, err
		}
		if region.Size.X == 0 || region.Size.Y == 0 {
			continue
		}
		lo := vgo.Pt(pos.X+g.X+region.Offset.X, pos.Y+g.Y+region.Offset.Y)
		ctx.DrawGlyph(lo, lo.Add(region.Size), region.UVLo, region.UVHi, tint)
	}
	return advance, nil
}

// MeasureText returns the bounding box of str drawn at pos: the shaped
// advance horizontally and the font's ascent and descent vertically.
func (d *Drawer) MeasureText(f *Font, size float32, pos vgo.Point, str string) vgo.Box {
	advance := d.shaper.Advance(f, size, str)
	m := f.Metrics(size)
	return vgo.Box{
		Lo: vgo.Pt(pos.X, pos.Y-m.Ascent),
		Hi: vgo.Pt(pos.X+advance, pos.Y+m.Descent),
	}
}
