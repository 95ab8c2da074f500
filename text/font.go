// Copyright 2026 The vgo Authors
// SPDX-License-Identifier: MIT

package text

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	gotextfont "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Font is a parsed TTF or OTF font usable for shaping and
// rasterization. The shaping side is a go-text font.Font, which is
// read-only and safe for concurrent use; the rasterization side is an
// x/image sfnt.Font whose scratch buffer is guarded by a mutex.
type Font struct {
	shaped *gotextfont.Font
	raster *sfnt.Font

	mu  sync.Mutex
	buf sfnt.Buffer
}

// NewFont parses TTF or OTF font data.
func NewFont(data []byte) (*Font, error) {
	face, err := gotextfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	rasterFont, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font for rasterization: %w", err)
	}
	return &Font{
		shaped: face.Font,
		raster: rasterFont,
	}, nil
}

// Metrics holds font-wide vertical metrics at a given pixel size.
// Ascent and Descent are both positive distances from the baseline.
type Metrics struct {
	Ascent  float32
	Descent float32
	LineGap float32
}

// LineHeight returns the recommended baseline-to-baseline distance.
func (m Metrics) LineHeight() float32 {
	return m.Ascent + m.Descent + m.LineGap
}

// Metrics returns the font's vertical metrics scaled to the given pixel
// size.
func (f *Font) Metrics(size float32) Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()

	ppem := fixed.Int26_6(size * 64)
	m, err := f.raster.Metrics(&f.buf, ppem, xfont.HintingNone)
	if err != nil {
		return Metrics{}
	}
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		LineGap: fixedToFloat(m.Height - m.Ascent - m.Descent),
	}
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.raster.NumGlyphs()
}

// GlyphIndex returns the glyph ID for a rune, or 0 when the font has no
// glyph for it.
func (f *Font) GlyphIndex(r rune) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()

	gid, err := f.raster.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return uint16(gid)
}

// rasterize renders a glyph outline to an alpha mask at the given pixel
// size. minX and minY locate the mask's top-left corner relative to the
// pen position on the baseline. A nil mask with nil error means the
// glyph has no outline (spaces and other blanks).
func (f *Font) rasterize(gid uint16, size float32) (mask *image.Alpha, minX, minY int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ppem := fixed.Int26_6(size * 64)
	segments, err := f.raster.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("text: load glyph %d: %w", gid, err)
	}
	if len(segments) == 0 {
		return nil, 0, 0, nil
	}

	bounds := segmentBounds(segments)
	minX = bounds.Min.X.Floor()
	minY = bounds.Min.Y.Floor()
	w := bounds.Max.X.Ceil() - minX
	h := bounds.Max.Y.Ceil() - minY
	if w <= 0 || h <= 0 {
		return nil, 0, 0, nil
	}

	dx := float32(-minX)
	dy := float32(-minY)
	var ras vector.Rasterizer
	ras.Reset(w, h)
	for _, seg := range segments {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			ras.ClosePath()
			ras.MoveTo(fixedToFloat(a[0].X)+dx, fixedToFloat(a[0].Y)+dy)
		case sfnt.SegmentOpLineTo:
			ras.LineTo(fixedToFloat(a[0].X)+dx, fixedToFloat(a[0].Y)+dy)
		case sfnt.SegmentOpQuadTo:
			ras.QuadTo(
				fixedToFloat(a[0].X)+dx, fixedToFloat(a[0].Y)+dy,
				fixedToFloat(a[1].X)+dx, fixedToFloat(a[1].Y)+dy,
			)
		case sfnt.SegmentOpCubeTo:
			ras.CubeTo(
				fixedToFloat(a[0].X)+dx, fixedToFloat(a[0].Y)+dy,
				fixedToFloat(a[1].X)+dx, fixedToFloat(a[1].Y)+dy,
				fixedToFloat(a[2].X)+dx, fixedToFloat(a[2].Y)+dy,
			)
		}
	}
	ras.ClosePath()

	mask = image.NewAlpha(image.Rect(0, 0, w, h))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask, minX, minY, nil
}

// segmentBounds computes the bounding box of an outline. Control points
// are included, so the box may be slightly loose for curvy glyphs.
func segmentBounds(segments sfnt.Segments) fixed.Rectangle26_6 {
	b := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: 1 << 30, Y: 1 << 30},
		Max: fixed.Point26_6{X: -(1 << 30), Y: -(1 << 30)},
	}
	expand := func(p fixed.Point26_6) {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	for _, seg := range segments {
		n := 1
		switch seg.Op {
		case sfnt.SegmentOpQuadTo:
			n = 2
		case sfnt.SegmentOpCubeTo:
			n = 3
		}
		for i := 0; i < n; i++ {
			expand(seg.Args[i])
		}
	}
	return b
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
