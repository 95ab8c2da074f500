// Copyright 2026 The vgo Authors
// SPDX-License-Identifier: MIT

package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/isaiah-parton/vgo"
)

func loadFont(t *testing.T) *Font {
	t.Helper()
	f, err := NewFont(goregular.TTF)
	if err != nil {
		t.Fatalf("parse goregular: %v", err)
	}
	return f
}

func TestNewFontRejectsGarbage(t *testing.T) {
	if _, err := NewFont([]byte("not a font")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFontMetrics(t *testing.T) {
	f := loadFont(t)
	m := f.Metrics(16)
	if m.Ascent <= 0 {
		t.Errorf("ascent = %v, want > 0", m.Ascent)
	}
	if m.Descent <= 0 {
		t.Errorf("descent = %v, want > 0", m.Descent)
	}
	if m.LineHeight() < m.Ascent+m.Descent {
		t.Errorf("line height %v smaller than ascent+descent %v", m.LineHeight(), m.Ascent+m.Descent)
	}

	big := f.Metrics(32)
	if big.Ascent <= m.Ascent {
		t.Errorf("ascent did not scale with size: %v vs %v", big.Ascent, m.Ascent)
	}
}

func TestGlyphIndex(t *testing.T) {
	f := loadFont(t)
	if f.GlyphIndex('A') == 0 {
		t.Error("no glyph for 'A'")
	}
	if f.GlyphIndex('\uE000') != 0 {
		t.Error("private-use rune should map to glyph 0")
	}
}

func TestShapeProducesGlyphs(t *testing.T) {
	f := loadFont(t)
	s := NewShaper()

	glyphs := s.Shape(f, 16, "Hello")
	if len(glyphs) != 5 {
		t.Fatalf("got %d glyphs, want 5", len(glyphs))
	}
	var x float32
	for i, g := range glyphs {
		if g.GID == 0 {
			t.Errorf("glyph %d is .notdef", i)
		}
		if g.XAdvance <= 0 {
			t.Errorf("glyph %d advance = %v, want > 0", i, g.XAdvance)
		}
		if g.X < x {
			t.Errorf("glyph %d pen position %v moved backwards from %v", i, g.X, x)
		}
		x = g.X
	}
}

func TestShapeEmptyString(t *testing.T) {
	f := loadFont(t)
	if got := NewShaper().Shape(f, 16, ""); got != nil {
		t.Errorf("got %d glyphs for empty string", len(got))
	}
}

func TestAdvanceGrowsWithText(t *testing.T) {
	f := loadFont(t)
	s := NewShaper()
	short := s.Advance(f, 16, "hi")
	long := s.Advance(f, 16, "hi there")
	if long <= short {
		t.Errorf("advance %v for longer string not greater than %v", long, short)
	}
}

func TestAtlasPacksGlyphs(t *testing.T) {
	f := loadFont(t)
	a := NewAtlas(MinAtlasSize)

	gid := f.GlyphIndex('A')
	region, err := a.Glyph(f, gid, 24)
	if err != nil {
		t.Fatalf("Glyph: %v", err)
	}
	if region.Size.X <= 0 || region.Size.Y <= 0 {
		t.Fatalf("region size = %v, want positive", region.Size)
	}
	if region.UVHi.X <= region.UVLo.X || region.UVHi.Y <= region.UVLo.Y {
		t.Errorf("degenerate UV rect %v..%v", region.UVLo, region.UVHi)
	}
	if !a.Dirty() {
		t.Error("atlas not dirty after packing a glyph")
	}

	// Same glyph and size hits the cache, no new packing.
	a.Flush()
	again, err := a.Glyph(f, gid, 24)
	if err != nil {
		t.Fatalf("Glyph (cached): %v", err)
	}
	if again != region {
		t.Errorf("cached region %+v differs from first %+v", again, region)
	}
	if a.Dirty() {
		t.Error("cache hit marked the atlas dirty")
	}
}

func TestAtlasSpaceGlyphIsEmpty(t *testing.T) {
	f := loadFont(t)
	a := NewAtlas(MinAtlasSize)

	region, err := a.Glyph(f, f.GlyphIndex(' '), 16)
	if err != nil {
		t.Fatalf("Glyph: %v", err)
	}
	if region.Size.X != 0 || region.Size.Y != 0 {
		t.Errorf("space glyph has size %v, want zero", region.Size)
	}
}

func TestAtlasPixelsCoverGlyph(t *testing.T) {
	f := loadFont(t)
	a := NewAtlas(MinAtlasSize)

	region, err := a.Glyph(f, f.GlyphIndex('M'), 32)
	if err != nil {
		t.Fatalf("Glyph: %v", err)
	}
	pixels := a.Flush()

	x0 := int(region.UVLo.X * float32(a.Size()))
	y0 := int(region.UVLo.Y * float32(a.Size()))
	w := int(region.Size.X)
	h := int(region.Size.Y)
	var covered int
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if pixels[((y0+row)*a.Size()+x0+col)*4+3] > 0 {
				covered++
			}
		}
	}
	if covered == 0 {
		t.Fatal("glyph region has no coverage")
	}
}

func TestAtlasFull(t *testing.T) {
	f := loadFont(t)
	a := NewAtlas(MinAtlasSize)

	// Pack oversized glyphs until the atlas runs out of shelves.
	var err error
	for size := float32(200); ; size += 0.25 {
		if _, err = a.Glyph(f, f.GlyphIndex('W'), size); err != nil {
			break
		}
		if size > 400 {
			t.Fatal("atlas never filled")
		}
	}
	if err != ErrAtlasFull {
		t.Fatalf("err = %v, want ErrAtlasFull", err)
	}
}

func TestDrawTextEmitsGlyphQuads(t *testing.T) {
	f := loadFont(t)
	d := NewDrawer(0)
	ctx := vgo.NewContext()
	ctx.NewFrame()

	advance, err := d.DrawText(ctx, f, 16, vgo.Pt(10, 100), "Hi there", vgo.RGBA(255, 255, 255, 255))
	if err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	if advance <= 0 {
		t.Errorf("advance = %v, want > 0", advance)
	}

	frame := ctx.EndFrame()
	// "Hi there" has 7 visible glyphs (the space emits nothing).
	visible := len(frame.Shapes) - 1
	if visible != 7 {
		t.Errorf("emitted %d shapes, want 7", visible)
	}
	for _, s := range frame.Shapes[1:] {
		if s.Kind != vgo.ShapeGlyph {
			t.Errorf("shape kind = %v, want ShapeGlyph", s.Kind)
		}
	}
	if !d.Atlas().Dirty() {
		t.Error("atlas not dirty after drawing new glyphs")
	}
}

func TestMeasureTextBox(t *testing.T) {
	f := loadFont(t)
	d := NewDrawer(0)

	pos := vgo.Pt(50, 200)
	box := d.MeasureText(f, 16, pos, "Hello")
	if box.IsDegenerate() {
		t.Fatalf("degenerate box %+v", box)
	}
	if box.Lo.X != pos.X {
		t.Errorf("box left = %v, want %v", box.Lo.X, pos.X)
	}
	if box.Lo.Y >= pos.Y {
		t.Error("box top should be above the baseline")
	}
	if box.Hi.Y <= pos.Y {
		t.Error("box bottom should be below the baseline")
	}

	wider := d.MeasureText(f, 16, pos, "Hello world")
	if wider.Width() <= box.Width() {
		t.Errorf("longer string measured %v, want wider than %v", wider.Width(), box.Width())
	}
}
