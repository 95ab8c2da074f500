// Copyright 2026 The vgo Authors
// SPDX-License-Identifier: MIT

package text

import (
	"errors"
	"image"
	"sync"

	"github.com/isaiah-parton/vgo"
)

// Atlas errors.
var (
	// ErrAtlasFull is returned when no region can fit a new glyph.
	ErrAtlasFull = errors.New("text: glyph atlas is full")
)

// Default atlas settings.
const (
	// DefaultAtlasSize is the default atlas dimension in pixels.
	DefaultAtlasSize = 1024

	// MinAtlasSize is the smallest allowed atlas dimension.
	MinAtlasSize = 256

	// atlasPadding separates packed glyphs so linear sampling does not
	// bleed between neighbors.
	atlasPadding = 1
)

// GlyphRegion locates a rasterized glyph in the atlas. UVLo and UVHi are
// normalized texture coordinates for the glyph quad; Offset is the
// pen-relative position of the quad's top-left corner and Size its pixel
// extent. A zero Size means the glyph has no visible outline.
type GlyphRegion struct {
	UVLo, UVHi vgo.Point
	Offset     vgo.Point
	Size       vgo.Point
}

// glyphKey identifies a cached glyph. Sizes are quantized to quarter
// pixels so nearby float sizes share cache entries.
type glyphKey struct {
	font *Font
	gid  uint16
	size int32
}

// shelf is one horizontal row of the shelf-packing allocator.
type shelf struct {
	y      int
	height int
	nextX  int
}

// Atlas packs rasterized glyph masks into a single RGBA pixel buffer
// using shelf packing: each glyph goes on the first shelf with room, or
// opens a new shelf below. Pixels are white with the glyph's coverage in
// all four channels, so atlas samples multiply cleanly with tint colors
// in the premultiplied pipeline.
//
// Atlas is safe for concurrent use.
type Atlas struct {
	mu sync.Mutex

	width, height int
	shelves       []shelf
	pixels        []byte
	cache         map[glyphKey]GlyphRegion
	dirty         bool
}

// NewAtlas creates a size x size glyph atlas.
func NewAtlas(size int) *Atlas {
	if size < MinAtlasSize {
		size = DefaultAtlasSize
	}
	return &Atlas{
		width:  size,
		height: size,
		pixels: make([]byte, size*size*4),
		cache:  make(map[glyphKey]GlyphRegion),
	}
}

// Size returns the atlas dimension in pixels.
func (a *Atlas) Size() int { return a.width }

// Glyph returns the atlas region for a glyph, rasterizing and packing it
// on first use. Glyphs with no outline (spaces) return a zero-size
// region and no error.
func (a *Atlas) Glyph(f *Font, gid uint16, size float32) (GlyphRegion, error) {
	key := glyphKey{font: f, gid: gid, size: int32(size * 4)}

	a.mu.Lock()
	defer a.mu.Unlock()

	if region, ok := a.cache[key]; ok {
		return region, nil
	}

	mask, minX, minY, err := f.rasterize(gid, size)
	if err != nil {
		return GlyphRegion{}, err
	}
	if mask == nil {
		a.cache[key] = GlyphRegion{}
		return GlyphRegion{}, nil
	}

	w := mask.Bounds().Dx()
	h := mask.Bounds().Dy()
	x, y, ok := a.allocate(w, h)
	if !ok {
		return GlyphRegion{}, ErrAtlasFull
	}
	a.blit(mask, x, y)

	region := GlyphRegion{
		UVLo:   vgo.Pt(float32(x)/float32(a.width), float32(y)/float32(a.height)),
		UVHi:   vgo.Pt(float32(x+w)/float32(a.width), float32(y+h)/float32(a.height)),
		Offset: vgo.Pt(float32(minX), float32(minY)),
		Size:   vgo.Pt(float32(w), float32(h)),
	}
	a.cache[key] = region
	a.dirty = true
	return region, nil
}

// allocate finds space for a w x h rectangle. Callers hold a.mu.
func (a *Atlas) allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + atlasPadding
	paddedH := h + atlasPadding
	if paddedW > a.width || paddedH > a.height {
		return 0, 0, false
	}

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.nextX+paddedW > a.width {
			continue
		}
		// A shelf only grows taller while it holds a single item.
		if paddedH > s.height && s.nextX > 0 {
			continue
		}
		x, y = s.nextX, s.y
		s.nextX += paddedW
		if paddedH > s.height {
			s.height = paddedH
		}
		return x, y, true
	}

	newY := 0
	if n := len(a.shelves); n > 0 {
		last := &a.shelves[n-1]
		newY = last.y + last.height
	}
	if newY+paddedH > a.height {
		return 0, 0, false
	}
	a.shelves = append(a.shelves, shelf{y: newY, height: paddedH, nextX: paddedW})
	return 0, newY, true
}

// blit copies an alpha mask into the backing store as premultiplied
// white. Callers hold a.mu.
func (a *Atlas) blit(mask *image.Alpha, x, y int) {
	w := mask.Bounds().Dx()
	h := mask.Bounds().Dy()
	for row := 0; row < h; row++ {
		src := mask.Pix[row*mask.Stride : row*mask.Stride+w]
		dst := a.pixels[((y+row)*a.width+x)*4:]
		for col, alpha := range src {
			dst[col*4+0] = alpha
			dst[col*4+1] = alpha
			dst[col*4+2] = alpha
			dst[col*4+3] = alpha
		}
	}
}

// Dirty reports whether the atlas gained glyphs since the last Flush.
func (a *Atlas) Dirty() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dirty
}

// Flush returns the atlas RGBA pixels and clears the dirty flag. The
// returned slice is the live backing store; upload it before the next
// Glyph call or copy it.
func (a *Atlas) Flush() []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.dirty = false
	return a.pixels
}

// Reset drops all cached glyphs and allocations. Pixel data is left in
// place and will be overwritten as new glyphs pack.
func (a *Atlas) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.shelves = a.shelves[:0]
	a.cache = make(map[glyphKey]GlyphRegion)
	a.dirty = false
}
