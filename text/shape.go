// Copyright 2026 The vgo Authors
// SPDX-License-Identifier: MIT

package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotextfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// ShapedGlyph is one positioned glyph in a shaped string. X and Y are
// pen-relative offsets from the string origin; Cluster is the rune index
// the glyph maps back to.
type ShapedGlyph struct {
	GID      uint16
	Cluster  int
	X, Y     float32
	XAdvance float32
}

// Shaper converts strings into positioned glyph runs using HarfBuzz
// shaping, with bidirectional runs resolved per UAX #9.
//
// Shaper is safe for concurrent use: HarfbuzzShaper instances carry
// mutable state and are pooled, and font.Face construction per call is
// cheap.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
}

// bidiRun is a maximal same-direction rune range of the input.
type bidiRun struct {
	start, end int // rune indices, end exclusive
	rtl        bool
}

// splitRuns resolves the string's bidirectional runs in visual order.
func splitRuns(runes []rune) []bidiRun {
	var p bidi.Paragraph
	if _, err := p.SetString(string(runes)); err != nil {
		return []bidiRun{{start: 0, end: len(runes)}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []bidiRun{{start: 0, end: len(runes)}}
	}

	runs := make([]bidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos() // inclusive rune indices
		runs = append(runs, bidiRun{
			start: start,
			end:   end + 1,
			rtl:   run.Direction() == bidi.RightToLeft,
		})
	}
	return runs
}

// detectScript returns the script of the first non-space rune in the
// range, defaulting to Latin. Mixed-script runs shape with the first
// script found; splitting further is the caller's concern.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// Shape lays out a string at the given pixel size. Glyph positions are
// relative to a pen at the string origin on the baseline, advancing
// left to right across bidi runs.
func (s *Shaper) Shape(f *Font, size float32, str string) []ShapedGlyph {
	if str == "" || f == nil {
		return nil
	}

	runes := []rune(str)
	face := gotextfont.NewFace(f.shaped)
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	defer s.pool.Put(hb)

	var glyphs []ShapedGlyph
	var penX float32

	for _, run := range splitRuns(runes) {
		dir := di.DirectionLTR
		if run.rtl {
			dir = di.DirectionRTL
		}
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  run.start,
			RunEnd:    run.end,
			Direction: dir,
			Face:      face,
			Size:      floatToFixed(size),
			Script:    detectScript(runes[run.start:run.end]),
			Language:  language.NewLanguage("en"),
		})
		for _, g := range out.Glyphs {
			adv := fixedToFloat(g.Advance)
			glyphs = append(glyphs, ShapedGlyph{
				GID:      uint16(g.GlyphID),
				Cluster:  g.TextIndex(),
				X:        penX + fixedToFloat(g.XOffset),
				Y:        -fixedToFloat(g.YOffset),
				XAdvance: adv,
			})
			penX += adv
		}
	}
	return glyphs
}

// Advance returns the total horizontal advance of a string at the given
// pixel size.
func (s *Shaper) Advance(f *Font, size float32, str string) float32 {
	var w float32
	for _, g := range s.Shape(f, size, str) {
		w += g.XAdvance
	}
	return w
}
