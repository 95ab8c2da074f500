// Copyright 2026 The vgo Authors
// SPDX-License-Identifier: MIT

// Package text shapes and rasterizes text for vgo contexts.
//
// A Font wraps parsed font data twice: once for HarfBuzz shaping via
// go-text/typesetting and once for outline rasterization via x/image's
// sfnt. A Drawer owns a Shaper and a glyph Atlas; DrawText shapes a
// string, rasterizes any uncached glyphs into the atlas, and emits one
// glyph quad per positioned glyph through the vgo context. The host
// uploads the atlas pixels to a renderer texture whenever Dirty reports
// true.
package text
