// Package vgo is the scene-construction and batching core of an
// immediate-mode 2D vector graphics renderer.
//
// Shapes are described as signed-distance-field records that a GPU fragment
// evaluator interprets at draw time; this package never rasterizes anything
// itself. Each frame, a [Context] accumulates shapes, paints, control points
// and transform matrices into append-only arenas, converts every drawn shape
// into a screen-space quad, and groups the resulting indexed geometry into
// the minimal number of draw calls under texture and sampler changes.
//
// # Frames
//
// All arena indices are frame-scoped. A frame begins with [Context.NewFrame]
// and ends with [Context.EndFrame], which validates stack balance, orders the
// draw calls and hands back the finished [Frame] for upload:
//
//	ctx := vgo.NewContext()
//	ctx.NewFrame()
//	ctx.FillCircle(vgo.Pt(100, 100), 40, vgo.PaintColor(vgo.RGB(255, 80, 80)))
//	frame := ctx.EndFrame()
//	// hand frame to a Renderer (see the renderer package)
//
// # Shape composition
//
// Shapes combine through index-linked chains: [Context.LinkShapes] threads a
// deforming shape onto a base shape with a boolean combine mode. The chain is
// evaluated per-pixel on the GPU; the core only derives a conservative quad
// that covers the combined geometry.
//
// # Clipping and transforms
//
// [Context.PushScissor] narrows drawing to an axis-aligned box, optionally
// refined by an SDF clip shape that composes across nested pushes.
// [Context.PushMatrix] and friends maintain a stack of 4x4 matrices; the top
// matrix is recorded once per run of shapes that share it.
//
// The core is single-threaded: one goroutine issues the whole call sequence
// for a frame. Logging is silent by default; see [SetLogger].
package vgo
