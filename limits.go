package vgo

// Limits caps the per-frame size of each GPU-facing sequence. When a cap
// is reached the frame clamps: the append is dropped, a warning is logged
// once per sequence per frame, and rendering continues with visible
// truncation instead of aborting. See the package error-handling policy in
// DESIGN.md.
type Limits struct {
	MaxShapes        int
	MaxPaints        int
	MaxControlPoints int
	MaxMatrices      int
	MaxVertices      int
	MaxIndices       int
}

// DefaultLimits returns the default per-frame capacity limits. They are
// sized for UI workloads; raise them for dense scenes.
func DefaultLimits() Limits {
	return Limits{
		MaxShapes:        16384,
		MaxPaints:        16384,
		MaxControlPoints: 65536,
		MaxMatrices:      4096,
		MaxVertices:      65536,
		MaxIndices:       98304,
	}
}
