package vgo

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default limits
//	ctx := vgo.NewContext()
//
//	// Larger control-point capacity for path-heavy scenes
//	limits := vgo.DefaultLimits()
//	limits.MaxControlPoints = 1 << 20
//	ctx := vgo.NewContext(vgo.WithLimits(limits))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	limits Limits
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{limits: DefaultLimits()}
}

// WithLimits sets the per-frame capacity limits for the context's frame
// arena.
func WithLimits(l Limits) ContextOption {
	return func(o *contextOptions) {
		o.limits = l
	}
}
