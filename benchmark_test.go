package vgo

import "testing"

// BenchmarkFillBox benchmarks the simple-quad hot path: one shape, one
// paint record, four vertices per call.
func BenchmarkFillBox(b *testing.B) {
	ctx := NewContext()
	ctx.NewFrame()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if len(ctx.frame.Shapes) >= ctx.frame.limits.MaxShapes {
			b.StopTimer()
			ctx.EndFrame()
			ctx.NewFrame()
			b.StartTimer()
		}
		ctx.FillBox(Pt(10, 10), Pt(100, 60), [4]float32{4, 4, 4, 4},
			PaintColor(RGBA(200, 120, 40, 255)))
	}
}

// BenchmarkDrawShape benchmarks repeated draws of one pre-recorded shape,
// isolating quad emission from shape construction.
func BenchmarkDrawShape(b *testing.B) {
	ctx := NewContext()
	shape := ctx.AddShape(MakeCircle(Pt(50, 50), 25))
	f := ctx.Frame()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if len(f.Vertices)+4 > f.limits.MaxVertices {
			b.StopTimer()
			ctx.NewFrame()
			shape = ctx.AddShape(MakeCircle(Pt(50, 50), 25))
			b.StartTimer()
		}
		ctx.DrawShape(shape, PaintColor(White))
	}
}

// BenchmarkTransformedShapes benchmarks drawing under a non-identity
// transform, which exercises matrix de-duplication and corner mapping.
func BenchmarkTransformedShapes(b *testing.B) {
	ctx := NewContext()
	ctx.NewFrame()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if len(ctx.frame.Shapes) >= ctx.frame.limits.MaxShapes {
			b.StopTimer()
			ctx.EndFrame()
			ctx.NewFrame()
			b.StartTimer()
		}
		ctx.PushMatrix()
		ctx.Translate(float32(i%500), 100)
		ctx.RotateZ(0.3)
		ctx.FillCircle(Pt(0, 0), 20, PaintColor(RGBA(80, 160, 255, 255)))
		ctx.PopMatrix()
	}
}

// BenchmarkFrameBuild benchmarks a full small frame: scissored boxes, a
// path, a boolean chain and the EndFrame sort.
func BenchmarkFrameBuild(b *testing.B) {
	ctx := NewContext()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx.NewFrame()

		ctx.PushScissor(Box{Lo: Pt(0, 0), Hi: Pt(400, 300)})
		for j := 0; j < 50; j++ {
			lo := Pt(float32(j%10)*40, float32(j/10)*30)
			ctx.FillBox(lo, lo.Add(Pt(32, 24)), [4]float32{2, 2, 2, 2},
				PaintColor(RGBA(90, 90, uint8(j), 255)))
		}
		ctx.PopScissor()

		ctx.BeginPath()
		ctx.MoveTo(Pt(10, 350))
		ctx.QuadraticBezierTo(Pt(60, 300), Pt(110, 350))
		ctx.QuadraticBezierTo(Pt(160, 400), Pt(210, 350))
		ctx.FillPath(PaintColor(RGBA(255, 128, 0, 255)))

		base := ctx.AddShape(MakeCircle(Pt(300, 380), 40))
		hole := ctx.AddShape(MakeBox(Pt(280, 360), Pt(360, 400), [4]float32{}))
		ctx.LinkShapes(base, hole, CombineSubtraction)
		ctx.DrawShape(base, PaintColor(RGBA(0, 200, 180, 255)))

		ctx.EndFrame()
	}
}

// BenchmarkDrawCallSplitting benchmarks alternating texture bindings,
// which forces a draw-call split on every shape.
func BenchmarkDrawCallSplitting(b *testing.B) {
	ctx := NewContext()
	ctx.NewFrame()
	t1 := &struct{ n int }{1}
	t2 := &struct{ n int }{2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if len(ctx.frame.Shapes) >= ctx.frame.limits.MaxShapes {
			b.StopTimer()
			ctx.EndFrame()
			ctx.NewFrame()
			b.StartTimer()
		}
		if i%2 == 0 {
			ctx.SetTexture(t1)
		} else {
			ctx.SetTexture(t2)
		}
		ctx.FillBox(Pt(0, 0), Pt(10, 10), [4]float32{},
			PaintColor(RGBA(255, 255, 255, 255)))
	}
}
