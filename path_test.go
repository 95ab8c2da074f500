package vgo

import "testing"

func TestPathRoundTrip(t *testing.T) {
	ctx := NewContext()
	f := ctx.Frame()

	ctx.BeginPath()
	ctx.MoveTo(Pt(0, 0))
	ctx.LineTo(Pt(10, 0))
	ctx.LineTo(Pt(10, 10))
	ctx.LineTo(Pt(0, 10))
	ctx.ClosePath()
	i := ctx.FillPath(PaintColor(White))

	s := f.Shapes[i]
	if s.Kind != ShapePath {
		t.Fatalf("shape kind = %v, want Path", s.Kind)
	}
	if s.Count != 4 {
		t.Errorf("segment count = %d, want 4", s.Count)
	}
	if s.Start != 0 {
		t.Errorf("start = %d, want 0", s.Start)
	}
	if len(f.ControlPoints) != 12 {
		t.Errorf("len(ControlPoints) = %d, want 12 (3 per segment)", len(f.ControlPoints))
	}

	got := f.ShapeBoundingBox(s)
	want := Box{Lo: Pt(-2, -2), Hi: Pt(12, 12)}
	if got != want {
		t.Errorf("path box = %v, want %v", got, want)
	}
}

func TestLineToDegeneratesToQuadratic(t *testing.T) {
	ctx := NewContext()
	f := ctx.Frame()

	ctx.BeginPath()
	ctx.MoveTo(Pt(0, 0))
	ctx.LineTo(Pt(10, 0))

	if len(f.ControlPoints) != 3 {
		t.Fatalf("len(ControlPoints) = %d, want 3", len(f.ControlPoints))
	}
	// The control point of a straight segment is the midpoint, which
	// degenerates the quadratic to a line.
	if f.ControlPoints[1] != Pt(5, 0) {
		t.Errorf("control point = %v, want (5,0)", f.ControlPoints[1])
	}
}

func TestZeroLengthSegmentsAbsorbed(t *testing.T) {
	ctx := NewContext()
	f := ctx.Frame()

	ctx.BeginPath()
	ctx.MoveTo(Pt(5, 5))
	ctx.LineTo(Pt(5, 5))
	ctx.ClosePath()

	if len(f.ControlPoints) != 0 {
		t.Errorf("zero-length segments emitted %d control points", len(f.ControlPoints))
	}
}

func TestSecondPathStartsAtSequenceEnd(t *testing.T) {
	ctx := NewContext()
	f := ctx.Frame()

	ctx.BeginPath()
	ctx.MoveTo(Pt(0, 0))
	ctx.LineTo(Pt(10, 0))
	first := ctx.AddPath()

	ctx.BeginPath()
	ctx.MoveTo(Pt(20, 0))
	ctx.LineTo(Pt(30, 0))
	second := ctx.AddPath()

	if f.Shapes[first].Start != 0 || f.Shapes[first].Count != 1 {
		t.Errorf("first path start/count = %d/%d, want 0/1",
			f.Shapes[first].Start, f.Shapes[first].Count)
	}
	if f.Shapes[second].Start != 3 || f.Shapes[second].Count != 1 {
		t.Errorf("second path start/count = %d/%d, want 3/1",
			f.Shapes[second].Start, f.Shapes[second].Count)
	}
}
