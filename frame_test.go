package vgo

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// recordHandler collects log records for assertions.
type recordHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}
func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

func captureLogs(t *testing.T) *recordHandler {
	t.Helper()
	h := &recordHandler{}
	SetLogger(slog.New(h))
	t.Cleanup(func() { SetLogger(nil) })
	return h
}

func TestFrameResetSeedsReservedRecords(t *testing.T) {
	f := newFrame(DefaultLimits())
	if len(f.Shapes) != 1 || f.Shapes[0].Kind != ShapeNone {
		t.Fatalf("shape arena not seeded with placeholder: %v", f.Shapes)
	}
	if len(f.Paints) != 1 || f.Paints[0].Kind != PaintNone {
		t.Fatalf("paint arena not seeded: %v", f.Paints)
	}
	if len(f.Matrices) != 1 || !f.Matrices[0].IsIdentity() {
		t.Fatal("matrix arena not seeded with identity")
	}

	f.AppendShape(MakeCircle(Pt(0, 0), 1))
	f.AppendControlPoints(Pt(1, 2))
	f.Reset()

	if len(f.Shapes) != 1 || len(f.ControlPoints) != 0 {
		t.Error("Reset did not discard frame contents")
	}
}

func TestFrameAppendIndices(t *testing.T) {
	f := newFrame(DefaultLimits())
	if i := f.AppendShape(MakeCircle(Pt(0, 0), 1)); i != 1 {
		t.Errorf("first real shape index = %d, want 1", i)
	}
	if i := f.AppendShape(MakeCircle(Pt(0, 0), 2)); i != 2 {
		t.Errorf("second shape index = %d, want 2", i)
	}
	if i := f.AppendPaint(SolidPaint(White)); i != 1 {
		t.Errorf("first real paint index = %d, want 1", i)
	}
	if start := f.AppendControlPoints(Pt(0, 0), Pt(1, 1)); start != 0 {
		t.Errorf("control point start = %d, want 0", start)
	}
	if start := f.AppendControlPoints(Pt(2, 2)); start != 2 {
		t.Errorf("control point start = %d, want 2", start)
	}
}

func TestFrameLimitClamp(t *testing.T) {
	logs := captureLogs(t)

	limits := DefaultLimits()
	limits.MaxShapes = 3 // placeholder + two real shapes
	f := newFrame(limits)

	if i := f.AppendShape(Shape{Kind: ShapeCircle}); i != 1 {
		t.Fatalf("index = %d, want 1", i)
	}
	if i := f.AppendShape(Shape{Kind: ShapeCircle}); i != 2 {
		t.Fatalf("index = %d, want 2", i)
	}
	// Limit reached: clamp to the reserved index, warn once.
	if i := f.AppendShape(Shape{Kind: ShapeCircle}); i != 0 {
		t.Errorf("clamped index = %d, want 0", i)
	}
	if i := f.AppendShape(Shape{Kind: ShapeCircle}); i != 0 {
		t.Errorf("clamped index = %d, want 0", i)
	}
	if len(f.Shapes) != 3 {
		t.Errorf("len(Shapes) = %d, want 3", len(f.Shapes))
	}
	if logs.count() != 1 {
		t.Errorf("warning count = %d, want 1 (once per sequence per frame)", logs.count())
	}

	// The clamp flag resets with the frame.
	f.Reset()
	f.AppendShape(Shape{})
	f.AppendShape(Shape{})
	f.AppendShape(Shape{})
	if logs.count() != 2 {
		t.Errorf("warning count after reset = %d, want 2", logs.count())
	}
}

func TestFrameControlPointClamp(t *testing.T) {
	captureLogs(t)

	limits := DefaultLimits()
	limits.MaxControlPoints = 4
	f := newFrame(limits)

	f.AppendControlPoints(Pt(0, 0), Pt(1, 1), Pt(2, 2))
	start := f.AppendControlPoints(Pt(3, 3), Pt(4, 4), Pt(5, 5))
	if start != 3 {
		t.Errorf("start = %d, want 3", start)
	}
	if len(f.ControlPoints) != 4 {
		t.Errorf("len(ControlPoints) = %d, want 4 (clamped)", len(f.ControlPoints))
	}
}
