package vgo

import (
	"testing"

	"github.com/chewxy/math32"
)

func approxEq(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func pointApproxEq(a, b Point) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y)
}

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Fatal("Identity() not reported as identity")
	}
	p := Pt(3, -7)
	if got := m.TransformPoint(p); got != p {
		t.Errorf("identity transform moved point: %v", got)
	}
}

func TestMatrixTranslateScale(t *testing.T) {
	m := matrixTranslate(10, 20, 0).Mul(matrixScale(2, 3, 1))
	got := m.TransformPoint(Pt(1, 1))
	want := Pt(12, 23)
	if !pointApproxEq(got, want) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestMatrixRotateZ(t *testing.T) {
	m := matrixRotateZ(math32.Pi / 2)
	got := m.TransformPoint(Pt(1, 0))
	want := Pt(0, 1)
	if !pointApproxEq(got, want) {
		t.Errorf("quarter turn of (1,0) = %v, want %v", got, want)
	}
}

func TestMatrixRotateAxis(t *testing.T) {
	// Rotation about the Z axis through the general axis path must match
	// the dedicated RotateZ matrix.
	a := matrixRotate(0.37, 0, 0, 1)
	b := matrixRotateZ(0.37)
	for i := range a {
		if !approxEq(a[i], b[i]) {
			t.Fatalf("axis-angle Z rotation differs at [%d]: %v vs %v", i, a[i], b[i])
		}
	}
	if got := matrixRotate(1.0, 0, 0, 0); !got.IsIdentity() {
		t.Error("zero axis should yield identity")
	}
}

func TestMatrixTransformBox(t *testing.T) {
	b := Box{Lo: Pt(-10, -10), Hi: Pt(10, 10)}
	got := matrixRotateZ(math32.Pi/4).transformBox(b)
	// A rotated square's AABB grows to its diagonal.
	d := 10 * math32.Sqrt2
	if !pointApproxEq(got.Lo, Pt(-d, -d)) || !pointApproxEq(got.Hi, Pt(d, d)) {
		t.Errorf("transformBox = %v, want ±%v", got, d)
	}

	// Negative-quadrant translation must not clamp against zero.
	got = matrixTranslate(-100, -100, 0).transformBox(Box{Lo: Pt(0, 0), Hi: Pt(10, 10)})
	want := Box{Lo: Pt(-100, -100), Hi: Pt(-90, -90)}
	if got != want {
		t.Errorf("translated box = %v, want %v", got, want)
	}
}
