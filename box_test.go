package vgo

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestBoxIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want Box
	}{
		{
			name: "overlapping",
			a:    Box{Lo: Pt(0, 0), Hi: Pt(100, 100)},
			b:    Box{Lo: Pt(50, 50), Hi: Pt(200, 200)},
			want: Box{Lo: Pt(50, 50), Hi: Pt(100, 100)},
		},
		{
			name: "contained",
			a:    Box{Lo: Pt(0, 0), Hi: Pt(100, 100)},
			b:    Box{Lo: Pt(25, 25), Hi: Pt(75, 75)},
			want: Box{Lo: Pt(25, 25), Hi: Pt(75, 75)},
		},
		{
			name: "disjoint",
			a:    Box{Lo: Pt(0, 0), Hi: Pt(10, 10)},
			b:    Box{Lo: Pt(20, 20), Hi: Pt(30, 30)},
			want: Box{Lo: Pt(20, 20), Hi: Pt(10, 10)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxDegenerate(t *testing.T) {
	if (Box{Lo: Pt(0, 0), Hi: Pt(10, 10)}).IsDegenerate() {
		t.Error("live box reported degenerate")
	}
	if !(Box{Lo: Pt(20, 20), Hi: Pt(10, 10)}).IsDegenerate() {
		t.Error("inverted box not reported degenerate")
	}
	if !(Box{Lo: Pt(5, 0), Hi: Pt(5, 10)}).IsDegenerate() {
		t.Error("zero-width box not reported degenerate")
	}
	if !EmptyBox().IsDegenerate() {
		t.Error("EmptyBox not degenerate")
	}
}

func TestBoxUnionAndInflate(t *testing.T) {
	a := Box{Lo: Pt(0, 0), Hi: Pt(10, 10)}
	b := Box{Lo: Pt(20, -5), Hi: Pt(30, 5)}
	if got, want := a.Union(b), (Box{Lo: Pt(0, -5), Hi: Pt(30, 10)}); got != want {
		t.Errorf("Union() = %v, want %v", got, want)
	}
	if got, want := a.Inflate(2), (Box{Lo: Pt(-2, -2), Hi: Pt(12, 12)}); got != want {
		t.Errorf("Inflate(2) = %v, want %v", got, want)
	}
}

func TestEmptyBoxExpand(t *testing.T) {
	// Expanding the inverted empty box must converge on the points alone,
	// even when all of them are negative.
	box := EmptyBox()
	box.Hi = Pt(-math32.MaxFloat32, -math32.MaxFloat32)
	box = box.ExpandPoint(Pt(-30, -20))
	box = box.ExpandPoint(Pt(-10, -40))
	want := Box{Lo: Pt(-30, -40), Hi: Pt(-10, -20)}
	if box != want {
		t.Errorf("expanded box = %v, want %v", box, want)
	}
}
