package vgo

// Vertex is one corner of an emitted quad. Position is in post-transform
// screen space; UV is the corner parameter in {0,1}² with diagonally
// opposite corners holding opposite values. Col is used by the evaluator
// when Paint references the reserved "no paint" slot 0. Shape and Paint
// index the frame's arenas.
//
// 28 bytes, layout asserted in layout_test.go.
type Vertex struct {
	Position Point
	UV       Point
	Col      [4]uint8
	Shape    uint32
	Paint    uint32
}
