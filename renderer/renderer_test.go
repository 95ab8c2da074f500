// Copyright 2026 The vgo Authors
// SPDX-License-Identifier: MIT

package renderer

import (
	"errors"
	"strings"
	"testing"
	"unsafe"

	"github.com/isaiah-parton/vgo"
)

func TestGrownSizeDoubles(t *testing.T) {
	tests := []struct {
		current, need, want uint64
	}{
		{0, 1, minBufferSize},
		{0, minBufferSize, minBufferSize},
		{minBufferSize, minBufferSize + 1, 2 * minBufferSize},
		{minBufferSize, 10 * minBufferSize, 16 * minBufferSize},
		{8192, 8192, 8192},
	}
	for _, tt := range tests {
		got := grownSize(tt.current, tt.need)
		if got != tt.want {
			t.Errorf("grownSize(%d, %d) = %d, want %d", tt.current, tt.need, got, tt.want)
		}
		if got < tt.need {
			t.Errorf("grownSize(%d, %d) = %d, smaller than need", tt.current, tt.need, got)
		}
	}
}

func TestSliceBytesLength(t *testing.T) {
	shapes := make([]vgo.Shape, 3)
	if got, want := len(sliceBytes(shapes)), 3*int(unsafe.Sizeof(vgo.Shape{})); got != want {
		t.Errorf("shape bytes = %d, want %d", got, want)
	}
	verts := make([]vgo.Vertex, 5)
	if got, want := len(sliceBytes(verts)), 5*int(unsafe.Sizeof(vgo.Vertex{})); got != want {
		t.Errorf("vertex bytes = %d, want %d", got, want)
	}
	if sliceBytes([]uint32(nil)) != nil {
		t.Error("nil slice should yield nil bytes")
	}
}

func TestSliceBytesAliases(t *testing.T) {
	indices := []uint32{0x04030201}
	b := sliceBytes(indices)
	if len(b) != 4 {
		t.Fatalf("len = %d, want 4", len(b))
	}
	for i, want := range []byte{1, 2, 3, 4} {
		if b[i] != want {
			t.Errorf("byte %d = %#x, want %#x", i, b[i], want)
		}
	}
}

func TestPadStorageNeverEmpty(t *testing.T) {
	if got := padStorage(nil); len(got) == 0 {
		t.Error("padStorage(nil) returned an empty slice")
	}
	data := []byte{1, 2, 3, 4}
	if got := padStorage(data); &got[0] != &data[0] {
		t.Error("padStorage copied non-empty data")
	}
}

func TestBGRAToRGBA(t *testing.T) {
	src := []byte{10, 20, 30, 40, 50, 60, 70, 80}
	dst := make([]byte, len(src))
	bgraToRGBA(src, dst)
	want := []byte{30, 20, 10, 40, 70, 60, 50, 80}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestVertexLayoutMatchesVertex(t *testing.T) {
	layouts := vertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("got %d vertex buffers, want 1", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != uint64(unsafe.Sizeof(vgo.Vertex{})) {
		t.Errorf("stride = %d, want %d", l.ArrayStride, unsafe.Sizeof(vgo.Vertex{}))
	}
	var v vgo.Vertex
	wantOffsets := []uint64{
		uint64(unsafe.Offsetof(v.Position)),
		uint64(unsafe.Offsetof(v.UV)),
		uint64(unsafe.Offsetof(v.Col)),
		uint64(unsafe.Offsetof(v.Shape)),
		uint64(unsafe.Offsetof(v.Paint)),
	}
	if len(l.Attributes) != len(wantOffsets) {
		t.Fatalf("got %d attributes, want %d", len(l.Attributes), len(wantOffsets))
	}
	for i, attr := range l.Attributes {
		if attr.Offset != wantOffsets[i] {
			t.Errorf("attribute %d offset = %d, want %d", i, attr.Offset, wantOffsets[i])
		}
		if attr.ShaderLocation != uint32(i) {
			t.Errorf("attribute %d location = %d, want %d", i, attr.ShaderLocation, i)
		}
	}
}

func TestHalFromProviderRejectsPlainProvider(t *testing.T) {
	_, _, err := halFromProvider(NullDeviceHandle{})
	if !errors.Is(err, ErrProviderNotHAL) {
		t.Errorf("err = %v, want ErrProviderNotHAL", err)
	}
}

func TestShaderSourceEmbedded(t *testing.T) {
	if shaderSource == "" {
		t.Fatal("embedded shader source is empty")
	}
	for _, entry := range []string{"vs_main", "fs_main"} {
		if !strings.Contains(shaderSource, entry) {
			t.Errorf("shader source missing entry point %q", entry)
		}
	}
}
