// Copyright 2026 The vgo Authors
// SPDX-License-Identifier: MIT

package renderer

import (
	"unsafe"

	"github.com/isaiah-parton/vgo"
)

// The core package asserts the exact GPU layout of these records with
// offset and size checks, so reinterpreting the slices as raw bytes is a
// zero-copy upload path.

func sliceBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0]))) //nolint:gosec // fixed-layout GPU records
}

func shapeBytes(f *vgo.Frame) []byte   { return sliceBytes(f.Shapes) }
func paintBytes(f *vgo.Frame) []byte   { return sliceBytes(f.Paints) }
func matrixBytes(f *vgo.Frame) []byte  { return sliceBytes(f.Matrices) }
func controlBytes(f *vgo.Frame) []byte { return sliceBytes(f.ControlPoints) }
func vertexBytes(f *vgo.Frame) []byte  { return sliceBytes(f.Vertices) }
func indexBytes(f *vgo.Frame) []byte   { return sliceBytes(f.Indices) }
