// Copyright 2026 The vgo Authors
// SPDX-License-Identifier: MIT

// Package renderer submits vgo frames to the GPU through gogpu/wgpu.
//
// The renderer uploads a frame's shape, paint, matrix and control point
// arenas as storage buffers and its vertex and index streams as vertex
// and index buffers, then issues one indexed draw per recorded draw call.
// A single WGSL shader evaluates the signed distance field of each shape
// chain per pixel, so geometry stays resolution independent.
//
// A Renderer either owns its GPU device (NewRenderer) or borrows one from
// a host application through a gpucontext.DeviceProvider
// (NewRendererWithProvider). Borrowed devices are never destroyed on
// Close.
package renderer
