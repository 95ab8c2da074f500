// Copyright 2026 The vgo Authors
// SPDX-License-Identifier: MIT

package renderer

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Texture is a sampleable RGBA texture owned by a Renderer. Pass it to
// vgo.Context.SetTexture to direct subsequent texture-sampling paints at
// it; the renderer type-asserts the context's opaque handle back to
// *Texture at submission.
type Texture struct {
	device hal.Device
	queue  hal.Queue

	tex    hal.Texture
	view   hal.TextureView
	width  uint32
	height uint32
}

// CreateTexture allocates a width x height RGBA8 texture.
func (r *Renderer) CreateTexture(label string, width, height uint32) (*Texture, error) {
	tex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create texture %q: %w", label, err)
	}

	view, err := r.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		r.device.DestroyTexture(tex)
		return nil, fmt.Errorf("create texture view %q: %w", label, err)
	}

	return &Texture{
		device: r.device,
		queue:  r.queue,
		tex:    tex,
		view:   view,
		width:  width,
		height: height,
	}, nil
}

// Width returns the texture width in pixels.
func (t *Texture) Width() uint32 { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() uint32 { return t.height }

// Upload replaces the full texture contents with RGBA pixel data. The
// slice must hold width*height*4 bytes.
func (t *Texture) Upload(pixels []byte) error {
	want := int(t.width) * int(t.height) * 4
	if len(pixels) != want {
		return fmt.Errorf("renderer: pixel data is %d bytes, want %d", len(pixels), want)
	}
	return t.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: t.tex, MipLevel: 0},
		pixels,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  t.width * 4,
			RowsPerImage: t.height,
		},
		&hal.Extent3D{Width: t.width, Height: t.height, DepthOrArrayLayers: 1},
	)
}

// Destroy releases the texture's GPU resources. Safe to call twice.
func (t *Texture) Destroy() {
	if t.view != nil {
		t.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.tex != nil {
		t.device.DestroyTexture(t.tex)
		t.tex = nil
	}
}
