// Copyright 2026 The vgo Authors
// SPDX-License-Identifier: MIT

package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/isaiah-parton/vgo"
)

const sampleCount = 4

// uniformSize is the byte size of the frame uniform buffer:
// viewport (vec2<f32>) + padding (vec2<f32>).
const uniformSize = 16

// ErrClosed is returned when submitting to a closed renderer.
var ErrClosed = errors.New("renderer: renderer is closed")

// Renderer executes vgo frames on a GPU device. It implements
// vgo.Renderer.
//
// Frames render into an offscreen MSAA target that resolves to a
// single-sample texture, which is read back after every submit; Pixels
// returns the latest frame as RGBA. Rendering directly to a surface is
// the host application's concern.
type Renderer struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	external bool

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline

	shapeBuf  *arenaBuffer
	paintBuf  *arenaBuffer
	matrixBuf *arenaBuffer
	pointBuf  *arenaBuffer
	vertexBuf *arenaBuffer
	indexBuf  *arenaBuffer
	uniform   hal.Buffer

	samplers map[vgo.SamplerDescriptor]hal.Sampler

	atlas *Texture
	white *Texture

	msaaTex     hal.Texture
	msaaView    hal.TextureView
	resolveTex  hal.Texture
	resolveView hal.TextureView

	width, height uint32
	pixels        []byte
	closed        bool
}

var _ vgo.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer with its own GPU device, selecting the
// first discrete or integrated adapter.
func NewRenderer(width, height uint32) (*Renderer, error) {
	instance, device, queue, name, err := openDevice()
	if err != nil {
		return nil, err
	}
	r, err := newRenderer(device, queue, width, height, false)
	if err != nil {
		instance.Destroy()
		return nil, err
	}
	r.instance = instance
	vgo.Logger().Info("renderer: GPU device opened", "adapter", name)
	return r, nil
}

// NewRendererWithProvider creates a renderer on a device shared by the
// host application. The provider must also expose raw HAL handles via
// HalDevice/HalQueue. Shared devices are not destroyed on Close.
func NewRendererWithProvider(handle DeviceHandle, width, height uint32) (*Renderer, error) {
	device, queue, err := halFromProvider(handle)
	if err != nil {
		return nil, err
	}
	r, err := newRenderer(device, queue, width, height, true)
	if err != nil {
		return nil, err
	}
	vgo.Logger().Info("renderer: using shared GPU device")
	return r, nil
}

func newRenderer(device hal.Device, queue hal.Queue, width, height uint32, external bool) (*Renderer, error) {
	r := &Renderer{
		device:   device,
		queue:    queue,
		external: external,
		samplers: make(map[vgo.SamplerDescriptor]hal.Sampler),

		shapeBuf:  newArenaBuffer(device, queue, "vgo_shapes", gputypes.BufferUsageStorage),
		paintBuf:  newArenaBuffer(device, queue, "vgo_paints", gputypes.BufferUsageStorage),
		matrixBuf: newArenaBuffer(device, queue, "vgo_matrices", gputypes.BufferUsageStorage),
		pointBuf:  newArenaBuffer(device, queue, "vgo_control_points", gputypes.BufferUsageStorage),
		vertexBuf: newArenaBuffer(device, queue, "vgo_vertices", gputypes.BufferUsageVertex),
		indexBuf:  newArenaBuffer(device, queue, "vgo_indices", gputypes.BufferUsageIndex),
	}

	if err := r.createPipeline(); err != nil {
		r.Close()
		return nil, err
	}

	uniform, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "vgo_uniform",
		Size:  uniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("create uniform buffer: %w", err)
	}
	r.uniform = uniform

	// 1x1 white fallback bound when a draw call has no texture and no
	// atlas is installed.
	white, err := r.CreateTexture("vgo_white", 1, 1)
	if err != nil {
		r.Close()
		return nil, err
	}
	if err := white.Upload([]byte{255, 255, 255, 255}); err != nil {
		r.Close()
		return nil, err
	}
	r.white = white

	if err := r.Resize(width, height); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

// SetAtlas installs the glyph atlas texture sampled by draw calls whose
// texture handle is nil.
func (r *Renderer) SetAtlas(t *Texture) { r.atlas = t }

// Size returns the current render target dimensions.
func (r *Renderer) Size() (uint32, uint32) { return r.width, r.height }

// Pixels returns the RGBA pixels of the last submitted frame. The slice
// is reused between frames.
func (r *Renderer) Pixels() []byte { return r.pixels }

// Resize recreates the offscreen targets at the new dimensions.
func (r *Renderer) Resize(width, height uint32) error {
	if width == r.width && height == r.height && r.msaaTex != nil {
		return nil
	}
	r.destroyTargets()

	size := hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1}

	msaaTex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "vgo_msaa",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   sampleCount,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create MSAA texture: %w", err)
	}
	r.msaaTex = msaaTex

	msaaView, err := r.device.CreateTextureView(msaaTex, &hal.TextureViewDescriptor{
		Label:         "vgo_msaa_view",
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		r.destroyTargets()
		return fmt.Errorf("create MSAA view: %w", err)
	}
	r.msaaView = msaaView

	resolveTex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "vgo_resolve",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		r.destroyTargets()
		return fmt.Errorf("create resolve texture: %w", err)
	}
	r.resolveTex = resolveTex

	resolveView, err := r.device.CreateTextureView(resolveTex, &hal.TextureViewDescriptor{
		Label:         "vgo_resolve_view",
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		r.destroyTargets()
		return fmt.Errorf("create resolve view: %w", err)
	}
	r.resolveView = resolveView

	r.width = width
	r.height = height
	r.pixels = make([]byte, int(width)*int(height)*4)
	return nil
}

// SubmitFrame uploads the frame's arenas and streams, then encodes one
// render pass with one indexed draw per recorded draw call, in Index
// order. The resolved target is read back into Pixels before returning.
func (r *Renderer) SubmitFrame(f *vgo.Frame) error {
	if r.closed {
		return ErrClosed
	}

	if err := r.uploadFrame(f); err != nil {
		return err
	}

	// One bind group per draw call: texture and sampler state differ.
	bindGroups := make([]hal.BindGroup, 0, len(f.DrawCalls))
	defer func() {
		for _, bg := range bindGroups {
			r.device.DestroyBindGroup(bg)
		}
	}()
	for i := range f.DrawCalls {
		bg, err := r.createBindGroup(f, &f.DrawCalls[i])
		if err != nil {
			return err
		}
		bindGroups = append(bindGroups, bg)
	}

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "vgo_encoder"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	defer encoder.Destroy()
	if err := encoder.BeginEncoding("vgo_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "vgo_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:          r.msaaView,
				ResolveTarget: r.resolveView,
				LoadOp:        gputypes.LoadOpClear,
				StoreOp:       gputypes.StoreOpStore,
				ClearValue:    gputypes.Color{R: 0, G: 0, B: 0, A: 0},
			},
		},
	})
	if len(f.Indices) > 0 {
		rp.SetPipeline(r.pipeline)
		rp.SetVertexBuffer(0, r.vertexBuf.buf, 0)
		rp.SetIndexBuffer(r.indexBuf.buf, gputypes.IndexFormatUint32, 0)
		for i := range f.DrawCalls {
			dc := &f.DrawCalls[i]
			if dc.ElemCount == 0 {
				continue
			}
			rp.SetBindGroup(0, bindGroups[i], nil)
			rp.DrawIndexed(uint32(dc.ElemCount), 1, uint32(dc.ElemOffset), 0, 0)
		}
	}
	rp.End()

	// The resolve target leaves the pass in attachment layout; the copy
	// below needs transfer-src.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.resolveTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	pixelBufSize := uint64(r.width) * uint64(r.height) * 4
	stagingBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "vgo_staging",
		Size:  pixelBufSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return fmt.Errorf("create staging buffer: %w", err)
	}
	defer r.device.DestroyBuffer(stagingBuf)

	encoder.CopyTextureToBuffer(r.resolveTex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: r.width * 4, RowsPerImage: r.height},
		TextureBase:  hal.ImageCopyTexture{Texture: r.resolveTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: r.width, Height: r.height, DepthOrArrayLayers: 1},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	subIdx, err := r.queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if err := r.device.WaitIdle(); err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}
	if completed := r.queue.PollCompleted(); completed < subIdx {
		return fmt.Errorf("renderer: submission %d not completed (last %d)", subIdx, completed)
	}

	mapping, err := r.device.MapBuffer(stagingBuf, 0, pixelBufSize)
	if err != nil {
		return fmt.Errorf("map staging buffer: %w", err)
	}
	bgraToRGBA(unsafe.Slice((*byte)(mapping.Ptr), pixelBufSize), r.pixels)
	if err := r.device.UnmapBuffer(stagingBuf); err != nil {
		return fmt.Errorf("unmap staging buffer: %w", err)
	}

	vgo.Logger().Debug("renderer: frame submitted",
		"shapes", len(f.Shapes)-1,
		"vertices", len(f.Vertices),
		"indices", len(f.Indices),
		"drawCalls", len(f.DrawCalls))
	return nil
}

// uploadFrame writes all frame data to the GPU buffers.
func (r *Renderer) uploadFrame(f *vgo.Frame) error {
	uploads := []struct {
		buf  *arenaBuffer
		data []byte
	}{
		{r.shapeBuf, shapeBytes(f)},
		{r.paintBuf, paintBytes(f)},
		{r.matrixBuf, matrixBytes(f)},
		{r.pointBuf, padStorage(controlBytes(f))},
		{r.vertexBuf, vertexBytes(f)},
		{r.indexBuf, indexBytes(f)},
	}
	for _, u := range uploads {
		if err := u.buf.upload(u.data); err != nil {
			return err
		}
	}

	viewport := [4]float32{float32(r.width), float32(r.height), 0, 0}
	if err := r.queue.WriteBuffer(r.uniform, 0, sliceBytes(viewport[:])); err != nil {
		return fmt.Errorf("write uniform buffer: %w", err)
	}
	return nil
}

// padStorage guarantees a non-empty storage binding; frames without path
// or polygon shapes record no control points.
func padStorage(data []byte) []byte {
	if len(data) == 0 {
		return make([]byte, 8)
	}
	return data
}

// createBindGroup builds the bind group for one draw call, resolving its
// texture handle and sampler state.
func (r *Renderer) createBindGroup(f *vgo.Frame, dc *vgo.DrawCall) (hal.BindGroup, error) {
	view := r.resolveTextureView(dc.Texture)
	sampler, err := r.samplerFor(dc.Sampler)
	if err != nil {
		return nil, err
	}
	return r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "vgo_bind",
		Layout: r.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: r.uniform.NativeHandle(), Offset: 0, Size: uniformSize}},
			{Binding: 1, Resource: gputypes.BufferBinding{Buffer: r.shapeBuf.buf.NativeHandle(), Offset: 0, Size: r.shapeBuf.cap}},
			{Binding: 2, Resource: gputypes.BufferBinding{Buffer: r.paintBuf.buf.NativeHandle(), Offset: 0, Size: r.paintBuf.cap}},
			{Binding: 3, Resource: gputypes.BufferBinding{Buffer: r.matrixBuf.buf.NativeHandle(), Offset: 0, Size: r.matrixBuf.cap}},
			{Binding: 4, Resource: gputypes.BufferBinding{Buffer: r.pointBuf.buf.NativeHandle(), Offset: 0, Size: r.pointBuf.cap}},
			{Binding: 5, Resource: gputypes.TextureViewBinding{TextureView: view.NativeHandle()}},
			{Binding: 6, Resource: gputypes.SamplerBinding{Sampler: sampler.NativeHandle()}},
		},
	})
}

// resolveTextureView maps a draw call's opaque texture handle to a view:
// a *Texture created by this renderer, else the atlas, else white.
func (r *Renderer) resolveTextureView(handle any) hal.TextureView {
	if t, ok := handle.(*Texture); ok && t.view != nil {
		return t.view
	}
	if r.atlas != nil && r.atlas.view != nil {
		return r.atlas.view
	}
	return r.white.view
}

// samplerFor returns a cached sampler for the descriptor, creating it on
// first use. Frames reuse a handful of sampler states, so the cache never
// grows past a few entries.
func (r *Renderer) samplerFor(desc vgo.SamplerDescriptor) (hal.Sampler, error) {
	if s, ok := r.samplers[desc]; ok {
		return s, nil
	}
	s, err := r.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "vgo_sampler",
		AddressModeU: desc.AddressModeU,
		AddressModeV: desc.AddressModeV,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    desc.MagFilter,
		MinFilter:    desc.MinFilter,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return nil, fmt.Errorf("create sampler: %w", err)
	}
	r.samplers[desc] = s
	return s, nil
}

func (r *Renderer) createPipeline() error {
	shader, err := createShaderModule(r.device)
	if err != nil {
		return err
	}
	r.shader = shader

	bindLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "vgo_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage},
			},
			{
				Binding:    3,
				Visibility: gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage},
			},
			{
				Binding:    4,
				Visibility: gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage},
			},
			{
				Binding:    5,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    6,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}
	r.bindLayout = bindLayout

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "vgo_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{r.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "vgo_pipeline",
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     r.shader,
			EntryPoint: "vs_main",
			Buffers:    vertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     r.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatBGRA8Unorm,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: sampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create render pipeline: %w", err)
	}
	r.pipeline = pipeline
	return nil
}

// vertexLayout matches VertexInput in vgo.wgsl and the vgo.Vertex wire
// layout (28 bytes).
func vertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: 28,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // uv
				{Format: gputypes.VertexFormatUnorm8x4, Offset: 16, ShaderLocation: 2}, // color
				{Format: gputypes.VertexFormatUint32, Offset: 20, ShaderLocation: 3},   // shape index
				{Format: gputypes.VertexFormatUint32, Offset: 24, ShaderLocation: 4},   // paint index
			},
		},
	}
}

// bgraToRGBA converts readback pixels in place into dst.
func bgraToRGBA(src, dst []byte) {
	n := min(len(src), len(dst))
	for i := 0; i+3 < n; i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = src[i+3]
	}
}

func (r *Renderer) destroyTargets() {
	if r.resolveView != nil {
		r.device.DestroyTextureView(r.resolveView)
		r.resolveView = nil
	}
	if r.resolveTex != nil {
		r.device.DestroyTexture(r.resolveTex)
		r.resolveTex = nil
	}
	if r.msaaView != nil {
		r.device.DestroyTextureView(r.msaaView)
		r.msaaView = nil
	}
	if r.msaaTex != nil {
		r.device.DestroyTexture(r.msaaTex)
		r.msaaTex = nil
	}
	r.width = 0
	r.height = 0
}

// Close releases all GPU resources. A shared device is left alive for
// its owner; an owned device and instance are destroyed.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true

	r.destroyTargets()
	for _, s := range r.samplers {
		r.device.DestroySampler(s)
	}
	r.samplers = nil
	if r.white != nil {
		r.white.Destroy()
		r.white = nil
	}
	if r.uniform != nil {
		r.device.DestroyBuffer(r.uniform)
		r.uniform = nil
	}
	for _, b := range []*arenaBuffer{r.shapeBuf, r.paintBuf, r.matrixBuf, r.pointBuf, r.vertexBuf, r.indexBuf} {
		if b != nil {
			b.destroy()
		}
	}
	if r.pipeline != nil {
		r.device.DestroyRenderPipeline(r.pipeline)
		r.pipeline = nil
	}
	if r.pipeLayout != nil {
		r.device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.bindLayout != nil {
		r.device.DestroyBindGroupLayout(r.bindLayout)
		r.bindLayout = nil
	}
	if r.shader != nil {
		r.device.DestroyShaderModule(r.shader)
		r.shader = nil
	}

	if !r.external {
		if r.device != nil {
			r.device.Destroy()
		}
		if r.instance != nil {
			r.instance.Destroy()
		}
	}
	r.device = nil
	r.queue = nil
	r.instance = nil
}
