// Copyright 2026 The vgo Authors
// SPDX-License-Identifier: MIT

package renderer

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// Device errors.
var (
	// ErrNoBackend is returned when no GPU backend is registered.
	ErrNoBackend = errors.New("renderer: no GPU backend available")

	// ErrNoAdapter is returned when the instance exposes no adapters.
	ErrNoAdapter = errors.New("renderer: no GPU adapters found")

	// ErrProviderNotHAL is returned when a device provider cannot expose
	// raw HAL handles.
	ErrProviderNotHAL = errors.New("renderer: provider does not expose HAL types")
)

// DeviceHandle provides GPU device access from a host application.
//
// The host (e.g. a gogpu.App) implements DeviceHandle and passes it to
// NewRendererWithProvider, letting the renderer share the host's device
// instead of creating its own. DeviceHandle is an alias for
// gpucontext.DeviceProvider so any gpucontext host works unchanged.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with nil implementations, useful in
// tests that exercise provider plumbing without a GPU.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo returns unknown adapter metadata for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

var _ DeviceHandle = NullDeviceHandle{}

// halProvider is the contract a shared provider must additionally satisfy
// so the renderer can reach the raw HAL device under the gpucontext
// abstraction. gogpu contexts implement it.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// halFromProvider extracts raw HAL handles from a device provider.
func halFromProvider(provider any) (hal.Device, hal.Queue, error) {
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, ErrProviderNotHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrProviderNotHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrProviderNotHAL)
	}
	return device, queue, nil
}

// openDevice creates an instance and opens a device on the best adapter,
// preferring discrete over integrated GPUs.
func openDevice() (hal.Instance, hal.Device, hal.Queue, string, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, nil, nil, "", ErrNoBackend
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, nil, nil, "", fmt.Errorf("create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, nil, nil, "", ErrNoAdapter
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, nil, nil, "", fmt.Errorf("open device: %w", err)
	}
	return instance, openDev.Device, openDev.Queue, selected.Info.Name, nil
}
