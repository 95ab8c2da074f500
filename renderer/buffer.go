// Copyright 2026 The vgo Authors
// SPDX-License-Identifier: MIT

package renderer

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// minBufferSize is the smallest allocation for an arena buffer. Frames
// shrink and grow every frame; a floor avoids churning tiny buffers.
const minBufferSize = 4096

// arenaBuffer is a GPU buffer that grows to fit each frame's data and is
// reused across frames. Growth doubles capacity so a steady-state frame
// never reallocates.
type arenaBuffer struct {
	device hal.Device
	queue  hal.Queue
	label  string
	usage  gputypes.BufferUsage

	buf hal.Buffer
	cap uint64
}

func newArenaBuffer(device hal.Device, queue hal.Queue, label string, usage gputypes.BufferUsage) *arenaBuffer {
	return &arenaBuffer{
		device: device,
		queue:  queue,
		label:  label,
		usage:  usage | gputypes.BufferUsageCopyDst,
	}
}

// grownSize returns the capacity an arena buffer should have after a
// request for size bytes: the current capacity doubled until it fits,
// never below minBufferSize.
func grownSize(current, size uint64) uint64 {
	next := current
	if next < minBufferSize {
		next = minBufferSize
	}
	for next < size {
		next *= 2
	}
	return next
}

// upload ensures capacity for data and writes it at offset zero. Calling
// with empty data leaves any existing buffer untouched.
func (b *arenaBuffer) upload(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	size := uint64(len(data))
	if b.buf == nil || size > b.cap {
		b.destroy()
		newCap := grownSize(b.cap, size)
		buf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
			Label: b.label,
			Size:  newCap,
			Usage: b.usage,
		})
		if err != nil {
			return fmt.Errorf("create %s buffer: %w", b.label, err)
		}
		b.buf = buf
		b.cap = newCap
	}
	if err := b.queue.WriteBuffer(b.buf, 0, data); err != nil {
		return fmt.Errorf("write %s buffer: %w", b.label, err)
	}
	return nil
}

func (b *arenaBuffer) destroy() {
	if b.buf != nil {
		b.device.DestroyBuffer(b.buf)
		b.buf = nil
	}
}
