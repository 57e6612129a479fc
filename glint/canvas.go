// Package glint provides the host surfaces a render loop runs against: a
// glfw window on desktop, a DOM canvas in the browser and an in-memory
// headless canvas for tests and simulations. All of them expose the same
// Canvas contract, so the loop engine never knows which host it drives.
package glint

import (
	"errors"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// ErrCanvasClosed is returned when subscribing on a canvas after Close.
var ErrCanvasClosed = errors.New("glint: canvas closed")

// Surface is the drawing surface with its two sizes: the client size in
// layout units and the backing store size in pixels.
type Surface interface {
	ClientSize() (width, height int)
	BufferSize() (width, height int)
	SetBufferSize(width, height int)
}

// FrameScheduler hands out single future frame callbacks. RequestFrame
// schedules exactly one invocation of frame with the presentation instant
// in seconds. Now reports the current instant on the same clock.
type FrameScheduler interface {
	Now() float64
	RequestFrame(frame func(now float64))
}

// EventSource delivers named input events to subscribers. Delivery is
// at-least-once and never reentrant. Subscribers for the same name are
// invoked in registration order.
type EventSource interface {
	Subscribe(name EventName, deliver func(Event)) (cancel func(), err error)
}

// ResizeNotifier reports changes of the client size. Notifications arrive
// zero or more times, never synchronously from ObserveResize itself.
type ResizeNotifier interface {
	ObserveResize(notify func()) (cancel func())
}

// Canvas is what a host platform provides to the loop engine.
type Canvas interface {
	Surface
	FrameScheduler
	EventSource
	ResizeNotifier

	// SurfaceDescriptor describes the native surface for wgpu.
	// Hosts without a GPU surface return nil.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run drives the platform loop until no more frames are requested
	// or the canvas is closed.
	Run() error

	Close()
}
