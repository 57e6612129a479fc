//go:build js

package glint

import (
	"fmt"
	"syscall/js"

	"github.com/oliverbestmann/webgpu/wgpu"
)

type jsCanvas struct {
	canvas js.Value

	closed bool
}

// NewCanvas creates a canvas element and appends it to the document body.
// The element is focusable so key events reach it once it is clicked. The
// CSS size tracks the viewport while width and height start out at the
// given backing store size.
func NewCanvas(width, height int, title string) (Canvas, error) {
	document := js.Global().Get("document")
	canvas := document.Call("createElement", "canvas")
	document.Get("body").Call("appendChild", canvas)

	document.Set("title", title)

	canvas.Set("style", "width:100vw; height:100vh")
	canvas.Set("tabIndex", 0)
	canvas.Set("width", width)
	canvas.Set("height", height)

	return &jsCanvas{canvas: canvas}, nil
}

func (c *jsCanvas) ClientSize() (int, int) {
	return c.canvas.Get("clientWidth").Int(), c.canvas.Get("clientHeight").Int()
}

func (c *jsCanvas) BufferSize() (int, int) {
	return c.canvas.Get("width").Int(), c.canvas.Get("height").Int()
}

func (c *jsCanvas) SetBufferSize(width, height int) {
	c.canvas.Set("width", width)
	c.canvas.Set("height", height)
}

func (c *jsCanvas) Now() float64 {
	return js.Global().Get("performance").Call("now").Float() / 1000
}

// RequestFrame schedules one requestAnimationFrame callback. The browser
// reports the frame time in milliseconds on the performance.now clock.
func (c *jsCanvas) RequestFrame(frame func(now float64)) {
	var fn js.Func

	fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		fn.Release()
		frame(args[0].Float() / 1000)
		return nil
	})

	js.Global().Call("requestAnimationFrame", fn)
}

func (c *jsCanvas) Subscribe(name EventName, deliver func(Event)) (func(), error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	if !knownEvent(name) {
		return nil, fmt.Errorf("glint: unknown event name %q", name)
	}

	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		deliver(translateEvent(name, args[0]))
		return nil
	})

	c.canvas.Call("addEventListener", string(name), fn)

	cancelled := false

	return func() {
		if cancelled {
			return
		}

		cancelled = true
		c.canvas.Call("removeEventListener", string(name), fn)
		fn.Release()
	}, nil
}

func (c *jsCanvas) ObserveResize(notify func()) (cancel func()) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		notify()
		return nil
	})

	observer := js.Global().Get("ResizeObserver").New(fn)
	observer.Call("observe", c.canvas)

	cancelled := false

	return func() {
		if cancelled {
			return
		}

		cancelled = true
		observer.Call("disconnect")
		fn.Release()
	}
}

func (c *jsCanvas) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: c.canvas}
}

// Run parks the goroutine. The browser delivers frames and events on its
// own schedule.
func (c *jsCanvas) Run() error {
	select {}
}

func (c *jsCanvas) Close() {
	if c.closed {
		return
	}

	c.closed = true
	c.canvas.Call("remove")
}

func translateEvent(name EventName, ev js.Value) Event {
	switch name {
	case EventKeyDown, EventKeyUp:
		return KeyEvent{
			Name:   name,
			Key:    keyFromCode(ev.Get("code").String()),
			Repeat: ev.Get("repeat").Bool(),
		}

	case EventMouseDown, EventMouseUp, EventMouseMove, EventClick:
		return MouseEvent{
			Name:   name,
			Button: MouseButton(ev.Get("button").Int()),
			X:      ev.Get("offsetX").Float(),
			Y:      ev.Get("offsetY").Float(),
		}

	case EventWheel:
		return WheelEvent{
			DeltaX: ev.Get("deltaX").Float(),
			DeltaY: ev.Get("deltaY").Float(),
		}
	}

	return nil
}
