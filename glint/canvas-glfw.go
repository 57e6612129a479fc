//go:build !js

package glint

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
	"github.com/pkg/profile"
)

type glfwCanvas struct {
	win  *glfw.Window
	prof interface{ Stop() }

	frame func(now float64)

	subs      subscriberSet
	observers observerSet

	bufWidth, bufHeight int

	closed bool
}

// NewCanvas opens a glfw window without a client side GL context. The
// backing store starts out at the framebuffer size the window system
// assigned. Set CADENCE_PROFILE to capture a CPU profile for the lifetime
// of the canvas.
func NewCanvas(width, height int, title string) (Canvas, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	c := &glfwCanvas{win: win}
	c.bufWidth, c.bufHeight = win.GetFramebufferSize()

	if os.Getenv("CADENCE_PROFILE") != "" {
		c.prof = profile.Start(profile.CPUProfile)
	}

	c.configureCallbacks()

	return c, nil
}

func (c *glfwCanvas) configureCallbacks() {
	c.win.SetKeyCallback(func(_ *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		key, ok := keyOf(glfwKey)
		if !ok {
			return
		}

		switch action {
		case glfw.Press:
			c.subs.dispatch(KeyEvent{Name: EventKeyDown, Key: key})

		case glfw.Repeat:
			c.subs.dispatch(KeyEvent{Name: EventKeyDown, Key: key, Repeat: true})

		case glfw.Release:
			c.subs.dispatch(KeyEvent{Name: EventKeyUp, Key: key})
		}
	})

	c.win.SetMouseButtonCallback(func(_ *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		button, ok := buttonOf(btn)
		if !ok {
			return
		}

		x, y := c.win.GetCursorPos()

		switch action {
		case glfw.Press:
			c.subs.dispatch(MouseEvent{Name: EventMouseDown, Button: button, X: x, Y: y})

		case glfw.Release:
			c.subs.dispatch(MouseEvent{Name: EventMouseUp, Button: button, X: x, Y: y})

			// a click fires on the release, matching the DOM
			c.subs.dispatch(MouseEvent{Name: EventClick, Button: button, X: x, Y: y})
		}
	})

	c.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		c.subs.dispatch(MouseEvent{Name: EventMouseMove, X: x, Y: y})
	})

	c.win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		c.subs.dispatch(WheelEvent{DeltaX: dx, DeltaY: dy})
	})

	c.win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		c.observers.notify()
	})
}

func (c *glfwCanvas) ClientSize() (int, int) {
	return c.win.GetSize()
}

func (c *glfwCanvas) BufferSize() (int, int) {
	return c.bufWidth, c.bufHeight
}

// SetBufferSize records the requested backing store size. On desktop the
// window system owns the framebuffer, the recorded size is what the
// surface gets configured at.
func (c *glfwCanvas) SetBufferSize(width, height int) {
	c.bufWidth, c.bufHeight = width, height
}

func (c *glfwCanvas) Now() float64 {
	return glfw.GetTime()
}

func (c *glfwCanvas) RequestFrame(frame func(now float64)) {
	c.frame = frame
}

func (c *glfwCanvas) Subscribe(name EventName, deliver func(Event)) (func(), error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	if !knownEvent(name) {
		return nil, fmt.Errorf("glint: unknown event name %q", name)
	}

	return c.subs.add(name, deliver), nil
}

func (c *glfwCanvas) ObserveResize(notify func()) (cancel func()) {
	return c.observers.add(notify)
}

func (c *glfwCanvas) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(c.win)
}

// Run pumps platform events and delivers one requested frame per
// iteration. It returns once the window closes or no frame is pending,
// pacing comes from presentation inside the frame callback.
func (c *glfwCanvas) Run() error {
	// report the initial size once, the way a DOM ResizeObserver
	// delivers its first observation
	c.observers.notify()

	for !c.closed && !c.win.ShouldClose() {
		frame := c.frame
		c.frame = nil

		if frame == nil {
			return nil
		}

		glfw.PollEvents()
		frame(glfw.GetTime())
	}

	return nil
}

func (c *glfwCanvas) Close() {
	if c.closed {
		return
	}

	c.closed = true
	c.frame = nil

	if c.prof != nil {
		c.prof.Stop()
	}

	c.win.Destroy()
	glfw.Terminate()
}

func keyOf(glfwKey glfw.Key) (Key, bool) {
	key, ok := glfwToKey[glfwKey]
	if !ok {
		slog.Warn("Unknown key code", slog.String("key", glfw.GetKeyName(glfwKey, 0)))
	}

	return key, ok
}

func buttonOf(btn glfw.MouseButton) (MouseButton, bool) {
	switch btn {
	case glfw.MouseButtonLeft:
		return MouseButtonLeft, true
	case glfw.MouseButtonMiddle:
		return MouseButtonMiddle, true
	case glfw.MouseButtonRight:
		return MouseButtonRight, true
	}

	return 0, false
}

var glfwToKey = map[glfw.Key]Key{
	glfw.KeyA:            KeyA,
	glfw.KeyB:            KeyB,
	glfw.KeyC:            KeyC,
	glfw.KeyD:            KeyD,
	glfw.KeyE:            KeyE,
	glfw.KeyF:            KeyF,
	glfw.KeyG:            KeyG,
	glfw.KeyH:            KeyH,
	glfw.KeyI:            KeyI,
	glfw.KeyJ:            KeyJ,
	glfw.KeyK:            KeyK,
	glfw.KeyL:            KeyL,
	glfw.KeyM:            KeyM,
	glfw.KeyN:            KeyN,
	glfw.KeyO:            KeyO,
	glfw.KeyP:            KeyP,
	glfw.KeyQ:            KeyQ,
	glfw.KeyR:            KeyR,
	glfw.KeyS:            KeyS,
	glfw.KeyT:            KeyT,
	glfw.KeyU:            KeyU,
	glfw.KeyV:            KeyV,
	glfw.KeyW:            KeyW,
	glfw.KeyX:            KeyX,
	glfw.KeyY:            KeyY,
	glfw.KeyZ:            KeyZ,
	glfw.Key0:            Key0,
	glfw.Key1:            Key1,
	glfw.Key2:            Key2,
	glfw.Key3:            Key3,
	glfw.Key4:            Key4,
	glfw.Key5:            Key5,
	glfw.Key6:            Key6,
	glfw.Key7:            Key7,
	glfw.Key8:            Key8,
	glfw.Key9:            Key9,
	glfw.KeySpace:        KeySpace,
	glfw.KeyEnter:        KeyEnter,
	glfw.KeyEscape:       KeyEscape,
	glfw.KeyTab:          KeyTab,
	glfw.KeyBackspace:    KeyBackspace,
	glfw.KeyLeft:         KeyArrowLeft,
	glfw.KeyRight:        KeyArrowRight,
	glfw.KeyUp:           KeyArrowUp,
	glfw.KeyDown:         KeyArrowDown,
	glfw.KeyLeftShift:    KeyShiftLeft,
	glfw.KeyRightShift:   KeyShiftRight,
	glfw.KeyLeftControl:  KeyControlLeft,
	glfw.KeyRightControl: KeyControlRight,
	glfw.KeyLeftAlt:      KeyAltLeft,
	glfw.KeyRightAlt:     KeyAltRight,
}
