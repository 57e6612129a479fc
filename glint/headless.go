package glint

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// Headless is an in-memory Canvas without a GPU surface. Tests and
// simulations drive it by hand: the clock only moves when told to and
// frames run when RunFrame is called.
type Headless struct {
	clientWidth, clientHeight int
	bufWidth, bufHeight       int

	now   float64
	frame func(now float64)

	subs      subscriberSet
	observers observerSet

	closed bool
}

var _ Canvas = (*Headless)(nil)

func NewHeadless(width, height int) *Headless {
	return &Headless{
		clientWidth:  width,
		clientHeight: height,
		bufWidth:     width,
		bufHeight:    height,
	}
}

func (h *Headless) ClientSize() (int, int) {
	return h.clientWidth, h.clientHeight
}

func (h *Headless) BufferSize() (int, int) {
	return h.bufWidth, h.bufHeight
}

func (h *Headless) SetBufferSize(width, height int) {
	h.bufWidth, h.bufHeight = width, height
}

// SetClientSize changes the reported client size and notifies resize
// observers, like a layout change would.
func (h *Headless) SetClientSize(width, height int) {
	h.clientWidth, h.clientHeight = width, height
	h.observers.notify()
}

func (h *Headless) Now() float64 {
	return h.now
}

// SetNow moves the simulated clock without running a frame.
func (h *Headless) SetNow(now float64) {
	h.now = now
}

func (h *Headless) RequestFrame(frame func(now float64)) {
	h.frame = frame
}

// FramePending reports whether a frame callback is waiting to run.
func (h *Headless) FramePending() bool {
	return h.frame != nil
}

// RunFrame moves the clock to now and delivers the pending frame
// callback. It reports whether a frame was pending.
func (h *Headless) RunFrame(now float64) bool {
	frame := h.frame
	if frame == nil {
		return false
	}

	h.frame = nil
	h.now = now
	frame(now)

	return true
}

func (h *Headless) Subscribe(name EventName, deliver func(Event)) (func(), error) {
	if h.closed {
		return nil, ErrCanvasClosed
	}

	if !knownEvent(name) {
		return nil, fmt.Errorf("glint: unknown event name %q", name)
	}

	return h.subs.add(name, deliver), nil
}

// Emit delivers an event to all matching subscribers.
func (h *Headless) Emit(ev Event) {
	h.subs.dispatch(ev)
}

// SubscriberCount reports the number of live subscriptions for an event
// name.
func (h *Headless) SubscriberCount(name EventName) int {
	return h.subs.count(name)
}

func (h *Headless) ObserveResize(notify func()) (cancel func()) {
	return h.observers.add(notify)
}

func (h *Headless) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return nil
}

// Run delivers pending frames at a fixed simulated cadence of 60 frames
// per second until the loop stops requesting them.
func (h *Headless) Run() error {
	const step = 1.0 / 60

	for !h.closed && h.frame != nil {
		h.RunFrame(h.now + step)
	}

	return nil
}

func (h *Headless) Close() {
	if h.closed {
		return
	}

	h.closed = true
	h.frame = nil
	h.subs = subscriberSet{}
	h.observers = observerSet{}
}
