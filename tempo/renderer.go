// Package tempo runs a fixed-timestep render loop against a host canvas.
// Simulation updates happen at a configured cadence, rendering happens
// once per host frame with a blending factor for interpolation. One
// state value is shared between updates, renders, resize handling and
// input listeners, each callback gets it exclusively for the duration of
// one invocation.
package tempo

import (
	"log/slog"

	"github.com/oliverbestmann/cadence/glint"
)

// UpdateFunc runs once per fixed simulation step.
type UpdateFunc[S any] func(info *UpdateInfo[S])

// RenderFunc runs once per frame, after all pending fixed steps.
type RenderFunc[S any] func(info *RenderInfo[S])

// ResizeFunc inspects a client size change and returns the backing store
// size to apply, in pixels.
type ResizeFunc[S any] func(state *S, width, height int) (newWidth, newHeight int)

// EventFunc handles one host event with exclusive access to the state.
type EventFunc[S any] func(state *S, ev glint.Event)

// Renderer drives the loop. Configure it through a Builder, then call
// Start and hand control to the host with Canvas.Run. Call Close when
// done with it, the host subscriptions are only released there.
type Renderer[S any] struct {
	canvas glint.Canvas
	dc     DrawContext

	state cell[S]

	onUpdate UpdateFunc[S]
	onRender RenderFunc[S]
	onResize ResizeFunc[S]

	program    Program
	hasProgram bool

	listeners    []listener
	cancelResize func()

	phase  Phase
	exit   bool
	closed bool

	ups        int
	pendingUPS int

	step     float64
	maxFrame float64

	previous    float64
	accumulated float64

	updates uint64
	renders uint64

	frames frameTimes
}

type listener struct {
	name   glint.EventName
	cancel func()
}

// Start binds the initial state, fixes the simulation cadence and
// requests the first frame from the host. It succeeds at most once.
func (r *Renderer[S]) Start(initial S, updatesPerSecond int, maxFrameTime float64) error {
	if r.phase == PhaseExited {
		return ErrExited
	}

	if updatesPerSecond <= 0 {
		return ErrInvalidUpdateRate
	}

	if maxFrameTime <= 0 {
		return ErrInvalidMaxFrameTime
	}

	if err := r.state.set(&initial); err != nil {
		return err
	}

	r.ups = updatesPerSecond
	r.pendingUPS = updatesPerSecond
	r.step = 1.0 / float64(updatesPerSecond)
	r.maxFrame = maxFrameTime

	// measure the first elapsed interval from here, not from the host
	// clock origin
	r.previous = r.canvas.Now()

	r.phase = PhaseRunning

	slog.Info("Render loop starting",
		slog.Int("ups", updatesPerSecond),
		slog.Float64("fixedTimeStep", r.step),
		slog.Float64("maxFrameTime", maxFrameTime),
	)

	r.canvas.RequestFrame(r.tick)

	return nil
}

// Exit asks the loop to stop. The current tick still runs to completion,
// afterwards no further frame is requested and the phase becomes Exited.
func (r *Renderer[S]) Exit() {
	r.exit = true
}

// SetUpdatesPerSecond changes the simulation cadence. The change applies
// at the start of the next tick, never to a drain already in progress.
func (r *Renderer[S]) SetUpdatesPerSecond(ups int) {
	if ups <= 0 {
		slog.Warn("Ignoring invalid updates per second", slog.Int("ups", ups))
		return
	}

	r.pendingUPS = ups
}

// Close cancels all host subscriptions and marks the renderer exited.
// It is idempotent, no callback fires once it returns.
func (r *Renderer[S]) Close() {
	if r.closed {
		return
	}

	r.closed = true

	for _, l := range r.listeners {
		l.cancel()
	}
	r.listeners = nil

	if r.cancelResize != nil {
		r.cancelResize()
		r.cancelResize = nil
	}

	r.phase = PhaseExited

	slog.Info("Renderer closed",
		slog.Uint64("updates", r.updates),
		slog.Uint64("renders", r.renders),
	)
}

func (r *Renderer[S]) Phase() Phase { return r.phase }

// UpdateCount is the number of completed fixed updates.
func (r *Renderer[S]) UpdateCount() uint64 { return r.updates }

// RenderCount is the number of completed renders.
func (r *Renderer[S]) RenderCount() uint64 { return r.renders }

// FixedTimeStep is the current simulation step in seconds, exactly
// 1/updatesPerSecond.
func (r *Renderer[S]) FixedTimeStep() float64 { return r.step }

// AccumulatedTime is the unconsumed simulation time in seconds. After a
// drain it is always in [0, FixedTimeStep).
func (r *Renderer[S]) AccumulatedTime() float64 { return r.accumulated }

// Stats returns a snapshot of the loop counters and frame pacing.
func (r *Renderer[S]) Stats() Stats {
	return Stats{
		Updates: r.updates,
		Renders: r.renders,
		Frames:  r.frames.frames,
		Delta:   r.frames.delta,
		Average: r.frames.average,
		Max:     r.frames.max,
	}
}

// UpdateInfo is handed to the update callback.
type UpdateInfo[S any] struct {
	State *S

	r *Renderer[S]
}

func (u *UpdateInfo[S]) Exit()                       { u.r.Exit() }
func (u *UpdateInfo[S]) SetUpdatesPerSecond(ups int) { u.r.SetUpdatesPerSecond(ups) }
func (u *UpdateInfo[S]) FixedTimeStep() float64      { return u.r.step }
func (u *UpdateInfo[S]) UpdateCount() uint64         { return u.r.updates }
func (u *UpdateInfo[S]) RenderCount() uint64         { return u.r.renders }

// RenderInfo is handed to the render callback.
type RenderInfo[S any] struct {
	State *S

	r *Renderer[S]
}

func (i *RenderInfo[S]) Exit()                       { i.r.Exit() }
func (i *RenderInfo[S]) SetUpdatesPerSecond(ups int) { i.r.SetUpdatesPerSecond(ups) }
func (i *RenderInfo[S]) FixedTimeStep() float64      { return i.r.step }
func (i *RenderInfo[S]) UpdateCount() uint64         { return i.r.updates }
func (i *RenderInfo[S]) RenderCount() uint64         { return i.r.renders }

// Context is the drawing collaborator to issue draw calls against.
func (i *RenderInfo[S]) Context() DrawContext { return i.r.dc }

// BlendingFactor is the fraction of a fixed step left in the
// accumulator, in [0, 1) right after the drain. Use it to interpolate
// between the previous and the current simulation state.
func (i *RenderInfo[S]) BlendingFactor() float64 {
	return i.r.accumulated / i.r.step
}

// ReAccumulate measures the time since the tick started and adds it to
// the accumulator. Calling it right before reading BlendingFactor keeps
// the drawn interpolation as close to the presentation instant as
// possible.
func (i *RenderInfo[S]) ReAccumulate() {
	i.r.accumulate(i.r.canvas.Now())
}
