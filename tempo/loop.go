package tempo

import (
	"log/slog"

	"golang.org/x/exp/constraints"
)

// tick consumes one host frame: catch up on simulation time, then render
// once. The host never reenters tick, each invocation is requested
// explicitly at the end of the previous one.
func (r *Renderer[S]) tick(now float64) {
	if r.phase != PhaseRunning {
		return
	}

	if r.frames.tick(now) {
		slog.Debug("Frame pacing",
			slog.Float64("fps", r.frames.fps()),
			slog.Uint64("updates", r.updates),
			slog.Uint64("renders", r.renders),
		)
	}

	// a cadence change applies at tick boundaries, never mid drain
	if r.pendingUPS != r.ups {
		r.ups = r.pendingUPS
		r.step = 1.0 / float64(r.ups)

		slog.Debug("Updates per second changed",
			slog.Int("ups", r.ups),
			slog.Float64("fixedTimeStep", r.step),
		)
	}

	r.accumulate(now)

	state, _ := r.state.get()

	for r.accumulated >= r.step {
		if r.onUpdate != nil {
			r.onUpdate(&UpdateInfo[S]{State: state, r: r})
		}

		r.accumulated -= r.step
		r.updates++
	}

	if r.onRender != nil {
		r.onRender(&RenderInfo[S]{State: state, r: r})
	}

	r.renders++

	if r.exit {
		r.phase = PhaseExited

		slog.Info("Render loop exited",
			slog.Uint64("updates", r.updates),
			slog.Uint64("renders", r.renders),
		)

		return
	}

	if r.phase != PhaseRunning {
		// Close ran inside a callback
		return
	}

	r.canvas.RequestFrame(r.tick)
}

// accumulate adds the time elapsed since the previous measurement. The
// elapsed interval is clamped to [0, maxFrameTime]: a stalled frame only
// ever schedules maxFrameTime worth of catch up updates, a host clock
// that stepped backwards contributes nothing.
func (r *Renderer[S]) accumulate(now float64) {
	r.accumulated += clamp(now-r.previous, 0, r.maxFrame)
	r.previous = now
}

type numeric interface {
	constraints.Integer | constraints.Float
}

func clamp[T numeric](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
