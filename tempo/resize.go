package tempo

import "log/slog"

// resized reacts to a client size change: let the hook pick the backing
// store size, then apply it to the canvas and the drawing viewport.
// Without a hook the backing store follows the client size directly.
// Before Start there is no state to consult, the notification is
// ignored.
func (r *Renderer[S]) resized() {
	if r.closed {
		return
	}

	state, ok := r.state.get()
	if !ok {
		return
	}

	width, height := r.canvas.ClientSize()

	if r.onResize != nil {
		width, height = r.onResize(state, width, height)
	}

	r.canvas.SetBufferSize(width, height)
	r.dc.SetViewport(width, height)

	slog.Debug("Resize surface",
		slog.Int("width", width),
		slog.Int("height", height),
	)
}
