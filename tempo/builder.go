package tempo

import (
	"errors"

	"github.com/oliverbestmann/cadence/glint"
)

// Builder configures a renderer before it starts. Every slot can be set
// at most once, a failed configuration call leaves the builder usable
// and the earlier configuration in effect.
type Builder[S any] struct {
	r     *Renderer[S]
	built bool
}

// NewBuilder creates the renderer for a canvas and drawing context and
// begins observing client size changes. The resize handling stays inert
// until Start populates the state.
func NewBuilder[S any](canvas glint.Canvas, dc DrawContext) (*Builder[S], error) {
	if canvas == nil {
		return nil, errors.New("tempo: canvas must not be nil")
	}

	if dc == nil {
		return nil, errors.New("tempo: draw context must not be nil")
	}

	r := &Renderer[S]{
		canvas: canvas,
		dc:     dc,
	}

	r.cancelResize = canvas.ObserveResize(r.resized)

	return &Builder[S]{r: r}, nil
}

// WithShaders compiles both stages, links them and binds the resulting
// program on the drawing context.
func (b *Builder[S]) WithShaders(vertex, fragment string) error {
	if b.built {
		return ErrBuilderConsumed
	}

	if b.r.hasProgram {
		return &AlreadyConfiguredError{Slot: "shaders"}
	}

	vs, err := b.r.dc.CompileShader(StageVertex, vertex)
	if err != nil {
		return &ShaderCompileError{Stage: StageVertex, Log: err.Error()}
	}

	fs, err := b.r.dc.CompileShader(StageFragment, fragment)
	if err != nil {
		return &ShaderCompileError{Stage: StageFragment, Log: err.Error()}
	}

	program, err := b.r.dc.LinkProgram(vs, fs)
	if err != nil {
		return &ProgramLinkError{Log: err.Error()}
	}

	b.r.dc.UseProgram(program)
	b.r.program = program
	b.r.hasProgram = true

	return nil
}

func (b *Builder[S]) WithOnUpdate(fn UpdateFunc[S]) error {
	if b.built {
		return ErrBuilderConsumed
	}

	if fn == nil {
		return errors.New("tempo: OnUpdate callback must not be nil")
	}

	if b.r.onUpdate != nil {
		return &AlreadyConfiguredError{Slot: "OnUpdate"}
	}

	b.r.onUpdate = fn

	return nil
}

func (b *Builder[S]) WithOnRender(fn RenderFunc[S]) error {
	if b.built {
		return ErrBuilderConsumed
	}

	if fn == nil {
		return errors.New("tempo: OnRender callback must not be nil")
	}

	if b.r.onRender != nil {
		return &AlreadyConfiguredError{Slot: "OnRender"}
	}

	b.r.onRender = fn

	return nil
}

func (b *Builder[S]) WithOnResize(fn ResizeFunc[S]) error {
	if b.built {
		return ErrBuilderConsumed
	}

	if fn == nil {
		return errors.New("tempo: OnResize callback must not be nil")
	}

	if b.r.onResize != nil {
		return &AlreadyConfiguredError{Slot: "OnResize"}
	}

	b.r.onResize = fn

	return nil
}

// WithOnEvent subscribes on the host right away. Events that arrive
// before Start are dropped silently. Multiple listeners for the same
// event name are allowed and fire in registration order.
func (b *Builder[S]) WithOnEvent(name glint.EventName, fn EventFunc[S]) error {
	if b.built {
		return ErrBuilderConsumed
	}

	if fn == nil {
		return errors.New("tempo: event callback must not be nil")
	}

	cancel, err := b.r.canvas.Subscribe(name, func(ev glint.Event) {
		b.r.deliverEvent(fn, ev)
	})
	if err != nil {
		return &ListenerRegistrationError{Event: name, Err: err}
	}

	b.r.listeners = append(b.r.listeners, listener{name: name, cancel: cancel})

	return nil
}

// Build hands out the renderer. It succeeds exactly once.
func (b *Builder[S]) Build() (*Renderer[S], error) {
	if b.built {
		return nil, ErrBuilderConsumed
	}

	b.built = true

	return b.r, nil
}
