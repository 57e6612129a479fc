package tempo

import (
	"errors"
	"fmt"

	"github.com/oliverbestmann/cadence/glint"
)

var (
	// ErrAlreadyStarted is returned when Start runs on a renderer whose
	// state cell is already populated.
	ErrAlreadyStarted = errors.New("tempo: renderer already started")

	// ErrExited is returned when Start runs on a renderer that was
	// closed before ever starting.
	ErrExited = errors.New("tempo: renderer exited")

	// ErrBuilderConsumed is returned by builder operations after Build.
	ErrBuilderConsumed = errors.New("tempo: builder already consumed")

	ErrInvalidUpdateRate   = errors.New("tempo: updates per second must be positive")
	ErrInvalidMaxFrameTime = errors.New("tempo: max frame time must be positive")
)

// AlreadyConfiguredError reports a builder slot that was set twice. The
// first configuration stays in effect.
type AlreadyConfiguredError struct {
	Slot string
}

func (e *AlreadyConfiguredError) Error() string {
	return fmt.Sprintf("tempo: %s already configured", e.Slot)
}

// ShaderCompileError carries the diagnostic the drawing collaborator
// reported for one shader stage.
type ShaderCompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("tempo: compile %s shader: %s", e.Stage, e.Log)
}

// ProgramLinkError carries the diagnostic reported while linking the two
// compiled stages.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("tempo: link program: %s", e.Log)
}

// ListenerRegistrationError reports that the host refused an event
// subscription.
type ListenerRegistrationError struct {
	Event glint.EventName
	Err   error
}

func (e *ListenerRegistrationError) Error() string {
	return fmt.Sprintf("tempo: register %q listener: %s", e.Event, e.Err)
}

func (e *ListenerRegistrationError) Unwrap() error { return e.Err }

// EventTypeMismatchError reports an event that arrived with a different
// concrete type than its listener was registered for. This is a
// programming error, the typed listener adapter panics with it.
type EventTypeMismatchError struct {
	Event glint.EventName
	Got   string
	Want  string
}

func (e *EventTypeMismatchError) Error() string {
	return fmt.Sprintf("tempo: %q event delivered as %s, listener wants %s", e.Event, e.Got, e.Want)
}
