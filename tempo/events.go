package tempo

import (
	"reflect"

	"github.com/oliverbestmann/cadence/glint"
)

// deliverEvent routes one host event to a listener. Events arriving
// before the state exists or after Close are dropped.
func (r *Renderer[S]) deliverEvent(fn EventFunc[S], ev glint.Event) {
	if r.closed {
		return
	}

	state, ok := r.state.get()
	if !ok {
		return
	}

	fn(state, ev)
}

// On adapts a listener for one concrete event type. Registering it for
// an event name that delivers a different type is a programming error,
// the adapter panics with *EventTypeMismatchError on the first delivery.
func On[S any, E glint.Event](fn func(state *S, ev E)) EventFunc[S] {
	return func(state *S, ev glint.Event) {
		typed, ok := ev.(E)
		if !ok {
			panic(&EventTypeMismatchError{
				Event: ev.EventName(),
				Got:   reflect.TypeOf(ev).String(),
				Want:  reflect.TypeFor[E]().String(),
			})
		}

		fn(state, typed)
	}
}
