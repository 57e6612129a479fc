package glint

// EventName identifies a class of host events, named after the DOM event
// types they originate from.
type EventName string

const (
	EventKeyDown   EventName = "keydown"
	EventKeyUp     EventName = "keyup"
	EventMouseDown EventName = "mousedown"
	EventMouseUp   EventName = "mouseup"
	EventMouseMove EventName = "mousemove"
	EventClick     EventName = "click"
	EventWheel     EventName = "wheel"
)

func knownEvent(name EventName) bool {
	switch name {
	case EventKeyDown, EventKeyUp, EventMouseDown, EventMouseUp,
		EventMouseMove, EventClick, EventWheel:
		return true
	}

	return false
}

// Event is a single host input event.
type Event interface {
	EventName() EventName
}

type KeyEvent struct {
	Name   EventName
	Key    Key
	Repeat bool
}

func (e KeyEvent) EventName() EventName { return e.Name }

type MouseButton uint32

// Mouse buttons use the DOM numbering.
const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonMiddle MouseButton = 1
	MouseButtonRight  MouseButton = 2
)

// MouseEvent carries the cursor position relative to the canvas in
// client units.
type MouseEvent struct {
	Name   EventName
	Button MouseButton
	X, Y   float64
}

func (e MouseEvent) EventName() EventName { return e.Name }

type WheelEvent struct {
	DeltaX, DeltaY float64
}

func (e WheelEvent) EventName() EventName { return EventWheel }
