package glint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscriberSetDispatchesInRegistrationOrder(t *testing.T) {
	var set subscriberSet
	var order []string

	set.add(EventKeyDown, func(Event) { order = append(order, "first") })
	set.add(EventKeyDown, func(Event) { order = append(order, "second") })
	set.add(EventKeyUp, func(Event) { order = append(order, "other") })

	set.dispatch(KeyEvent{Name: EventKeyDown, Key: KeyA})

	assert.Equal(t, []string{"first", "second"}, order, "keydown subscribers run in registration order")
}

func TestSubscriberSetCancelDuringDelivery(t *testing.T) {
	var set subscriberSet
	var calls []string

	var cancelSecond func()

	set.add(EventClick, func(Event) {
		calls = append(calls, "first")
		cancelSecond()
	})

	cancelSecond = set.add(EventClick, func(Event) {
		calls = append(calls, "second")
	})

	set.dispatch(MouseEvent{Name: EventClick})

	// the snapshot taken at dispatch still contains the second subscriber
	assert.Equal(t, []string{"first", "second"}, calls)

	calls = nil
	set.dispatch(MouseEvent{Name: EventClick})
	assert.Equal(t, []string{"first"}, calls, "cancelled subscriber no longer fires")
}

func TestSubscriberSetCancelIsStable(t *testing.T) {
	var set subscriberSet

	cancel := set.add(EventWheel, func(Event) {})
	set.add(EventWheel, func(Event) {})

	assert.Equal(t, 2, set.count(EventWheel))

	cancel()
	cancel()

	assert.Equal(t, 1, set.count(EventWheel), "cancel removes exactly one subscription, repeat calls do nothing")
}

func TestObserverSetNotifyAndCancel(t *testing.T) {
	var set observerSet
	var calls int

	cancel := set.add(func() { calls++ })
	set.notify()
	set.notify()

	assert.Equal(t, 2, calls)

	cancel()
	set.notify()

	assert.Equal(t, 2, calls, "cancelled observer no longer fires")
}

func TestKnownEvent(t *testing.T) {
	for _, name := range []EventName{
		EventKeyDown, EventKeyUp, EventMouseDown, EventMouseUp,
		EventMouseMove, EventClick, EventWheel,
	} {
		assert.True(t, knownEvent(name), "expected %q to be known", name)
	}

	assert.False(t, knownEvent("focus"))
	assert.False(t, knownEvent(""))
}

func TestEventNames(t *testing.T) {
	assert.Equal(t, EventKeyDown, KeyEvent{Name: EventKeyDown, Key: KeyW}.EventName())
	assert.Equal(t, EventMouseMove, MouseEvent{Name: EventMouseMove}.EventName())
	assert.Equal(t, EventWheel, WheelEvent{DeltaY: 1}.EventName())
}

func TestKeyFromCode(t *testing.T) {
	assert.Equal(t, KeyA, keyFromCode("KeyA"))
	assert.Equal(t, Key7, keyFromCode("Digit7"))
	assert.Equal(t, KeySpace, keyFromCode("Space"))
	assert.Equal(t, KeyArrowLeft, keyFromCode("ArrowLeft"))
	assert.Equal(t, KeyControlRight, keyFromCode("ControlRight"))

	assert.Equal(t, KeyUnknown, keyFromCode("NumpadDecimal"), "unmapped codes fall back to KeyUnknown")
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "KeyUnknown", KeyUnknown.String())
	assert.Equal(t, "KeyZ", KeyZ.String())
	assert.Equal(t, "Key9", Key9.String())
	assert.Equal(t, "KeyAltRight", KeyAltRight.String())
	assert.Equal(t, "Key(-1)", Key(-1).String())
	assert.Equal(t, "Key(999)", Key(999).String())
}
