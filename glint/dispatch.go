package glint

import "slices"

// subscriberSet keeps event subscriptions in registration order. It backs
// the hosts that synthesize their own events; the DOM canvas leans on the
// browser's listener registry instead.
type subscriberSet struct {
	subs   []subscriber
	nextID int
}

type subscriber struct {
	id      int
	name    EventName
	deliver func(Event)
}

func (s *subscriberSet) add(name EventName, deliver func(Event)) (cancel func()) {
	s.nextID++
	id := s.nextID

	s.subs = append(s.subs, subscriber{id: id, name: name, deliver: deliver})

	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool {
			return sub.id == id
		})
	}
}

func (s *subscriberSet) count(name EventName) int {
	var n int

	for _, sub := range s.subs {
		if sub.name == name {
			n++
		}
	}

	return n
}

func (s *subscriberSet) dispatch(ev Event) {
	name := ev.EventName()

	// deliver on a snapshot, a subscriber may cancel during delivery
	for _, sub := range slices.Clone(s.subs) {
		if sub.name == name {
			sub.deliver(ev)
		}
	}
}

type observerSet struct {
	observers []observer
	nextID    int
}

type observer struct {
	id     int
	notify func()
}

func (o *observerSet) add(notify func()) (cancel func()) {
	o.nextID++
	id := o.nextID

	o.observers = append(o.observers, observer{id: id, notify: notify})

	return func() {
		o.observers = slices.DeleteFunc(o.observers, func(ob observer) bool {
			return ob.id == id
		})
	}
}

func (o *observerSet) notify() {
	for _, ob := range slices.Clone(o.observers) {
		ob.notify()
	}
}
