// Package broadcast holds the ordered subscriber list behind a signal.
//
// A Broadcast may be subscribed to and unsubscribed from at any time,
// including from inside one of its own callbacks while it is notifying.
package broadcast

import "slices"

// ID identifies a subscriber within one Broadcast. IDs are never reused.
type ID uint64

// State tells what a Broadcast is doing right now.
type State uint8

const (
	Idling State = iota
	Notifying
	Subscribing
)

func (s State) String() string {
	switch s {
	case Idling:
		return "idling"
	case Notifying:
		return "notifying"
	case Subscribing:
		return "subscribing"
	default:
		return "unknown"
	}
}

type subscriber[T any] struct {
	id     ID
	active bool
	notify func(T)
}

// Broadcast is an ordered list of callbacks that all receive the same values.
type Broadcast[T any] struct {
	state       State
	nextID      ID
	needsRetain bool
	subs        []subscriber[T]
}

// New returns an idle Broadcast with no subscribers.
func New[T any]() *Broadcast[T] {
	return &Broadcast[T]{}
}

// State reports whether b is idle, notifying or delivering to a new subscriber.
func (b *Broadcast[T]) State() State {
	return b.state
}

// Len counts subscribers still willing to be notified.
func (b *Broadcast[T]) Len() int {
	n := 0
	for _, sub := range b.subs {
		if sub.active {
			n++
		}
	}
	return n
}

// NextID returns the id to hand to the next Push.
func (b *Broadcast[T]) NextID() ID {
	id := b.nextID
	b.nextID++
	return id
}

// Push appends a subscriber. The id must come from the latest NextID call so
// the list stays sorted.
//
// When current is not nil the new subscriber receives it right away, unless the
// broadcast is notifying: the running pass reaches the new entry by itself.
func (b *Broadcast[T]) Push(id ID, notify func(T), current *T) {
	b.subs = append(b.subs, subscriber[T]{id: id, active: true, notify: notify})

	if current == nil {
		return
	}

	switch b.state {
	case Idling:
		b.state = Subscribing
		defer b.settle()
		notify(*current)
	case Subscribing:
		notify(*current)
	case Notifying:
	}
}

// Notify calls every active subscriber with value, in registration order.
// Subscribers pushed during the walk are called too. A Notify issued while
// the broadcast is busy is dropped.
func (b *Broadcast[T]) Notify(value T) {
	if b.state != Idling {
		return
	}

	b.state = Notifying
	defer b.settle()

	// subs may grow while we walk it, so index and re-read the length
	for i := 0; i < len(b.subs); i++ {
		if sub := b.subs[i]; sub.active {
			sub.notify(value)
		}
	}
}

// Unsubscribe removes the subscriber with the given id. Unknown ids are ignored.
// While the broadcast is busy the entry is only deactivated and dropped once
// the broadcast settles.
func (b *Broadcast[T]) Unsubscribe(id ID) {
	i, found := slices.BinarySearchFunc(b.subs, id, func(sub subscriber[T], id ID) int {
		switch {
		case sub.id < id:
			return -1
		case sub.id > id:
			return 1
		default:
			return 0
		}
	})
	if !found {
		return
	}

	if b.state == Idling {
		b.subs = slices.Delete(b.subs, i, i+1)
		return
	}

	b.subs[i].active = false
	b.subs[i].notify = nil
	b.needsRetain = true
}

func (b *Broadcast[T]) settle() {
	b.state = Idling
	if b.needsRetain {
		b.needsRetain = false
		b.subs = slices.DeleteFunc(b.subs, func(sub subscriber[T]) bool {
			return !sub.active
		})
	}
}
