// Package signal provides reactive values: a Mutable holds a value and calls
// its subscribers on every successful change, and Signals derived from it
// with Map, Filter, Fold and friends follow along.
//
// Everything runs synchronously on the caller's goroutine. Setting a source
// runs every downstream relay and subscriber before Set returns.
package signal

import (
	"github.com/delaneyj/cascade/broadcast"
	"github.com/delaneyj/cascade/cell"
)

// Value is anything that can be subscribed to: signals, and plain values
// wrapped with Constant.
type Value[T any] interface {
	// ForEach calls fn with the current value, if any, then with every new one.
	ForEach(fn func(T)) *Unsubscriber
	// ForEachInner is ForEach for callbacks that may cancel themselves.
	ForEachInner(fn func(T, *Unsubscriber))
	// ForEachForever is ForEach for subscriptions that live as long as the value.
	ForEachForever(fn func(T))
}

type inner[T any] struct {
	registry *broadcast.Broadcast[T]
	cell     *cell.Cell[T]
	opts     *options
	owner    affinity

	// admit, when set, gates delivery of the current value to new subscribers.
	// relayed is the cell generation the relay last notified.
	admit   func(T) bool
	relayed uint64
}

func newInner[T any](c *cell.Cell[T], opts *options) *inner[T] {
	return &inner[T]{
		registry: broadcast.New[T](),
		cell:     c,
		opts:     opts,
		owner:    newAffinity(opts.affinity),
	}
}

func (in *inner[T]) subscribe(makeNotify func(id broadcast.ID) func(T)) broadcast.ID {
	must(in.owner.check())

	id := in.registry.NextID()
	notify := makeNotify(id)
	in.cell.Observe(func(current *T) {
		if current != nil && in.admit != nil && !in.admitted(*current) {
			current = nil
		}
		in.registry.Push(id, notify, current)
	})
	return id
}

// admitted reports whether a subscriber sharing someone else's cell may be
// handed v right away. While the cell is being written, the value is left to
// the relay unless the relay already delivered this write.
func (in *inner[T]) admitted(v T) bool {
	if !in.admit(v) {
		return false
	}
	return in.cell.State() != cell.Writing || in.relayed == in.cell.Generation()
}

// relay notifies subscribers of a signal that shares its cell with the source.
func (in *inner[T]) relay(v T) {
	in.relayed = in.cell.Generation()
	in.registry.Notify(v)
}

func (in *inner[T]) unsubscribe(id broadcast.ID) error {
	if err := in.owner.check(); err != nil {
		return err
	}
	in.registry.Unsubscribe(id)
	return nil
}

func (in *inner[T]) tryGet() (T, error) {
	if err := in.owner.check(); err != nil {
		var zero T
		return zero, err
	}
	return in.cell.TryGet()
}

func (in *inner[T]) trySet(value T) error {
	if err := in.owner.check(); err != nil {
		return err
	}
	if err := in.cell.TrySet(value, in.registry.Notify); err != nil {
		in.rejected(err)
		return err
	}
	return nil
}

func (in *inner[T]) tryMutate(mutate func(*T)) error {
	if err := in.owner.check(); err != nil {
		return err
	}
	if err := in.cell.TryMutate(mutate, in.registry.Notify); err != nil {
		in.rejected(err)
		return err
	}
	return nil
}

func (in *inner[T]) rejected(err error) {
	in.opts.logger.Debug().
		Err(err).
		Stringer("state", in.cell.State()).
		Int("subscribers", in.registry.Len()).
		Msg("write rejected")
}

// relaySet and relayMutate write on behalf of a source. Failures go to the
// error handler since the source has nobody to return them to.
func (in *inner[T]) relaySet(value T) {
	if err := in.trySet(value); err != nil {
		in.opts.onError(err)
	}
}

func (in *inner[T]) relayMutate(mutate func(*T)) {
	if err := in.tryMutate(mutate); err != nil {
		in.opts.onError(err)
	}
}

// Signal is a read-only handle. Copies share the same underlying state.
type Signal[T any] struct {
	in *inner[T]
}

func (s Signal[T]) base() *inner[T] {
	return s.in
}

func (s Signal[T]) options() *options {
	return s.in.opts
}

// TryGet returns the current value. It fails with ErrUninitialized before the
// first write and with ErrAlreadyUpdating while a write is being delivered.
func (s Signal[T]) TryGet() (T, error) {
	return s.in.tryGet()
}

// Get is TryGet for callers that know the value is readable. It panics otherwise.
func (s Signal[T]) Get() T {
	v, err := s.TryGet()
	must(err)
	return v
}

func (s Signal[T]) ForEach(fn func(T)) *Unsubscriber {
	id := s.in.subscribe(func(broadcast.ID) func(T) {
		return fn
	})
	return newUnsubscriber(s.in, id)
}

func (s Signal[T]) ForEachForever(fn func(T)) {
	s.in.subscribe(func(broadcast.ID) func(T) {
		return fn
	})
}

// ForEachInner hands every callback its own Unsubscriber so it can cancel
// itself mid-delivery.
func (s Signal[T]) ForEachInner(fn func(T, *Unsubscriber)) {
	s.in.subscribe(func(id broadcast.ID) func(T) {
		unsub := newUnsubscriber(s.in, id)
		return func(v T) {
			fn(v, unsub)
		}
	})
}

// Subscribers counts the active subscriptions, relays of derived signals included.
func (s Signal[T]) Subscribers() int {
	return s.in.registry.Len()
}

func (s Signal[T]) Filter(predicate func(T) bool) Signal[T] {
	return Filter[T](s, predicate)
}

func (s Signal[T]) Skip(n int) Signal[T] {
	return Skip[T](s, n)
}

func (s Signal[T]) SkipWhile(predicate func(T) bool) Signal[T] {
	return SkipWhile[T](s, predicate)
}

func (s Signal[T]) Take(n int) Signal[T] {
	return Take[T](s, n)
}

func (s Signal[T]) TakeWhile(predicate func(T) bool) Signal[T] {
	return TakeWhile[T](s, predicate)
}
