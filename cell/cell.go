// Package cell holds the value behind a signal together with the state tag
// that keeps reads, writes and observation from overlapping.
//
// There is no lock: a conflicting operation fails right away with one of
// the errors below instead of waiting for the cell to become free.
package cell

import "errors"

var (
	ErrAlreadyUpdating  = errors.New("signal: already updating")
	ErrUninitialized    = errors.New("signal: uninitialized")
	ErrForeignGoroutine = errors.New("signal: used outside of its owning goroutine")
)

type State uint8

const (
	Uninitialized State = iota
	Idle
	Writing
	Reading
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Idle:
		return "idle"
	case Writing:
		return "writing"
	case Reading:
		return "reading"
	default:
		return "unknown"
	}
}

type Cell[T any] struct {
	state State
	gen   uint64
	value T
}

func New[T any](value T) *Cell[T] {
	return &Cell[T]{state: Idle, value: value}
}

func NewUninitialized[T any]() *Cell[T] {
	return &Cell[T]{state: Uninitialized}
}

func (c *Cell[T]) State() State {
	return c.state
}

// Generation counts the writes that got past the state check. It is bumped
// before the new value is visible.
func (c *Cell[T]) Generation() uint64 {
	return c.gen
}

// TryGet copies the value out. It fails while a write is in flight or before
// the first write.
func (c *Cell[T]) TryGet() (T, error) {
	switch c.state {
	case Idle, Reading:
		return c.value, nil
	case Uninitialized:
		var zero T
		return zero, ErrUninitialized
	default:
		var zero T
		return zero, ErrAlreadyUpdating
	}
}

// TrySet replaces the value, initializing the cell on first use. The cell
// stays Writing while notify runs with the new value; notify may be nil.
func (c *Cell[T]) TrySet(value T, notify func(T)) error {
	if c.state != Idle && c.state != Uninitialized {
		return ErrAlreadyUpdating
	}

	c.state = Writing
	c.gen++
	defer c.release()

	c.value = value
	if notify != nil {
		notify(c.value)
	}
	return nil
}

// TryMutate applies mutate in place, then runs notify with the result. Both run
// while the cell is Writing.
func (c *Cell[T]) TryMutate(mutate func(*T), notify func(T)) error {
	switch c.state {
	case Idle:
	case Uninitialized:
		return ErrUninitialized
	default:
		return ErrAlreadyUpdating
	}

	c.state = Writing
	c.gen++
	defer c.release()

	mutate(&c.value)
	if notify != nil {
		notify(c.value)
	}
	return nil
}

// Observe lends the current value to fn, or nil when the cell was never
// written. An Idle cell is Reading for the duration of fn; nested observations
// and observations during a write see the value as it is.
func (c *Cell[T]) Observe(fn func(*T)) {
	switch c.state {
	case Uninitialized:
		fn(nil)
	case Idle:
		c.state = Reading
		defer func() { c.state = Idle }()
		fn(&c.value)
	default:
		fn(&c.value)
	}
}

func (c *Cell[T]) release() {
	c.state = Idle
}
