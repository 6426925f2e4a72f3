package signal

import "github.com/delaneyj/cascade/cell"

// Mutable is a Signal that can also be written to.
type Mutable[T any] struct {
	Signal[T]
}

func New[T any](initial T, opts ...Option) Mutable[T] {
	return Mutable[T]{Signal[T]{newInner(cell.New(initial), newOptions(opts...))}}
}

// NewUninitialized returns a Mutable with no value yet. Reads fail and
// subscribers wait until the first Set.
func NewUninitialized[T any](opts ...Option) Mutable[T] {
	return Mutable[T]{Signal[T]{newInner(cell.NewUninitialized[T](), newOptions(opts...))}}
}

// ReadOnly returns a handle that shares this signal's state but cannot write it.
func (m Mutable[T]) ReadOnly() Signal[T] {
	return m.Signal
}

// TrySet replaces the value and notifies subscribers. Subscribers are notified
// if and only if the write succeeded.
func (m Mutable[T]) TrySet(value T) error {
	return m.in.trySet(value)
}

func (m Mutable[T]) Set(value T) {
	must(m.TrySet(value))
}

// TryMutate edits the value in place and notifies subscribers. It fails on a
// signal that was never written.
func (m Mutable[T]) TryMutate(mutate func(*T)) error {
	return m.in.tryMutate(mutate)
}

func (m Mutable[T]) Mutate(mutate func(*T)) {
	must(m.TryMutate(mutate))
}

func (m Mutable[T]) TryUpdate(update func(T) T) error {
	return m.TryMutate(func(v *T) {
		*v = update(*v)
	})
}

func (m Mutable[T]) Update(update func(T) T) {
	must(m.TryUpdate(update))
}
