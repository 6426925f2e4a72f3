package signal

// Const is a Value that never changes. Subscribers get the value once.
type Const[T any] struct {
	value T
}

func Constant[T any](v T) Const[T] {
	return Const[T]{value: v}
}

func (c Const[T]) Get() T {
	return c.value
}

func (c Const[T]) ForEach(fn func(T)) *Unsubscriber {
	fn(c.value)
	return &Unsubscriber{}
}

func (c Const[T]) ForEachInner(fn func(T, *Unsubscriber)) {
	fn(c.value, &Unsubscriber{})
}

func (c Const[T]) ForEachForever(fn func(T)) {
	fn(c.value)
}
