package signal

import "github.com/delaneyj/cascade/cell"

type configured interface {
	options() *options
}

type shared[T any] interface {
	base() *inner[T]
}

func optionsOf[T any](src Value[T]) *options {
	if c, ok := src.(configured); ok {
		return c.options()
	}
	return defaultOptions()
}

// compose subscribes relay to src. Each value src delivers, starting with the
// current one, is handed to relay along with the derived state it drives and
// the subscription's own Unsubscriber.
func compose[T, U any](src Value[T], derived *inner[U], relay func(d *inner[U], v T, unsub *Unsubscriber)) Signal[U] {
	src.ForEachInner(func(v T, unsub *Unsubscriber) {
		relay(derived, v, unsub)
	})
	return Signal[U]{derived}
}

func derive[T, U any](src Value[T]) *inner[U] {
	return newInner(cell.NewUninitialized[U](), optionsOf(src))
}

// Map follows src through f.
func Map[T, U any](src Value[T], f func(T) U) Signal[U] {
	return compose(src, derive[T, U](src), func(d *inner[U], v T, _ *Unsubscriber) {
		d.relaySet(f(v))
	})
}

// Filter shares its value with src but only notifies its own subscribers of
// values matching predicate. Get returns whatever src holds. predicate may be
// called more than once per value and should not have side effects.
func Filter[T any](src Value[T], predicate func(T) bool) Signal[T] {
	s, ok := src.(shared[T])
	if !ok {
		return compose(src, derive[T, T](src), func(d *inner[T], v T, _ *Unsubscriber) {
			if predicate(v) {
				d.relaySet(v)
			}
		})
	}

	derived := newInner(s.base().cell, optionsOf(src))
	derived.admit = predicate
	if upstream := s.base().admit; upstream != nil {
		derived.admit = func(v T) bool {
			return upstream(v) && predicate(v)
		}
	}
	return compose(src, derived, func(d *inner[T], v T, _ *Unsubscriber) {
		if predicate(v) {
			d.relay(v)
		}
	})
}

// FilterMap follows src through f, skipping values for which f reports false.
func FilterMap[T, U any](src Value[T], f func(T) (U, bool)) Signal[U] {
	return compose(src, derive[T, U](src), func(d *inner[U], v T, _ *Unsubscriber) {
		if mapped, ok := f(v); ok {
			d.relaySet(mapped)
		}
	})
}

// Fold accumulates every value of src into an accumulator starting at init.
func Fold[T, U any](src Value[T], init U, f func(acc U, v T) U) Signal[U] {
	derived := newInner(cell.New(init), optionsOf(src))
	return compose(src, derived, func(d *inner[U], v T, _ *Unsubscriber) {
		d.relayMutate(func(acc *U) {
			*acc = f(*acc, v)
		})
	})
}

// MapWhile follows src through f until f reports false for the first time.
// From then on the signal keeps its last value and never changes again.
func MapWhile[T, U any](src Value[T], f func(T) (U, bool)) Signal[U] {
	return compose(src, derive[T, U](src), func(d *inner[U], v T, unsub *Unsubscriber) {
		mapped, ok := f(v)
		if !ok {
			d.opts.logger.Debug().Msg("map while: predicate failed, detaching")
			unsub.Unsubscribe()
			return
		}
		d.relaySet(mapped)
	})
}

// Skip ignores the first n values of src, the current one included.
func Skip[T any](src Value[T], n int) Signal[T] {
	skipped := 0
	return compose(src, derive[T, T](src), func(d *inner[T], v T, _ *Unsubscriber) {
		if skipped < n {
			skipped++
			return
		}
		d.relaySet(v)
	})
}

// SkipWhile ignores values of src until predicate fails once, then follows src.
func SkipWhile[T any](src Value[T], predicate func(T) bool) Signal[T] {
	skipping := true
	return compose(src, derive[T, T](src), func(d *inner[T], v T, _ *Unsubscriber) {
		if skipping && predicate(v) {
			return
		}
		skipping = false
		d.relaySet(v)
	})
}

// Take follows the first n values of src, the current one included, then
// detaches and keeps the last one.
func Take[T any](src Value[T], n int) Signal[T] {
	taken := 0
	return compose(src, derive[T, T](src), func(d *inner[T], v T, unsub *Unsubscriber) {
		if taken >= n {
			unsub.Unsubscribe()
			return
		}
		taken++
		d.relaySet(v)
		if taken == n {
			d.opts.logger.Debug().Int("n", n).Msg("take: limit reached, detaching")
			unsub.Unsubscribe()
		}
	})
}

// TakeWhile follows src while predicate holds, then detaches for good.
func TakeWhile[T any](src Value[T], predicate func(T) bool) Signal[T] {
	return compose(src, derive[T, T](src), func(d *inner[T], v T, unsub *Unsubscriber) {
		if !predicate(v) {
			d.opts.logger.Debug().Msg("take while: predicate failed, detaching")
			unsub.Unsubscribe()
			return
		}
		d.relaySet(v)
	})
}
