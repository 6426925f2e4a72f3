package signal

import (
	"weak"

	"github.com/delaneyj/cascade/broadcast"
)

// Unsubscriber cancels one subscription, at most once. It only holds a weak
// reference to the signal: it never keeps a signal alive, and cancelling after
// the signal is gone does nothing.
type Unsubscriber struct {
	cancel func() error
}

func newUnsubscriber[T any](target *inner[T], id broadcast.ID) *Unsubscriber {
	ref := weak.Make(target)
	return &Unsubscriber{
		cancel: func() error {
			if in := ref.Value(); in != nil {
				return in.unsubscribe(id)
			}
			return nil
		},
	}
}

// Unsubscribe is safe to call at any time, including from the callback it
// cancels. Called from a goroutine the signal does not belong to, it panics
// with ErrForeignGoroutine and the token stays armed.
func (u *Unsubscriber) Unsubscribe() {
	if u == nil || u.cancel == nil {
		return
	}
	must(u.cancel())
	u.cancel = nil
}

// HasEffect reports whether Unsubscribe has not been called yet.
func (u *Unsubscriber) HasEffect() bool {
	return u != nil && u.cancel != nil
}

// In ties the subscription to s: it is cancelled when s is disposed.
func (u *Unsubscriber) In(s *Scope) *Unsubscriber {
	s.Track(u)
	return u
}
