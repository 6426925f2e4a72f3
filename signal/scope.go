package signal

import mapset "github.com/deckarep/golang-set/v2"

// Scope owns subscriptions and cleanups that must end together, such as the
// bindings of one on-screen element. Scopes nest; disposing a scope disposes
// its children first.
type Scope struct {
	parent   *Scope
	children mapset.Set[*Scope]
	unsubs   []*Unsubscriber
	cleanups []func()
	catchers []func(any)
	disposed bool
}

func NewScope() *Scope {
	return &Scope{
		children: mapset.NewThreadUnsafeSet[*Scope](),
	}
}

// Child returns a new scope disposed together with s.
func (s *Scope) Child() *Scope {
	child := NewScope()
	child.parent = s
	if s.disposed {
		child.Dispose()
		return child
	}
	s.children.Add(child)
	return child
}

// Track cancels u when s is disposed. On a disposed scope u is cancelled right away.
func (s *Scope) Track(u *Unsubscriber) {
	if s.disposed {
		u.Unsubscribe()
		return
	}
	s.unsubs = append(s.unsubs, u)
}

func (s *Scope) OnCleanup(fn func()) {
	if s.disposed {
		fn()
		return
	}
	s.cleanups = append(s.cleanups, fn)
}

// OnError registers a handler for panics raised inside Run.
func (s *Scope) OnError(fn func(any)) {
	s.catchers = append(s.catchers, fn)
}

// Run calls fn. A panic inside fn is handed to the scope's error handlers, or
// to the parent's when s has none; with no handler at all it propagates.
func (s *Scope) Run(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		catchers := s.handlers()
		if len(catchers) == 0 {
			panic(r)
		}
		for _, catch := range catchers {
			catch(r)
		}
	}()
	return fn()
}

func (s *Scope) handlers() []func(any) {
	for scope := s; scope != nil; scope = scope.parent {
		if len(scope.catchers) > 0 {
			return scope.catchers
		}
	}
	return nil
}

func (s *Scope) Disposed() bool {
	return s.disposed
}

// Dispose disposes the children, cancels tracked subscriptions and runs the
// cleanups in registration order. Later calls do nothing.
func (s *Scope) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	for _, child := range s.children.ToSlice() {
		child.Dispose()
	}
	s.children.Clear()

	for _, u := range s.unsubs {
		u.Unsubscribe()
	}
	s.unsubs = nil

	for _, fn := range s.cleanups {
		fn()
	}
	s.cleanups = nil

	if s.parent != nil {
		s.parent.children.Remove(s)
	}
}
