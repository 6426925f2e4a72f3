package signal_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/cascade/signal"
	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	t.Run("dispose cancels tracked subscriptions", func(t *testing.T) {
		s := signal.New(1)
		scope := signal.NewScope()
		got := []int{}
		s.ForEach(func(v int) {
			got = append(got, v)
		}).In(scope)

		s.Set(2)
		scope.Dispose()
		s.Set(3)
		assert.Equal(t, []int{1, 2}, got)
		assert.True(t, scope.Disposed())
		assert.Equal(t, 0, s.Subscribers())
	})

	t.Run("cleanup order", func(t *testing.T) {
		parent := signal.NewScope()
		child := parent.Child()
		grandchild := child.Child()

		log := []string{}
		parent.OnCleanup(func() { log = append(log, "parent 1") })
		parent.OnCleanup(func() { log = append(log, "parent 2") })
		child.OnCleanup(func() { log = append(log, "child") })
		grandchild.OnCleanup(func() { log = append(log, "grandchild") })

		parent.Dispose()
		assert.Equal(t, []string{"grandchild", "child", "parent 1", "parent 2"}, log)
		assert.True(t, child.Disposed())
		assert.True(t, grandchild.Disposed())

		parent.Dispose()
		assert.Len(t, log, 4)
	})

	t.Run("child disposed on its own", func(t *testing.T) {
		parent := signal.NewScope()
		child := parent.Child()
		calls := 0
		child.OnCleanup(func() { calls++ })

		child.Dispose()
		parent.Dispose()
		assert.Equal(t, 1, calls)
	})

	t.Run("disposed scope runs registrations right away", func(t *testing.T) {
		s := signal.New(1)
		scope := signal.NewScope()
		scope.Dispose()

		unsub := s.ForEach(func(int) {}).In(scope)
		assert.False(t, unsub.HasEffect())
		assert.Equal(t, 0, s.Subscribers())

		ran := false
		scope.OnCleanup(func() { ran = true })
		assert.True(t, ran)
		assert.True(t, scope.Child().Disposed())
	})

	t.Run("run catches panics", func(t *testing.T) {
		scope := signal.NewScope()
		var caught any
		scope.OnError(func(r any) { caught = r })

		err := scope.Run(func() error {
			panic("boom")
		})
		assert.NoError(t, err)
		assert.Equal(t, "boom", caught)
	})

	t.Run("run uses the nearest handler", func(t *testing.T) {
		parent := signal.NewScope()
		var caught []any
		parent.OnError(func(r any) { caught = append(caught, r) })
		child := parent.Child()

		s := signal.New(1)
		child.Run(func() error {
			s.ForEachForever(func(int) {
				s.Set(2)
			})
			return nil
		})
		assert.Equal(t, []any{signal.ErrAlreadyUpdating}, caught)
	})

	t.Run("run returns errors", func(t *testing.T) {
		scope := signal.NewScope()
		errBad := errors.New("bad")
		assert.ErrorIs(t, scope.Run(func() error { return errBad }), errBad)
	})

	t.Run("run without handlers panics", func(t *testing.T) {
		scope := signal.NewScope().Child()
		assert.PanicsWithValue(t, "boom", func() {
			scope.Run(func() error { panic("boom") })
		})
	})
}
