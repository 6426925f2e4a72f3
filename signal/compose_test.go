package signal_test

import (
	"strconv"
	"testing"

	"github.com/delaneyj/cascade/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isEven(v int) bool {
	return v%2 == 0
}

func lessThan(n int) func(int) bool {
	return func(v int) bool {
		return v < n
	}
}

func TestMap(t *testing.T) {
	t.Run("changes type", func(t *testing.T) {
		s := signal.New(7)
		str := signal.Map(s, strconv.Itoa)
		assert.Equal(t, "7", str.Get())

		s.Set(42)
		assert.Equal(t, "42", str.Get())
	})

	t.Run("uninitialized source", func(t *testing.T) {
		s := signal.NewUninitialized[int]()
		d := signal.Map(s, double)

		_, err := d.TryGet()
		assert.ErrorIs(t, err, signal.ErrUninitialized)

		s.Set(3)
		assert.Equal(t, 6, d.Get())
	})

	t.Run("chained", func(t *testing.T) {
		s := signal.New(1)
		var last signal.Value[int] = s
		for range 10 {
			last = signal.Map(last, addOne)
		}
		got := collect[int](last)

		s.Set(5)
		assert.Equal(t, []int{11, 15}, *got)
	})
}

func TestFilter(t *testing.T) {
	t.Run("notifies matching values only", func(t *testing.T) {
		s := signal.New(1)
		even := signal.Filter(s, isEven)
		got := collect[int](even)
		assert.Empty(t, *got)

		for v := 2; v <= 5; v++ {
			s.Set(v)
		}
		assert.Equal(t, []int{2, 4}, *got)
	})

	t.Run("shares the source value", func(t *testing.T) {
		s := signal.New(2)
		even := s.Filter(isEven)
		got := collect[int](even)
		assert.Equal(t, []int{2}, *got)

		s.Set(3)
		assert.Equal(t, 3, even.Get())
		assert.Equal(t, []int{2}, *got)
	})

	t.Run("uninitialized source", func(t *testing.T) {
		s := signal.NewUninitialized[int]()
		even := signal.Filter(s, isEven)
		_, err := even.TryGet()
		assert.ErrorIs(t, err, signal.ErrUninitialized)

		s.Set(4)
		assert.Equal(t, 4, even.Get())
	})

	t.Run("subscriber cancels itself", func(t *testing.T) {
		s := signal.New(0)
		even := signal.Filter(s, isEven)
		calls := 0
		even.ForEachInner(func(v int, unsub *signal.Unsubscriber) {
			calls++
			if v == 2 {
				unsub.Unsubscribe()
			}
		})

		for v := 1; v <= 6; v++ {
			s.Set(v)
		}
		assert.Equal(t, 2, calls)
		assert.Equal(t, 0, even.Subscribers())
	})

	t.Run("nested filters", func(t *testing.T) {
		s := signal.New(1)
		even := s.Filter(isEven)
		positive := even.Filter(func(v int) bool { return v > 0 })
		evenGot := collect[int](even)
		positiveGot := collect[int](positive)
		doubled := signal.Map(positive, double)
		assert.Empty(t, *evenGot)
		assert.Empty(t, *positiveGot)
		_, err := doubled.TryGet()
		assert.ErrorIs(t, err, signal.ErrUninitialized)

		s.Set(-2)
		s.Set(3)
		s.Set(4)
		assert.Equal(t, []int{-2, 4}, *evenGot)
		assert.Equal(t, []int{4}, *positiveGot)
		assert.Equal(t, 8, doubled.Get())
	})

	t.Run("subscribed mid-pass before the filter runs", func(t *testing.T) {
		s := signal.New(1)
		var even signal.Signal[int]
		got := []int{}
		s.ForEachForever(func(v int) {
			if v == 2 {
				even.ForEachForever(func(v int) {
					got = append(got, v)
				})
			}
		})
		even = s.Filter(isEven)

		s.Set(2)
		assert.Equal(t, []int{2}, got)

		s.Set(3)
		s.Set(4)
		assert.Equal(t, []int{2, 4}, got)
	})

	t.Run("subscribed mid-pass after the filter ran", func(t *testing.T) {
		s := signal.New(1)
		even := s.Filter(isEven)
		got := []int{}
		s.ForEachForever(func(v int) {
			if v == 2 {
				even.ForEachForever(func(v int) {
					got = append(got, v)
				})
			}
		})

		s.Set(2)
		assert.Equal(t, []int{2}, got)

		s.Set(4)
		assert.Equal(t, []int{2, 4}, got)
	})

	t.Run("constant source", func(t *testing.T) {
		odd := signal.Filter[int](signal.Constant(3), isEven)
		_, err := odd.TryGet()
		assert.ErrorIs(t, err, signal.ErrUninitialized)

		even := signal.Filter[int](signal.Constant(4), isEven)
		assert.Equal(t, 4, even.Get())
	})
}

func TestFilterMap(t *testing.T) {
	s := signal.New("1")
	n := signal.FilterMap(s, func(v string) (int, bool) {
		i, err := strconv.Atoi(v)
		return i, err == nil
	})
	got := collect[int](n)

	s.Set("nope")
	s.Set("2")
	assert.Equal(t, []int{1, 2}, *got)
	assert.Equal(t, 2, n.Get())
}

func TestFold(t *testing.T) {
	s := signal.New(1)
	sum := signal.Fold(s, 0, func(acc, v int) int {
		return acc + v
	})
	assert.Equal(t, 1, sum.Get())

	s.Set(2)
	s.Set(3)
	assert.Equal(t, 6, sum.Get())

	history := signal.Fold(s, []int(nil), func(acc []int, v int) []int {
		return append(acc, v)
	})
	s.Set(4)
	assert.Equal(t, []int{3, 4}, history.Get())
}

func TestMapWhile(t *testing.T) {
	s := signal.New(1)
	d := signal.MapWhile(s, func(v int) (string, bool) {
		return strconv.Itoa(v), v < 3
	})
	got := collect[string](d)
	assert.Equal(t, 1, s.Subscribers())

	for v := 2; v <= 5; v++ {
		s.Set(v)
	}
	assert.Equal(t, []string{"1", "2"}, *got)
	assert.Equal(t, "2", d.Get())

	// detached at 3, even though 1 would pass again
	s.Set(1)
	assert.Equal(t, "2", d.Get())
	assert.Equal(t, 0, s.Subscribers())
}

func TestSkip(t *testing.T) {
	s := signal.New(1)
	d := signal.Skip[int](s, 2)
	_, err := d.TryGet()
	assert.ErrorIs(t, err, signal.ErrUninitialized)

	s.Set(2)
	_, err = d.TryGet()
	assert.ErrorIs(t, err, signal.ErrUninitialized)

	s.Set(3)
	s.Set(4)
	assert.Equal(t, 4, d.Get())

	zero := s.Skip(0)
	assert.Equal(t, 4, zero.Get())
}

func TestSkipWhile(t *testing.T) {
	s := signal.New(1)
	d := s.SkipWhile(lessThan(3))
	got := collect[int](d)

	s.Set(2)
	s.Set(5)
	s.Set(1)
	assert.Equal(t, []int{5, 1}, *got)
}

func TestTake(t *testing.T) {
	t.Run("first n values", func(t *testing.T) {
		s := signal.New(1)
		d := signal.Take[int](s, 2)
		got := collect[int](d)

		s.Set(2)
		s.Set(3)
		assert.Equal(t, []int{1, 2}, *got)
		assert.Equal(t, 2, d.Get())
		assert.Equal(t, 0, s.Subscribers())
	})

	t.Run("zero", func(t *testing.T) {
		s := signal.New(1)
		d := s.Take(0)
		s.Set(2)

		_, err := d.TryGet()
		assert.ErrorIs(t, err, signal.ErrUninitialized)
		assert.Equal(t, 0, s.Subscribers())
	})
}

func TestTakeWhile(t *testing.T) {
	s := signal.New(1)
	d := s.TakeWhile(lessThan(3))
	got := collect[int](d)

	s.Set(2)
	s.Set(3)
	s.Set(1)
	assert.Equal(t, []int{1, 2}, *got)
	assert.Equal(t, 2, d.Get())
	assert.Equal(t, 0, s.Subscribers())
}

func TestOperatorChain(t *testing.T) {
	s := signal.New(0)
	d := signal.Map(s.Filter(isEven).Skip(1).Take(3), strconv.Itoa)
	got := collect[string](d)

	for v := 1; v <= 12; v++ {
		s.Set(v)
	}
	assert.Equal(t, []string{"2", "4", "6"}, *got)

	v, err := d.TryGet()
	require.NoError(t, err)
	assert.Equal(t, "6", v)
}
