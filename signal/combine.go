package signal

import (
	"slices"

	"github.com/delaneyj/cascade/cell"
)

// All follows every source at once. It has no value until each source has
// delivered one; after that every delivery produces a fresh slice holding the
// latest value of each source, in source order.
func All[T any](sources ...Value[T]) Signal[[]T] {
	opts := defaultOptions()
	if len(sources) > 0 {
		opts = optionsOf(sources[0])
	}

	if len(sources) == 0 {
		return Signal[[]T]{newInner(cell.New([]T{}), opts)}
	}

	derived := newInner(cell.NewUninitialized[[]T](), opts)
	latest := make([]T, len(sources))
	seen := make([]bool, len(sources))
	missing := len(sources)

	for i, src := range sources {
		src.ForEachForever(func(v T) {
			latest[i] = v
			if !seen[i] {
				seen[i] = true
				missing--
			}
			if missing == 0 {
				derived.relaySet(slices.Clone(latest))
			}
		})
	}

	return Signal[[]T]{derived}
}
