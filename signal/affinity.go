package signal

import "github.com/petermattis/goid"

// Signals are not safe for concurrent use. Each one remembers the goroutine
// that built it and refuses to be driven from another one.
type affinity struct {
	enabled bool
	gid     int64
}

func newAffinity(enabled bool) affinity {
	if !enabled {
		return affinity{}
	}
	return affinity{enabled: true, gid: goid.Get()}
}

func (a affinity) check() error {
	if a.enabled && goid.Get() != a.gid {
		return ErrForeignGoroutine
	}
	return nil
}
