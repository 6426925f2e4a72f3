package signal

import (
	"github.com/delaneyj/cascade/cell"
	"github.com/rs/zerolog"
)

var (
	ErrAlreadyUpdating  = cell.ErrAlreadyUpdating
	ErrUninitialized    = cell.ErrUninitialized
	ErrForeignGoroutine = cell.ErrForeignGoroutine
)

// ErrorHandler receives the errors of writes made on behalf of a source, when
// there is no caller left to return them to.
type ErrorHandler func(err error)

func PanicOnError(err error) {
	panic(err)
}

// LogErrors reports relay failures to l and otherwise ignores them.
func LogErrors(l *zerolog.Logger) ErrorHandler {
	return func(err error) {
		l.Error().Err(err).Msg("derived signal rejected an update")
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
