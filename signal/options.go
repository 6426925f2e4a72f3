package signal

import "github.com/rs/zerolog"

type options struct {
	logger   *zerolog.Logger
	onError  ErrorHandler
	affinity bool
}

func (o *options) apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

type Option func(o *options)

func defaultOptions() *options {
	nopL := zerolog.Nop()
	return &options{
		logger:   &nopL,
		onError:  PanicOnError,
		affinity: true,
	}
}

func newOptions(opts ...Option) *options {
	o := defaultOptions()
	o.apply(opts...)
	return o
}

// WithLogger sets the logger used for debug events such as rejected writes.
func WithLogger(l *zerolog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithErrorHandler sets what happens when a derived signal cannot accept a
// value pushed by its source.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		if h != nil {
			o.onError = h
		}
	}
}

// WithoutAffinity lets the signal be used from any goroutine. The caller is
// then responsible for never touching the signal from two goroutines at once.
func WithoutAffinity() Option {
	return func(o *options) {
		o.affinity = false
	}
}
