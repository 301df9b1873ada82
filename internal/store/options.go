package store

import "time"

type options struct {
	latency Latency
	now     func() time.Time
}

// Option configures a store.
type Option func(*options)

// WithLatency overrides the simulated latency.
func WithLatency(l Latency) Option {
	return func(o *options) { o.latency = l }
}

// WithClock overrides the clock used to stamp creation dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{latency: DefaultLatency(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
