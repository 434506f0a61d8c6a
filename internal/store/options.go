package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type storeOptions struct {
	latency      time.Duration
	passwordCost int
	now          func() time.Time
}

// Option tunes a store.
type Option func(*storeOptions)

// WithLatency delays every in-memory operation, simulating a network round trip.
func WithLatency(d time.Duration) Option {
	return func(o *storeOptions) { o.latency = d }
}

// WithPasswordCost sets the bcrypt cost used for new password hashes.
func WithPasswordCost(cost int) Option {
	return func(o *storeOptions) { o.passwordCost = cost }
}

func WithClock(now func() time.Time) Option {
	return func(o *storeOptions) { o.now = now }
}

func buildOptions(opts []Option) storeOptions {
	o := storeOptions{passwordCost: bcrypt.DefaultCost, now: time.Now}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
