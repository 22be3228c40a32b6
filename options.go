package cityhall

import (
	"time"

	"github.com/rs/zerolog"
)

type options struct {
	timeout   time.Duration
	log       zerolog.Logger
	transport Transport
}

// Option customizes a session at construction time.
type Option func(*options)

// WithTimeout bounds every request issued through the default transport.
// Zero leaves the transport without a client-side timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger attaches a logger to the session; by default all output is
// discarded.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithTransport replaces the default resty transport, primarily for tests.
// The url argument of New is ignored when a transport is supplied.
func WithTransport(t Transport) Option {
	return func(o *options) { o.transport = t }
}
