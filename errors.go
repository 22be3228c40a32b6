package cityhall

import "errors"

var (
	// ErrNotLoggedIn is returned by every guarded operation once the session
	// is no longer (or never was) logged in. Sessions are single-use: create
	// a new one to log back in.
	ErrNotLoggedIn = errors.New("logged out of City Hall")

	// ErrService means the server answered with a Failure envelope. The
	// wrapped text is the server's message, verbatim.
	ErrService = errors.New("error from City Hall")

	// ErrTransport means no usable response arrived at all: the request
	// failed below the protocol, or the reply carried no payload. Unlike
	// ErrService there is no server-authored message.
	ErrTransport = errors.New("transport failure")

	// ErrInvalidRequest means a client-side precondition failed before any
	// request was sent.
	ErrInvalidRequest = errors.New("invalid request")
)
