package cityhall

import (
	"context"
	"encoding/json"
	"fmt"
)

// envelope is what every response shape must expose to the executor: the
// sub-clients decode concrete payloads, the executor only ever inspects the
// envelope around them.
type envelope interface {
	Valid() bool
	ErrorMessage() string
}

// envelopePtr constrains PT to be a pointer to T that carries the envelope,
// letting execute allocate its own result value.
type envelopePtr[T any] interface {
	*T
	envelope
}

// execute is the single funnel every operation goes through: it drives one
// request/response cycle over the session transport, decodes the payload
// into T and validates the envelope. Transport failures and empty payloads
// surface as ErrTransport, a Failure status as ErrService carrying the
// server's message verbatim. No retries, no caching.
func execute[T any, PT envelopePtr[T]](ctx context.Context, s *Session, req Request) (*T, error) {
	body, status, err := s.transport.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: no response from server for method=%s resource=%s: %v",
			ErrTransport, req.Method, req.Resource, err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: no data from City Hall, status code %d", ErrTransport, status)
	}

	payload := PT(new(T))
	if err := json.Unmarshal(body, payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrTransport, err)
	}

	if !payload.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrService, payload.ErrorMessage())
	}

	return (*T)(payload), nil
}
