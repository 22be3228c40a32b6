package cityhall

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	okEnvelope      = `{"Response":"Ok"}`
	failureEnvelope = `{"Response":"Failure","Message":"bad thing"}`
)

func valueEnvelope(value string) string {
	return fmt.Sprintf(`{"Response":"Ok","value":%q}`, value)
}

// fakeTransport records every request and replays canned response bodies in
// order, falling back to a plain Ok envelope when it runs out.
type fakeTransport struct {
	requests  []Request
	responses []string
	status    int
	err       error
}

func (f *fakeTransport) Do(_ context.Context, req Request) ([]byte, int, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, 0, f.err
	}

	status := f.status
	if status == 0 {
		status = 200
	}

	if len(f.responses) == 0 {
		return []byte(okEnvelope), status, nil
	}
	body := f.responses[0]
	f.responses = f.responses[1:]
	return []byte(body), status, nil
}

// newTestSession logs in as alice with default environment "dev" over a fake
// transport, then drops the login traffic so tests assert only on their own
// calls. Extra responses are replayed to the test's requests in order.
func newTestSession(t *testing.T, responses ...string) (*Session, *fakeTransport) {
	t.Helper()

	ft := &fakeTransport{responses: append([]string{okEnvelope, valueEnvelope("dev")}, responses...)}
	s, err := New(context.Background(), "http://city.hall", "alice", "secret", WithTransport(ft))
	require.NoError(t, err)

	ft.requests = nil
	return s, ft
}

// newTestSessionNoDefault is newTestSession for a user without a default
// environment: the secondary lookup during login fails and is swallowed.
func newTestSessionNoDefault(t *testing.T, responses ...string) (*Session, *fakeTransport) {
	t.Helper()

	ft := &fakeTransport{responses: append([]string{okEnvelope, failureEnvelope}, responses...)}
	s, err := New(context.Background(), "http://city.hall", "alice", "secret", WithTransport(ft))
	require.NoError(t, err)

	ft.requests = nil
	return s, ft
}
