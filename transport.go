package cityhall

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Request describes one call against the City Hall API: a server-relative
// resource path plus an optional JSON body and query parameters. Body, when
// present, must already be in final wire shape.
type Request struct {
	Method   string
	Resource string
	Body     any
	Query    map[string]string
}

// Transport executes requests against the service and returns the raw
// response payload with its status code. Implementations own the base URL
// and the cookie jar that keeps the session alive between calls; they do
// not retry and do not interpret the payload.
type Transport interface {
	Do(ctx context.Context, req Request) (body []byte, statusCode int, err error)
}

// restyTransport is the default Transport. The resty client it wraps ships
// with a cookie jar, which is what carries the session cookie issued by the
// login call into every subsequent request.
type restyTransport struct {
	client *resty.Client
	log    zerolog.Logger
}

func newRestyTransport(baseURL string, timeout time.Duration, log zerolog.Logger) (*restyTransport, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid city hall url: %w", err)
	}

	client := resty.New().SetBaseURL(normalized)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &restyTransport{client: client, log: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Do implements [Transport]. Each request gets a fresh X-Request-Id so
// client and server logs can be correlated.
func (t *restyTransport) Do(ctx context.Context, req Request) ([]byte, int, error) {
	r := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-Id", uuid.NewString())

	if req.Body != nil {
		r.SetBody(req.Body)
	}
	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query)
	}

	resp, err := r.Execute(req.Method, req.Resource)
	if err != nil {
		return nil, 0, err
	}

	t.log.Debug().
		Str("method", req.Method).
		Str("resource", req.Resource).
		Int("status", resp.StatusCode()).
		Msg("city hall request")

	return resp.Body(), resp.StatusCode(), nil
}
