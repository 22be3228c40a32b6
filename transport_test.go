package cityhall

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransport(t *testing.T, serverURL string) *restyTransport {
	t.Helper()
	tr, err := newRestyTransport(serverURL, 0, zerolog.Nop())
	require.NoError(t, err)
	return tr
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("cityhall.local:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://cityhall.local:8080", got)

	got, err = normalizeBaseURL("https://cityhall.local/api/")
	require.NoError(t, err)
	assert.Equal(t, "https://cityhall.local/api", got)

	_, err = normalizeBaseURL("")
	assert.Error(t, err)

	_, err = normalizeBaseURL("   ")
	assert.Error(t, err)
}

func TestRestyTransport_Do(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		assert.Equal(t, "cityhall", r.URL.Query().Get("override"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"username":"alice"}`, string(raw))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(okEnvelope))
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL)

	body, status, err := tr.Do(context.Background(), Request{
		Method:   http.MethodPost,
		Resource: "auth/",
		Body:     map[string]string{"username": "alice"},
		Query:    map[string]string{"override": "cityhall"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, okEnvelope, string(body))
}

func TestRestyTransport_CookieJarKeepsSession(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "s3cr3t"})
		} else {
			cookie, err := r.Cookie("session")
			require.NoError(t, err, "second request must carry the session cookie")
			assert.Equal(t, "s3cr3t", cookie.Value)
		}
		_, _ = w.Write([]byte(okEnvelope))
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL)
	ctx := context.Background()

	_, _, err := tr.Do(ctx, Request{Method: http.MethodPost, Resource: "auth/"})
	require.NoError(t, err)
	_, _, err = tr.Do(ctx, Request{Method: http.MethodGet, Resource: "env/dev/value1/"})
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestRestyTransport_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	tr := newTestTransport(t, srv.URL)

	_, _, err := tr.Do(context.Background(), Request{Method: http.MethodGet, Resource: "auth/"})
	assert.Error(t, err)
}

// End to end over a real HTTP server: login, read, logout.
func TestSession_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/auth/":
			var login map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&login))
			assert.Equal(t, "alice", login["username"])
			assert.Equal(t, HashPassword("secret"), login["passhash"])
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "s3cr3t"})
			_, _ = w.Write([]byte(okEnvelope))

		case r.Method == http.MethodGet && r.URL.Path == "/auth/user/alice/default/":
			_, _ = w.Write([]byte(valueEnvelope("dev")))

		case r.Method == http.MethodGet && r.URL.Path == "/env/dev/value1/":
			cookie, err := r.Cookie("session")
			require.NoError(t, err)
			assert.Equal(t, "s3cr3t", cookie.Value)
			_, _ = w.Write([]byte(valueEnvelope("abc")))

		case r.Method == http.MethodDelete && r.URL.Path == "/auth/":
			_, _ = w.Write([]byte(okEnvelope))

		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	s, err := New(ctx, srv.URL, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "dev", s.DefaultEnvironment())

	value, err := s.Values.Get(ctx, "value1", "", Override{})
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	require.NoError(t, s.Logout(ctx))
	assert.False(t, s.LoggedIn())
}
