// SPDX-License-Identifier: Apache-2.0

// Package cityhall is a client for the City Hall configuration service: a
// hierarchical store of values scoped by environment, with per-user
// overrides, history, and rights management.
//
// A [Session] is created logged in by [New] and stays valid until [Logout];
// it is single-use, so logging back in means creating a new session. All
// value, environment and user operations hang off the session's three
// sub-clients:
//
//	s, err := cityhall.New(ctx, "http://cityhall.local/api/", "alice", "secret")
//	if err != nil { ... }
//	defer s.Logout(ctx)
//
//	value, err := s.Values.Get(ctx, "connection/db", "", cityhall.Override{})
//
// Error handling is by sentinel: every failure wraps one of [ErrNotLoggedIn],
// [ErrService], [ErrTransport] or [ErrInvalidRequest], checked with
// errors.Is.
package cityhall

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cityhall/go-cityhall/models"
)

// Session is the authenticated, stateful handle through which all
// operations are issued. A session may be shared between goroutines: the
// logged-in flag and default environment are the only mutable state, and
// both are guarded by the session mutex. The guard in front of each
// operation is deliberately not atomic with a concurrent Logout; an
// operation that slips past it runs against a dead server session and
// surfaces as ErrService. The server, not the client, is the final arbiter
// of session validity.
type Session struct {
	transport Transport
	log       zerolog.Logger

	mu                 sync.Mutex
	user               string
	loggedIn           bool
	defaultEnvironment string

	// Values reads and writes configuration values.
	Values *Values
	// Environments manages environments and the caller's default.
	Environments *Environments
	// Users manages users and their rights.
	Users *Users
}

// New logs in to the City Hall instance at url as user and returns the
// authenticated session. The password travels as its hash, never in clear;
// a blank password is legal and hashes to the empty string.
//
// After a successful login the user's default environment is fetched on a
// best-effort basis: a user without one must still be able to log in, so
// any failure of that secondary call leaves the default empty. A failed
// login itself is returned as an error and no session is created.
func New(ctx context.Context, url, user, password string, opts ...Option) (*Session, error) {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	tr := o.transport
	if tr == nil {
		t, err := newRestyTransport(url, o.timeout, o.log)
		if err != nil {
			return nil, err
		}
		tr = t
	}

	s := &Session{transport: tr, log: o.log}

	_, err := execute[models.BaseResponse](ctx, s, Request{
		Method:   http.MethodPost,
		Resource: "auth/",
		Body:     models.LoginRequest{Username: user, Passhash: HashPassword(password)},
	})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	defaultEnv := ""
	if v, err := execute[models.ValueResponse](ctx, s, Request{
		Method:   http.MethodGet,
		Resource: fmt.Sprintf("auth/user/%s/default/", user),
	}); err == nil {
		defaultEnv = v.Value
	}

	s.mu.Lock()
	s.user = user
	s.loggedIn = true
	s.defaultEnvironment = defaultEnv
	s.mu.Unlock()

	s.Values = &Values{session: s}
	s.Environments = &Environments{session: s}
	s.Users = &Users{session: s}

	s.log.Debug().Str("user", user).Str("default_env", defaultEnv).Msg("logged in to city hall")
	return s, nil
}

// User returns the name the session was opened with.
func (s *Session) User() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// LoggedIn reports whether the session is still usable. It becomes
// permanently false after Logout.
func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// DefaultEnvironment returns the environment used when operations do not
// name one explicitly. Empty if the user has no default. It changes only
// through Environments.SetDefault.
func (s *Session) DefaultEnvironment() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.defaultEnvironment
}

func (s *Session) setDefaultEnvironment(env string) {
	s.mu.Lock()
	s.defaultEnvironment = env
	s.mu.Unlock()
}

// Logout closes the session on the server and invalidates it locally.
// Calling Logout on an already closed session is a no-op. If the server
// call fails the session stays logged in and the error is returned.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedIn {
		return nil
	}

	if _, err := execute[models.BaseResponse](ctx, s, Request{
		Method:   http.MethodDelete,
		Resource: "auth/",
	}); err != nil {
		return err
	}

	s.loggedIn = false
	s.log.Debug().Str("user", s.user).Msg("logged out of city hall")
	return nil
}

// ensureLoggedIn is the fast-fail guard in front of every operation. It is
// only a snapshot; see the Session doc for the accepted race with Logout.
func (s *Session) ensureLoggedIn() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedIn {
		return fmt.Errorf("%w: create a new session to log back in", ErrNotLoggedIn)
	}
	return nil
}
