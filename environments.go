package cityhall

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cityhall/go-cityhall/models"
)

// Environments manages environments and the caller's default environment.
type Environments struct {
	session *Session
}

// Default returns the session's current default environment. It is set at
// login and changes only through SetDefault.
func (e *Environments) Default() string {
	return e.session.DefaultEnvironment()
}

// SetDefault makes name the caller's default environment, both on the
// server and for subsequent operations on this session.
func (e *Environments) SetDefault(ctx context.Context, name string) error {
	if err := e.session.ensureLoggedIn(); err != nil {
		return err
	}

	_, err := execute[models.BaseResponse](ctx, e.session, Request{
		Method:   http.MethodPost,
		Resource: fmt.Sprintf("auth/user/%s/default/", e.session.User()),
		Body:     models.DefaultEnvRequest{Env: name},
	})
	if err != nil {
		return err
	}

	e.session.setDefaultEnvironment(name)
	return nil
}

// Get returns the rights every user holds on the named environment.
func (e *Environments) Get(ctx context.Context, name string) (models.EnvironmentInfo, error) {
	if err := e.session.ensureLoggedIn(); err != nil {
		return models.EnvironmentInfo{}, err
	}

	resp, err := execute[models.EnvironmentResponse](ctx, e.session, Request{
		Method:   http.MethodGet,
		Resource: fmt.Sprintf("auth/env/%s/", name),
	})
	if err != nil {
		return models.EnvironmentInfo{}, err
	}

	rights := make([]models.EnvironmentRights, 0, len(resp.Users))
	for user, level := range resp.Users {
		rights = append(rights, models.EnvironmentRights{User: user, Rights: models.Rights(level)})
	}
	return models.EnvironmentInfo{Rights: rights}, nil
}

// Create creates the named environment. The server grants the creating
// user Grant rights on it; the client does not enforce that.
func (e *Environments) Create(ctx context.Context, name string) error {
	if err := e.session.ensureLoggedIn(); err != nil {
		return err
	}

	_, err := execute[models.BaseResponse](ctx, e.session, Request{
		Method:   http.MethodPost,
		Resource: fmt.Sprintf("auth/env/%s/", name),
		Body:     struct{}{},
	})
	return err
}
