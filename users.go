package cityhall

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cityhall/go-cityhall/models"
)

// Users manages users and their rights on environments.
type Users struct {
	session *Session
}

// Get returns the rights the named user holds, per environment.
func (u *Users) Get(ctx context.Context, username string) (models.UserInfo, error) {
	if err := u.session.ensureLoggedIn(); err != nil {
		return models.UserInfo{}, err
	}

	// No trailing slash here; the user info endpoint is the one exception
	// in the resource grammar.
	resp, err := execute[models.UserInfoResponse](ctx, u.session, Request{
		Method:   http.MethodGet,
		Resource: fmt.Sprintf("auth/user/%s", username),
	})
	if err != nil {
		return models.UserInfo{}, err
	}

	permissions := make([]models.UserRights, 0, len(resp.Environments))
	for env, level := range resp.Environments {
		permissions = append(permissions, models.UserRights{Environment: env, Rights: models.Rights(level)})
	}
	return models.UserInfo{Permissions: permissions}, nil
}

// Create creates a user with neither rights nor a default environment.
// Passing the session's own user is rejected before any request is sent;
// use UpdatePassword to change your own password.
func (u *Users) Create(ctx context.Context, username, password string) error {
	if username == u.session.User() {
		return fmt.Errorf("%w: you are passing your own user name to Create, use UpdatePassword to change your own password",
			ErrInvalidRequest)
	}

	if err := u.session.ensureLoggedIn(); err != nil {
		return err
	}

	_, err := execute[models.BaseResponse](ctx, u.session, Request{
		Method:   http.MethodPost,
		Resource: fmt.Sprintf("auth/user/%s/", username),
		Body:     models.PasshashRequest{Passhash: HashPassword(password)},
	})
	return err
}

// Delete removes the named user. No self-check: the server is the
// authority on whether self-deletion is permitted.
func (u *Users) Delete(ctx context.Context, username string) error {
	if err := u.session.ensureLoggedIn(); err != nil {
		return err
	}

	_, err := execute[models.BaseResponse](ctx, u.session, Request{
		Method:   http.MethodDelete,
		Resource: fmt.Sprintf("auth/user/%s/", username),
	})
	return err
}

// UpdatePassword changes the logged-in user's own password.
func (u *Users) UpdatePassword(ctx context.Context, password string) error {
	if err := u.session.ensureLoggedIn(); err != nil {
		return err
	}

	_, err := execute[models.BaseResponse](ctx, u.session, Request{
		Method:   http.MethodPut,
		Resource: fmt.Sprintf("auth/user/%s/", u.session.User()),
		Body:     models.PasshashRequest{Passhash: HashPassword(password)},
	})
	return err
}

// Grant assigns username the given rights level on environment. Granting
// RightsNone revokes.
func (u *Users) Grant(ctx context.Context, username, environment string, rights models.Rights) error {
	if err := u.session.ensureLoggedIn(); err != nil {
		return err
	}

	_, err := execute[models.BaseResponse](ctx, u.session, Request{
		Method:   http.MethodPost,
		Resource: "auth/grant/",
		Body:     models.GrantRequest{Env: environment, User: username, Rights: int(rights)},
	})
	return err
}
