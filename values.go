package cityhall

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cityhall/go-cityhall/models"
)

// Values reads and writes configuration values. Paths address the value
// hierarchy within an environment and are canonicalized to the slash-wrapped
// form the service expects; where environment is empty the session default
// applies.
type Values struct {
	session *Session
}

// Get returns the value stored at path. over selects the variant per the
// [Override] semantics; the zero Override returns whatever the server deems
// visible to the logged-in user.
func (v *Values) Get(ctx context.Context, path, environment string, over Override) (string, error) {
	env, err := v.session.resolveEnvironment(environment)
	if err != nil {
		return "", err
	}

	resp, err := GetRaw[models.ValueResponse](ctx, v, env, path, over.params())
	if err != nil {
		return "", err
	}
	return resp.Value, nil
}

// GetRaw is the low-level read primitive behind Get, GetHistory and
// GetChildren: environment must already be resolved, params carries the raw
// query parameters (override, viewhistory, viewchildren), and T is the
// envelope the payload decodes into.
func GetRaw[T any, PT envelopePtr[T]](ctx context.Context, v *Values, environment, path string, params map[string]string) (*T, error) {
	if err := v.session.ensureLoggedIn(); err != nil {
		return nil, err
	}

	return execute[T, PT](ctx, v.session, Request{
		Method:   http.MethodGet,
		Resource: fmt.Sprintf("env/%s%s", environment, sanitizePath(path)),
		Query:    params,
	})
}

// GetHistory returns the change log of path, in server order.
func (v *Values) GetHistory(ctx context.Context, path, environment string, over Override) (models.History, error) {
	env, err := v.session.resolveEnvironment(environment)
	if err != nil {
		return models.History{}, err
	}

	params := over.params()
	params["viewhistory"] = "true"

	resp, err := GetRaw[models.HistoryResponse](ctx, v, env, path, params)
	if err != nil {
		return models.History{}, err
	}

	entries := make([]models.Entry, 0, len(resp.History))
	for _, h := range resp.History {
		entries = append(entries, models.Entry{
			ID:        h.ID,
			Name:      h.Name,
			Value:     h.Value,
			Author:    h.Author,
			Timestamp: h.DateTime,
			Active:    h.Active,
			Protect:   h.Protect,
			Override:  h.Override,
		})
	}
	return models.History{Entries: entries}, nil
}

// GetChildren returns the direct descendants of path. Overrides do not
// apply to children listings.
func (v *Values) GetChildren(ctx context.Context, path, environment string) (models.Children, error) {
	env, err := v.session.resolveEnvironment(environment)
	if err != nil {
		return models.Children{}, err
	}

	resp, err := GetRaw[models.ChildrenResponse](ctx, v, env, path, map[string]string{"viewchildren": "true"})
	if err != nil {
		return models.Children{}, err
	}

	children := make([]models.Child, 0, len(resp.Children))
	for _, c := range resp.Children {
		children = append(children, models.Child{
			ID:       c.ID,
			Name:     c.Name,
			Path:     c.Path,
			Value:    c.Value,
			Protect:  c.Protect,
			Override: c.Override,
		})
	}
	return models.Children{Path: resp.Path, Children: children}, nil
}

// SetRaw writes a sparse [models.Value] descriptor to path: only the fields
// present in value reach the wire. The override semantics mirror the read
// side, including Over("") for the unconditional default.
func (v *Values) SetRaw(ctx context.Context, environment, path string, value models.Value, over Override) error {
	if err := v.session.ensureLoggedIn(); err != nil {
		return err
	}
	env, err := v.session.resolveEnvironment(environment)
	if err != nil {
		return err
	}

	_, err = execute[models.BaseResponse](ctx, v.session, Request{
		Method:   http.MethodPost,
		Resource: fmt.Sprintf("env/%s%s", env, sanitizePath(path)),
		Body:     value,
		Query:    over.params(),
	})
	return err
}

// Set stores value at path.
func (v *Values) Set(ctx context.Context, environment, path, value string, over Override) error {
	return v.SetRaw(ctx, environment, path, models.NewValue(value), over)
}

// SetProtect flips only the protect bit of path, leaving its content alone.
func (v *Values) SetProtect(ctx context.Context, environment, path string, protect bool, over Override) error {
	return v.SetRaw(ctx, environment, path, models.NewProtect(protect), over)
}

// Delete removes the value at path, or just the selected override of it.
func (v *Values) Delete(ctx context.Context, environment, path string, over Override) error {
	if err := v.session.ensureLoggedIn(); err != nil {
		return err
	}
	env, err := v.session.resolveEnvironment(environment)
	if err != nil {
		return err
	}

	_, err = execute[models.BaseResponse](ctx, v.session, Request{
		Method:   http.MethodDelete,
		Resource: fmt.Sprintf("env/%s%s", env, sanitizePath(path)),
		Query:    over.params(),
	})
	return err
}
