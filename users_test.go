package cityhall

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityhall/go-cityhall/models"
)

func TestUsersGet(t *testing.T) {
	userJSON := `{"Response":"Ok","Environments":{"dev":3,"qa":2}}`
	s, ft := newTestSession(t, userJSON)

	info, err := s.Users.Get(context.Background(), "bob")
	require.NoError(t, err)

	req := ft.requests[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "auth/user/bob", req.Resource, "user info endpoint has no trailing slash")

	assert.ElementsMatch(t, []models.UserRights{
		{Environment: "dev", Rights: models.RightsWrite},
		{Environment: "qa", Rights: models.RightsReadProtected},
	}, info.Permissions)
}

func TestUsersCreate(t *testing.T) {
	s, ft := newTestSession(t)

	require.NoError(t, s.Users.Create(context.Background(), "bob", "secret"))

	req := ft.requests[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "auth/user/bob/", req.Resource)

	body, err := json.Marshal(req.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"passhash":"5ebe2294ecd0e0f08eab7690d2a6ee69"}`, string(body))
}

func TestUsersCreate_EmptyPasswordEmptyHash(t *testing.T) {
	s, ft := newTestSession(t)

	require.NoError(t, s.Users.Create(context.Background(), "bob", ""))

	body, err := json.Marshal(ft.requests[0].Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"passhash":""}`, string(body))
}

func TestUsersCreate_SelfIsRejectedWithoutNetworkCall(t *testing.T) {
	s, ft := newTestSession(t)

	err := s.Users.Create(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Empty(t, ft.requests)
}

func TestUsersDelete(t *testing.T) {
	s, ft := newTestSession(t)

	require.NoError(t, s.Users.Delete(context.Background(), "bob"))

	req := ft.requests[0]
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "auth/user/bob/", req.Resource)
}

func TestUsersDelete_NoSelfCheck(t *testing.T) {
	// the server, not the client, decides whether self-deletion is allowed
	s, ft := newTestSession(t)

	require.NoError(t, s.Users.Delete(context.Background(), "alice"))
	assert.Len(t, ft.requests, 1)
}

func TestUsersUpdatePassword(t *testing.T) {
	s, ft := newTestSession(t)

	require.NoError(t, s.Users.UpdatePassword(context.Background(), "hunter2"))

	req := ft.requests[0]
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "auth/user/alice/", req.Resource)

	body, err := json.Marshal(req.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"passhash":"`+HashPassword("hunter2")+`"}`, string(body))
}

func TestUsersGrant(t *testing.T) {
	s, ft := newTestSession(t)

	require.NoError(t, s.Users.Grant(context.Background(), "bob", "qa", models.RightsWrite))

	req := ft.requests[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "auth/grant/", req.Resource)

	body, err := json.Marshal(req.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"env":"qa","user":"bob","rights":3}`, string(body))
}

func TestUsersGrant_NoneRevokes(t *testing.T) {
	s, ft := newTestSession(t)

	require.NoError(t, s.Users.Grant(context.Background(), "bob", "qa", models.RightsNone))

	body, err := json.Marshal(ft.requests[0].Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"env":"qa","user":"bob","rights":0}`, string(body))
}
