// ABOUTME: Tests for the sign-in flow
// ABOUTME: Covers credential storage, store updates, and failure masking

package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liubkkkko/taskManager/internal/api"
)

type fakeLoginClient struct {
	author *api.Author
	err    error

	gotEmail    string
	gotPassword string
}

func (f *fakeLoginClient) Login(_ context.Context, email, password string) (*api.Author, error) {
	f.gotEmail = email
	f.gotPassword = password
	return f.author, f.err
}

type recordingSink struct {
	id     string
	secret string
	calls  int
}

func (r *recordingSink) TryStore(id, secret string) {
	r.id = id
	r.secret = secret
	r.calls++
}

func TestSignInSuccess(t *testing.T) {
	client := &fakeLoginClient{author: &api.Author{Nickname: "ivan"}}
	sink := &recordingSink{}
	store := NewStore()

	author, err := SignIn(context.Background(), client, sink, store, "ivan@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "ivan", author.Nickname)
	assert.Equal(t, "ivan@example.com", client.gotEmail)
	assert.Equal(t, "secret", client.gotPassword)

	state := store.Get()
	assert.True(t, state.Authenticated)
	assert.Equal(t, "ivan", state.Username)
}

func TestSignInStoresCredentialsAfterSuccess(t *testing.T) {
	client := &fakeLoginClient{author: &api.Author{Nickname: "ivan"}}
	sink := &recordingSink{}

	_, err := SignIn(context.Background(), client, sink, NewStore(), "ivan@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, 1, sink.calls)
	assert.Equal(t, "ivan@example.com", sink.id)
	assert.Equal(t, "secret", sink.secret)
}

func TestSignInFailureIsGeneric(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"rejected credentials", &api.APIError{Status: 401, Message: "bad password"}},
		{"network failure", errors.New("connection refused")},
		{"server error", &api.APIError{Status: 500, Message: "boom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeLoginClient{err: tt.err}
			sink := &recordingSink{}
			store := NewStore()

			_, err := SignIn(context.Background(), client, sink, store, "a@b.c", "pw")

			assert.ErrorIs(t, err, ErrInvalidCredentials, "every failure looks the same to the user")
			assert.Equal(t, 0, sink.calls, "no credential storage on failure")
			assert.False(t, store.Get().Authenticated)
		})
	}
}

func TestSignInNilSinkIsFine(t *testing.T) {
	client := &fakeLoginClient{author: &api.Author{Nickname: "ivan"}}

	_, err := SignIn(context.Background(), client, nil, NewStore(), "a@b.c", "pw")

	assert.NoError(t, err)
}
