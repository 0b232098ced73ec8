// ABOUTME: Page-level sign-in flow shared by the CLI command and TUI screen
// ABOUTME: Submits credentials, saves them opportunistically, updates the store

package session

import (
	"context"
	"errors"

	"github.com/liubkkkko/taskManager/internal/api"
)

// ErrInvalidCredentials is the only failure surfaced to the user by the
// sign-in flow. Network errors and rejected credentials are deliberately
// indistinguishable to avoid user enumeration.
var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginClient is the slice of the API client the sign-in flow depends on
type LoginClient interface {
	Login(ctx context.Context, email, password string) (*api.Author, error)
}

// CredentialSink receives credentials after a successful login.
// Implementations never fail the flow.
type CredentialSink interface {
	TryStore(id, secret string)
}

// SignIn runs the login flow: submit credentials, opportunistically store
// them, then record the session locally. Navigation to the default
// authenticated view is the caller's concern.
func SignIn(ctx context.Context, client LoginClient, creds CredentialSink, store *Store, email, password string) (*api.Author, error) {
	author, err := client.Login(ctx, email, password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// Best-effort; the outcome never affects the login result
	if creds != nil {
		creds.TryStore(email, password)
	}

	store.Login(author)
	return author, nil
}
