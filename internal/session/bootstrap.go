// ABOUTME: Session bootstrap and teardown flows
// ABOUTME: Resolves the current identity on start, refreshing once on rejection

package session

import (
	"context"
	"errors"

	"github.com/liubkkkko/taskManager/internal/api"
)

// AuthClient is the slice of the API client the session flows depend on
type AuthClient interface {
	Identity(ctx context.Context) (*api.Author, error)
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
}

// Bootstrap resolves the current identity from the backend exactly once.
// On a 401 it attempts a single silent refresh and retries the identity
// fetch once; any other failure signs the session out without a refresh.
// The store always ends in a non-loading state unless ctx was canceled,
// in which case no state is written at all.
func Bootstrap(ctx context.Context, client AuthClient, store *Store) {
	start := store.Generation()

	nickname, ok := fetchIdentity(ctx, client)

	// The owning view went away; drop the result rather than update it
	if ctx.Err() != nil {
		return
	}

	if !ok {
		nickname = ""
	}
	store.resolveIf(start, ok, nickname)
}

// fetchIdentity runs the identity fetch with the refresh-then-retry step
func fetchIdentity(ctx context.Context, client AuthClient) (string, bool) {
	author, err := client.Identity(ctx)
	if err == nil {
		return author.Nickname, author.Nickname != ""
	}

	// Only a 401 earns a refresh attempt
	if !errors.Is(err, api.ErrUnauthorized) {
		return "", false
	}

	if err := client.Refresh(ctx); err != nil {
		return "", false
	}

	// Exactly one retry, regardless of how it fails
	author, err = client.Identity(ctx)
	if err != nil {
		return "", false
	}
	return author.Nickname, author.Nickname != ""
}

// Logout tears down the session: the remote call is best-effort and its
// failure never leaves local state stale.
func Logout(ctx context.Context, client AuthClient, store *Store) {
	_ = client.Logout(ctx)
	store.Logout()
}
