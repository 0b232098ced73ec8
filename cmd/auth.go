// ABOUTME: Shared session resolution for authenticated CLI commands
// ABOUTME: Mirrors the TUI bootstrap's refresh-once-then-retry behavior

package cmd

import (
	"context"
	"errors"

	"github.com/liubkkkko/taskManager/internal/api"
)

// errNotSignedIn is surfaced when no valid session can be established
var errNotSignedIn = errors.New("not signed in; run `taskman login` first")

// signedInAuthor resolves the current author from the backend, attempting
// exactly one silent refresh when the session cookie is rejected.
func signedInAuthor(ctx context.Context, c *api.Client) (*api.Author, error) {
	author, err := c.Identity(ctx)
	if err == nil {
		if author.Nickname == "" {
			return nil, errNotSignedIn
		}
		return author, nil
	}

	if !errors.Is(err, api.ErrUnauthorized) {
		return nil, err
	}

	if err := c.Refresh(ctx); err != nil {
		return nil, errNotSignedIn
	}

	author, err = c.Identity(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return nil, errNotSignedIn
		}
		return nil, err
	}
	if author.Nickname == "" {
		return nil, errNotSignedIn
	}
	return author, nil
}
