// ABOUTME: Authentication operations against the Task Manager API
// ABOUTME: Identity fetch, login, silent refresh, logout, and registration

package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

// Author is the backend's user record
type Author struct {
	ID        int64     `json:"id"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity calls GET /api/author and returns the signed-in author.
// The backend answers with either the author object itself or a wrapper
// carrying a "user" field; both shapes are accepted.
func (c *Client) Identity(ctx context.Context) (*Author, error) {
	data, err := c.do(ctx, http.MethodGet, "/author", nil)
	if err != nil {
		return nil, err
	}
	author := authorFromBody(data)
	if author == nil {
		// Malformed body; the caller treats a missing nickname as failure
		author = &Author{}
	}
	return author, nil
}

// AuthorByID calls GET /api/author/{id}
func (c *Client) AuthorByID(ctx context.Context, id int64) (*Author, error) {
	var author Author
	if err := c.get(ctx, "/author/"+strconv.FormatInt(id, 10), &author); err != nil {
		return nil, err
	}
	return &author, nil
}

// Login calls POST /api/login. The session cookies are set by the backend;
// the returned Author is the user payload (direct or nested under "user").
// A success response with no user payload is treated as a failure.
func (c *Client) Login(ctx context.Context, email, password string) (*Author, error) {
	body := map[string]string{"email": email, "password": password}
	data, err := c.do(ctx, http.MethodPost, "/login", body)
	if err != nil {
		return nil, err
	}
	author := authorFromBody(data)
	if author == nil {
		return nil, fmt.Errorf("login response carried no user")
	}
	return author, nil
}

// Refresh calls POST /api/refresh to silently renew the session using the
// refresh cookie. The response body is opaque and ignored.
func (c *Client) Refresh(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/refresh", struct{}{})
	return err
}

// Logout calls POST /api/logout. Callers ignore the outcome; local session
// state is cleared regardless.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/logout", struct{}{})
	return err
}

// RegisterInput is the payload for creating a new author
type RegisterInput struct {
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register calls POST /api/authors to create a new author account
func (c *Client) Register(ctx context.Context, input RegisterInput) (*Author, error) {
	var author Author
	if err := c.post(ctx, "/authors", input, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

// authorFromBody extracts an Author from a payload that is either the author
// object itself or a wrapper with a "user" field. Returns nil when neither
// shape is present.
func authorFromBody(data []byte) *Author {
	root := gjson.ParseBytes(data)
	obj := root
	if user := root.Get("user"); user.IsObject() {
		obj = user
	}
	if !obj.IsObject() {
		return nil
	}
	return &Author{
		ID:        obj.Get("id").Int(),
		Nickname:  obj.Get("nickname").String(),
		Email:     obj.Get("email").String(),
		Role:      obj.Get("role").String(),
		CreatedAt: parseTime(obj.Get("created_at").String()),
		UpdatedAt: parseTime(obj.Get("updated_at").String()),
	}
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
