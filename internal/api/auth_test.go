// ABOUTME: Tests for the authentication API operations
// ABOUTME: Covers both identity payload shapes and the login/refresh contracts

package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIdentityAcceptsBothPayloadShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"direct author", `{"id":1,"nickname":"ivan","email":"i@example.com"}`, "ivan"},
		{"nested user", `{"user":{"id":1,"nickname":"olha"}}`, "olha"},
		{"empty object", `{}`, ""},
		{"garbage", `[1,2,3]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := New(server.URL)
			author, err := c.Identity(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if author == nil {
				t.Fatal("Identity must never return a nil author without an error")
			}
			if author.Nickname != tt.want {
				t.Errorf("expected nickname %q, got %q", tt.want, author.Nickname)
			}
		})
	}
}

func TestLoginSendsCredentials(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/login" {
			t.Errorf("expected POST /api/login, got %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		w.Write([]byte(`{"user":{"nickname":"ivan"}}`))
	}))
	defer server.Close()

	c := New(server.URL)
	author, err := c.Login(context.Background(), "ivan@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got["email"] != "ivan@example.com" || got["password"] != "secret" {
		t.Errorf("unexpected payload: %v", got)
	}
	if author.Nickname != "ivan" {
		t.Errorf("expected nickname ivan, got %q", author.Nickname)
	}
}

func TestLoginWithoutUserPayloadFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"welcome"`))
	}))
	defer server.Close()

	c := New(server.URL)
	if _, err := c.Login(context.Background(), "a@b.c", "pw"); err == nil {
		t.Error("expected an error when the success body carries no user")
	}
}

func TestRefreshPostsToRefresh(t *testing.T) {
	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
	}))
	defer server.Close()

	c := New(server.URL)
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/api/refresh" {
		t.Errorf("expected POST /api/refresh, got %s %s", gotMethod, gotPath)
	}
}

func TestRegisterPostsToAuthors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/authors" {
			t.Errorf("expected POST /api/authors, got %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"id":7,"nickname":"newbie","email":"n@example.com"}`))
	}))
	defer server.Close()

	c := New(server.URL)
	author, err := c.Register(context.Background(), RegisterInput{
		Nickname: "newbie",
		Email:    "n@example.com",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if author.ID != 7 {
		t.Errorf("expected ID 7, got %d", author.ID)
	}
}
