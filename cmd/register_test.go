// ABOUTME: Tests for the register command
// ABOUTME: Verifies the success path and the generic failure message

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/liubkkkko/taskManager/internal/api"
)

func TestRegisterSuccess(t *testing.T) {
	var got api.RegisterInput
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/authors" || r.Method != http.MethodPost {
			t.Errorf("expected POST /api/authors, got %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		w.Write([]byte(`{"id":7,"nickname":"newbie"}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	code := runRegister(context.Background(), api.New(server.URL), &buf, "newbie", "n@example.com", "pw")

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	if got.Nickname != "newbie" || got.Email != "n@example.com" {
		t.Errorf("unexpected payload: %+v", got)
	}
	if !strings.Contains(buf.String(), "Account created") {
		t.Errorf("expected success message, got %q", buf.String())
	}
}

func TestRegisterFailureIsGeneric(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"email already taken"}`, http.StatusConflict)
	}))
	defer server.Close()

	var buf bytes.Buffer
	code := runRegister(context.Background(), api.New(server.URL), &buf, "newbie", "n@example.com", "pw")

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "registration failed") {
		t.Errorf("expected generic message, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "already taken") {
		t.Error("backend validation detail must not leak")
	}
}
