// ABOUTME: Tests for the workspaces list and create commands
// ABOUTME: Verifies auth gating, output formatting, and validation

package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/liubkkkko/taskManager/internal/api"
)

func workspacesBackend(t *testing.T, authed bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !authed {
			http.Error(w, `{}`, http.StatusUnauthorized)
			return
		}
		switch {
		case r.URL.Path == "/api/author":
			w.Write([]byte(`{"id":1,"nickname":"ivan"}`))
		case r.URL.Path == "/api/workspaces/authors/1":
			w.Write([]byte(`[
				{"id":10,"name":"alpha","status":"created","description":"first"},
				{"id":11,"name":"beta","status":"active"}
			]`))
		case r.URL.Path == "/api/workspaces" && r.Method == http.MethodPost:
			w.Write([]byte(`{"id":12,"name":"gamma","status":"created"}`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestWorkspacesList(t *testing.T) {
	server := workspacesBackend(t, true)
	defer server.Close()

	var buf bytes.Buffer
	code := runWorkspacesList(context.Background(), api.New(server.URL), &buf)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	for _, want := range []string{"alpha", "beta", "first"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected %q in output, got %q", want, buf.String())
		}
	}
}

func TestWorkspacesListNotSignedIn(t *testing.T) {
	server := workspacesBackend(t, false)
	defer server.Close()

	var buf bytes.Buffer
	code := runWorkspacesList(context.Background(), api.New(server.URL), &buf)

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "Not signed in") {
		t.Errorf("expected not-signed-in message, got %q", buf.String())
	}
}

func TestWorkspacesCreate(t *testing.T) {
	server := workspacesBackend(t, true)
	defer server.Close()

	var buf bytes.Buffer
	code := runWorkspacesCreate(context.Background(), api.New(server.URL), &buf, "gamma", "third")

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), `#12 "gamma"`) {
		t.Errorf("expected created workspace in output, got %q", buf.String())
	}
}

func TestWorkspacesCreateRequiresName(t *testing.T) {
	var buf bytes.Buffer
	code := runWorkspacesCreate(context.Background(), api.New("http://127.0.0.1:1"), &buf, "   ", "")

	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "name is required") {
		t.Errorf("expected validation message, got %q", buf.String())
	}
}

func TestFormatWorkspaceHuman(t *testing.T) {
	ws := &api.Workspace{
		ID:          10,
		Name:        "alpha",
		Status:      "created",
		Description: "first workspace",
		Jobs:        []api.Job{{ID: 1}, {ID: 2}},
	}

	out := formatWorkspaceHuman(ws)

	for _, want := range []string{"#10 alpha", "[created]", "first workspace", "2 job(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got %q", want, out)
		}
	}
}
