// ABOUTME: Tests for the jobs list and create commands
// ABOUTME: Verifies workspace scoping, name resolution, and validation

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

func jobsBackend(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/author":
			w.Write([]byte(`{"id":1,"nickname":"ivan"}`))
		case r.URL.Path == "/api/workspaces/authors/1":
			w.Write([]byte(`[{"id":10,"name":"alpha","status":"created"}]`))
		case r.URL.Path == "/api/jobs/10":
			w.Write([]byte(`[{"id":100,"title":"scoped job","status":"created","author_id":1,"workspace_id":10}]`))
		case r.URL.Path == "/api/jobs" && r.Method == http.MethodGet:
			w.Write([]byte(`[
				{"id":100,"title":"my job","status":"created","author_id":1,"workspace_id":10},
				{"id":101,"title":"foreign job","status":"created","author_id":2,"workspace_id":10}
			]`))
		case r.URL.Path == "/api/jobs" && r.Method == http.MethodPost:
			w.Write([]byte(`{"id":102,"title":"new job","status":"created","workspace_id":10}`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestJobsListAllJobs(t *testing.T) {
	server := jobsBackend(t)
	defer server.Close()

	var buf bytes.Buffer
	code := runJobsList(context.Background(), api.New(server.URL), &buf, 0)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "my job") {
		t.Errorf("expected own job in output, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "foreign job") {
		t.Error("jobs of other authors must be filtered out")
	}
	// Workspace ID resolved to its name
	if !strings.Contains(buf.String(), "alpha") {
		t.Errorf("expected workspace name in output, got %q", buf.String())
	}
}

func TestJobsListScopedToWorkspace(t *testing.T) {
	server := jobsBackend(t)
	defer server.Close()

	var buf bytes.Buffer
	code := runJobsList(context.Background(), api.New(server.URL), &buf, 10)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "scoped job") {
		t.Errorf("expected scoped job in output, got %q", buf.String())
	}
}

func TestJobsCreate(t *testing.T) {
	server := jobsBackend(t)
	defer server.Close()

	var buf bytes.Buffer
	code := runJobsCreate(context.Background(), api.New(server.URL), &buf, 10, "new job", "details")

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), `#102 "new job"`) {
		t.Errorf("expected created job in output, got %q", buf.String())
	}
}

func TestJobsCreateValidation(t *testing.T) {
	tests := []struct {
		name        string
		workspaceID int64
		title       string
	}{
		{"missing workspace", 0, "title"},
		{"blank title", 10, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			code := runJobsCreate(context.Background(), api.New("http://127.0.0.1:1"), &buf, tt.workspaceID, tt.title, "")

			if code != 2 {
				t.Errorf("expected exit code 2, got %d", code)
			}
		})
	}
}

func TestFormatJobHuman(t *testing.T) {
	job := &api.Job{ID: 100, Title: "my job", Status: "created", WorkspaceID: 10, Content: "details"}

	withName := formatJobHuman(job, "alpha")
	if !strings.Contains(withName, "in alpha") {
		t.Errorf("expected workspace name, got %q", withName)
	}

	withoutName := formatJobHuman(job, "")
	if !strings.Contains(withoutName, "workspace #10") {
		t.Errorf("expected workspace id fallback, got %q", withoutName)
	}
}
