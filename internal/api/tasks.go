// ABOUTME: Workspace and job operations against the Task Manager API
// ABOUTME: Listing and creation endpoints consumed by the pages and CLI commands

package api

import (
	"context"
	"strconv"
	"time"
)

// Workspace is a container of jobs shared between authors
type Workspace struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Authors     []Author  `json:"Authors,omitempty"`
	Jobs        []Job     `json:"Jobs,omitempty"`
}

// Job is a single task inside a workspace
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Status      string    `json:"status"`
	AuthorID    int64     `json:"author_id"`
	WorkspaceID int64     `json:"workspace_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WorkspacesByAuthor calls GET /api/workspaces/authors/{id}
func (c *Client) WorkspacesByAuthor(ctx context.Context, authorID int64) ([]Workspace, error) {
	var workspaces []Workspace
	if err := c.get(ctx, "/workspaces/authors/"+strconv.FormatInt(authorID, 10), &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

// CreateWorkspaceInput is the payload for creating a workspace.
// Status is required by backend validation; "created" is the initial state.
type CreateWorkspaceInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// CreateWorkspace calls POST /api/workspaces
func (c *Client) CreateWorkspace(ctx context.Context, input CreateWorkspaceInput) (*Workspace, error) {
	if input.Status == "" {
		input.Status = "created"
	}
	var created Workspace
	if err := c.post(ctx, "/workspaces", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// JobsByWorkspace calls GET /api/jobs/{workspaceID}
func (c *Client) JobsByWorkspace(ctx context.Context, workspaceID int64) ([]Job, error) {
	var jobs []Job
	if err := c.get(ctx, "/jobs/"+strconv.FormatInt(workspaceID, 10), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// JobsByAuthor calls GET /api/jobs?authorId={id}. The backend's filter is
// advisory, so results are filtered on author_id again here.
func (c *Client) JobsByAuthor(ctx context.Context, authorID int64) ([]Job, error) {
	var jobs []Job
	if err := c.get(ctx, "/jobs?authorId="+strconv.FormatInt(authorID, 10), &jobs); err != nil {
		return nil, err
	}
	filtered := make([]Job, 0, len(jobs))
	for _, job := range jobs {
		if job.AuthorID == authorID {
			filtered = append(filtered, job)
		}
	}
	return filtered, nil
}

// CreateJobInput is the payload for creating a job
type CreateJobInput struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	WorkspaceID int64  `json:"workspace_id"`
	Status      string `json:"status"`
}

// CreateJob calls POST /api/jobs
func (c *Client) CreateJob(ctx context.Context, input CreateJobInput) (*Job, error) {
	if input.Status == "" {
		input.Status = "created"
	}
	var created Job
	if err := c.post(ctx, "/jobs", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
