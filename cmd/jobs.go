// ABOUTME: Jobs command for the taskman CLI
// ABOUTME: Lists and creates jobs, scoped to a workspace or to the author

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/liubkkkko/taskManager/internal/api"
)

var (
	jobsWorkspaceID int64
	jobTitle        string
	jobContent      string
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Work with jobs",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs",
	Long: `List jobs for the signed-in author, or for a single workspace when
--workspace is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runJobsList(ctx, newClient(loadConfig()), os.Stdout, jobsWorkspaceID)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var jobsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a job in a workspace",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runJobsCreate(ctx, newClient(loadConfig()), os.Stdout, jobsWorkspaceID, jobTitle, jobContent)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsCreateCmd)
	jobsListCmd.Flags().Int64Var(&jobsWorkspaceID, "workspace", 0, "Limit to a workspace ID")
	jobsCreateCmd.Flags().Int64Var(&jobsWorkspaceID, "workspace", 0, "Workspace ID (required)")
	jobsCreateCmd.Flags().StringVar(&jobTitle, "title", "", "Job title (required)")
	jobsCreateCmd.Flags().StringVar(&jobContent, "content", "", "Job description")
	jobsCreateCmd.MarkFlagRequired("workspace")
	jobsCreateCmd.MarkFlagRequired("title")
}

// runJobsList fetches jobs plus workspace names for display
func runJobsList(ctx context.Context, c *api.Client, w io.Writer, workspaceID int64) int {
	author, err := signedInAuthor(ctx, c)
	if err != nil {
		return reportAuthError(w, err)
	}

	// Jobs and the workspace list are independent; fetch them in parallel
	var (
		jobs       []api.Job
		workspaces []api.Workspace
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if workspaceID > 0 {
			jobs, err = c.JobsByWorkspace(gctx, workspaceID)
		} else {
			jobs, err = c.JobsByAuthor(gctx, author.ID)
		}
		return err
	})
	g.Go(func() error {
		var err error
		workspaces, err = c.WorkspacesByAuthor(gctx, author.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return reportAuthError(w, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(jobs, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(jobs) == 0 {
		fmt.Fprintln(w, "No jobs")
		return 0
	}

	names := make(map[int64]string, len(workspaces))
	for _, ws := range workspaces {
		names[ws.ID] = ws.Name
	}
	for _, job := range jobs {
		fmt.Fprintln(w, formatJobHuman(&job, names[job.WorkspaceID]))
	}
	return 0
}

// runJobsCreate creates a job and prints it
func runJobsCreate(ctx context.Context, c *api.Client, w io.Writer, workspaceID int64, title, content string) int {
	if workspaceID <= 0 {
		fmt.Fprintln(w, "Error: a workspace ID is required")
		return 2
	}
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(w, "Error: a job title is required")
		return 2
	}
	if _, err := signedInAuthor(ctx, c); err != nil {
		return reportAuthError(w, err)
	}

	created, err := c.CreateJob(ctx, api.CreateJobInput{
		Title:       strings.TrimSpace(title),
		Content:     strings.TrimSpace(content),
		WorkspaceID: workspaceID,
		Status:      "created",
	})
	if err != nil {
		return reportAuthError(w, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(created, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Created job #%d %q in workspace #%d\n", created.ID, created.Title, created.WorkspaceID)
	}
	return 0
}

// formatJobHuman renders one job as a short block
func formatJobHuman(job *api.Job, workspaceName string) string {
	ws := fmt.Sprintf("workspace #%d", job.WorkspaceID)
	if workspaceName != "" {
		ws = workspaceName
	}
	line := fmt.Sprintf("#%d %s [%s] in %s", job.ID, job.Title, job.Status, ws)
	if job.Content != "" {
		line += "\n    " + job.Content
	}
	return line
}
