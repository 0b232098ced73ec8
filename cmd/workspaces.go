// ABOUTME: Workspaces command for the taskman CLI
// ABOUTME: Lists and creates workspaces for the signed-in author

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/liubkkkko/taskManager/internal/api"
)

var (
	workspaceName        string
	workspaceDescription string
)

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "Work with workspaces",
}

var workspacesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your workspaces",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWorkspacesList(ctx, newClient(loadConfig()), os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var workspacesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a workspace",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWorkspacesCreate(ctx, newClient(loadConfig()), os.Stdout, workspaceName, workspaceDescription)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(workspacesCmd)
	workspacesCmd.AddCommand(workspacesListCmd)
	workspacesCmd.AddCommand(workspacesCreateCmd)
	workspacesCreateCmd.Flags().StringVar(&workspaceName, "name", "", "Workspace name (required)")
	workspacesCreateCmd.Flags().StringVar(&workspaceDescription, "description", "", "Workspace description")
	workspacesCreateCmd.MarkFlagRequired("name")
}

// runWorkspacesList fetches and prints the author's workspaces
func runWorkspacesList(ctx context.Context, c *api.Client, w io.Writer) int {
	author, err := signedInAuthor(ctx, c)
	if err != nil {
		return reportAuthError(w, err)
	}

	workspaces, err := c.WorkspacesByAuthor(ctx, author.ID)
	if err != nil {
		return reportAuthError(w, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(workspaces, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(workspaces) == 0 {
		fmt.Fprintln(w, "No workspaces")
		return 0
	}
	for _, ws := range workspaces {
		fmt.Fprintln(w, formatWorkspaceHuman(&ws))
	}
	return 0
}

// runWorkspacesCreate creates a workspace and prints it
func runWorkspacesCreate(ctx context.Context, c *api.Client, w io.Writer, name, description string) int {
	if strings.TrimSpace(name) == "" {
		fmt.Fprintln(w, "Error: workspace name is required")
		return 2
	}
	if _, err := signedInAuthor(ctx, c); err != nil {
		return reportAuthError(w, err)
	}

	created, err := c.CreateWorkspace(ctx, api.CreateWorkspaceInput{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Status:      "created",
	})
	if err != nil {
		return reportAuthError(w, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(created, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Created workspace #%d %q\n", created.ID, created.Name)
	}
	return 0
}

// reportAuthError prints the standard failure output and picks the exit code
func reportAuthError(w io.Writer, err error) int {
	if errors.Is(err, errNotSignedIn) || errors.Is(err, api.ErrUnauthorized) {
		fmt.Fprintln(w, "Not signed in; run `taskman login` first")
		return 1
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return 2
}

// formatWorkspaceHuman renders one workspace as a short block
func formatWorkspaceHuman(ws *api.Workspace) string {
	line := fmt.Sprintf("#%d %s [%s]", ws.ID, ws.Name, ws.Status)
	if !ws.CreatedAt.IsZero() {
		line += "  created " + ws.CreatedAt.Format(time.RFC3339)
	}
	if ws.Description != "" {
		line += "\n    " + ws.Description
	}
	if len(ws.Jobs) > 0 {
		line += fmt.Sprintf("\n    %d job(s)", len(ws.Jobs))
	}
	return line
}
