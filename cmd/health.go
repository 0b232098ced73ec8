// ABOUTME: Health command for the taskman CLI
// ABOUTME: Checks backend connectivity and reports the session state

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/liubkkkko/taskManager/internal/api"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long: `Check connectivity to the Task Manager backend and report whether the
stored session is still accepted.

Exit codes:
  0 - Backend reachable
  2 - Backend unreachable`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		cfg := loadConfig()
		exitCode := runHealth(ctx, newClient(cfg), cfg.APIURL, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth probes the backend and returns an exit code. Any HTTP response,
// including a 401, proves the backend is up; only transport failures count
// as unreachable.
func runHealth(ctx context.Context, c *api.Client, url string, w io.Writer) int {
	session := "active"

	_, err := c.Identity(ctx)
	if err != nil {
		var apiErr *api.APIError
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			session = "none"
		case errors.As(err, &apiErr):
			session = "none"
		default:
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatHealthJSON(url, session))
	} else {
		fmt.Fprintln(w, formatHealthHuman(url, session))
	}

	return 0
}

// formatHealthHuman formats the health report for human readability
func formatHealthHuman(url, session string) string {
	return fmt.Sprintf(`Backend: %s
Status:  reachable
Session: %s`, url, session)
}

// formatHealthJSON formats the health report as JSON
func formatHealthJSON(url, session string) string {
	output := map[string]interface{}{
		"backend": url,
		"status":  "reachable",
		"session": session,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
