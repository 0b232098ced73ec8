// ABOUTME: Logout command for the taskman CLI
// ABOUTME: Clears the local session unconditionally, remote logout best-effort

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/liubkkkko/taskManager/internal/api"
	"github.com/liubkkkko/taskManager/internal/session"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the local session",
	Long: `Invalidate the session on the backend (best effort) and remove the
locally stored cookies. Local state is cleared even when the backend is
unreachable.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		c := newClient(loadConfig())
		runLogout(ctx, c, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout tears down the session; it cannot fail
func runLogout(ctx context.Context, c *api.Client, w io.Writer) {
	store := session.NewStore()
	session.Logout(ctx, c, store)
	c.ClearSession()
	fmt.Fprintln(w, "Signed out")
}
