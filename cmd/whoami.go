// ABOUTME: Whoami command for the taskman CLI
// ABOUTME: Shows the signed-in author, silently refreshing an expired session

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

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in author",
	Long: `Display the author the current session belongs to.

Exit codes:
  0 - Signed in
  1 - Not signed in
  2 - Error (connectivity, backend failure)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWhoami(ctx, newClient(loadConfig()), os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami resolves the session and prints the identity
func runWhoami(ctx context.Context, c *api.Client, w io.Writer) int {
	author, err := signedInAuthor(ctx, c)
	if err != nil {
		if errors.Is(err, errNotSignedIn) {
			fmt.Fprintln(w, "Not signed in")
			return 1
		}
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatAuthorJSON(author))
	} else {
		fmt.Fprintln(w, formatAuthorHuman(author))
	}
	return 0
}

// formatAuthorHuman formats an author for human readability
func formatAuthorHuman(author *api.Author) string {
	return fmt.Sprintf(`Nickname: %s
ID:       %d
Email:    %s
Role:     %s`, author.Nickname, author.ID, author.Email, author.Role)
}

// formatAuthorJSON formats an author as JSON
func formatAuthorJSON(author *api.Author) string {
	data, _ := json.MarshalIndent(author, "", "  ")
	return string(data)
}
