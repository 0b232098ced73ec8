// ABOUTME: Login command for the taskman CLI
// ABOUTME: Establishes a cookie session and saves credentials opportunistically

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/liubkkkko/taskManager/internal/api"
	"github.com/liubkkkko/taskManager/internal/credentials"
	"github.com/liubkkkko/taskManager/internal/session"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the Task Manager backend",
	Long: `Sign in with email and password. The session cookie is stored in the
config directory and reused by later commands until it expires or you run
taskman logout.

Missing flags are prompted for interactively; saved credentials prefill
the prompts.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		cfg := loadConfig()
		c := newClient(cfg)
		creds := credentials.NewManager(cfg.ConfigDir)

		exitCode := runLogin(ctx, c, creds, os.Stdout, loginEmail, loginPassword)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}

// runLogin executes the login flow and returns an exit code
func runLogin(ctx context.Context, c *api.Client, creds credentials.Manager, w io.Writer, email, password string) int {
	if email == "" || password == "" {
		var err error
		email, password, err = promptCredentials(creds, email, password)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	store := session.NewStore()
	author, err := session.SignIn(ctx, c, creds, store, email, password)
	if err != nil {
		// One generic message, regardless of what actually failed
		fmt.Fprintln(w, "Error: invalid email or password")
		return 1
	}

	fmt.Fprintf(w, "Signed in as %s\n", author.Nickname)
	return 0
}

// promptCredentials asks for the missing fields, prefilled from the vault
func promptCredentials(creds credentials.Manager, email, password string) (string, string, error) {
	if saved, ok := creds.TryRetrieve(); ok {
		if email == "" {
			email = saved.ID
		}
		if password == "" {
			password = saved.Password
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password),
		),
	).WithTheme(huh.ThemeBase())

	if err := form.Run(); err != nil {
		return "", "", err
	}
	return email, password, nil
}
