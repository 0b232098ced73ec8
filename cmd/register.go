// ABOUTME: Register command for the taskman CLI
// ABOUTME: Creates a new author account on the backend

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
)

var (
	registerNickname string
	registerEmail    string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new author account",
	Long: `Create a new author account. Missing fields are prompted for
interactively. Sign in afterwards with taskman login.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRegister(ctx, newClient(loadConfig()), os.Stdout, registerNickname, registerEmail, registerPassword)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerNickname, "nickname", "", "Display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (prompted when omitted)")
}

// runRegister executes the registration and returns an exit code
func runRegister(ctx context.Context, c *api.Client, w io.Writer, nickname, email, password string) int {
	if nickname == "" || email == "" || password == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Nickname").Value(&nickname),
				huh.NewInput().Title("Email").Value(&email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
			),
		).WithTheme(huh.ThemeBase())
		if err := form.Run(); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	_, err := c.Register(ctx, api.RegisterInput{
		Nickname: nickname,
		Email:    email,
		Password: password,
	})
	if err != nil {
		// Generic message; the backend's validation detail stays internal
		fmt.Fprintln(w, "Error: registration failed")
		return 1
	}

	fmt.Fprintf(w, "Account created for %s. Sign in with `taskman login`.\n", nickname)
	return 0
}
