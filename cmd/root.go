// ABOUTME: Root command for the taskman CLI
// ABOUTME: Handles global flags, configuration, and launching the TUI

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/liubkkkko/taskManager/internal/api"
	"github.com/liubkkkko/taskManager/internal/config"
	"github.com/liubkkkko/taskManager/internal/debuglog"
	"github.com/liubkkkko/taskManager/internal/tui"
)

var (
	apiURL     string
	jsonOutput bool
)

// rootCmd is the base command; running it bare opens the interactive TUI
var rootCmd = &cobra.Command{
	Use:   "taskman",
	Short: "Terminal client for the Task Manager",
	Long: `taskman is a terminal client for the Task Manager backend.

Run it without arguments for the interactive TUI, or use the subcommands
for scripted access to workspaces and jobs.

Environment Variables:
  TASKMAN_API_URL     Backend API URL (default: http://localhost:8080)
  TASKMAN_CONFIG_DIR  Directory for session cookies and saved credentials
  TASKMAN_TIMEOUT     Per-request timeout (default: 30s)
  TASKMAN_DEBUG       Write a debug log file when set`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if cfg.Debug {
			if err := debuglog.Init(cfg.ConfigDir); err == nil {
				defer debuglog.Close()
			}
		}
		return tui.Run(newClient(cfg), cfg.ConfigDir)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides TASKMAN_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// loadConfig builds the effective configuration; the flag wins over env
func loadConfig() *config.Config {
	cfg := config.Load()
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	return cfg
}

// newClient builds the API client with the persistent cookie jar
func newClient(cfg *config.Config) *api.Client {
	return api.New(cfg.APIURL,
		api.WithConfigDir(cfg.ConfigDir),
		api.WithTimeout(cfg.RequestTimeout),
	)
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
