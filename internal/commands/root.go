// Package commands provides the openclaw CLI.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/varsilias/openclaw-setup/internal/config"
)

var (
	// Global flags
	logLevelFlag string
	logJSONFlag  bool

	cfg = config.Load()
)

var rootCmd = &cobra.Command{
	Use:   "openclaw",
	Short: "OpenClaw setup site and ClawBuddy assistant",
	Long: `openclaw serves the OpenClaw setup page: it offers the right installer for the
visitor's computer and relays questions to the ClawBuddy assistant.

Examples:
  openclaw serve                     Start the web server
  openclaw chat                      Talk to ClawBuddy from the terminal
  openclaw detect "Win32"            Show which installer a platform gets
  openclaw version                   Print build information`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", cfg.LogLevel, "log level: debug|info|warn|error")
	rootCmd.PersistentFlags().BoolVar(&logJSONFlag, "log-json", cfg.LogJSON, "log as JSON")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(versionCmd)
}
