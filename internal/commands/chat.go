package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/varsilias/openclaw-setup/internal/client"
	"github.com/varsilias/openclaw-setup/internal/platform"
	"github.com/varsilias/openclaw-setup/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to ClawBuddy from the terminal",
	Long: `chat opens the ClawBuddy widget in the terminal. Questions are sent to the
/api/chat endpoint of a running "openclaw serve". The light/dark choice is kept in
a small preferences file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs := cfg.PrefsPath
		if prefs == "" {
			p, err := platform.DefaultPreferencesPath()
			if err != nil {
				return fmt.Errorf("locate preferences: %w", err)
			}
			prefs = p
		}

		return tui.Run(tui.Options{
			Transport: client.NewHTTPTransport(cfg.ServerURL, nil),
			Env:       platform.Host(lipgloss.HasDarkBackground),
			Storage:   platform.OpenFileStorage(prefs),
		})
	},
}

func init() {
	chatCmd.Flags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "base URL of a running openclaw server")
	chatCmd.Flags().StringVar(&cfg.PrefsPath, "prefs", cfg.PrefsPath, "preferences file (default ~/.config/clawbuddy/preferences.json)")
}
