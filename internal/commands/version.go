package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varsilias/openclaw-setup/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "openclaw %s (commit %s, built %s)\n", buildinfo.Version, buildinfo.Commit, buildinfo.BuiltAt)
	},
}
