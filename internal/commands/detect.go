package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/varsilias/openclaw-setup/internal/osdetect"
	"github.com/varsilias/openclaw-setup/internal/platform"
)

var detectCmd = &cobra.Command{
	Use:   "detect [platform-string]",
	Short: "Show the installer offered for a platform string (defaults to this machine)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var env platform.Environment = platform.Host(nil)
		if len(args) == 1 {
			env = platform.NewMemory(args[0], false)
		}
		printOffer(cmd.OutOrStdout(), osdetect.NewDetector(env).Offer())
	},
}

func printOffer(w io.Writer, o osdetect.Offer) {
	fmt.Fprintf(w, "os:       %s\n", o.OS)
	fmt.Fprintf(w, "label:    %s\n", o.Label)
	if !o.Enabled {
		fmt.Fprintln(w, "download: unavailable")
		return
	}
	fmt.Fprintf(w, "download: %s\n", o.Href)
}
