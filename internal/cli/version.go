package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fragit/internal/version"
)

var versionCmd = &cobra.Command{
	Use:          "version",
	Short:        "Show fragit version information",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "fragit %s (commit %s, built %s)\n",
			version.Version, version.Commit, version.BuildDate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
