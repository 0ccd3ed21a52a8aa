// Package cli wires the fragit command surface: create, init, config, and
// version. Execute maps command errors onto process exit codes, forwarding
// pass-through statuses from external primitives verbatim.
package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fragit/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "fragit",
	Short: "Manage changelog fragments",
	Long: `Fragit manages small per-change fragment files that are later
merged into a project changelog.

Each fragment records one change in its own file under the fragment
directory (default: changelog.d), named after the creation time, the
author, and the current branch. Keeping one file per change avoids
merge conflicts in a shared changelog.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// configPathFlag overrides the project configuration file.
var configPathFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "",
		"Path to the project configuration file (default .fragit.yml)")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *errors.ExitError
		if stderrors.As(err, &exitErr) {
			return exitErr.Code
		}
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			errors.PrintError(cliErr)
			return ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitFailure
	}
	return ExitSuccess
}
