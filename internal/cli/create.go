package cli

import (
	"github.com/spf13/cobra"

	"fragit/internal/config"
	"fragit/internal/fragment"
	"fragit/internal/git"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new changelog fragment",
	Long: `Create a new changelog fragment in the fragment directory.

The fragment is named after the current UTC time, the configured author,
and the current branch, and is pre-filled with a template listing the
configured change categories.

With --edit (or the fragit.create.edit git preference) the fragment opens
in your editor; leaving the template unchanged deletes the fragment again.
With --add (or fragit.create.add) the fragment is staged with 'git add'.

Examples:
  fragit create                # Create a fragment from the template
  fragit create --edit         # Create and edit it
  fragit create --no-add       # Ignore a configured add preference`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runCreate,
}

// openGit builds the version-control collaborator; tests swap this out.
var openGit = func() git.Git {
	return git.Open("")
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().Bool("edit", false, "Open the new fragment in an editor")
	createCmd.Flags().Bool("no-edit", false, "Do not open an editor, even if configured to")
	createCmd.Flags().Bool("add", false, "'git add' the new fragment")
	createCmd.Flags().Bool("no-add", false, "Do not 'git add', even if configured to")
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPathFlag)
	if err != nil {
		return err
	}

	opts := fragment.Options{
		Edit: toggleFlag(cmd, "edit", "no-edit"),
		Add:  toggleFlag(cmd, "add", "no-add"),
		Out:  cmd.OutOrStdout(),
		Err:  cmd.ErrOrStderr(),
	}
	return fragment.Create(cfg, openGit(), opts)
}

// toggleFlag converts an --x/--no-x flag pair into a tri-state override:
// nil when neither flag was passed. --no-x wins when both are given,
// matching git's own last-word-for-negation behavior.
func toggleFlag(cmd *cobra.Command, on, off string) *bool {
	if cmd.Flags().Changed(off) {
		v := false
		return &v
	}
	if cmd.Flags().Changed(on) {
		v := true
		return &v
	}
	return nil
}
