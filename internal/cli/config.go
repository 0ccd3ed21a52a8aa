package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"fragit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective fragit configuration as YAML, after merging
defaults, the user config, the project config, and FRAGIT_* environment
variables.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPathFlag)
	if err != nil {
		return err
	}

	// Marshal through a plain map so the output uses the koanf key names.
	view := map[string]interface{}{
		"fragment_directory": cfg.FragmentDirectory,
		"format":             cfg.Format,
		"categories":         cfg.Categories,
		"rst_header_chars":   cfg.RSTHeaderChars,
		"main_branches":      cfg.MainBranches,
		"user_nick":          cfg.UserNick,
	}
	data, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
