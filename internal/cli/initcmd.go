package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fragit/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the fragment directory and configuration",
	Long: `Initialize fragit in the current project.

This command:
  1. Creates the fragment directory (default: changelog.d)
  2. Writes a commented .fragit.yml configuration template

If a config already exists it is left unchanged; you are prompted before
overwriting (use --force to skip the prompt).

Examples:
  fragit init              # Create changelog.d and .fragit.yml
  fragit init --force      # Overwrite existing config without prompting`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing config without prompting")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configPathFlag)
	if err != nil {
		return err
	}

	// Step 1: fragment directory
	if info, statErr := os.Stat(cfg.FragmentDirectory); statErr == nil && info.IsDir() {
		fmt.Fprintf(out, "✓ Fragment directory: found at %s/\n", cfg.FragmentDirectory)
	} else {
		if err := os.MkdirAll(cfg.FragmentDirectory, 0o755); err != nil {
			return fmt.Errorf("creating fragment directory: %w", err)
		}
		fmt.Fprintf(out, "✓ Fragment directory: created at %s/\n", cfg.FragmentDirectory)
	}

	// Step 2: project config
	configPath := configPathFlag
	if configPath == "" {
		configPath = config.ProjectConfigPath()
	}

	if _, statErr := os.Stat(configPath); statErr == nil && !force {
		if !promptYesNo(cmd, fmt.Sprintf("Config exists at %s. Overwrite?", configPath)) {
			fmt.Fprintf(out, "✓ Config: unchanged\n")
			return nil
		}
	}

	if err := os.WriteFile(configPath, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(out, "✓ Config: written to %s\n", configPath)
	fmt.Fprintf(out, "\nRun 'fragit create' to add your first fragment.\n")
	return nil
}

// promptYesNo asks a yes/no question on the terminal. Without an interactive
// terminal the answer is always no, so scripted runs never block or clobber.
func promptYesNo(cmd *cobra.Command, question string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}
