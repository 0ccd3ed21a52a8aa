// Package config provides hierarchical configuration management for fragit
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.fragit.yml) > user config (~/.config/fragit/config.yml) >
// defaults. The resulting Configuration is an immutable value object for a
// single invocation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"fragit/internal/errors"
)

// Fragment formats supported by the renderer.
const (
	FormatRST = "rst"
	FormatMD  = "md"
)

// Configuration represents the fragit settings for one invocation.
// Constructed once by Load and read-only thereafter.
type Configuration struct {
	// FragmentDirectory is where new fragment files are created.
	FragmentDirectory string `koanf:"fragment_directory"`

	// Format selects the fragment markup: "rst" or "md".
	Format string `koanf:"format"`

	// Categories are the change category headings, in output order.
	// An empty list renders a simplified fragment with no headings.
	Categories []string `koanf:"categories"`

	// RSTHeaderChars is a 2-character string; the second character underlines
	// category headings in rst fragments.
	RSTHeaderChars string `koanf:"rst_header_chars"`

	// MainBranches are branch names that never contribute a branch slug
	// to fragment file names.
	MainBranches []string `koanf:"main_branches"`

	// UserNick overrides the git-derived author identity when set.
	UserNick string `koanf:"user_nick"`
}

// Extension returns the file extension for the configured format,
// including the leading dot.
func (c *Configuration) Extension() string {
	if c.Format == FormatMD {
		return ".md"
	}
	return ".rst"
}

// IsMainBranch reports whether branch is one of the configured main branches.
func (c *Configuration) IsMainBranch(branch string) bool {
	for _, b := range c.MainBranches {
		if b == branch {
			return true
		}
	}
	return false
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
// projectConfigPath overrides the project config location (default .fragit.yml);
// pass "" for the default.
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(k, projectConfigPath); err != nil {
		return nil, err
	}
	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// UserConfigPath returns the XDG-style user config path.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "fragit", "config.yml"), nil
}

// ProjectConfigPath returns the default project config path.
func ProjectConfigPath() string {
	return ".fragit.yml"
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads ~/.config/fragit/config.yml if it exists.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil {
		return nil
	}
	if !fileExists(path) {
		return nil
	}
	return loadYAMLConfig(k, path, "user")
}

// loadProjectConfig loads .fragit.yml (or a custom path) if it exists.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	path := ProjectConfigPath()
	if customPath != "" {
		path = customPath
	}
	if !fileExists(path) {
		return nil
	}
	return loadYAMLConfig(k, path, "project")
}

// loadYAMLConfig validates and loads a YAML config file.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("FRAGIT_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// envTransform maps FRAGIT_FRAGMENT_DIRECTORY to fragment_directory.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "FRAGIT_"))
}

// finalizeConfig unmarshals and validates the merged configuration.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the merged configuration values.
func Validate(cfg *Configuration) error {
	if cfg.Format != FormatRST && cfg.Format != FormatMD {
		return errors.InvalidFormat(cfg.Format)
	}
	if len([]rune(cfg.RSTHeaderChars)) != 2 {
		return errors.InvalidHeaderChars(cfg.RSTHeaderChars)
	}
	if cfg.FragmentDirectory == "" {
		return errors.NewConfigError("fragment_directory must not be empty")
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
