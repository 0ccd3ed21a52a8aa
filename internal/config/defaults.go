package config

// Default returns a Configuration populated with the built-in defaults.
func Default() *Configuration {
	return &Configuration{
		FragmentDirectory: "changelog.d",
		Format:            FormatRST,
		Categories: []string{
			"Removed",
			"Added",
			"Changed",
			"Deprecated",
			"Fixed",
			"Security",
		},
		RSTHeaderChars: "=-",
		MainBranches:   []string{"master"},
	}
}

// GetDefaults returns the built-in configuration values keyed by their
// koanf paths.
func GetDefaults() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"fragment_directory": d.FragmentDirectory,
		"format":             d.Format,
		"categories":         d.Categories,
		"rst_header_chars":   d.RSTHeaderChars,
		"main_branches":      d.MainBranches,
		"user_nick":          d.UserNick,
	}
}

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# Fragit Configuration
# Settings for creating changelog fragments. Environment variables
# (FRAGIT_*) override this file; this file overrides
# ~/.config/fragit/config.yml.

fragment_directory: changelog.d       # Where new fragments are created
format: rst                           # Fragment markup: rst | md
rst_header_chars: "=-"                # Second char underlines rst category headings

# Change categories, in the order they appear in fragments.
# Set to [] for simplified fragments with no category headings.
categories:
  - Removed
  - Added
  - Changed
  - Deprecated
  - Fixed
  - Security

# Branches that never contribute a branch slug to fragment names.
main_branches:
  - master

# user_nick: ""                       # Author override (default: git github.user)
`
}
