package errors

import "fmt"

// Common error messages for the fragit CLI.
// These templates ensure consistent, actionable error messages.

// MissingFragmentDirectory creates an error for a missing fragment directory.
func MissingFragmentDirectory(dir string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("Output directory '%s' doesn't exist, please create it.", dir),
		fmt.Sprintf("Run 'mkdir %s' or 'fragit init'", dir),
		"Or point fragment_directory in .fragit.yml at an existing directory",
	)
}

// FragmentExists creates an error for a fragment path that is already taken.
// The existing file is left untouched.
func FragmentExists(path string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("File %s already exists, not overwriting", path),
	)
}

// UnresolvableAuthor creates an error when no author identity can be determined.
func UnresolvableAuthor() *CLIError {
	return NewConfigError(
		"Couldn't determine the author for the new fragment",
		"Run 'git config github.user <your-username>'",
		"Or set user_nick in .fragit.yml",
	)
}

// InvalidFormat creates an error for an unsupported fragment format.
func InvalidFormat(format string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("invalid format: %q", format),
		"Set format to 'rst' or 'md' in .fragit.yml",
	)
}

// InvalidHeaderChars creates an error for a malformed rst_header_chars value.
func InvalidHeaderChars(chars string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("rst_header_chars must be exactly two characters, got %q", chars),
		"Use a value like '=-' (first char for titles, second for category underlines)",
	)
}
