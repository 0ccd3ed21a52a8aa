package cli

// Exit codes for the fragit CLI. A failed "git add" is not listed here:
// its own exit status is forwarded unchanged.
const (
	// ExitSuccess indicates successful command execution, including a
	// fragment deliberately discarded after an empty edit.
	ExitSuccess = 0

	// ExitFailure indicates a user-facing error: missing fragment
	// directory, fragment path collision, or unresolvable configuration.
	ExitFailure = 1
)
