package fragment

import (
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"fragit/internal/config"
	"fragit/internal/errors"
)

// SessionState tracks a fragment through the optional interactive edit step.
type SessionState int

const (
	// StateCreated means the fragment file exists but no editor has run.
	StateCreated SessionState = iota
	// StateOpened means the editor has run and the result is not yet inspected.
	StateOpened
	// StateKept means the edited fragment was preserved.
	StateKept
	// StateDiscarded means the fragment showed no real edit and was deleted.
	StateDiscarded
)

// String returns a human-readable name for the state.
func (s SessionState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateOpened:
		return "opened"
	case StateKept:
		return "kept"
	case StateDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// LaunchFunc invokes an external editor on path and blocks until it exits.
type LaunchFunc func(editor, path string) error

// EditSession is the state machine around editing a just-written fragment:
// Created -> Opened -> Kept | Discarded.
type EditSession struct {
	path     string
	original string
	format   string
	state    SessionState
}

// NewEditSession starts a session for the fragment at path whose rendered
// template body was original.
func NewEditSession(path, original, format string) *EditSession {
	return &EditSession{path: path, original: original, format: format, state: StateCreated}
}

// State returns the current session state.
func (s *EditSession) State() SessionState {
	return s.state
}

// Open launches the editor against the fragment and blocks until it exits.
// A non-zero editor exit is not an error; only the resulting file content
// matters. Valid only in the created state.
func (s *EditSession) Open(editor string, launch LaunchFunc) error {
	if s.state != StateCreated {
		return fmt.Errorf("cannot open fragment in state %q", s.state)
	}
	if launch == nil {
		launch = LaunchEditor
	}
	if err := launch(editor, s.path); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "Couldn't launch editor")
	}
	s.state = StateOpened
	return nil
}

// Resolve inspects the edited fragment. When the user made no real edit the
// file is deleted and the session ends Discarded; any other content is
// preserved as-is and the session ends Kept. Valid only in the opened state.
func (s *EditSession) Resolve() (SessionState, error) {
	if s.state != StateOpened {
		return s.state, fmt.Errorf("cannot resolve fragment in state %q", s.state)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// The editor removed the file; same outcome as a discard.
			s.state = StateDiscarded
			return s.state, nil
		}
		return s.state, errors.WrapWithMessage(err, errors.Runtime, "Couldn't read edited fragment")
	}

	if IsUnedited(string(data), s.original, s.format) {
		if err := os.Remove(s.path); err != nil {
			return s.state, errors.WrapWithMessage(err, errors.Runtime, "Couldn't delete empty fragment")
		}
		s.state = StateDiscarded
		return s.state, nil
	}

	s.state = StateKept
	return s.state, nil
}

// IsUnedited reports whether contents shows no real edit against the rendered
// template: either byte-equal to it, or reduced to nothing but comment and
// blank lines.
func IsUnedited(contents, original, format string) bool {
	if contents == original {
		return true
	}
	if format == config.FormatMD {
		return onlyHTMLComments(contents)
	}
	return onlyRSTComments(contents)
}

// onlyRSTComments reports whether every non-blank line is a ".." comment.
func onlyRSTComments(contents string) bool {
	for _, line := range strings.Split(contents, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed != ".." && !strings.HasPrefix(trimmed, ".. ") {
			return false
		}
	}
	return true
}

// onlyHTMLComments reports whether nothing remains outside <!-- --> blocks.
func onlyHTMLComments(contents string) bool {
	for {
		start := strings.Index(contents, "<!--")
		if start < 0 {
			break
		}
		end := strings.Index(contents[start:], "-->")
		if end < 0 {
			// Unterminated comment; treat the rest as commented out.
			contents = contents[:start]
			break
		}
		contents = contents[:start] + contents[start+end+len("-->"):]
	}
	return strings.TrimSpace(contents) == ""
}

// LaunchEditor runs the editor command on path with the terminal attached,
// blocking until the editor process exits. Editor exit status is ignored.
func LaunchEditor(editor, path string) error {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("no editor configured")
	}

	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return nil
	}
	return err
}
