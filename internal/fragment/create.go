package fragment

import (
	"fmt"
	"io"
	"os"
	"time"

	"fragit/internal/config"
	"fragit/internal/errors"
	"fragit/internal/git"
)

// Options carries per-invocation overrides for Create. The zero value uses
// the real clock, the real editor launcher, and the process streams.
type Options struct {
	// Edit overrides the edit preference when the user passed
	// --edit or --no-edit. nil falls through to preference resolution.
	Edit *bool
	// Add overrides the add preference, same shape as Edit.
	Add *bool

	// Now supplies the creation time; defaults to time.Now.
	Now func() time.Time
	// Launch runs the external editor; defaults to LaunchEditor.
	Launch LaunchFunc
	// Editor overrides editor resolution; defaults to git.EditorCommand.
	Editor string

	// Out and Err receive informational and warning output.
	Out io.Writer
	Err io.Writer
}

func (o *Options) fill() {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
}

// Create runs the full fragment creation pipeline: resolve identity, generate
// the path, render and write the template, optionally edit (discarding
// fragments with no real edit), and optionally stage the result. A discarded
// fragment is a successful no-op: no file is left behind and no add runs.
func Create(cfg *config.Configuration, g git.Git, opts Options) error {
	opts.fill()

	id, err := ResolveIdentity(cfg, g)
	if err != nil {
		return err
	}

	path := NewFragmentPath(cfg, opts.Now(), id)
	contents := NewFragmentContents(cfg)

	if err := WriteNew(path, contents); err != nil {
		return err
	}

	if ResolveToggle(opts.Edit, g, PrefEdit, false) {
		editor := opts.Editor
		if editor == "" {
			editor = git.EditorCommand(g)
		}

		session := NewEditSession(path, contents, cfg.Format)
		if err := session.Open(editor, opts.Launch); err != nil {
			return err
		}
		state, err := session.Resolve()
		if err != nil {
			return err
		}
		if state == StateDiscarded {
			fmt.Fprintf(opts.Err, "Empty fragment, deleting %s\n", path)
			return nil
		}
	}

	if ResolveToggle(opts.Add, g, PrefAdd, false) {
		return stageFragment(g, path, opts)
	}
	return nil
}

// stageFragment invokes the collaborator's add primitive on path. A non-zero
// status is forwarded verbatim as the overall exit code.
func stageFragment(g git.Git, path string, opts Options) error {
	status, err := g.Add(path)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime,
			fmt.Sprintf("Couldn't add %s", path))
	}
	if status != 0 {
		fmt.Fprintf(opts.Err, "Couldn't add %s\n", path)
		return errors.NewExitError(status)
	}
	fmt.Fprintf(opts.Out, "Added %s\n", path)
	return nil
}
