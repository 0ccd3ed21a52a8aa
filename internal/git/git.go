// Package git provides the version-control collaborator for fragit: configured
// value lookups (identity, preferences), current branch detection, and a
// staging primitive. It uses the go-git library for read operations and falls
// back to the git CLI only for staging, where the exit status of the real
// "git add" must be preserved verbatim.
package git

import (
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
)

// Git is the capability interface the fragment pipeline needs from version
// control. Implementations must not cache configuration between calls.
type Git interface {
	// ConfigValue returns the configured value for a dotted key such as
	// "github.user" or "fragit.create.edit". ok is false when unset.
	ConfigValue(key string) (value string, ok bool)

	// CurrentBranch returns the short name of the checked-out branch,
	// or "" in detached HEAD state.
	CurrentBranch() (string, error)

	// Add stages path for the next commit and returns the raw exit status
	// of the add primitive. err is non-nil only when the primitive could
	// not be invoked at all.
	Add(path string) (status int, err error)
}

// Repo is the real collaborator backed by the repository containing dir.
type Repo struct {
	dir string
}

// Open returns a collaborator for the repository containing dir.
// Pass "" for the current working directory.
func Open(dir string) *Repo {
	return &Repo{dir: dir}
}

// openRepo opens the repository, traversing up to find the .git directory.
func (r *Repo) openRepo() (*gogit.Repository, error) {
	dir := r.dir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", dir, err)
	}
	return repo, nil
}

// ConfigValue reads a key from git configuration, repository scope first,
// then global scope, matching git's own precedence.
func (r *Repo) ConfigValue(key string) (string, bool) {
	section, subsection, option, err := splitKey(key)
	if err != nil {
		return "", false
	}

	if repo, err := r.openRepo(); err == nil {
		if cfg, err := repo.Config(); err == nil {
			if v, ok := lookupRaw(cfg, section, subsection, option); ok {
				return v, true
			}
		}
	}

	if cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope); err == nil {
		if v, ok := lookupRaw(cfg, section, subsection, option); ok {
			return v, true
		}
	}
	return "", false
}

// lookupRaw reads one option from a parsed config, reporting presence.
func lookupRaw(cfg *gitconfig.Config, section, subsection, option string) (string, bool) {
	s := cfg.Raw.Section(section)
	if subsection != "" {
		sub := s.Subsection(subsection)
		if !sub.HasOption(option) {
			return "", false
		}
		return sub.Option(option), true
	}
	if !s.HasOption(option) {
		return "", false
	}
	return s.Option(option), true
}

// CurrentBranch returns the short name of the current branch.
func (r *Repo) CurrentBranch() (string, error) {
	repo, err := r.openRepo()
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}

// Add stages path with the git CLI. go-git's worktree.Add would work, but the
// caller needs the add primitive's own exit status to forward as the process
// exit code, so the CLI is authoritative here.
func (r *Repo) Add(path string) (int, error) {
	cmd := exec.Command("git", "add", path)
	cmd.Dir = r.dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("running git add: %w", err)
}

// splitKey parses a dotted config key into git's section / subsection /
// option form: "a.b" -> ("a", "", "b"), "a.b.c" -> ("a", "b", "c"),
// "a.b.c.d" -> ("a", "b.c", "d").
func splitKey(key string) (section, subsection, option string, err error) {
	parts := strings.Split(key, ".")
	if len(parts) < 2 {
		return "", "", "", fmt.Errorf("config key %q must contain a section and an option", key)
	}
	section = parts[0]
	option = parts[len(parts)-1]
	if len(parts) > 2 {
		subsection = strings.Join(parts[1:len(parts)-1], ".")
	}
	return section, subsection, option, nil
}
