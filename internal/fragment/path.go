package fragment

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"fragit/internal/config"
	"fragit/internal/errors"
	"fragit/internal/git"
)

// timestampLayout is the fragment name prefix: UTC, second precision.
const timestampLayout = "20060102_150405"

// nonAlphanumRegexp matches maximal runs of non-alphanumeric characters.
var nonAlphanumRegexp = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Identity is the author and branch pair a fragment name is derived from.
type Identity struct {
	// Author is the collaborator-configured username, used verbatim.
	Author string
	// Branch is the sanitized branch slug, or "" on a main branch.
	Branch string
}

// ResolveIdentity derives the fragment identity from configuration and git.
// The author comes from the user_nick setting, then the fragit.user_nick and
// github.user git configuration, then the local part of user.email. A missing
// author is a fatal configuration error, never silently substituted.
func ResolveIdentity(cfg *config.Configuration, g git.Git) (Identity, error) {
	author := resolveAuthor(cfg, g)
	if author == "" {
		return Identity{}, errors.UnresolvableAuthor()
	}

	branch, err := g.CurrentBranch()
	if err != nil {
		return Identity{}, errors.WrapWithMessage(err, errors.Configuration,
			"Couldn't determine the current branch")
	}

	return Identity{Author: author, Branch: branchSlug(cfg, branch)}, nil
}

func resolveAuthor(cfg *config.Configuration, g git.Git) string {
	if cfg.UserNick != "" {
		return cfg.UserNick
	}
	if nick, ok := g.ConfigValue("fragit.user_nick"); ok && nick != "" {
		return nick
	}
	if nick, ok := g.ConfigValue("github.user"); ok && nick != "" {
		return nick
	}
	if email, ok := g.ConfigValue("user.email"); ok && email != "" {
		nick, _, _ := strings.Cut(email, "@")
		return nick
	}
	return ""
}

// branchSlug sanitizes a branch name for use in a fragment file name.
// Main branches yield "". Otherwise only the segment after the last "/"
// is used, with non-alphanumeric runs collapsed to single underscores
// and boundary underscores trimmed.
func branchSlug(cfg *config.Configuration, branch string) string {
	if branch == "" || cfg.IsMainBranch(branch) {
		return ""
	}
	if i := strings.LastIndex(branch, "/"); i >= 0 {
		branch = branch[i+1:]
	}
	slug := nonAlphanumRegexp.ReplaceAllString(branch, "_")
	return strings.Trim(slug, "_")
}

// NewFragmentPath builds the relative path for a new fragment:
// {YYYYMMDD_HHMMSS}_{author}[_{branch}]{ext} under the fragment directory.
// Pure function of its arguments; the clock is injected by the caller.
func NewFragmentPath(cfg *config.Configuration, now time.Time, id Identity) string {
	name := now.UTC().Format(timestampLayout) + "_" + id.Author
	if id.Branch != "" {
		name += "_" + id.Branch
	}
	return filepath.Join(cfg.FragmentDirectory, name+cfg.Extension())
}
