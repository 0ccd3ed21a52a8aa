package fragment

import (
	"strings"

	"fragit/internal/git"
)

// Git configuration keys for the persisted create preferences.
const (
	PrefEdit = "fragit.create.edit"
	PrefAdd  = "fragit.create.add"
)

// ResolveToggle resolves a boolean behavior with precedence: explicit CLI
// flag, then the persisted git preference under key, then def. The persisted
// preference is read on every call, never cached.
func ResolveToggle(flag *bool, g git.Git, key string, def bool) bool {
	if flag != nil {
		return *flag
	}
	if v, ok := g.ConfigValue(key); ok {
		if b, ok := parseGitBool(v); ok {
			return b
		}
	}
	return def
}

// parseGitBool parses git-style boolean config values.
func parseGitBool(v string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	default:
		return false, false
	}
}
