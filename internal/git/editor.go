package git

import "os"

// EditorCommand resolves the editor used for interactive fragment edits,
// following git's own lookup order: GIT_EDITOR, core.editor, VISUAL,
// EDITOR, then vi.
func EditorCommand(g Git) string {
	if editor := os.Getenv("GIT_EDITOR"); editor != "" {
		return editor
	}
	if editor, ok := g.ConfigValue("core.editor"); ok && editor != "" {
		return editor
	}
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}
