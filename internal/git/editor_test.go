package git

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fragit/internal/testutil"
)

func clearEditorEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GIT_EDITOR", "")
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
}

func TestEditorCommandOrder(t *testing.T) {
	fake := testutil.NewFakeGit()

	t.Run("GIT_EDITOR wins", func(t *testing.T) {
		clearEditorEnv(t)
		t.Setenv("GIT_EDITOR", "ged")
		t.Setenv("EDITOR", "ed")
		fake.SetConfig("core.editor", "cored")
		assert.Equal(t, "ged", EditorCommand(fake))
	})

	t.Run("core.editor beats VISUAL and EDITOR", func(t *testing.T) {
		clearEditorEnv(t)
		t.Setenv("VISUAL", "vis")
		fake.SetConfig("core.editor", "cored")
		assert.Equal(t, "cored", EditorCommand(fake))
	})

	t.Run("VISUAL beats EDITOR", func(t *testing.T) {
		clearEditorEnv(t)
		delete(fake.Config, "core.editor")
		t.Setenv("VISUAL", "vis")
		t.Setenv("EDITOR", "ed")
		assert.Equal(t, "vis", EditorCommand(fake))
	})

	t.Run("EDITOR as fallback", func(t *testing.T) {
		clearEditorEnv(t)
		delete(fake.Config, "core.editor")
		t.Setenv("EDITOR", "ed")
		assert.Equal(t, "ed", EditorCommand(fake))
	})

	t.Run("vi as last resort", func(t *testing.T) {
		clearEditorEnv(t)
		delete(fake.Config, "core.editor")
		assert.Equal(t, "vi", EditorCommand(fake))
	})
}
