package fragment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fragit/internal/config"
)

func TestIsUnedited(t *testing.T) {
	t.Parallel()

	rstTemplate := NewFragmentContents(config.Default())

	mdConfig := config.Default()
	mdConfig.Format = config.FormatMD
	mdTemplate := NewFragmentContents(mdConfig)

	tests := map[string]struct {
		contents string
		original string
		format   string
		expected bool
	}{
		"unchanged rst template": {
			contents: rstTemplate,
			original: rstTemplate,
			format:   config.FormatRST,
			expected: true,
		},
		"rst reduced to other comment lines": {
			contents: ".. Nothing\n.. more nothing.\n",
			original: rstTemplate,
			format:   config.FormatRST,
			expected: true,
		},
		"rst comments with blank lines": {
			contents: "..\n\n.. still nothing\n\n",
			original: rstTemplate,
			format:   config.FormatRST,
			expected: true,
		},
		"rst with a real bullet": {
			contents: rstTemplate + "\n- My change is great!\n",
			original: rstTemplate,
			format:   config.FormatRST,
			expected: false,
		},
		"rst fully replaced": {
			contents: "- My change is great!\n",
			original: rstTemplate,
			format:   config.FormatRST,
			expected: false,
		},
		"unchanged md template": {
			contents: mdTemplate,
			original: mdTemplate,
			format:   config.FormatMD,
			expected: true,
		},
		"md reduced to comments": {
			contents: "<!--\nnothing here\n-->\n\n<!-- still nothing -->\n",
			original: mdTemplate,
			format:   config.FormatMD,
			expected: true,
		},
		"md with an uncommented section": {
			contents: "<!--\nintro\n-->\n\n### Added\n\n- My change is great!\n",
			original: mdTemplate,
			format:   config.FormatMD,
			expected: false,
		},
		"md unterminated comment hides the rest": {
			contents: "<!--\nabandoned edit\n",
			original: mdTemplate,
			format:   config.FormatMD,
			expected: true,
		},
		"empty file": {
			contents: "",
			original: rstTemplate,
			format:   config.FormatRST,
			expected: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUnedited(tt.contents, tt.original, tt.format))
		})
	}
}

// writeSessionFile creates a fragment file for an EditSession test.
func writeSessionFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "20130225_151617_joedev.rst")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestEditSessionKeepsRealEdits(t *testing.T) {
	t.Parallel()

	template := NewFragmentContents(config.Default())
	path := writeSessionFile(t, template)

	var gotEditor, gotPath string
	launch := func(editor, p string) error {
		gotEditor = editor
		gotPath = p
		return os.WriteFile(p, []byte("- My change is great!\n"), 0o644)
	}

	session := NewEditSession(path, template, config.FormatRST)
	require.Equal(t, StateCreated, session.State())

	require.NoError(t, session.Open("my_fav_editor", launch))
	assert.Equal(t, "my_fav_editor", gotEditor)
	assert.Equal(t, path, gotPath)
	assert.Equal(t, StateOpened, session.State())

	state, err := session.Resolve()
	require.NoError(t, err)
	assert.Equal(t, StateKept, state)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "- My change is great!\n", string(data))
}

func TestEditSessionDiscardsUnchangedTemplate(t *testing.T) {
	t.Parallel()

	template := NewFragmentContents(config.Default())
	path := writeSessionFile(t, template)

	launch := func(editor, p string) error { return nil }

	session := NewEditSession(path, template, config.FormatRST)
	require.NoError(t, session.Open("vi", launch))

	state, err := session.Resolve()
	require.NoError(t, err)
	assert.Equal(t, StateDiscarded, state)
	assert.NoFileExists(t, path)
}

func TestEditSessionDiscardsCommentOnlyContent(t *testing.T) {
	t.Parallel()

	template := NewFragmentContents(config.Default())
	path := writeSessionFile(t, template)

	launch := func(editor, p string) error {
		return os.WriteFile(p, []byte(".. Nothing\n.. more nothing.\n"), 0o644)
	}

	session := NewEditSession(path, template, config.FormatRST)
	require.NoError(t, session.Open("vi", launch))

	state, err := session.Resolve()
	require.NoError(t, err)
	assert.Equal(t, StateDiscarded, state)
	assert.NoFileExists(t, path)
}

func TestEditSessionDiscardsWhenEditorDeletesFile(t *testing.T) {
	t.Parallel()

	template := NewFragmentContents(config.Default())
	path := writeSessionFile(t, template)

	launch := func(editor, p string) error { return os.Remove(p) }

	session := NewEditSession(path, template, config.FormatRST)
	require.NoError(t, session.Open("vi", launch))

	state, err := session.Resolve()
	require.NoError(t, err)
	assert.Equal(t, StateDiscarded, state)
}

func TestEditSessionRejectsOutOfOrderTransitions(t *testing.T) {
	t.Parallel()

	template := NewFragmentContents(config.Default())
	path := writeSessionFile(t, template)

	session := NewEditSession(path, template, config.FormatRST)

	// Resolve before Open is invalid.
	_, err := session.Resolve()
	require.Error(t, err)

	require.NoError(t, session.Open("vi", func(string, string) error { return nil }))

	// Open twice is invalid.
	err = session.Open("vi", func(string, string) error { return nil })
	require.Error(t, err)
}
