package fragment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fragit/internal/errors"
)

func TestWriteNew(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "20130225_151617_joedev.rst")

	require.NoError(t, WriteNew(path, "hello\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestWriteNewMissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "changelog.d", "frag.rst")
	err := WriteNew(path, "hello\n")
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Prerequisite, cliErr.Category)
	assert.Contains(t, cliErr.Message, "doesn't exist, please create it")
	assert.Contains(t, cliErr.Message, "changelog.d")
}

func TestWriteNewRefusesToOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "20130225_151617_joedev.rst")
	require.NoError(t, os.WriteFile(path, []byte("I'm precious!"), 0o644))

	err := WriteNew(path, "replacement")
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Runtime, cliErr.Category)
	assert.Equal(t, "File "+path+" already exists, not overwriting", cliErr.Message)

	// The existing file is unharmed.
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "I'm precious!", string(data))
}

func TestWriteNewRejectsFileAsDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	notADir := filepath.Join(dir, "changelog.d")
	require.NoError(t, os.WriteFile(notADir, []byte("file"), 0o644))

	err := WriteNew(filepath.Join(notADir, "frag.rst"), "hello\n")
	require.Error(t, err)
	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Prerequisite, cliErr.Category)
}
