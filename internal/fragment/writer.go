package fragment

import (
	"os"
	"path/filepath"

	"fragit/internal/errors"
)

// WriteNew writes contents to path, refusing to clobber existing files.
// The existence check and the write are one atomic create-if-absent via
// O_EXCL: with two racing invocations of the same path, exactly one wins
// and the loser sees the already-exists error.
func WriteNew(path, contents string) error {
	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return errors.MissingFragmentDirectory(dir)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return errors.FragmentExists(path)
		}
		return errors.WrapWithMessage(err, errors.Runtime, "Couldn't create fragment")
	}

	if _, err := f.WriteString(contents); err != nil {
		f.Close()
		os.Remove(path)
		return errors.WrapWithMessage(err, errors.Runtime, "Couldn't write fragment")
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return errors.WrapWithMessage(err, errors.Runtime, "Couldn't write fragment")
	}
	return nil
}
