package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// StdioPath names standard input or output in place of a file path.
const StdioPath = "-"

// ErrLocked reports that another writer holds the output lock.
var ErrLocked = errors.New("output locked by another writer")

// IsStdio reports whether path refers to stdin or stdout.
func IsStdio(path string) bool {
	return path == "" || path == StdioPath
}

// ReadInput reads the whole document at path. Stdin is used for "-" or an
// empty path.
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	if IsStdio(path) {
		if stdin == nil {
			return nil, fmt.Errorf("read stdin: no reader available")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// LockPath returns the sidecar lock file guarding writes to path. It persists
// across writes so every writer locks the same inode.
func LockPath(path string) string {
	return path + ".lock"
}

// WriteFileAtomic replaces path with data. The bytes land in a temp file in
// the same directory which is renamed over the target, so readers never see a
// partial document. Concurrent writers to the same path fail with ErrLocked.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure output directory: %w", err)
	}

	lock := flock.New(LockPath(path))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire output lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("%s: %w", path, ErrLocked)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
