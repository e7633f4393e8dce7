package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	stateFile     = ".crossfeed/onboarding.json"
	stateLockFile = ".crossfeed/onboarding.json.lock"
)

// FileStore keeps the tracker record in a JSON file under the base
// directory, written atomically (temp file + rename) with writes serialized
// by an OS file lock.
type FileStore struct {
	baseDir string
}

// NewFileStore returns a file-backed store rooted at baseDir.
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// Path returns the location of the backing file.
func (f *FileStore) Path() string {
	return filepath.Join(f.baseDir, stateFile)
}

// Load reads the stored record. Absent file yields the default state with no
// error; unreadable or malformed content yields the default state with the
// underlying error.
func (f *FileStore) Load() (State, error) {
	data, err := os.ReadFile(f.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read tracker record: %w", err)
	}
	return decode(data)
}

// Save writes the record atomically under the file lock.
func (f *FileStore) Save(s State) error {
	return f.withLock(func() error {
		path := f.Path()
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}

		data, err := encode(s)
		if err != nil {
			return fmt.Errorf("encode tracker record: %w", err)
		}

		// Atomic write: temp file in same dir, then rename
		tmp, err := os.CreateTemp(dir, "onboarding-*.json.tmp")
		if err != nil {
			return fmt.Errorf("create temp file: %w", err)
		}
		tmpName := tmp.Name()

		if _, err := tmp.Write(data); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("write temp file: %w", err)
		}
		if err := tmp.Close(); err != nil {
			os.Remove(tmpName)
			return fmt.Errorf("close temp file: %w", err)
		}

		return os.Rename(tmpName, path)
	})
}

// Wipe removes the record. A missing file is not an error.
func (f *FileStore) Wipe() error {
	return f.withLock(func() error {
		if err := os.Remove(f.Path()); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove tracker record: %w", err)
		}
		return nil
	})
}

// withLock serializes writers using an exclusive OS file lock. The lock is
// released automatically if the process dies.
func (f *FileStore) withLock(fn func() error) error {
	lockPath := filepath.Join(f.baseDir, stateLockFile)
	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return fmt.Errorf("create lock dir: %w", err)
	}

	lf, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lf.Close()

	if err := lockFile(lf); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer unlockFile(lf)

	return fn()
}
