//go:build windows

package store

import (
	"os"

	"golang.org/x/sys/windows"
)

// lockFile takes a blocking exclusive lock on the open file.
// LockFileEx locks the whole file (offset 0, length 1).
func lockFile(f *os.File) error {
	ol := new(windows.Overlapped)
	return windows.LockFileEx(
		windows.Handle(f.Fd()),
		windows.LOCKFILE_EXCLUSIVE_LOCK,
		0, // reserved
		1, // lock 1 byte
		0, // high bits of length
		ol,
	)
}

// unlockFile releases the lock.
func unlockFile(f *os.File) {
	ol := new(windows.Overlapped)
	windows.UnlockFileEx(
		windows.Handle(f.Fd()),
		0, // reserved
		1, // unlock 1 byte
		0, // high bits of length
		ol,
	)
}
