// Package fileutil provides file system utilities.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicFile is written to a temporary file in the target's directory and
// renamed into place by Commit. Readers see either no file or the complete
// file, never a partial one.
type AtomicFile struct {
	*os.File
	path string
	perm os.FileMode
	done bool
}

// CreateAtomic starts an atomic write of filename.
func CreateAtomic(filename string, perm os.FileMode) (*AtomicFile, error) {
	// same directory, so the rename stays on one filesystem
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	return &AtomicFile{File: tmp, path: filename, perm: perm}, nil
}

// Commit syncs the temporary file and renames it over the target.
func (f *AtomicFile) Commit() error {
	if f.done {
		return fmt.Errorf("%s: already closed", f.path)
	}
	f.done = true
	tmpPath := f.Name()

	if err := f.Sync(); err != nil {
		f.File.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := f.File.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, f.perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Abort discards the temporary file. It is a no-op after Commit, so it can
// be deferred.
func (f *AtomicFile) Abort() {
	if f.done {
		return
	}
	f.done = true
	f.File.Close()
	os.Remove(f.Name())
}
