// Package fsops provides the filesystem surface used by cbr.
//
// All filesystem reads and mutations go through the FS interface so the
// planner and executor can be tested against fakes. Existence checks use
// Lstat: a dangling symlink is still a real directory entry and must be
// renameable, deletable, and able to block a target name.
package fsops

import (
	"os"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// Exists reports whether a directory entry exists at path.
	// Symlinks are not followed.
	Exists(path string) (bool, error)

	// Rename renames (moves) oldpath to newpath.
	Rename(oldpath, newpath string) error

	// Remove removes a file or empty directory.
	Remove(path string) error

	// ReadDir reads the named directory and returns its entries
	// in directory order.
	ReadDir(path string) ([]os.DirEntry, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Exists reports whether a directory entry exists at path.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Rename renames (moves) oldpath to newpath.
func (fs *RealFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Remove removes a file or empty directory.
func (fs *RealFS) Remove(path string) error {
	return os.Remove(path)
}

// ReadDir reads the named directory and returns its entries.
func (fs *RealFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}
