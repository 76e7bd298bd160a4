package engine

import "errors"

var (
	// ErrRename indicates a filesystem rename failed.
	ErrRename = errors.New("rename failed")

	// ErrRemoval indicates a file removal failed.
	ErrRemoval = errors.New("removal failed")
)
