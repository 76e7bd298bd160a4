package planner

import "errors"

var (
	// ErrMismatchedCount indicates the edited list has a different
	// number of lines than the original list.
	ErrMismatchedCount = errors.New("mismatched line count")

	// ErrNameCollision indicates a target outside the original batch
	// already exists on disk and force is not set.
	ErrNameCollision = errors.New("target file already exists")

	// ErrDuplicateTarget indicates two edited lines resolve to the
	// same target name.
	ErrDuplicateTarget = errors.New("duplicate target name")

	// ErrInvalidTarget indicates an edited line that names nothing,
	// such as an empty line.
	ErrInvalidTarget = errors.New("invalid target name")
)
