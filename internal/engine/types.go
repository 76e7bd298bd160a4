package engine

import "github.com/tristan-harris/cbr/internal/config"

// Request represents one rename run.
type Request struct {
	// Files are the explicit filenames to rename. When empty, the
	// working directory is scanned instead.
	Files []string

	// Options are the effective run options.
	Options config.Options
}

// Result summarizes a completed run.
type Result struct {
	// Renamed is the number of files renamed, cyclic renames included.
	Renamed int

	// Removed is the number of files deleted permanently.
	Removed int

	// Trashed is the number of files moved to the trash.
	Trashed int
}

// EditSession produces the edited filename list for a batch of
// originals. Implemented by editor.Session.
type EditSession interface {
	Edit(list []string) ([]string, error)
}

// Printer emits one human-readable status line per completed operation.
// Implemented by the CLI's colored output.
type Printer interface {
	Renamed(source, target string)
	Removed(name string)
	Trashed(name string)
}
