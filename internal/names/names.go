// Package names builds the set of candidate filenames for a rename run.
//
// A List keeps two views of the same names: the original order, used for
// display and for index-aligned pairing with the edited list, and a
// privately sorted copy used for membership tests. The list is populated
// once at startup and never mutated afterwards.
package names

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/tristan-harris/cbr/internal/fsops"
)

// ErrInvalidInput indicates a candidate filename that cannot take part in
// a rename run, such as a name starting with the delete marker or an
// argument that names no existing file.
var ErrInvalidInput = errors.New("invalid input")

// List is an ordered, deduplicated set of candidate filenames.
type List struct {
	ordered []string
	sorted  []string
}

// New creates a List from the given names, preserving order and dropping
// later duplicates.
func New(entries []string) *List {
	seen := make(map[string]bool, len(entries))
	ordered := make([]string, 0, len(entries))
	for _, name := range entries {
		if seen[name] {
			continue
		}
		seen[name] = true
		ordered = append(ordered, name)
	}

	sorted := make([]string, len(ordered))
	copy(sorted, ordered)
	sort.Strings(sorted)

	return &List{ordered: ordered, sorted: sorted}
}

// Names returns the names in their original order. The returned slice
// must not be modified.
func (l *List) Names() []string {
	return l.ordered
}

// Len returns the number of names in the list.
func (l *List) Len() int {
	return len(l.ordered)
}

// Contains reports whether name is in the list, via binary search over
// the sorted copy.
func (l *List) Contains(name string) bool {
	i := sort.SearchStrings(l.sorted, name)
	return i < len(l.sorted) && l.sorted[i] == name
}

// FromArgs builds a List from explicitly supplied filenames. Every name
// must exist on disk (symlinks count, and are not followed) and must not
// begin with the delete marker.
func FromArgs(args []string, marker byte, fs fsops.FS) (*List, error) {
	for _, name := range args {
		if err := checkMarker(name, marker); err != nil {
			return nil, err
		}
		exists, err := fs.Exists(name)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", name, err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: file %q does not exist", ErrInvalidInput, name)
		}
	}
	return New(args), nil
}

// FromDir builds a List from the regular files and symbolic links of dir,
// in directory read order. Subdirectories and special files are skipped.
func FromDir(dir string, marker byte, fs fsops.FS) (*List, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	var collected []string
	for _, entry := range entries {
		mode := entry.Type()
		if !mode.IsRegular() && mode&os.ModeSymlink == 0 {
			continue
		}
		if err := checkMarker(entry.Name(), marker); err != nil {
			return nil, err
		}
		collected = append(collected, entry.Name())
	}
	return New(collected), nil
}

func checkMarker(name string, marker byte) error {
	if len(name) > 0 && name[0] == marker {
		return fmt.Errorf("%w: filename %q cannot begin with delete character %q",
			ErrInvalidInput, name, string(marker))
	}
	return nil
}
