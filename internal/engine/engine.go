// Package engine orchestrates a full rename run: ingesting the filename
// set, running the external edit session, building the plan, and
// executing it against the filesystem.
//
// Execution is fail-fast with no rollback. Validation happens entirely
// before the first mutation; once execution starts, the first error
// aborts the run and already-completed operations stay in place, visible
// through their emitted status lines.
package engine

import (
	"fmt"

	"github.com/tristan-harris/cbr/internal/fsops"
	"github.com/tristan-harris/cbr/internal/names"
	"github.com/tristan-harris/cbr/internal/planner"
	"github.com/tristan-harris/cbr/internal/trash"
)

// Engine coordinates one rename run.
type Engine struct {
	fs             fsops.FS
	session        EditSession
	trasher        trash.Runner
	printer        Printer
	trashAvailable func() bool
}

// New creates an Engine with the given collaborators.
func New(fs fsops.FS, session EditSession, trasher trash.Runner, printer Printer) *Engine {
	return &Engine{
		fs:             fs,
		session:        session,
		trasher:        trasher,
		printer:        printer,
		trashAvailable: trash.Available,
	}
}

// Run executes a rename run end to end. An empty candidate set is a
// trivial success.
func (e *Engine) Run(req *Request) (*Result, error) {
	opts := req.Options

	if opts.Trash && !e.trashAvailable() {
		return nil, fmt.Errorf("%w: gio (as part of GLib) is required for trash functionality", trash.ErrTrash)
	}

	var list *names.List
	var err error
	if len(req.Files) > 0 {
		list, err = names.FromArgs(req.Files, opts.DeleteChar, e.fs)
	} else {
		list, err = names.FromDir(".", opts.DeleteChar, e.fs)
	}
	if err != nil {
		return nil, err
	}

	if list.Len() == 0 {
		return &Result{}, nil
	}

	edited, err := e.session.Edit(list.Names())
	if err != nil {
		return nil, err
	}

	plan, err := planner.Build(list, edited, opts, e.fs)
	if err != nil {
		return nil, err
	}

	if !plan.HasWork() {
		return &Result{}, nil
	}
	return e.execute(plan, opts)
}
