package engine

import (
	"fmt"
	"math/rand"

	"github.com/tristan-harris/cbr/internal/config"
	"github.com/tristan-harris/cbr/internal/planner"
	"github.com/tristan-harris/cbr/internal/trash"
)

// renamePath tracks a cyclic rename across its two hops.
type renamePath struct {
	initial string
	temp    string
	target  string
}

// execute applies a validated plan in three phases. Phase A walks the
// plan in order, deleting, renaming directly, and moving cycle
// participants out to temporary names so every contested name is
// vacated. Phase B lands the parked files on their final names. Phase C
// dispatches the queued trash batch.
func (e *Engine) execute(plan *planner.Plan, opts config.Options) (*Result, error) {
	result := &Result{}
	var pending []renamePath
	var trashQueue []string

	for _, op := range plan.Operations {
		switch op.Kind {
		case planner.OpKeep:

		case planner.OpDelete:
			if err := e.fs.Remove(op.Source); err != nil {
				return result, fmt.Errorf("%w: could not delete file %q: %v", ErrRemoval, op.Source, err)
			}
			result.Removed++
			if !opts.Silent {
				e.printer.Removed(op.Source)
			}

		case planner.OpTrash:
			trashQueue = append(trashQueue, op.Source)

		case planner.OpRename:
			if err := e.fs.Rename(op.Source, op.Target); err != nil {
				return result, fmt.Errorf("%w: could not rename %q to %q: %v", ErrRename, op.Source, op.Target, err)
			}
			result.Renamed++
			if !opts.Silent {
				e.printer.Renamed(op.Source, op.Target)
			}

		case planner.OpCycleRename:
			temp, err := e.tempName()
			if err != nil {
				return result, err
			}
			if err := e.fs.Rename(op.Source, temp); err != nil {
				return result, fmt.Errorf("%w: could not rename %q to %q: %v", ErrRename, op.Source, temp, err)
			}
			pending = append(pending, renamePath{initial: op.Source, temp: temp, target: op.Target})

		default:
			return result, fmt.Errorf("unknown operation kind: %s", op.Kind)
		}
	}

	// Every cycle participant has vacated its original name, so the
	// final targets are all free now.
	for _, rp := range pending {
		if err := e.fs.Rename(rp.temp, rp.target); err != nil {
			return result, fmt.Errorf("%w: could not rename %q to %q: %v", ErrRename, rp.temp, rp.target, err)
		}
		result.Renamed++
		if !opts.Silent {
			e.printer.Renamed(rp.initial, rp.target)
		}
	}

	if len(trashQueue) > 0 {
		runner := &announcingRunner{inner: e.trasher, engine: e, silent: opts.Silent}
		if err := trash.Dispatch(runner, trashQueue); err != nil {
			return result, err
		}
		result.Trashed = len(trashQueue)
	}

	return result, nil
}

// tempName generates a name with no existing directory entry, probing
// random suffixes until the filesystem confirms one free. The check is
// racy against other processes; that race is accepted.
func (e *Engine) tempName() (string, error) {
	for {
		candidate := fmt.Sprintf("cbr-transition-%09d", rand.Intn(1_000_000_000))
		exists, err := e.fs.Exists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to probe temporary name %q: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}
}

// announcingRunner prints a status line per path once its batch has
// been trashed, so partial progress stays visible on mid-run failure.
type announcingRunner struct {
	inner  trash.Runner
	engine *Engine
	silent bool
}

func (r *announcingRunner) Trash(paths []string) error {
	if err := r.inner.Trash(paths); err != nil {
		return err
	}
	if !r.silent {
		for _, path := range paths {
			r.engine.printer.Trashed(path)
		}
	}
	return nil
}
