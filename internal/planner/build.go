// Package planner validates the pairing of original and edited filenames
// and classifies every pair into an executable operation.
//
// Validation is total and runs before any filesystem mutation: a plan is
// only returned once every pair has passed the cardinality, collision and
// uniqueness checks. Classification consults only the static original
// name set, never evolving filesystem state, so a target that belongs to
// the original set is treated as a cycle participant regardless of cycle
// length.
package planner

import (
	"fmt"
	"sort"

	"github.com/tristan-harris/cbr/internal/config"
	"github.com/tristan-harris/cbr/internal/fsops"
	"github.com/tristan-harris/cbr/internal/names"
)

// Build validates the (original, edited) pairing and produces a Plan.
// The edited slice must be index-aligned with originals. The filesystem
// is only consulted for collision probes; nothing is mutated.
func Build(originals *names.List, edited []string, opts config.Options, fs fsops.FS) (*Plan, error) {
	if len(edited) != originals.Len() {
		return nil, fmt.Errorf("%w: new filename list contains %d entries while original list contains %d",
			ErrMismatchedCount, len(edited), originals.Len())
	}

	if err := validate(originals, edited, opts, fs); err != nil {
		return nil, err
	}

	plan := &Plan{Operations: make([]Operation, 0, originals.Len())}
	for i, source := range originals.Names() {
		target := edited[i]

		switch {
		case target == source:
			plan.Operations = append(plan.Operations, Operation{Kind: OpKeep, Source: source})
		case isMarked(target, opts.DeleteChar):
			kind := OpDelete
			if opts.Trash {
				kind = OpTrash
			}
			plan.Operations = append(plan.Operations, Operation{Kind: kind, Source: source})
		case originals.Contains(target):
			plan.Operations = append(plan.Operations, Operation{Kind: OpCycleRename, Source: source, Target: target})
		default:
			plan.Operations = append(plan.Operations, Operation{Kind: OpRename, Source: source, Target: target})
		}
	}
	return plan, nil
}

func validate(originals *names.List, edited []string, opts config.Options, fs fsops.FS) error {
	// Delete-marked lines take no target name, so they are exempt from
	// the uniqueness and collision checks.
	targets := make([]string, 0, len(edited))
	for i, target := range edited {
		if isMarked(target, opts.DeleteChar) {
			continue
		}
		if target == "" {
			return fmt.Errorf("%w: line %d is empty", ErrInvalidTarget, i+1)
		}
		targets = append(targets, target)
	}

	sort.Strings(targets)
	for i := 0; i+1 < len(targets); i++ {
		if targets[i] == targets[i+1] {
			return fmt.Errorf("%w: output filenames are not unique (%q)", ErrDuplicateTarget, targets[i])
		}
	}

	if opts.Force {
		return nil
	}
	for _, target := range edited {
		if isMarked(target, opts.DeleteChar) || originals.Contains(target) {
			continue
		}
		exists, err := fs.Exists(target)
		if err != nil {
			return fmt.Errorf("failed to stat %q: %w", target, err)
		}
		if exists {
			return fmt.Errorf("%w: file %q", ErrNameCollision, target)
		}
	}
	return nil
}

// isMarked reports whether an edited line is marked for deletion. Only
// the leading byte matters; anything after it is ignored.
func isMarked(line string, marker byte) bool {
	return len(line) > 0 && line[0] == marker
}
