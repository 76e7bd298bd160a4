package planner

// Operation represents a single classified rename-run entry.
type Operation struct {
	// Kind is the operation kind: one of the Op* constants.
	Kind string

	// Source is the original filename.
	Source string

	// Target is the edited filename. Empty for delete and trash
	// operations.
	Target string
}

// Operation kind constants.
const (
	// OpKeep leaves the file untouched (edited name equals original).
	OpKeep = "keep"

	// OpDelete removes the file permanently.
	OpDelete = "delete"

	// OpTrash queues the file for the system trash.
	OpTrash = "trash"

	// OpRename renames directly to a target outside the original batch.
	OpRename = "rename"

	// OpCycleRename renames a file whose target is itself an original
	// batch name, requiring indirection through a temporary name.
	OpCycleRename = "cycle_rename"
)

// Plan is the ordered list of operations for one rename run, in the
// same order as the original filename list.
type Plan struct {
	Operations []Operation
}

// HasWork reports whether the plan contains anything other than keeps.
func (p *Plan) HasWork() bool {
	for _, op := range p.Operations {
		if op.Kind != OpKeep {
			return true
		}
	}
	return false
}
