package planner

import (
	"errors"
	"os"
	"testing"

	"github.com/tristan-harris/cbr/internal/config"
	"github.com/tristan-harris/cbr/internal/names"
)

// fakeFS reports existence from a fixed set of names and fails the test
// if anything tries to mutate the filesystem during planning.
type fakeFS struct {
	t        *testing.T
	existing map[string]bool
}

func newFakeFS(t *testing.T, existing ...string) *fakeFS {
	set := make(map[string]bool, len(existing))
	for _, name := range existing {
		set[name] = true
	}
	return &fakeFS{t: t, existing: set}
}

func (f *fakeFS) Exists(path string) (bool, error) {
	return f.existing[path], nil
}

func (f *fakeFS) Rename(oldpath, newpath string) error {
	f.t.Fatalf("planner must not rename (%q -> %q)", oldpath, newpath)
	return nil
}

func (f *fakeFS) Remove(path string) error {
	f.t.Fatalf("planner must not remove (%q)", path)
	return nil
}

func (f *fakeFS) ReadDir(path string) ([]os.DirEntry, error) {
	f.t.Fatalf("planner must not read directories (%q)", path)
	return nil, nil
}

func defaultOpts() config.Options {
	return config.DefaultOptions()
}

func TestBuild_Classification(t *testing.T) {
	tests := []struct {
		name      string
		originals []string
		edited    []string
		opts      config.Options
		wantKinds []string
	}{
		{
			name:      "unchanged list",
			originals: []string{"a.txt", "b.txt"},
			edited:    []string{"a.txt", "b.txt"},
			opts:      defaultOpts(),
			wantKinds: []string{OpKeep, OpKeep},
		},
		{
			name:      "direct rename",
			originals: []string{"a.txt"},
			edited:    []string{"renamed.txt"},
			opts:      defaultOpts(),
			wantKinds: []string{OpRename},
		},
		{
			name:      "delete marker",
			originals: []string{"a.txt"},
			edited:    []string{"#"},
			opts:      defaultOpts(),
			wantKinds: []string{OpDelete},
		},
		{
			name:      "delete marker with trailing text",
			originals: []string{"a.txt"},
			edited:    []string{"# leftover text is irrelevant"},
			opts:      defaultOpts(),
			wantKinds: []string{OpDelete},
		},
		{
			name:      "trash mode routes deletions",
			originals: []string{"a.txt"},
			edited:    []string{"#"},
			opts:      config.Options{DeleteChar: '#', Trash: true},
			wantKinds: []string{OpTrash},
		},
		{
			name:      "two-cycle swap",
			originals: []string{"a.txt", "b.txt"},
			edited:    []string{"b.txt", "a.txt"},
			opts:      defaultOpts(),
			wantKinds: []string{OpCycleRename, OpCycleRename},
		},
		{
			name:      "three-cycle rotation",
			originals: []string{"a", "b", "c"},
			edited:    []string{"b", "c", "a"},
			opts:      defaultOpts(),
			wantKinds: []string{OpCycleRename, OpCycleRename, OpCycleRename},
		},
		{
			name:      "chain into vacated name",
			originals: []string{"a", "b"},
			edited:    []string{"b", "c"},
			opts:      defaultOpts(),
			wantKinds: []string{OpCycleRename, OpRename},
		},
		{
			name:      "custom delete marker",
			originals: []string{"a.txt"},
			edited:    []string{"!gone"},
			opts:      config.Options{DeleteChar: '!'},
			wantKinds: []string{OpDelete},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Build(names.New(tt.originals), tt.edited, tt.opts, newFakeFS(t))
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if len(plan.Operations) != len(tt.wantKinds) {
				t.Fatalf("Build() produced %d operations, want %d", len(plan.Operations), len(tt.wantKinds))
			}
			for i, want := range tt.wantKinds {
				if plan.Operations[i].Kind != want {
					t.Errorf("Operations[%d].Kind = %q, want %q", i, plan.Operations[i].Kind, want)
				}
			}
		})
	}
}

func TestBuild_MismatchedCount(t *testing.T) {
	_, err := Build(names.New([]string{"a", "b", "c"}), []string{"a", "b"}, defaultOpts(), newFakeFS(t))
	if !errors.Is(err, ErrMismatchedCount) {
		t.Errorf("Build() error = %v, want ErrMismatchedCount", err)
	}
}

func TestBuild_DuplicateTarget(t *testing.T) {
	_, err := Build(names.New([]string{"a", "b"}), []string{"x", "x"}, defaultOpts(), newFakeFS(t))
	if !errors.Is(err, ErrDuplicateTarget) {
		t.Errorf("Build() error = %v, want ErrDuplicateTarget", err)
	}
}

func TestBuild_DuplicateMarkersAllowed(t *testing.T) {
	// Delete-marked lines carry no target, so identical markers are fine.
	plan, err := Build(names.New([]string{"a", "b"}), []string{"#", "#"}, defaultOpts(), newFakeFS(t))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for i, op := range plan.Operations {
		if op.Kind != OpDelete {
			t.Errorf("Operations[%d].Kind = %q, want %q", i, op.Kind, OpDelete)
		}
	}
}

func TestBuild_NameCollision(t *testing.T) {
	fs := newFakeFS(t, "existing_other_file")

	_, err := Build(names.New([]string{"a"}), []string{"existing_other_file"}, defaultOpts(), fs)
	if !errors.Is(err, ErrNameCollision) {
		t.Errorf("Build() error = %v, want ErrNameCollision", err)
	}
}

func TestBuild_NameCollisionForced(t *testing.T) {
	fs := newFakeFS(t, "existing_other_file")
	opts := config.Options{DeleteChar: '#', Force: true}

	plan, err := Build(names.New([]string{"a"}), []string{"existing_other_file"}, opts, fs)
	if err != nil {
		t.Fatalf("Build() with force error = %v", err)
	}
	if plan.Operations[0].Kind != OpRename {
		t.Errorf("Operations[0].Kind = %q, want %q", plan.Operations[0].Kind, OpRename)
	}
}

func TestBuild_CollisionInsideBatchAllowed(t *testing.T) {
	// A target that is itself an original batch name is not a collision,
	// even though it exists on disk: the cycle rename vacates it first.
	fs := newFakeFS(t, "a", "b")

	plan, err := Build(names.New([]string{"a", "b"}), []string{"b", "a"}, defaultOpts(), fs)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for i, op := range plan.Operations {
		if op.Kind != OpCycleRename {
			t.Errorf("Operations[%d].Kind = %q, want %q", i, op.Kind, OpCycleRename)
		}
	}
}

func TestBuild_EmptyTarget(t *testing.T) {
	_, err := Build(names.New([]string{"a"}), []string{""}, defaultOpts(), newFakeFS(t))
	if !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("Build() error = %v, want ErrInvalidTarget", err)
	}
}

func TestPlan_HasWork(t *testing.T) {
	fs := newFakeFS(t)

	idle, err := Build(names.New([]string{"a", "b"}), []string{"a", "b"}, defaultOpts(), fs)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if idle.HasWork() {
		t.Error("HasWork() = true for an unchanged list")
	}

	busy, err := Build(names.New([]string{"a"}), []string{"z"}, defaultOpts(), fs)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !busy.HasWork() {
		t.Error("HasWork() = false for a renaming plan")
	}
}
