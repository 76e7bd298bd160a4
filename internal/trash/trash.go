// Package trash dispatches files to the system trash through the
// external `gio trash` command.
//
// Paths are handed to gio as an argument vector, never through a shell,
// so filenames containing spaces or shell metacharacters are safe. Large
// batches are split across multiple invocations.
package trash

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// BatchSize is the maximum number of paths passed to a single gio
// invocation.
const BatchSize = 197

// ErrTrash indicates the external trash command failed or could not be
// started.
var ErrTrash = errors.New("trash failed")

// Runner moves a batch of paths to the trash.
type Runner interface {
	Trash(paths []string) error
}

// GioRunner implements Runner by spawning `gio trash`.
type GioRunner struct{}

// NewGioRunner creates a new GioRunner.
func NewGioRunner() *GioRunner {
	return &GioRunner{}
}

// Trash moves the given paths to the trash in one gio invocation.
func (r *GioRunner) Trash(paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"trash"}, paths...)
	cmd := exec.Command("gio", args...)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: gio trash: %v", ErrTrash, err)
	}
	return nil
}

// Available reports whether gio is on the executable search path.
func Available() bool {
	_, err := exec.LookPath("gio")
	return err == nil
}

// Dispatch sends paths to the runner in batches of at most BatchSize.
// It stops at the first failing batch.
func Dispatch(r Runner, paths []string) error {
	for len(paths) > 0 {
		n := min(len(paths), BatchSize)
		if err := r.Trash(paths[:n]); err != nil {
			return err
		}
		paths = paths[n:]
	}
	return nil
}
