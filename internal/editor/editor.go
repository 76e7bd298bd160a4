// Package editor runs the interactive edit session: it writes the
// filename list to a scratch file, hands the file to an external text
// editor, and reads the edited list back.
//
// The editor contract is deliberately thin. Any program that edits a
// text file in place works; the editor is spawned directly with an
// argument vector and inherited stdio, never through a shell.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrEditor indicates no editor could be resolved or the editor exited
// with a non-zero status.
var ErrEditor = errors.New("editor failed")

// Fallback editors probed on PATH when neither an override nor the
// environment names one.
var fallbackEditors = []string{"nano", "vi"}

// Session runs one external edit of a filename list.
type Session struct {
	override string
	getenv   func(key string) string
	lookPath func(file string) (string, error)
	run      func(name string, args ...string) error
}

// NewSession creates a Session. A non-empty override skips environment
// resolution; it may contain arguments, e.g. "code --wait".
func NewSession(override string) *Session {
	return &Session{
		override: override,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		run:      runInteractive,
	}
}

// Edit writes one name per line to a scratch file, blocks on the
// external editor, and returns the edited lines in order. The scratch
// file is removed afterwards.
func (s *Session) Edit(list []string) ([]string, error) {
	editor, err := s.resolve()
	if err != nil {
		return nil, err
	}

	scratch, err := os.CreateTemp("", "cbr-edit-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}
	path := scratch.Name()
	defer os.Remove(path)

	for _, name := range list {
		if _, err := fmt.Fprintln(scratch, name); err != nil {
			scratch.Close()
			return nil, fmt.Errorf("failed to write scratch file: %w", err)
		}
	}
	if err := scratch.Close(); err != nil {
		return nil, fmt.Errorf("failed to write scratch file: %w", err)
	}

	argv := strings.Fields(editor)
	if len(argv) == 0 {
		return nil, fmt.Errorf("%w: editor command %q is blank", ErrEditor, editor)
	}
	argv = append(argv, path)
	if err := s.run(argv[0], argv[1:]...); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrEditor, argv[0], err)
	}

	return readLines(path)
}

// resolve picks the editor: explicit override, then $VISUAL, then
// $EDITOR, then known fallbacks on PATH.
func (s *Session) resolve() (string, error) {
	if s.override != "" {
		return s.override, nil
	}
	if visual := s.getenv("VISUAL"); visual != "" {
		return visual, nil
	}
	if ed := s.getenv("EDITOR"); ed != "" {
		return ed, nil
	}
	for _, name := range fallbackEditors {
		if _, err := s.lookPath(name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: could not find any editor from environment", ErrEditor)
}

// readLines returns the file's lines with trailing newlines stripped.
// Line content is otherwise preserved verbatim.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scratch file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// runInteractive spawns the editor attached to the caller's terminal
// and waits for it to exit.
func runInteractive(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
