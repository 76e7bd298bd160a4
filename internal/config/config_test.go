package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.DeleteChar != '#' {
		t.Errorf("DeleteChar = %q, want '#'", opts.DeleteChar)
	}
	if opts.Force || opts.Silent || opts.Trash {
		t.Error("boolean options should default to false")
	}
	if opts.Editor != "" {
		t.Errorf("Editor = %q, want empty", opts.Editor)
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantError bool
	}{
		{
			name:      "defaults",
			opts:      DefaultOptions(),
			wantError: false,
		},
		{
			name:      "custom marker",
			opts:      Options{DeleteChar: '!'},
			wantError: false,
		},
		{
			name:      "zero marker",
			opts:      Options{},
			wantError: true,
		},
		{
			name:      "slash marker",
			opts:      Options{DeleteChar: '/'},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "editor: nano\ndelete_char: \"!\"\nsilent: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	opts := f.Apply(DefaultOptions())
	if opts.Editor != "nano" {
		t.Errorf("Editor = %q, want %q", opts.Editor, "nano")
	}
	if opts.DeleteChar != '!' {
		t.Errorf("DeleteChar = %q, want '!'", opts.DeleteChar)
	}
	if !opts.Silent {
		t.Error("Silent = false, want true")
	}
	if opts.Trash {
		t.Error("Trash = true, want false (unset in file)")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() on missing file error = %v, want nil", err)
	}

	// An empty file leaves the defaults untouched.
	opts := f.Apply(DefaultOptions())
	if opts != DefaultOptions() {
		t.Errorf("Apply() with missing file = %+v, want defaults", opts)
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "invalid yaml",
			content: "editor: [unclosed",
		},
		{
			name:    "multi-char delete marker",
			content: "delete_char: \"##\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() should fail on malformed config")
			}
		})
	}
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/xdg")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	want := filepath.Join("/custom/xdg", "cbr", "config.yaml")
	if path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}
