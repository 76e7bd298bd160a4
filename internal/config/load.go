package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File represents the optional config.yaml. Unset fields leave the
// corresponding option untouched.
type File struct {
	Editor     string `yaml:"editor,omitempty"`
	DeleteChar string `yaml:"delete_char,omitempty"`
	Silent     *bool  `yaml:"silent,omitempty"`
	Trash      *bool  `yaml:"trash,omitempty"`
}

// Load reads and parses a config file. A missing file returns an empty
// File; a malformed one is an error.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if f.DeleteChar != "" && len(f.DeleteChar) != 1 {
		return nil, fmt.Errorf("parsing config %s: delete_char must be a single character, got %q", path, f.DeleteChar)
	}

	return &f, nil
}

// Apply overlays the file's settings onto opts and returns the result.
func (f *File) Apply(opts Options) Options {
	if f.Editor != "" {
		opts.Editor = f.Editor
	}
	if f.DeleteChar != "" {
		opts.DeleteChar = f.DeleteChar[0]
	}
	if f.Silent != nil {
		opts.Silent = *f.Silent
	}
	if f.Trash != nil {
		opts.Trash = *f.Trash
	}
	return opts
}
