// Package cli wires the cbr command line to the rename engine.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tristan-harris/cbr/internal/config"
	"github.com/tristan-harris/cbr/internal/editor"
	"github.com/tristan-harris/cbr/internal/engine"
	"github.com/tristan-harris/cbr/internal/fsops"
	"github.com/tristan-harris/cbr/internal/trash"
)

var (
	flagDelChar string
	flagEditor  string
	flagForce   bool
	flagSilent  bool
	flagTrash   bool
)

// rootCmd is the one and only cbr command.
var rootCmd = &cobra.Command{
	Use:     "cbr [FILE]...",
	Version: "dev",
	Short:   "Bulk renaming utility",
	Long: `cbr opens a list of filenames in your text editor. Edit a line to rename
that file, or start it with the delete character to remove the file.
With no FILE arguments, the files of the current directory are listed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}

		eng := engine.New(
			fsops.NewRealFS(),
			editor.NewSession(opts.Editor),
			trash.NewGioRunner(),
			StatusPrinter{},
		)
		result, err := eng.Run(&engine.Request{Files: args, Options: opts})
		if err != nil {
			return err
		}
		if !opts.Silent {
			PrintSummary(result)
		}
		return nil
	},
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("v{{.Version}}\n")
}

// buildOptions layers the config file and command line flags over the
// built-in defaults. Flags only override when explicitly set.
func buildOptions(cmd *cobra.Command) (config.Options, error) {
	opts := config.DefaultOptions()

	path, err := config.DefaultPath()
	if err != nil {
		return opts, err
	}
	file, err := config.Load(path)
	if err != nil {
		return opts, err
	}
	opts = file.Apply(opts)

	flags := cmd.Flags()
	if flags.Changed("delchar") {
		if len(flagDelChar) != 1 {
			return opts, fmt.Errorf("delete character must be a single character, got %q", flagDelChar)
		}
		opts.DeleteChar = flagDelChar[0]
	}
	if flags.Changed("editor") {
		opts.Editor = flagEditor
	}
	if flags.Changed("force") {
		opts.Force = flagForce
	}
	if flags.Changed("silent") {
		opts.Silent = flagSilent
	}
	if flags.Changed("trash") {
		opts.Trash = flagTrash
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&flagDelChar, "delchar", "d", string(config.DefaultDeleteChar), "Specify what deletion mark to use")
	flags.StringVarP(&flagEditor, "editor", "e", "", "Specify what editor to use")
	flags.BoolVarP(&flagForce, "force", "f", false, "Allow overwriting of existing files")
	flags.BoolVarP(&flagSilent, "silent", "s", false, "Only report errors")
	flags.BoolVarP(&flagTrash, "trash", "t", false, "Send files to trash instead of deleting them")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
