package commands

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pagetabs/internal/cli"
)

// GlobalOptions holds the flags shared by every command
type GlobalOptions struct {
	ConfigPath string
	Output     string
	Quiet      bool
	NoColor    bool
}

// NewRootCommand builds the pagetabs command tree. Without a subcommand it
// starts the interactive page bar.
func NewRootCommand(version string) *cobra.Command {
	opts := &GlobalOptions{}
	tuiOpts := &tuiOptions{}

	root := &cobra.Command{
		Use:   "pagetabs",
		Short: "Terminal page bar with drag-and-drop reordering",
		Long: heredoc.Doc(`
			pagetabs manages an ordered list of pages shown as a row of tabs.

			Pages can be selected, added between neighbours, copied, duplicated,
			renamed, moved to the front, deleted, and reordered by dragging a tab
			onto one of the drop slots between tabs.

			Run without a command to open the interactive page bar, or use
			'pagetabs shell' on terminals without mouse or alt-screen support.
		`),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cli.SetGlobalFlags(opts.Quiet, opts.NoColor)
			return cli.ValidateOutputFormat(opts.Output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts, tuiOpts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "settings file (default .pagetabs/settings.yaml)")
	pf.StringVarP(&opts.Output, "output", "o", "text", "output format: text, json, yaml")
	pf.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress informational output")
	pf.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	root.Flags().StringVar(&tuiOpts.LogFile, "log-file", "", "write TUI logs to this file (overrides logging.file)")
	root.Flags().BoolVar(&tuiOpts.NoMouse, "no-mouse", false, "disable mouse input")

	root.AddCommand(NewInitCommand(opts))
	root.AddCommand(NewListCommand(opts))
	root.AddCommand(NewShellCommand(opts))
	root.AddCommand(NewVersionCommand(version))

	return root
}
