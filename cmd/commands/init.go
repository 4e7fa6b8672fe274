package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pagetabs/internal/cli"
	"github.com/pluqqy/pagetabs/pkg/files"
)

// NewInitCommand creates the init command
func NewInitCommand(opts *GlobalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default settings file",
		Long: heredoc.Doc(`
			Creates the settings directory and writes the default settings,
			seeded with the pages Info, Details, Other and Ending.

			Examples:
			  # Initialize in the current directory
			  pagetabs init

			  # Overwrite an existing settings file
			  pagetabs init --force
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := files.ResolveSettingsPath(opts.ConfigPath)
			_, statErr := os.Stat(path)
			existed := statErr == nil
			if err := files.InitProjectStructure(path, force); err != nil {
				if errors.Is(err, files.ErrSettingsExist) {
					return fmt.Errorf("%w (use --force to overwrite)", err)
				}
				return err
			}
			if existed {
				cli.PrintWarning("Overwrote existing settings at %s", path)
			}
			cli.PrintSuccess("Created %s", path)
			cli.PrintInfo("Run 'pagetabs' to open the page bar")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing settings file")
	return cmd
}
