package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pagetabs/internal/cli"
	"github.com/pluqqy/pagetabs/pkg/pages"
)

// ListResult represents the output structure for the list command
type ListResult struct {
	Pages  []ListItem `json:"pages" yaml:"pages"`
	Active string     `json:"active,omitempty" yaml:"active,omitempty"`
	Count  int        `json:"count" yaml:"count"`
}

// ListItem is one page in list output
type ListItem struct {
	Position int    `json:"position" yaml:"position"`
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Icon     string `json:"icon" yaml:"icon"`
}

// NewListCommand creates the list command
func NewListCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pages in order",
		Long: heredoc.Doc(`
			Lists the configured pages in display order with their position,
			icon and id.

			Examples:
			  pagetabs list
			  pagetabs list -o json
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := cli.NewCommandContext(opts.ConfigPath, nil)
			if _, err := cc.LoadSettings(); err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}
			store := cc.NewStore()
			result := listResult(store)

			switch opts.Output {
			case "json", "yaml":
				return cli.OutputResults(cmd.OutOrStdout(), opts.Output, result)
			default:
				return outputListText(cmd.OutOrStdout(), result)
			}
		},
	}
}

func listResult(store *pages.Store) ListResult {
	list := store.Pages()
	result := ListResult{
		Pages:  make([]ListItem, 0, len(list)),
		Active: store.Active(),
		Count:  len(list),
	}
	for i, p := range list {
		result.Pages = append(result.Pages, ListItem{
			Position: i + 1,
			ID:       p.ID,
			Name:     p.Name,
			Icon:     string(store.IconAt(i)),
		})
	}
	return result
}

func outputListText(w io.Writer, result ListResult) error {
	if result.Count == 0 {
		_, err := fmt.Fprintln(w, "No pages")
		return err
	}

	table := cli.NewTableFormatter(w)
	table.Header("#", "ICON", "NAME", "ID")
	for _, item := range result.Pages {
		marker := " "
		if item.ID == result.Active {
			marker = "*"
		}
		table.Row(
			marker+strconv.Itoa(item.Position),
			item.Icon,
			cli.TruncateString(item.Name, 40),
			item.ID,
		)
	}
	return table.Flush()
}
