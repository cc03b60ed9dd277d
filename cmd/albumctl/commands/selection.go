package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/agiangrant/grouped"
)

// parseSelection turns member indexes into a group-item selection. full
// selects the whole group instead.
func parseSelection(g *grouped.Group, args []string, full bool) (grouped.Selection, error) {
	if full {
		return grouped.FullSelection, nil
	}
	var sel grouped.Selection
	for _, arg := range args {
		i, err := strconv.Atoi(arg)
		if err != nil {
			return grouped.Selection{}, fmt.Errorf("invalid member index %q: %w", arg, err)
		}
		if i < 0 || i >= g.Len() {
			return grouped.Selection{}, fmt.Errorf("member index %d out of range [0, %d)", i, g.Len())
		}
		sel = sel.AddGroupItem(i)
	}
	return sel, nil
}

func addSelect(topLevel *cobra.Command, a *app) {
	full := false
	cmd := &cobra.Command{
		Use:   "select ALBUM [INDEX...]",
		Short: "Print the highlight bands for a set of selected members.",
		Example: `
albumctl select sample:playlist 0 2
albumctl select sample:album --full
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.openGroup(args[0])
			if err != nil {
				return err
			}
			defer g.Close()
			g.Resize(a.layoutWidth(g))

			sel, err := parseSelection(g, args[1:], full)
			if err != nil {
				return err
			}
			printSelection(cmd.OutOrStdout(), g, sel)
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "Select the whole group.")
	topLevel.AddCommand(cmd)
}

func printSelection(w io.Writer, g *grouped.Group, sel grouped.Selection) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("TOP"), bold.Sprint("HEIGHT"))
	for _, band := range g.BubbleSelectionIntervals(sel) {
		tbl.AddRow(band.Top, band.Height)
	}
	tbl.RightAlign(0)
	tbl.RightAlign(1)
	fmt.Fprintln(w, tbl)

	if text := g.SelectedText(sel); text != "" {
		fmt.Fprintf(w, "%s %s\n", bold.Sprint("text:"), text)
	}
}
