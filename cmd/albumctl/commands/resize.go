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

func addResize(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "resize ALBUM [WIDTH...]",
		Short: "Print the member rectangles at one or more widths.",
		Example: `
albumctl resize sample:album 430 300 120
albumctl resize sample:playlist --width 250
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.openGroup(args[0])
			if err != nil {
				return err
			}
			defer g.Close()

			widths := make([]int, 0, len(args)-1)
			for _, arg := range args[1:] {
				w, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid width %q: %w", arg, err)
				}
				widths = append(widths, w)
			}
			if len(widths) == 0 {
				widths = append(widths, a.layoutWidth(g))
			}

			for i, w := range widths {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				printResize(cmd.OutOrStdout(), g, w)
			}
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func printResize(w io.Writer, g *grouped.Group, width int) {
	bold := color.New(color.Bold)
	size := g.Resize(width)
	fmt.Fprintf(w, "%s %s\n", bold.Sprintf("width %d:", width), size)
	if size.Height == 0 {
		fmt.Fprintln(w, color.New(color.FgYellow).Sprintf("below the grid minimum of %d", g.Style().MinGridWidth))
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("RECORD"), bold.Sprint("GEOMETRY"))
	for i, part := range g.Parts() {
		tbl.AddRow(i, shortID(part.Record()), part.Geometry())
	}
	tbl.RightAlign(0)
	fmt.Fprintln(w, tbl)
}
