package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/agiangrant/grouped"
	"github.com/agiangrant/grouped/geom"
)

func addHit(topLevel *cobra.Command, a *app) {
	forText := false
	cmd := &cobra.Command{
		Use:   "hit ALBUM X Y",
		Short: "Hit-test a point of the laid out album.",
		Example: `
albumctl hit sample:album 120 40 --width 430
albumctl hit sample:playlist 30 190 --text
`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid x %q: %w", args[1], err)
			}
			y, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid y %q: %w", args[2], err)
			}

			g, err := a.openGroup(args[0])
			if err != nil {
				return err
			}
			defer g.Close()
			g.Resize(a.layoutWidth(g))

			printHit(cmd.OutOrStdout(), g, geom.Pt(x, y), grouped.StateRequest{ForText: forText})
			return nil
		},
	}
	cmd.Flags().BoolVar(&forText, "text", false, "Hit-test for text selection.")
	topLevel.AddCommand(cmd)
}

func printHit(w io.Writer, g *grouped.Group, p geom.Point, req grouped.StateRequest) {
	bold := color.New(color.Bold)
	state := g.TextStateAt(p, req)

	item := "-"
	for i, part := range g.Parts() {
		if part.Record() == state.ItemID {
			item = fmt.Sprintf("#%d %s", i, shortID(state.ItemID))
		}
	}
	if item == "-" && !state.ItemID.IsZero() {
		item = "host " + shortID(state.ItemID)
	}
	link := "-"
	if state.Link != nil {
		link = state.Link.Label()
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("size"), geom.Sz(g.Width(), g.Height()))
	tbl.AddRow(bold.Sprint("point"), fmt.Sprintf("%d,%d", p.X, p.Y))
	tbl.AddRow(bold.Sprint("state"), g.PointState(p))
	tbl.AddRow(bold.Sprint("item"), item)
	tbl.AddRow(bold.Sprint("link"), link)
	tbl.AddRow(bold.Sprint("cursor"), state.Cursor)
	tbl.RightAlign(0)
	fmt.Fprintln(w, tbl)
}
