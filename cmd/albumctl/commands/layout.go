package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/grouped"
)

func addLayout(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "layout ALBUM...",
		Short: "Print the natural layout of one or more albums.",
		Example: `
albumctl layout sample:album
albumctl layout trip.toml sample:playlist
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := a.openGroups(cmd.Context(), args)
			if err != nil {
				return err
			}
			for i, g := range groups {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				printLayout(cmd.OutOrStdout(), args[i], g)
				g.Close()
			}
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

// openGroups loads and measures every album concurrently. Results keep the
// order of srcs.
func (a *app) openGroups(ctx context.Context, srcs []string) ([]*grouped.Group, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	groups := make([]*grouped.Group, len(srcs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, src := range srcs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g, err := a.openGroup(src)
			if err != nil {
				return err
			}
			groups[i] = g
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		for _, g := range groups {
			if g != nil {
				g.Close()
			}
		}
		return nil, err
	}
	return groups, nil
}

func printLayout(w io.Writer, name string, g *grouped.Group) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	fmt.Fprintf(w, "%s  %s %dx%d", bold.Sprint(name), g.Mode(), g.MaxWidth(), g.MinHeight())
	if g.NeedsBubble() {
		fmt.Fprint(w, faint.Sprint("  bubble"))
	}
	if g.NeedInfoDisplay() {
		fmt.Fprint(w, faint.Sprint("  date"))
	}
	if c := g.CaptionBlock(); !c.Empty() {
		fmt.Fprint(w, faint.Sprintf("  caption %q", c.Text()))
	}
	fmt.Fprintln(w)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("RECORD"), bold.Sprint("KIND"), bold.Sprint("GEOMETRY"), bold.Sprint("SIDES"), bold.Sprint("CORNERS"))
	for i, part := range g.Parts() {
		tbl.AddRow(i, shortID(part.Record()), part.Kind(), part.InitialGeometry(), part.Sides(), g.CornersFromSides(part.Sides()))
	}
	tbl.RightAlign(0)
	fmt.Fprintln(w, tbl)
}
