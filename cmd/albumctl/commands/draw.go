package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agiangrant/grouped"
	"github.com/agiangrant/grouped/geom"
	"github.com/agiangrant/grouped/internal/termdraw"
)

func addDraw(topLevel *cobra.Command, a *app) {
	var selected []string
	full := false
	cmd := &cobra.Command{
		Use:   "draw ALBUM",
		Short: "Draw the album onto the terminal.",
		Example: `
albumctl draw sample:album
albumctl draw sample:wide --width 300 --select 0,3
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.openGroup(args[0])
			if err != nil {
				return err
			}
			defer g.Close()
			size := g.Resize(a.layoutWidth(g))
			if size.Height == 0 {
				return fmt.Errorf("width %d is below the grid minimum of %d", size.Width, g.Style().MinGridWidth)
			}

			sel, err := parseSelection(g, selected, full)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.render(g, sel))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&selected, "select", nil, "Member indexes to draw as selected.")
	cmd.Flags().BoolVar(&full, "full", false, "Draw the whole group selected.")
	topLevel.AddCommand(cmd)
}

// render rasterizes the group at its current size.
func (a *app) render(g *grouped.Group, sel grouped.Selection) string {
	canvas := termdraw.New(g.Width(), g.Height(), termdraw.DefaultMetrics)
	g.Draw(canvas, geom.R(0, 0, g.Width(), g.Height()), sel)
	if a.settings.NoColor {
		return canvas.Plain()
	}
	return strings.TrimRight(canvas.Render(), "\n")
}
