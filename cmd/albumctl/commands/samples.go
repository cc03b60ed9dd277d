package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/grouped/internal/fixture"
)

func addSamples(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "samples [NAME]",
		Short: "List the built-in albums, or print one as TOML.",
		Example: `
albumctl samples
albumctl samples playlist > playlist.toml
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range fixture.SampleNames() {
					fmt.Fprintf(cmd.OutOrStdout(), "sample:%s\n", name)
				}
				return nil
			}
			album, err := fixture.Sample(args[0])
			if err != nil {
				return err
			}
			data, err := album.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	topLevel.AddCommand(cmd)
}
