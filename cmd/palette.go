package cmd

import (
	"swatchctl/internal/cli"

	"github.com/spf13/cobra"
)

func newPaletteCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List the reference colors used for naming",
		Long: `Lists the fourteen reference colors in the order they are matched.
When two entries are equally close to a color, the earlier one names it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, output, "color_palette", nil)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(cli.OutputFormatTable), "Output format: table, json or yaml")
	return cmd
}
