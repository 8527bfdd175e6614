package cmd

import (
	"context"

	"swatchctl/internal/cli"

	"github.com/spf13/cobra"
)

// colorToolCmd builds a command that runs one color tool with the color
// given as positional arguments.
func colorToolCmd(use, short, long, toolName string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolArgs, err := cli.ColorArgs(args)
			if err != nil {
				return err
			}
			return runTool(cmd, output, toolName, toolArgs)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(cli.OutputFormatTable), "Output format: table, json or yaml")
	return cmd
}

func newDescribeCmd() *cobra.Command {
	return colorToolCmd(
		"describe <#hex | r g b>",
		"Show the hex, HSL and nearest name of a color",
		`Describes a color given either as a hex code (#rrggbb or #rgb) or as
three channel values. Channel values outside 0-255 are clamped and
fractions are truncated; non-numeric values are rejected.

Examples:
  swatchctl describe "#ff7f00"
  swatchctl describe 255 127 0 -o json
  swatchctl describe -- -5 300 12.9`,
		"color_describe",
	)
}

func newClassifyCmd() *cobra.Command {
	return colorToolCmd(
		"classify <#hex | r g b>",
		"Find the nearest reference color and its distance",
		`Classifies a color by Euclidean RGB distance to the reference palette.
On a tie the entry listed first by 'swatchctl palette' wins.`,
		"color_classify",
	)
}

// runTool executes a color tool through an in-process MCP client and prints
// the result in the requested format.
func runTool(cmd *cobra.Command, output, toolName string, toolArgs map[string]interface{}) error {
	format, err := cli.ParseOutputFormat(output)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	executor := cli.NewToolExecutor(rootCmd.Version, cli.ExecutorOptions{
		Format: format,
		Out:    cmd.OutOrStdout(),
	})
	if err := executor.Connect(ctx); err != nil {
		return err
	}
	defer executor.Close()

	return executor.Execute(ctx, toolName, toolArgs)
}
