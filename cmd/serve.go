package cmd

import (
	"context"
	"os"

	"swatchctl/internal/mcpserver"
	"swatchctl/pkg/logging"

	"github.com/spf13/cobra"
)

var serveDebug bool

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the color tools to AI assistants over MCP (stdio)",
		Long: `Starts a Model Context Protocol server on stdin/stdout offering the
color_describe, color_classify and color_palette tools.

Logs are written to stderr so they do not interfere with the protocol.
Register it with an MCP client as:

  {"command": "swatchctl", "args": ["serve"]}`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging on stderr")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	level := logging.LevelInfo
	if serveDebug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, os.Stderr)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return mcpserver.NewColorServer(rootCmd.Version).ServeStdio(ctx)
}
