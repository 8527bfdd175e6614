package cmd

import (
	"context"
	"fmt"
	"os"

	"swatchctl/internal/app"

	"github.com/spf13/cobra"
)

var (
	rootNoTUI      bool
	rootDebug      bool
	rootColor      string
	rootConfigPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "swatchctl",
	Short: "Interactive RGB color swatch for the terminal",
	Long: `swatchctl mixes a color from its red, green and blue channels and shows
its hex code, HSL values and the nearest named color as you go.

Colors can be saved to a session list, selected and removed again. The
same color model is available non-interactively through the describe,
classify and palette commands, and to AI assistants through 'swatchctl serve'.

Configuration:
  swatchctl reads ~/.config/swatchctl/config.yaml and then
  ./.swatchctl/config.yaml; later files override earlier ones.`,
	Args: cobra.NoArgs,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid colors)
	SilenceUsage: true,
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(rootNoTUI, rootDebug, rootColor)
	cfg.ConfigPath = rootConfigPath
	cfg.Version = rootCmd.Version
	cfg.Out = cmd.OutOrStdout()

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "swatchctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = runRoot

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newPaletteCmd())
	rootCmd.AddCommand(newServeCmd())

	rootCmd.Flags().BoolVar(&rootNoTUI, "no-tui", false, "Print the initial color and exit instead of starting the TUI")
	rootCmd.Flags().BoolVar(&rootDebug, "debug", false, "Enable debug logging and the TUI debug line")
	rootCmd.Flags().StringVar(&rootColor, "color", "", "Initial color as #rrggbb or #rgb (overrides configuration)")
	rootCmd.Flags().StringVar(&rootConfigPath, "config", "", "Read configuration from this file only")
}
