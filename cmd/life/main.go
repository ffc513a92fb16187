package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"torus-life/internal/config"
	"torus-life/internal/core"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "life",
		Short: "Conway's Game of Life on a wrapping board",
		Long: `life runs Conway's Game of Life on a toroidal board.

In the window, click or drag to toggle cells, press Space to run or pause,
N to step once, C to clear, R to randomize, G to show grid lines and Q or
Escape to quit.`,
		SilenceUsage: true,
	}

	defaults := config.Default()
	pf := rootCmd.PersistentFlags()
	pf.String("config", config.DefaultPath, "path to config.ini")
	pf.Int("width", defaults.Width, "board width in cells (overrides config)")
	pf.Int("height", defaults.Height, "board height in cells (overrides config)")
	pf.Int("delay", defaults.SimSpeed, "milliseconds between generations (overrides config sim_speed)")
	pf.Int("scale", core.DefaultScale, "display pixels per cell (overrides config)")
	pf.String("log-level", "", "log level: error, warn, info, debug, trace (overrides config)")
	pf.Int64("seed", 0, "seed for randomize; 0 picks one from the clock")

	guiCmd := newGUICmd()
	rootCmd.RunE = guiCmd.RunE
	rootCmd.Flags().AddFlagSet(guiCmd.Flags())

	rootCmd.AddCommand(
		newVersionCmd(),
		guiCmd,
		newHeadlessCmd(),
	)
	return rootCmd
}
