package main

import (
	"github.com/spf13/cobra"

	"torus-life/internal/app"
)

func newGUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the interactive window (requires the ebiten build tag)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			ctrl, err := s.newController(cmd)
			if err != nil {
				return err
			}

			hud, _ := cmd.Flags().GetBool("hud")
			tps, _ := cmd.Flags().GetInt("tps")
			if tps <= 0 {
				tps = 60
			}

			s.logger.Info("opening window", "size", s.sim.Size(), "scale", s.sim.Scale())
			return app.Run(app.New(ctrl, hud, s.logger), "Game of Life", tps)
		},
	}
	cmd.Flags().Bool("hud", true, "show the status line")
	cmd.Flags().Int("tps", 60, "frames per second polled for input")
	return cmd
}
