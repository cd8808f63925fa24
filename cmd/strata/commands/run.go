package commands

import (
	"github.com/spf13/cobra"
	"github.com/voltlab/strata/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			geometryOnly, _ := cmd.Flags().GetBool("geometry-only")
			restart, _ := cmd.Flags().GetInt("restart")
			ranks, _ := cmd.Flags().GetInt("ranks")
			return c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath:   configPath,
				GeometryOnly: geometryOnly,
				RestartStep:  restart,
				Ranks:        ranks,
			})
		},
	}
	cmd.Flags().StringP("config", "c", "", "Path to the simulation config file")
	cmd.Flags().Bool("geometry-only", false, "Build the initial mesh and stop")
	cmd.Flags().Int("restart", 0, "Restart from the checkpoint written at this step")
	cmd.Flags().Int("ranks", 1, "Number of in-process ranks to run")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
