package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/diagrid/pkg/diagram"
)

// settingsCommand creates the settings command for replacing diagram settings.
func (c *CLI) settingsCommand() *cobra.Command {
	var (
		background string
		grid, snap bool
		gridSize   float64
	)

	cmd := &cobra.Command{
		Use:   "settings <file>",
		Short: "Update diagram settings",
		Long: `Update diagram settings.

Flags not given keep their current value; the resulting settings object
replaces the diagram's settings wholesale.

Example:
  diagrid settings flow.json --grid-size 10 --snap=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.mutate(args[0], func(store *diagram.Store) error {
				settings := store.Settings()

				flags := cmd.Flags()
				if flags.Changed("background") {
					settings.BackgroundColor = background
				}
				if flags.Changed("grid") {
					settings.GridEnabled = grid
				}
				if flags.Changed("snap") {
					settings.SnapToGrid = snap
				}
				if flags.Changed("grid-size") {
					settings.GridSize = gridSize
				}

				if err := store.UpdateSettings(settings); err != nil {
					return err
				}
				printSuccess("updated settings")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&background, "background", "", "background color")
	cmd.Flags().BoolVar(&grid, "grid", true, "show the grid")
	cmd.Flags().BoolVar(&snap, "snap", true, "snap positions to the grid")
	cmd.Flags().Float64Var(&gridSize, "grid-size", diagram.DefaultGridSize, "grid cell size")

	return cmd
}
