package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// queryCommand creates the query command with snap/at subcommands.
// Queries are pure: they never modify the diagram file.
func (c *CLI) queryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run geometric queries against a diagram",
	}

	cmd.AddCommand(c.querySnapCommand())
	cmd.AddCommand(c.queryAtCommand())

	return cmd
}

func (c *CLI) querySnapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "snap <file> <x> <y>",
		Short: "Snap a point to the diagram's grid",
		Long: `Snap a point to the nearest grid intersection.

If snapping is disabled in the diagram's settings, the point is returned
unchanged.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseCoord("x", args[1])
			if err != nil {
				return err
			}
			y, err := parseCoord("y", args[2])
			if err != nil {
				return err
			}

			store, err := c.openStore(args[0])
			if err != nil {
				return err
			}

			sx, sy := store.SnapToGrid(x, y)
			fmt.Printf("(%s, %s) %s (%s, %s)\n",
				formatFloat(x), formatFloat(y),
				styleDim.Render(iconArrow),
				styleValue.Render(formatFloat(sx)), styleValue.Render(formatFloat(sy)))
			return nil
		},
	}
}

func (c *CLI) queryAtCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "at <file> <x> <y>",
		Short: "Find the topmost shape at a point",
		Long: `Find the topmost shape whose bounding box contains the point.

Of overlapping shapes, the one highest in the z-order (added last) wins.
Rotation is ignored: hit boxes are always axis-aligned.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseCoord("x", args[1])
			if err != nil {
				return err
			}
			y, err := parseCoord("y", args[2])
			if err != nil {
				return err
			}

			store, err := c.openStore(args[0])
			if err != nil {
				return err
			}

			id, ok := store.FindShapeAt(x, y)
			if !ok {
				fmt.Println(styleDim.Render("no shape at this point"))
				return nil
			}
			fmt.Println(styleID.Render(id))
			return nil
		},
	}
}
