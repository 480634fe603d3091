package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/diagrid/pkg/diagram"
)

// shapeCommand creates the shape command with add/update/delete subcommands.
func (c *CLI) shapeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shape",
		Short: "Add, update, or delete shapes",
	}

	cmd.AddCommand(c.shapeAddCommand())
	cmd.AddCommand(c.shapeUpdateCommand())
	cmd.AddCommand(c.shapeDeleteCommand())

	return cmd
}

// kindNames lists the valid shape kinds for help text and completion.
func kindNames() []string {
	kinds := diagram.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

func (c *CLI) shapeAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("add <file> <%s> <x> <y>", strings.Join(kindNames(), "|")),
		Short: "Add a default shape of the given kind at a position",
		Long: `Add a shape with default geometry and style at the given position.

New shapes are 100×100 with the default fill and stroke, and are placed
at the top of the z-order. Text shapes start with placeholder text.

Example:
  diagrid shape add flow.json rectangle 40 120`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseCoord("x", args[2])
			if err != nil {
				return err
			}
			y, err := parseCoord("y", args[3])
			if err != nil {
				return err
			}

			shape, err := diagram.NewDefaultShape(c.ids, diagram.Kind(args[1]), x, y)
			if err != nil {
				return err
			}

			if err := c.mutate(args[0], func(store *diagram.Store) error {
				return store.AddShape(shape)
			}); err != nil {
				return err
			}

			printSuccess("added %s shape %s", args[1], styleID.Render(shape.ID))
			return nil
		},
	}
}

func (c *CLI) shapeUpdateCommand() *cobra.Command {
	var (
		x, y, width, height float64
		rotation, strokeW   float64
		fill, stroke, text  string
	)

	cmd := &cobra.Command{
		Use:   "update <file> <id>",
		Short: "Update fields of an existing shape",
		Long: `Update fields of an existing shape.

Only the fields whose flags are given change; everything else is left
untouched (sparse-patch semantics).

Example:
  diagrid shape update flow.json 4a1c... --x 60 --fill "#fde047"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch diagram.ShapePatch
			flags := cmd.Flags()
			if flags.Changed("x") {
				patch.X = &x
			}
			if flags.Changed("y") {
				patch.Y = &y
			}
			if flags.Changed("width") {
				patch.Width = &width
			}
			if flags.Changed("height") {
				patch.Height = &height
			}
			if flags.Changed("rotation") {
				patch.Rotation = &rotation
			}
			if flags.Changed("stroke-width") {
				patch.StrokeWidth = &strokeW
			}
			if flags.Changed("fill") {
				patch.Fill = &fill
			}
			if flags.Changed("stroke") {
				patch.Stroke = &stroke
			}
			if flags.Changed("text") {
				patch.Text = &text
			}

			if patch.IsZero() {
				printWarning("no fields to update")
				return nil
			}

			if err := c.mutate(args[0], func(store *diagram.Store) error {
				return store.UpdateShape(args[1], patch)
			}); err != nil {
				return err
			}

			printSuccess("updated shape %s", styleID.Render(args[1]))
			return nil
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0, "new x position")
	cmd.Flags().Float64Var(&y, "y", 0, "new y position")
	cmd.Flags().Float64Var(&width, "width", 0, "new width")
	cmd.Flags().Float64Var(&height, "height", 0, "new height")
	cmd.Flags().Float64Var(&rotation, "rotation", 0, "new rotation in degrees")
	cmd.Flags().Float64Var(&strokeW, "stroke-width", 0, "new stroke width")
	cmd.Flags().StringVar(&fill, "fill", "", "new fill color")
	cmd.Flags().StringVar(&stroke, "stroke", "", "new stroke color")
	cmd.Flags().StringVar(&text, "text", "", "new text content")

	return cmd
}

func (c *CLI) shapeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <file> <id>",
		Short: "Delete a shape and every connector attached to it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var removed int
			if err := c.mutate(args[0], func(store *diagram.Store) error {
				before := len(store.Connectors())
				if err := store.DeleteShape(args[1]); err != nil {
					return err
				}
				removed = before - len(store.Connectors())
				return nil
			}); err != nil {
				return err
			}

			msg := fmt.Sprintf("deleted shape %s", styleID.Render(args[1]))
			if removed > 0 {
				msg += styleDim.Render(fmt.Sprintf(" (+%d connectors)", removed))
			}
			printSuccess("%s", msg)
			return nil
		},
	}
}
