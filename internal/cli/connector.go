package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/diagrid/pkg/diagram"
)

// Default connector style, matching the engine's shape stroke defaults.
const (
	defaultConnectorStroke      = "#3730a3"
	defaultConnectorStrokeWidth = 2.0
	defaultAnchor               = "center"
)

// connectorCommand creates the connector command with add/delete subcommands.
func (c *CLI) connectorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connector",
		Short: "Add or delete connectors between shapes",
	}

	cmd.AddCommand(c.connectorAddCommand())
	cmd.AddCommand(c.connectorDeleteCommand())

	return cmd
}

func (c *CLI) connectorAddCommand() *cobra.Command {
	var (
		fromAnchor, toAnchor string
		stroke               string
		strokeWidth          float64
	)

	cmd := &cobra.Command{
		Use:   "add <file> <from-shape-id> <to-shape-id>",
		Short: "Add a connector between two shapes",
		Long: `Add a directed connector between two shapes.

The endpoints are referenced by id and are not checked against the
current shape set: a connector to a shape you are about to add is legal.
Deleting either endpoint later removes the connector.

Example:
  diagrid connector add flow.json 4a1c... 9f2e... --from-anchor right --to-anchor left`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn := diagram.Connector{
				ID:          c.ids.NewID(),
				FromShapeID: args[1],
				ToShapeID:   args[2],
				FromAnchor:  fromAnchor,
				ToAnchor:    toAnchor,
				Stroke:      stroke,
				StrokeWidth: strokeWidth,
			}

			if err := c.mutate(args[0], func(store *diagram.Store) error {
				return store.AddConnector(conn)
			}); err != nil {
				return err
			}

			printSuccess("added connector %s", styleID.Render(conn.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromAnchor, "from-anchor", defaultAnchor, "anchor label on the source shape")
	cmd.Flags().StringVar(&toAnchor, "to-anchor", defaultAnchor, "anchor label on the target shape")
	cmd.Flags().StringVar(&stroke, "stroke", defaultConnectorStroke, "stroke color")
	cmd.Flags().Float64Var(&strokeWidth, "stroke-width", defaultConnectorStrokeWidth, "stroke width")

	return cmd
}

func (c *CLI) connectorDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <file> <id>",
		Short: "Delete a connector",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.mutate(args[0], func(store *diagram.Store) error {
				return store.DeleteConnector(args[1])
			}); err != nil {
				return err
			}

			printSuccess("deleted connector %s", styleID.Render(args[1]))
			return nil
		},
	}
}
