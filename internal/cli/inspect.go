package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/diagrid/pkg/diagram"
)

// inspectCommand creates the inspect command for printing diagram contents.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print a diagram's shapes, connectors, and settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(args[0])
			if err != nil {
				return err
			}
			printDiagram(store.Diagram())
			return nil
		},
	}
}

// printDiagram renders a human-readable summary of the diagram.
func printDiagram(d diagram.Diagram) {
	fmt.Println(styleTitle.Render(d.Name) + " " + styleDim.Render("("+d.ID+")"))
	fmt.Println(styleDim.Render("created " + d.CreatedAt + "  updated " + d.UpdatedAt))
	fmt.Println()

	s := d.Settings
	fmt.Println(styleHeader.Render("Settings"))
	fmt.Printf("  background %s  grid %s  snap %s  size %s\n",
		styleValue.Render(s.BackgroundColor),
		styleValue.Render(onOff(s.GridEnabled)),
		styleValue.Render(onOff(s.SnapToGrid)),
		styleValue.Render(formatFloat(s.GridSize)))
	fmt.Println()

	fmt.Println(styleHeader.Render(fmt.Sprintf("Shapes (%d)", len(d.Shapes))))
	for _, sh := range d.Shapes {
		line := fmt.Sprintf("  %s  %-9s at (%s, %s)  %s×%s",
			styleID.Render(sh.ID),
			string(sh.Kind),
			formatFloat(sh.X), formatFloat(sh.Y),
			formatFloat(sh.Width), formatFloat(sh.Height))
		if sh.Text != nil {
			line += "  " + styleDim.Render(fmt.Sprintf("%q", *sh.Text))
		}
		fmt.Println(line)
	}
	fmt.Println()

	fmt.Println(styleHeader.Render(fmt.Sprintf("Connectors (%d)", len(d.Connectors))))
	for _, cn := range d.Connectors {
		fmt.Printf("  %s  %s %s %s\n",
			styleID.Render(cn.ID),
			styleValue.Render(cn.FromShapeID),
			styleDim.Render(iconArrow),
			styleValue.Render(cn.ToShapeID))
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// formatFloat renders a coordinate without trailing zeros.
func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
