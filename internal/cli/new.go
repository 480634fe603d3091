package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/diagrid/pkg/diagram"
	"github.com/matzehuels/diagrid/pkg/errors"
)

// newCommand creates the new command for starting an empty diagram file.
func (c *CLI) newCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create an empty diagram file",
		Long: `Create an empty diagram file with default settings.

The diagram id is a generated UUID. Initial settings can be overridden
via ~/.config/diagrid/config.toml.

Examples:
  diagrid new "Order Flow"                 # writes order-flow.json
  diagrid new "Order Flow" -o flow.json    # explicit output path`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := errors.ValidateDiagramName(name); err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store := diagram.New(c.ids.NewID(), name, c.clock)
			if settings := cfg.initialSettings(); settings != diagram.DefaultSettings() {
				if err := store.UpdateSettings(settings); err != nil {
					return err
				}
			}

			path := output
			if path == "" {
				path = slugify(name) + ".json"
			}
			if err := c.saveStore(store, path); err != nil {
				return err
			}

			printSuccess("created diagram %s %s", styleValue.Render(name), styleDim.Render("("+path+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (derived from name if empty)")

	return cmd
}

// slugify converts a diagram name to a filesystem-friendly basename.
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	slug = strings.ReplaceAll(slug, "/", "-")
	if slug == "" {
		return appName
	}
	return slug
}
