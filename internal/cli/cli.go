// Package cli implements the diagrid command-line interface.
//
// This package provides commands for creating diagram files, mutating
// their shapes, connectors, and settings, and running geometric queries
// against them. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - new: Create an empty diagram file
//   - inspect: Print a diagram's shapes, connectors, and settings
//   - shape: Add, update, or delete shapes
//   - connector: Add or delete connectors
//   - settings: Replace diagram settings
//   - query: Grid snapping and hit-testing
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. With
// verbose on, every store mutation is logged through the engine's
// observability hooks.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/diagrid/pkg/buildinfo"
	"github.com/matzehuels/diagrid/pkg/diagram"
	pkgio "github.com/matzehuels/diagrid/pkg/io"
)

// appName is the application name used for config directories and display.
const appName = "diagrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	clock diagram.Clock
	ids   diagram.IDGenerator
}

// New creates a new CLI instance with a default logger and the system
// clock and UUID id generator as host collaborators.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		clock:  diagram.SystemClock{},
		ids:    diagram.UUIDGenerator{},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "diagrid",
		Short:        "Diagrid edits and inspects diagram documents",
		Long:         `Diagrid is a CLI for diagram documents: it creates diagram files, mutates their shapes and connectors with full referential cleanup, and answers grid-snap and hit-test queries.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.newCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.shapeCommand())
	root.AddCommand(c.connectorCommand())
	root.AddCommand(c.settingsCommand())
	root.AddCommand(c.queryCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Diagram File Helpers
// =============================================================================

// openStore loads the diagram file at path into a store.
func (c *CLI) openStore(path string) (*diagram.Store, error) {
	c.Logger.Debugf("loading diagram from %s", path)
	return pkgio.ImportJSON(path, c.clock)
}

// saveStore writes the store back to the diagram file at path.
func (c *CLI) saveStore(store *diagram.Store, path string) error {
	c.Logger.Debugf("writing diagram to %s", path)
	return pkgio.ExportJSON(store, path)
}

// mutate runs fn against the diagram file at path and writes the result
// back on success. Failed mutations leave the file untouched.
func (c *CLI) mutate(path string, fn func(*diagram.Store) error) error {
	store, err := c.openStore(path)
	if err != nil {
		return err
	}
	if err := fn(store); err != nil {
		return err
	}
	return c.saveStore(store, path)
}
