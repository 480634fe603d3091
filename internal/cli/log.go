package cli

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/diagrid/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// RegisterHooks wires the engine's observability hooks to the CLI
// logger. Store mutations and codec events are logged at debug level,
// failures at warn. Call once at startup, before any store operations.
func (c *CLI) RegisterHooks() {
	observability.SetStoreHooks(&logStoreHooks{logger: c.Logger})
	observability.SetCodecHooks(&logCodecHooks{logger: c.Logger})
}

// logStoreHooks logs store mutation events.
type logStoreHooks struct {
	logger *log.Logger
}

func (h *logStoreHooks) OnMutation(op, elementID string, err error) {
	if err != nil {
		h.logger.Warn("mutation failed", "op", op, "id", elementID, "err", err)
		return
	}
	h.logger.Debug("mutation applied", "op", op, "id", elementID)
}

// logCodecHooks logs diagram load/serialize events.
type logCodecHooks struct {
	logger *log.Logger
}

func (h *logCodecHooks) OnLoad(shapeCount, connectorCount int, err error) {
	if err != nil {
		h.logger.Warn("diagram load failed", "err", err)
		return
	}
	h.logger.Debug("diagram loaded", "shapes", shapeCount, "connectors", connectorCount)
}

func (h *logCodecHooks) OnSerialize(size int, err error) {
	if err != nil {
		h.logger.Warn("diagram serialize failed", "err", err)
		return
	}
	h.logger.Debug("diagram serialized", "bytes", size)
}
