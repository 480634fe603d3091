package diagram

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current wall-clock time as an ISO-8601 string.
// The store calls it at construction and on every successful mutation.
//
// Timestamps are opaque to the engine: monotonicity of UpdatedAt is only
// as good as the clock behind this interface. Tests substitute a
// deterministic implementation.
type Clock interface {
	Now() string
}

// IDGenerator supplies opaque unique element ids. The store itself never
// generates ids - only the default-shape factory consumes this.
type IDGenerator interface {
	NewID() string
}

// timestampLayout matches the host timestamp format the engine has
// always emitted: UTC with millisecond precision and a literal Z.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// SystemClock is a Clock backed by the system wall clock.
type SystemClock struct{}

// Now returns the current UTC time formatted as ISO-8601.
func (SystemClock) Now() string {
	return time.Now().UTC().Format(timestampLayout)
}

// UUIDGenerator is an IDGenerator producing random (version 4) UUIDs.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Ensure the default implementations satisfy the interfaces.
var (
	_ Clock       = SystemClock{}
	_ IDGenerator = UUIDGenerator{}
)
