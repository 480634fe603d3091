// Package observability provides hooks for instrumenting the diagram engine.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific logging or metrics backends. Consumers register hooks at startup
// to receive events about store mutations and codec operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the engine dependency-free from observability frameworks
//   - Allows different backends (structured logging, metrics, tracing)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// The engine calls hooks to emit events:
//
//	observability.Store().OnMutation("add_shape", shape.ID, err)
package observability

import "sync"

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from diagram store operations.
//
// OnMutation fires after every mutating operation, successful or not;
// a nil err means the state changed. elementID is the shape or connector
// id the operation targeted, or empty for settings updates.
type StoreHooks interface {
	OnMutation(op, elementID string, err error)
}

// =============================================================================
// Codec Hooks
// =============================================================================

// CodecHooks receives events from diagram serialization.
type CodecHooks interface {
	// OnLoad records a deserialization attempt.
	OnLoad(shapeCount, connectorCount int, err error)

	// OnSerialize records a serialization attempt with the output size in bytes.
	OnSerialize(size int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnMutation(string, string, error) {}

// NoopCodecHooks is a no-op implementation of CodecHooks.
type NoopCodecHooks struct{}

func (NoopCodecHooks) OnLoad(int, int, error) {}
func (NoopCodecHooks) OnSerialize(int, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	storeHooks StoreHooks = NoopStoreHooks{}
	codecHooks CodecHooks = NoopCodecHooks{}
	hooksMu    sync.RWMutex
)

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// SetCodecHooks registers custom codec hooks.
// This should be called once at application startup before any codec operations.
func SetCodecHooks(h CodecHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		codecHooks = h
	}
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Codec returns the registered codec hooks.
func Codec() CodecHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return codecHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	storeHooks = NoopStoreHooks{}
	codecHooks = NoopCodecHooks{}
}
