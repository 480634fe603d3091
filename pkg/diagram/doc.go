// Package diagram provides the in-memory document model for 2D diagrams:
// shapes, connectors between shapes, diagram-level settings, and the
// mutation and query contract a rendering or UI layer builds on.
//
// # Overview
//
// A [Diagram] is an aggregate of an ordered shape sequence (position in
// the sequence is the z-order), an ordered connector sequence, one
// [Settings] value, and creation/update timestamps. A [Store] owns one
// diagram and is the only way to mutate it; every mutation is validated
// up front and either fully succeeds or leaves the state untouched.
//
// # Basic Usage
//
// Create a store with [New], add shapes with [Store.AddShape], and link
// them with [Store.AddConnector]:
//
//	store := diagram.New("d1", "Flow", diagram.SystemClock{})
//	shape, _ := diagram.NewDefaultShape(diagram.UUIDGenerator{}, diagram.KindRectangle, 40, 40)
//	_ = store.AddShape(shape)
//
// Serialize and reload with [Store.Serialize] and [Load]; the JSON form
// round-trips field-for-field.
//
// # Referential Integrity
//
// Connectors reference shapes weakly, by id. Adding a connector does not
// require its endpoints to exist, but [Store.DeleteShape] atomically
// removes every connector referencing the deleted shape, so deletion
// never leaves a dangling reference behind.
//
// # Host Collaborators
//
// Timestamps and element ids are environment-supplied, so the engine
// takes them through the [Clock] and [IDGenerator] interfaces. Production
// hosts use [SystemClock] and [UUIDGenerator]; tests substitute
// deterministic fakes.
//
// # Concurrency
//
// Store instances are not safe for concurrent use. Every operation runs
// synchronously to completion with no I/O; hosts needing shared access
// must serialize it externally.
package diagram
