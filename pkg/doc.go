// Package pkg provides the core libraries for Diagrid diagram editing.
//
// # Overview
//
// Diagrid is an in-memory document model for 2D diagrams: shapes,
// connectors between them, and canvas settings, with JSON round-trip
// serialization and geometric queries. The pkg directory is organized
// into four areas:
//
//  1. [diagram] - Domain logic (document model, store, geometry, factory)
//  2. [io] - File import/export (JSON diagram files)
//  3. [errors] - Structured error handling with error codes
//  4. [observability] - Hook interfaces for logging and metrics
//
// # Quick Start
//
// Create a diagram, add shapes, and connect them:
//
//	import "github.com/matzehuels/diagrid/pkg/diagram"
//
//	// 1. Create an empty store
//	ids := diagram.UUIDGenerator{}
//	store := diagram.New(ids.NewID(), "Order Flow", diagram.SystemClock{})
//
//	// 2. Add shapes
//	a, _ := diagram.NewDefaultShape(ids, diagram.KindRectangle, 40, 120)
//	b, _ := diagram.NewDefaultShape(ids, diagram.KindCircle, 300, 120)
//	_ = store.AddShape(a)
//	_ = store.AddShape(b)
//
//	// 3. Connect them
//	_ = store.AddConnector(diagram.Connector{
//	    ID:          ids.NewID(),
//	    FromShapeID: a.ID,
//	    ToShapeID:   b.ID,
//	})
//
//	// 4. Serialize
//	data, _ := store.Serialize()
//
// # Main Packages
//
// [diagram] - The document model and its store. Shapes carry position,
// extent, rotation, and style; connectors reference shapes by id; settings
// control the canvas grid. Deleting a shape removes every connector
// attached to it. Grid snapping and hit-testing run against the store's
// current state.
//
// [io] - Reads and writes diagram JSON files, validating paths and
// document structure on the way in.
//
// [errors] - Error type with machine-readable codes split into a
// malformed-input family (INVALID_*) and a not-found family (NOT_FOUND_*).
//
// [observability] - Mutation and codec hooks with no-op defaults, so the
// library stays logging-framework-free while hosts wire in real loggers.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/diagram/...  # Specific package
//	go test -run Example       # Examples only
//
// [diagram]: https://pkg.go.dev/github.com/matzehuels/diagrid/pkg/diagram
// [io]: https://pkg.go.dev/github.com/matzehuels/diagrid/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/diagrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/diagrid/pkg/observability
package pkg
