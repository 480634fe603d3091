// Package io provides JSON import and export for diagram documents.
//
// # Overview
//
// The diagram engine itself performs no I/O: [diagram.Load] and
// [diagram.Store.Serialize] work on byte slices, and it is the host's
// job to move those bytes in and out of the world. This package is that
// host-side plumbing for files and streams. The format is the diagram
// schema itself:
//
//	{
//	  "id": "...", "name": "...",
//	  "shapes": [...], "connectors": [...],
//	  "settings": {...},
//	  "createdAt": "...", "updatedAt": "..."
//	}
//
// # Import
//
// Use [ImportJSON] to read a diagram from a file path, or [ReadJSON] to
// read from any io.Reader:
//
//	store, err := io.ImportJSON("flow.json", diagram.SystemClock{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions validate the document against the diagram schema; a
// malformed document fails all-or-nothing with an INVALID_DIAGRAM error,
// and a missing file with NOT_FOUND_FILE.
//
// # Export
//
// Use [ExportJSON] to write a diagram to a file, or [WriteJSON] to write
// to any io.Writer. Output is indented for readability and re-imports
// identically: import, mutate, export, and re-import is the intended
// round trip.
package io
