package io

import (
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/diagrid/pkg/diagram"
	"github.com/matzehuels/diagrid/pkg/errors"
)

// ReadJSON decodes a serialized diagram from r into a new store.
//
// The input must conform to the diagram schema; decoding is
// all-or-nothing and returns an INVALID_DIAGRAM error on any schema
// violation, with no partial store constructed. Timestamps are taken
// from the document; clock is used for subsequent mutations only.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader, clock diagram.Clock) (*diagram.Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return diagram.Load(data, clock)
}

// ImportJSON reads the diagram file at path and returns a store holding
// the decoded document.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. A missing file is reported as NOT_FOUND_FILE; other open
// failures and schema violations are returned wrapped with the path for
// context.
func ImportJSON(path string, clock diagram.Clock) (*diagram.Store, error) {
	if err := errors.ValidateDiagramPath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "no diagram file at %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	store, err := ReadJSON(f, clock)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}
