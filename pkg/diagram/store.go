package diagram

import (
	"encoding/json"
	"slices"

	"github.com/matzehuels/diagrid/pkg/errors"
	"github.com/matzehuels/diagrid/pkg/observability"
)

// Operation names reported to observability hooks.
const (
	opAddShape        = "add_shape"
	opUpdateShape     = "update_shape"
	opDeleteShape     = "delete_shape"
	opAddConnector    = "add_connector"
	opDeleteConnector = "delete_connector"
	opUpdateSettings  = "update_settings"
)

// Store owns a single Diagram aggregate and applies validated mutations.
//
// Every mutation is atomic with respect to the referential invariant:
// either it fully succeeds (the state transitions and UpdatedAt advances)
// or it fully fails (state and timestamp unchanged). Validation always
// runs before any state is touched.
//
// Store is not safe for concurrent use. It assumes single-writer,
// single-reader-at-a-time ownership by its host; hosts needing shared
// access must serialize it externally (e.g., one store per session).
type Store struct {
	diagram Diagram
	clock   Clock
}

// New creates a store holding an empty diagram with default settings.
// CreatedAt and UpdatedAt are both set to the clock's current time.
// New never fails.
func New(id, name string, clock Clock) *Store {
	now := clock.Now()
	return &Store{
		clock: clock,
		diagram: Diagram{
			ID:         id,
			Name:       name,
			Shapes:     []Shape{},
			Connectors: []Connector{},
			Settings:   DefaultSettings(),
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
}

// Load constructs a store from the serialized diagram form.
//
// The parse is all-or-nothing: if the data is not valid JSON or does not
// conform to the diagram schema, an INVALID_DIAGRAM error is returned
// and no partial state is constructed. Timestamps are taken from the
// serialized form, not refreshed.
func Load(data []byte, clock Clock) (*Store, error) {
	var d Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		wrapped := errors.Wrap(errors.ErrCodeInvalidDiagram, err, "parse diagram")
		observability.Codec().OnLoad(0, 0, wrapped)
		return nil, wrapped
	}
	if err := d.Validate(); err != nil {
		observability.Codec().OnLoad(0, 0, err)
		return nil, err
	}
	if d.Shapes == nil {
		d.Shapes = []Shape{}
	}
	if d.Connectors == nil {
		d.Connectors = []Connector{}
	}
	observability.Codec().OnLoad(len(d.Shapes), len(d.Connectors), nil)
	return &Store{diagram: d, clock: clock}, nil
}

// Serialize produces the external JSON representation of the diagram.
//
// Serialization of a well-formed in-memory diagram does not fail under
// normal operation; an error here indicates internal state corruption
// and is reported as INTERNAL_ERROR.
func (s *Store) Serialize() ([]byte, error) {
	data, err := json.Marshal(s.diagram)
	if err != nil {
		wrapped := errors.Wrap(errors.ErrCodeInternal, err, "serialize diagram")
		observability.Codec().OnSerialize(0, wrapped)
		return nil, wrapped
	}
	observability.Codec().OnSerialize(len(data), nil)
	return data, nil
}

// =============================================================================
// Mutations
// =============================================================================

// AddShape validates the shape and appends it to the end of the shape
// sequence, placing it at the top of the z-order. Returns an INVALID_*
// error on schema violation.
//
// Id uniqueness is not checked: id generation is the host's
// responsibility, and a duplicate id is a documented (if degenerate)
// transient state rather than an error.
func (s *Store) AddShape(shape Shape) error {
	if err := shape.Validate(); err != nil {
		observability.Store().OnMutation(opAddShape, shape.ID, err)
		return err
	}
	s.diagram.Shapes = append(s.diagram.Shapes, shape.clone())
	s.touch()
	observability.Store().OnMutation(opAddShape, shape.ID, nil)
	return nil
}

// UpdateShape applies a sparse patch to the shape with the given id:
// each set slot overwrites its field, unset slots leave fields untouched.
// Returns a NOT_FOUND_SHAPE error if no shape has that id; in that case
// state and timestamp are unchanged.
func (s *Store) UpdateShape(id string, patch ShapePatch) error {
	i := slices.IndexFunc(s.diagram.Shapes, func(sh Shape) bool { return sh.ID == id })
	if i < 0 {
		err := errors.New(errors.ErrCodeShapeNotFound, "no shape with id %q", id)
		observability.Store().OnMutation(opUpdateShape, id, err)
		return err
	}
	patch.apply(&s.diagram.Shapes[i])
	s.touch()
	observability.Store().OnMutation(opUpdateShape, id, nil)
	return nil
}

// DeleteShape removes the shape with the given id and, in the same
// atomic step, every connector that references it at either end.
// Returns a NOT_FOUND_SHAPE error if no shape matched; the cascade does
// not run and the timestamp is unchanged.
func (s *Store) DeleteShape(id string) error {
	before := len(s.diagram.Shapes)
	s.diagram.Shapes = slices.DeleteFunc(s.diagram.Shapes, func(sh Shape) bool { return sh.ID == id })
	if len(s.diagram.Shapes) == before {
		err := errors.New(errors.ErrCodeShapeNotFound, "no shape with id %q", id)
		observability.Store().OnMutation(opDeleteShape, id, err)
		return err
	}
	s.diagram.Connectors = slices.DeleteFunc(s.diagram.Connectors, func(c Connector) bool { return c.References(id) })
	s.touch()
	observability.Store().OnMutation(opDeleteShape, id, nil)
	return nil
}

// AddConnector validates the connector and appends it to the connector
// sequence. The endpoint shape ids are required but their existence is
// not checked, so a dangling connector can be created deliberately.
// Returns an INVALID_CONNECTOR error on schema violation.
func (s *Store) AddConnector(c Connector) error {
	if err := c.Validate(); err != nil {
		observability.Store().OnMutation(opAddConnector, c.ID, err)
		return err
	}
	s.diagram.Connectors = append(s.diagram.Connectors, c)
	s.touch()
	observability.Store().OnMutation(opAddConnector, c.ID, nil)
	return nil
}

// DeleteConnector removes the connector with the given id. Returns a
// NOT_FOUND_CONNECTOR error if no connector matched; state and
// timestamp are unchanged.
func (s *Store) DeleteConnector(id string) error {
	before := len(s.diagram.Connectors)
	s.diagram.Connectors = slices.DeleteFunc(s.diagram.Connectors, func(c Connector) bool { return c.ID == id })
	if len(s.diagram.Connectors) == before {
		err := errors.New(errors.ErrCodeConnectorNotFound, "no connector with id %q", id)
		observability.Store().OnMutation(opDeleteConnector, id, err)
		return err
	}
	s.touch()
	observability.Store().OnMutation(opDeleteConnector, id, nil)
	return nil
}

// UpdateSettings replaces the diagram settings wholesale. Unlike shape
// updates this is a full replace, not a sparse patch. Returns an
// INVALID_SETTINGS error on schema violation.
func (s *Store) UpdateSettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		observability.Store().OnMutation(opUpdateSettings, "", err)
		return err
	}
	s.diagram.Settings = settings
	s.touch()
	observability.Store().OnMutation(opUpdateSettings, "", nil)
	return nil
}

// =============================================================================
// Queries
// =============================================================================

// Shapes returns a copy of the shape sequence in insertion (z-) order.
func (s *Store) Shapes() []Shape {
	return cloneShapes(s.diagram.Shapes)
}

// Connectors returns a copy of the connector sequence in insertion order.
func (s *Store) Connectors() []Connector {
	return slices.Clone(s.diagram.Connectors)
}

// Settings returns the current diagram settings.
func (s *Store) Settings() Settings {
	return s.diagram.Settings
}

// Diagram returns a deep-copied snapshot of the whole aggregate.
func (s *Store) Diagram() Diagram {
	return s.diagram.clone()
}

// touch refreshes UpdatedAt. Called only after a successful mutation.
func (s *Store) touch() {
	s.diagram.UpdatedAt = s.clock.Now()
}
