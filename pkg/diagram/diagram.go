package diagram

import (
	"github.com/matzehuels/diagrid/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Kind identifies the visual variant of a shape.
// The set is fixed; unknown kinds are a schema violation.
type Kind string

// Shape kinds.
const (
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindDiamond   Kind = "diamond"
	KindText      Kind = "text"
)

// Kinds returns all valid shape kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindRectangle, KindCircle, KindDiamond, KindText}
}

// valid reports whether k is one of the known shape kinds.
func (k Kind) valid() bool {
	switch k {
	case KindRectangle, KindCircle, KindDiamond, KindText:
		return true
	}
	return false
}

// Default settings values, matching the engine's historical defaults.
const (
	DefaultBackgroundColor = "#ffffff"
	DefaultGridSize        = 20.0
)

// =============================================================================
// Shape
// =============================================================================

// Shape is a positioned, styled visual element.
//
// X and Y locate the top-left corner in diagram-space units. Width and
// Height are non-negative extents; zero is legal. Rotation is in degrees
// with no constrained range - its meaning is up to the renderer, and
// hit-testing ignores it. Fill and Stroke are opaque color strings; the
// engine performs no color validation.
//
// Text is meaningful only for text-kind shapes, but this is not enforced.
type Shape struct {
	ID          string  `json:"id"`
	Kind        Kind    `json:"type"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Rotation    float64 `json:"rotation"`
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
	Text        *string `json:"text,omitempty"`
}

// Validate checks that the shape conforms to the schema.
// Returns an INVALID_SHAPE or INVALID_KIND error describing the first
// violation found, or nil if the shape is valid.
func (s Shape) Validate() error {
	if s.ID == "" {
		return errors.New(errors.ErrCodeInvalidShape, "shape id cannot be empty")
	}
	if !s.Kind.valid() {
		return errors.New(errors.ErrCodeInvalidKind, "unknown shape kind %q", string(s.Kind))
	}
	if s.Width < 0 {
		return errors.New(errors.ErrCodeInvalidShape, "shape %s: width must be non-negative, got %v", s.ID, s.Width)
	}
	if s.Height < 0 {
		return errors.New(errors.ErrCodeInvalidShape, "shape %s: height must be non-negative, got %v", s.ID, s.Height)
	}
	if s.StrokeWidth < 0 {
		return errors.New(errors.ErrCodeInvalidShape, "shape %s: strokeWidth must be non-negative, got %v", s.ID, s.StrokeWidth)
	}
	return nil
}

// clone returns a deep copy of the shape, including the optional text.
func (s Shape) clone() Shape {
	out := s
	if s.Text != nil {
		t := *s.Text
		out.Text = &t
	}
	return out
}

// =============================================================================
// Connector
// =============================================================================

// Connector is a directed link between two shapes, referenced by id.
//
// References are weak: adding a connector does not require its endpoints
// to exist, so dangling connectors are a legal transient state. Deleting
// a shape cascades to every connector referencing it, so the diagram
// never holds a dangling reference across operations that could observe
// one being created by deletion.
//
// FromAnchor and ToAnchor are opaque anchor-point labels, uninterpreted
// by the engine.
type Connector struct {
	ID          string  `json:"id"`
	FromShapeID string  `json:"fromShapeId"`
	ToShapeID   string  `json:"toShapeId"`
	FromAnchor  string  `json:"fromAnchor"`
	ToAnchor    string  `json:"toAnchor"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
}

// Validate checks that the connector conforms to the schema.
// Endpoint ids must be present but are NOT checked against the current
// shape set - that is the documented permissive contract.
func (c Connector) Validate() error {
	if c.ID == "" {
		return errors.New(errors.ErrCodeInvalidConnector, "connector id cannot be empty")
	}
	if c.FromShapeID == "" {
		return errors.New(errors.ErrCodeInvalidConnector, "connector %s: fromShapeId cannot be empty", c.ID)
	}
	if c.ToShapeID == "" {
		return errors.New(errors.ErrCodeInvalidConnector, "connector %s: toShapeId cannot be empty", c.ID)
	}
	if c.StrokeWidth < 0 {
		return errors.New(errors.ErrCodeInvalidConnector, "connector %s: strokeWidth must be non-negative, got %v", c.ID, c.StrokeWidth)
	}
	return nil
}

// References reports whether the connector references the given shape id
// at either end.
func (c Connector) References(shapeID string) bool {
	return c.FromShapeID == shapeID || c.ToShapeID == shapeID
}

// =============================================================================
// Settings
// =============================================================================

// Settings holds diagram-level display settings.
type Settings struct {
	BackgroundColor string  `json:"backgroundColor"`
	GridEnabled     bool    `json:"gridEnabled"`
	SnapToGrid      bool    `json:"snapToGrid"`
	GridSize        float64 `json:"gridSize"`
}

// DefaultSettings returns the settings a freshly created diagram starts
// with: white background, grid on, snapping on, 20-unit grid.
func DefaultSettings() Settings {
	return Settings{
		BackgroundColor: DefaultBackgroundColor,
		GridEnabled:     true,
		SnapToGrid:      true,
		GridSize:        DefaultGridSize,
	}
}

// Validate checks that the settings conform to the schema.
func (s Settings) Validate() error {
	if s.GridSize <= 0 {
		return errors.New(errors.ErrCodeInvalidSettings, "gridSize must be positive, got %v", s.GridSize)
	}
	return nil
}

// =============================================================================
// Diagram - Aggregate Root
// =============================================================================

// Diagram is the aggregate root: shapes, connectors, settings, and
// timestamps. Shape order is the z-order - later entries render on top.
//
// CreatedAt is set once at construction and never changes. UpdatedAt is
// refreshed on every successful mutation. Both are ISO-8601 strings
// supplied by the host [Clock].
type Diagram struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Shapes     []Shape     `json:"shapes"`
	Connectors []Connector `json:"connectors"`
	Settings   Settings    `json:"settings"`
	CreatedAt  string      `json:"createdAt"`
	UpdatedAt  string      `json:"updatedAt"`
}

// Validate checks that the whole diagram conforms to the schema.
// Each shape, connector, and the settings are validated in turn.
// Referential integrity between connectors and shapes is deliberately
// not checked: dangling connectors are legal in serialized form.
func (d Diagram) Validate() error {
	if d.ID == "" {
		return errors.New(errors.ErrCodeInvalidDiagram, "diagram id cannot be empty")
	}
	for _, s := range d.Shapes {
		if err := s.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDiagram, err, "shape %q", s.ID)
		}
	}
	for _, c := range d.Connectors {
		if err := c.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDiagram, err, "connector %q", c.ID)
		}
	}
	if err := d.Settings.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDiagram, err, "settings")
	}
	return nil
}

// clone returns a deep copy of the diagram.
func (d Diagram) clone() Diagram {
	out := d
	out.Shapes = cloneShapes(d.Shapes)
	out.Connectors = make([]Connector, len(d.Connectors))
	copy(out.Connectors, d.Connectors)
	return out
}

func cloneShapes(shapes []Shape) []Shape {
	out := make([]Shape, len(shapes))
	for i, s := range shapes {
		out[i] = s.clone()
	}
	return out
}
