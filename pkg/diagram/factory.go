package diagram

import (
	"github.com/matzehuels/diagrid/pkg/errors"
)

// Default geometry and style for factory-built shapes.
const (
	defaultShapeSize   = 100.0
	defaultFill        = "#4f46e5"
	defaultStroke      = "#3730a3"
	defaultStrokeWidth = 2.0
	defaultText        = "Text"
)

// NewDefaultShape builds a shape of the given kind at (x, y) with the
// engine's default geometry and style: 100x100, no rotation, indigo fill
// and stroke, 2-unit stroke width. Text-kind shapes get the placeholder
// text "Text"; all other kinds have no text.
//
// The id is drawn from gen. Returns an INVALID_KIND error for an
// unrecognized kind.
func NewDefaultShape(gen IDGenerator, kind Kind, x, y float64) (Shape, error) {
	if !kind.valid() {
		return Shape{}, errors.New(errors.ErrCodeInvalidKind, "unknown shape kind %q", string(kind))
	}

	s := Shape{
		ID:          gen.NewID(),
		Kind:        kind,
		X:           x,
		Y:           y,
		Width:       defaultShapeSize,
		Height:      defaultShapeSize,
		Rotation:    0,
		Fill:        defaultFill,
		Stroke:      defaultStroke,
		StrokeWidth: defaultStrokeWidth,
	}
	if kind == KindText {
		t := defaultText
		s.Text = &t
	}
	return s, nil
}
