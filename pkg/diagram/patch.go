package diagram

// ShapePatch is a sparse update for a shape: one optional slot per
// mutable field. Nil slots leave the corresponding field untouched, so
// the zero value is a no-op patch. A shape's ID and Kind are fixed at
// creation and have no slot.
//
// The JSON form mirrors the shape schema, so a host can decode a sparse
// payload like {"x": 5, "fill": "#fff"} directly into a ShapePatch.
// Unknown keys are ignored.
type ShapePatch struct {
	X           *float64 `json:"x,omitempty"`
	Y           *float64 `json:"y,omitempty"`
	Width       *float64 `json:"width,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	Rotation    *float64 `json:"rotation,omitempty"`
	Fill        *string  `json:"fill,omitempty"`
	Stroke      *string  `json:"stroke,omitempty"`
	StrokeWidth *float64 `json:"strokeWidth,omitempty"`
	Text        *string  `json:"text,omitempty"`
}

// IsZero reports whether the patch sets no fields.
func (p ShapePatch) IsZero() bool {
	return p.X == nil && p.Y == nil && p.Width == nil && p.Height == nil &&
		p.Rotation == nil && p.Fill == nil && p.Stroke == nil &&
		p.StrokeWidth == nil && p.Text == nil
}

// apply overwrites each field of s for which the patch has a value.
func (p ShapePatch) apply(s *Shape) {
	if p.X != nil {
		s.X = *p.X
	}
	if p.Y != nil {
		s.Y = *p.Y
	}
	if p.Width != nil {
		s.Width = *p.Width
	}
	if p.Height != nil {
		s.Height = *p.Height
	}
	if p.Rotation != nil {
		s.Rotation = *p.Rotation
	}
	if p.Fill != nil {
		s.Fill = *p.Fill
	}
	if p.Stroke != nil {
		s.Stroke = *p.Stroke
	}
	if p.StrokeWidth != nil {
		s.StrokeWidth = *p.StrokeWidth
	}
	if p.Text != nil {
		t := *p.Text
		s.Text = &t
	}
}
