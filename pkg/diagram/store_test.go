package diagram

import (
	"fmt"
	"testing"

	"github.com/matzehuels/diagrid/pkg/errors"
)

// fakeClock returns a strictly increasing timestamp on every call.
type fakeClock struct {
	ticks int
}

func (c *fakeClock) Now() string {
	c.ticks++
	return fmt.Sprintf("2024-01-01T00:00:%02d.000Z", c.ticks)
}

// seqIDs generates deterministic sequential ids.
type seqIDs struct {
	n int
}

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// testShape builds a minimal valid shape for store tests.
func testShape(id string) Shape {
	return Shape{
		ID:          id,
		Kind:        KindRectangle,
		X:           10,
		Y:           20,
		Width:       100,
		Height:      50,
		Fill:        "#ffffff",
		Stroke:      "#000000",
		StrokeWidth: 1,
	}
}

func testConnector(id, from, to string) Connector {
	return Connector{
		ID:          id,
		FromShapeID: from,
		ToShapeID:   to,
		FromAnchor:  "right",
		ToAnchor:    "left",
		Stroke:      "#000000",
		StrokeWidth: 1,
	}
}

func TestNew(t *testing.T) {
	store := New("d1", "Test Diagram", &fakeClock{})
	d := store.Diagram()

	if d.ID != "d1" {
		t.Errorf("ID = %q, want %q", d.ID, "d1")
	}
	if d.Name != "Test Diagram" {
		t.Errorf("Name = %q, want %q", d.Name, "Test Diagram")
	}
	if len(d.Shapes) != 0 {
		t.Errorf("Shapes = %d, want 0", len(d.Shapes))
	}
	if len(d.Connectors) != 0 {
		t.Errorf("Connectors = %d, want 0", len(d.Connectors))
	}
	if d.Settings != DefaultSettings() {
		t.Errorf("Settings = %+v, want defaults", d.Settings)
	}
	if d.CreatedAt != d.UpdatedAt {
		t.Errorf("CreatedAt %q != UpdatedAt %q on a fresh diagram", d.CreatedAt, d.UpdatedAt)
	}
}

func TestAddShapePreservesOrder(t *testing.T) {
	store := New("d1", "Test", &fakeClock{})
	created := store.Diagram().UpdatedAt

	if err := store.AddShape(testShape("s1")); err != nil {
		t.Fatalf("AddShape(s1): %v", err)
	}
	afterFirst := store.Diagram().UpdatedAt
	if afterFirst <= created {
		t.Errorf("UpdatedAt did not advance after first add: %q -> %q", created, afterFirst)
	}

	if err := store.AddShape(testShape("s2")); err != nil {
		t.Fatalf("AddShape(s2): %v", err)
	}
	afterSecond := store.Diagram().UpdatedAt
	if afterSecond <= afterFirst {
		t.Errorf("UpdatedAt did not advance after second add: %q -> %q", afterFirst, afterSecond)
	}

	shapes := store.Shapes()
	if len(shapes) != 2 {
		t.Fatalf("len(Shapes) = %d, want 2", len(shapes))
	}
	if shapes[0].ID != "s1" || shapes[1].ID != "s2" {
		t.Errorf("shape order = [%s %s], want [s1 s2]", shapes[0].ID, shapes[1].ID)
	}
}

func TestAddShapeValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Shape)
		wantCode errors.Code
	}{
		{"EmptyID", func(s *Shape) { s.ID = "" }, errors.ErrCodeInvalidShape},
		{"UnknownKind", func(s *Shape) { s.Kind = "triangle" }, errors.ErrCodeInvalidKind},
		{"NegativeWidth", func(s *Shape) { s.Width = -1 }, errors.ErrCodeInvalidShape},
		{"NegativeHeight", func(s *Shape) { s.Height = -0.5 }, errors.ErrCodeInvalidShape},
		{"NegativeStrokeWidth", func(s *Shape) { s.StrokeWidth = -2 }, errors.ErrCodeInvalidShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := New("d1", "Test", &fakeClock{})
			before := store.Diagram().UpdatedAt

			shape := testShape("s1")
			tt.mutate(&shape)

			err := store.AddShape(shape)
			if err == nil {
				t.Fatal("AddShape should fail")
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %v, want %v", got, tt.wantCode)
			}
			if len(store.Shapes()) != 0 {
				t.Error("failed add must not append")
			}
			if store.Diagram().UpdatedAt != before {
				t.Error("failed add must not touch UpdatedAt")
			}
		})
	}
}

func TestAddShapeAllowsZeroExtentAndDuplicates(t *testing.T) {
	store := New("d1", "Test", &fakeClock{})

	zero := testShape("s1")
	zero.Width = 0
	zero.Height = 0
	if err := store.AddShape(zero); err != nil {
		t.Fatalf("zero-extent shape should be legal: %v", err)
	}

	// Id uniqueness is the id generator's job, not the store's.
	if err := store.AddShape(testShape("s1")); err != nil {
		t.Fatalf("duplicate id should be accepted: %v", err)
	}
	if got := len(store.Shapes()); got != 2 {
		t.Errorf("len(Shapes) = %d, want 2", got)
	}
}

func TestUpdateShapeSparsePatch(t *testing.T) {
	store := New("d1", "Test", &fakeClock{})
	shape := testShape("s1")
	shape.X, shape.Y, shape.Width, shape.Height = 1, 2, 3, 4
	if err := store.AddShape(shape); err != nil {
		t.Fatalf("AddShape: %v", err)
	}

	x := 5.0
	if err := store.UpdateShape("s1", ShapePatch{X: &x}); err != nil {
		t.Fatalf("UpdateShape: %v", err)
	}

	got := store.Shapes()[0]
	if got.X != 5 || got.Y != 2 || got.Width != 3 || got.Height != 4 {
		t.Errorf("shape = {x:%v y:%v w:%v h:%v}, want {x:5 y:2 w:3 h:4}", got.X, got.Y, got.Width, got.Height)
	}
	if got.Fill != shape.Fill || got.Stroke != shape.Stroke {
		t.Error("unpatched style fields must be untouched")
	}
}

func TestUpdateShapeAllFields(t *testing.T) {
	store := New("d1", "Test", &fakeClock{})
	if err := store.AddShape(testShape("s1")); err != nil {
		t.Fatalf("AddShape: %v", err)
	}

	x, y, w, h := 11.0, 12.0, 13.0, 14.0
	rot, sw := 45.0, 3.5
	fill, stroke, text := "#111111", "#222222", "hello"
	patch := ShapePatch{
		X: &x, Y: &y, Width: &w, Height: &h,
		Rotation: &rot, StrokeWidth: &sw,
		Fill: &fill, Stroke: &stroke, Text: &text,
	}
	if err := store.UpdateShape("s1", patch); err != nil {
		t.Fatalf("UpdateShape: %v", err)
	}

	got := store.Shapes()[0]
	if got.X != 11 || got.Y != 12 || got.Width != 13 || got.Height != 14 {
		t.Errorf("geometry = {%v %v %v %v}, want {11 12 13 14}", got.X, got.Y, got.Width, got.Height)
	}
	if got.Rotation != 45 || got.StrokeWidth != 3.5 {
		t.Errorf("rotation/strokeWidth = %v/%v, want 45/3.5", got.Rotation, got.StrokeWidth)
	}
	if got.Fill != "#111111" || got.Stroke != "#222222" {
		t.Errorf("fill/stroke = %q/%q", got.Fill, got.Stroke)
	}
	if got.Text == nil || *got.Text != "hello" {
		t.Errorf("text = %v, want hello", got.Text)
	}
	if got.ID != "s1" || got.Kind != KindRectangle {
		t.Error("id and kind must be immutable")
	}
}

func TestUpdateShapeNotFound(t *testing.T) {
	store := New("d1", "Test", &fakeClock{})
	if err := store.AddShape(testShape("s1")); err != nil {
		t.Fatalf("AddShape: %v", err)
	}
	before := store.Diagram().UpdatedAt

	x := 5.0
	err := store.UpdateShape("nonexistent", ShapePatch{X: &x})
	if !errors.Is(err, errors.ErrCodeShapeNotFound) {
		t.Fatalf("err = %v, want NOT_FOUND_SHAPE", err)
	}
	if store.Diagram().UpdatedAt != before {
		t.Error("failed update must not touch UpdatedAt")
	}
}

func TestDeleteShapeCascades(t *testing.T) {
	store := New("d1", "Test", &fakeClock{})
	for _, id := range []string{"s1", "s2", "s3"} {
		if err := store.AddShape(testShape(id)); err != nil {
			t.Fatalf("AddShape(%s): %v", id, err)
		}
	}
	for _, c := range []Connector{
		testConnector("c1", "s1", "s2"),
		testConnector("c2", "s2", "s3"),
		testConnector("c3", "s3", "s1"),
	} {
		if err := store.AddConnector(c); err != nil {
			t.Fatalf("AddConnector(%s): %v", c.ID, err)
		}
	}

	if err := store.DeleteShape("s2"); err != nil {
		t.Fatalf("DeleteShape: %v", err)
	}

	shapes := store.Shapes()
	if len(shapes) != 2 {
		t.Fatalf("len(Shapes) = %d, want 2", len(shapes))
	}
	for _, s := range shapes {
		if s.ID == "s2" {
			t.Error("s2 should be gone")
		}
	}

	// c1 and c2 reference s2 at one end; only c3 survives.
	conns := store.Connectors()
	if len(conns) != 1 || conns[0].ID != "c3" {
		t.Errorf("connectors after cascade = %v, want [c3]", conns)
	}
}

func TestDeleteShapeNotFound(t *testing.T) {
	store := New("d1", "Test", &fakeClock{})
	if err := store.AddShape(testShape("s1")); err != nil {
		t.Fatalf("AddShape: %v", err)
	}
	if err := store.AddConnector(testConnector("c1", "s1", "ghost")); err != nil {
		t.Fatalf("AddConnector: %v", err)
	}
	before := store.Diagram().UpdatedAt

	err := store.DeleteShape("nonexistent")
	if !errors.Is(err, errors.ErrCodeShapeNotFound) {
		t.Fatalf("err = %v, want NOT_FOUND_SHAPE", err)
	}
	if store.Diagram().UpdatedAt != before {
		t.Error("failed delete must not touch UpdatedAt")
	}
	if len(store.Connectors()) != 1 {
		t.Error("cascade must not run when the shape is missing")
	}
}

func TestAddConnectorAllowsDanglingEndpoints(t *testing.T) {
	store := New("d1", "Test", &fakeClock{})

	// Endpoints need not exist yet.
	if err := store.AddConnector(testConnector("c1", "later-1", "later-2")); err != nil {
		t.Fatalf("dangling connector should be accepted: %v", err)
	}
	if got := len(store.Connectors()); got != 1 {
		t.Errorf("len(Connectors) = %d, want 1", got)
	}
}

func TestAddConnectorValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Connector)
	}{
		{"EmptyID", func(c *Connector) { c.ID = "" }},
		{"EmptyFrom", func(c *Connector) { c.FromShapeID = "" }},
		{"EmptyTo", func(c *Connector) { c.ToShapeID = "" }},
		{"NegativeStrokeWidth", func(c *Connector) { c.StrokeWidth = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := New("d1", "Test", &fakeClock{})
			conn := testConnector("c1", "s1", "s2")
			tt.mutate(&conn)

			err := store.AddConnector(conn)
			if !errors.Is(err, errors.ErrCodeInvalidConnector) {
				t.Errorf("err = %v, want INVALID_CONNECTOR", err)
			}
			if len(store.Connectors()) != 0 {
				t.Error("failed add must not append")
			}
		})
	}
}

func TestDeleteConnector(t *testing.T) {
	store := New("d1", "Test", &fakeClock{})
	if err := store.AddConnector(testConnector("c1", "s1", "s2")); err != nil {
		t.Fatalf("AddConnector: %v", err)
	}

	if err := store.DeleteConnector("c1"); err != nil {
		t.Fatalf("DeleteConnector: %v", err)
	}
	if len(store.Connectors()) != 0 {
		t.Error("connector should be gone")
	}

	before := store.Diagram().UpdatedAt
	err := store.DeleteConnector("c1")
	if !errors.Is(err, errors.ErrCodeConnectorNotFound) {
		t.Fatalf("err = %v, want NOT_FOUND_CONNECTOR", err)
	}
	if store.Diagram().UpdatedAt != before {
		t.Error("failed delete must not touch UpdatedAt")
	}
}

func TestUpdateSettings(t *testing.T) {
	store := New("d1", "Test", &fakeClock{})

	next := Settings{
		BackgroundColor: "#1e1e1e",
		GridEnabled:     false,
		SnapToGrid:      false,
		GridSize:        10,
	}
	if err := store.UpdateSettings(next); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if got := store.Settings(); got != next {
		t.Errorf("Settings = %+v, want %+v", got, next)
	}

	// Full replace, not a merge: every field comes from the argument.
	if store.Settings().GridEnabled {
		t.Error("GridEnabled should have been replaced to false")
	}
}

func TestUpdateSettingsValidation(t *testing.T) {
	store := New("d1", "Test", &fakeClock{})
	before := store.Settings()

	for _, size := range []float64{0, -5} {
		err := store.UpdateSettings(Settings{BackgroundColor: "#fff", GridSize: size})
		if !errors.Is(err, errors.ErrCodeInvalidSettings) {
			t.Errorf("gridSize %v: err = %v, want INVALID_SETTINGS", size, err)
		}
	}
	if store.Settings() != before {
		t.Error("failed update must not replace settings")
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	store := New("d1", "Test", &fakeClock{})
	text := "original"
	shape := testShape("s1")
	shape.Kind = KindText
	shape.Text = &text
	if err := store.AddShape(shape); err != nil {
		t.Fatalf("AddShape: %v", err)
	}

	// Mutating the snapshot (including through the text pointer) must
	// not write through to the store.
	snap := store.Shapes()
	snap[0].X = 999
	*snap[0].Text = "mutated"

	got := store.Shapes()[0]
	if got.X == 999 {
		t.Error("slice element mutation leaked into the store")
	}
	if *got.Text != "original" {
		t.Error("text pointer mutation leaked into the store")
	}

	// The caller's shape is also decoupled after AddShape.
	text = "changed-by-caller"
	if *store.Shapes()[0].Text != "original" {
		t.Error("caller mutation after AddShape leaked into the store")
	}
}

func TestCreatedAtImmutable(t *testing.T) {
	store := New("d1", "Test", &fakeClock{})
	created := store.Diagram().CreatedAt

	if err := store.AddShape(testShape("s1")); err != nil {
		t.Fatalf("AddShape: %v", err)
	}
	if err := store.DeleteShape("s1"); err != nil {
		t.Fatalf("DeleteShape: %v", err)
	}

	if got := store.Diagram().CreatedAt; got != created {
		t.Errorf("CreatedAt changed: %q -> %q", created, got)
	}
}
