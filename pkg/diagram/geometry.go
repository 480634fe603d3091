package diagram

import "math"

// SnapToGrid snaps a point to the nearest grid intersection when
// snapping is enabled in the current settings, and returns the point
// unchanged otherwise. Rounding is half away from zero (math.Round),
// so (25, 33) with a 20-unit grid snaps to (20, 40) and an exact
// halfway value like 30 snaps up to 40.
//
// SnapToGrid is a pure query: it never mutates state or refreshes the
// timestamp.
func (s *Store) SnapToGrid(x, y float64) (float64, float64) {
	if !s.diagram.Settings.SnapToGrid {
		return x, y
	}
	grid := s.diagram.Settings.GridSize
	return math.Round(x/grid) * grid, math.Round(y/grid) * grid
}

// FindShapeAt returns the id of the topmost shape whose axis-aligned
// bounding box contains the point, and true if one was found. Bounds
// are inclusive on all four edges, and rotation is deliberately ignored:
// the hit box is always the unrotated [x, x+w] x [y, y+h] rectangle.
//
// Shapes are scanned from the end of the sequence backward, so of two
// overlapping shapes the later-added (higher z-order) one wins.
func (s *Store) FindShapeAt(x, y float64) (string, bool) {
	for i := len(s.diagram.Shapes) - 1; i >= 0; i-- {
		sh := s.diagram.Shapes[i]
		if x >= sh.X && x <= sh.X+sh.Width && y >= sh.Y && y <= sh.Y+sh.Height {
			return sh.ID, true
		}
	}
	return "", false
}
