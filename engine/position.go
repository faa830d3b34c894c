package engine

import "fmt"

// Size is the extent of a grid in cells.
type Size struct {
	X, Y int
}

// Position is a field-space coordinate. X counts from the left wall and
// Y counts upward from the bottom row.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p moved by (dx, dy) in field space.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Kick applies a row-space offset to a field position. Row deltas grow
// downward while field Y grows upward, so the vertical sign flips.
func (p Position) Kick(offset RelativePosition) Position {
	return Position{X: p.X + offset.X, Y: p.Y - offset.Y}
}

// RelativePosition is an offset in row space (Y grows downward), the
// space local piece grids and kick windows are indexed in.
type RelativePosition struct {
	X, Y int
}

func (r RelativePosition) Add(o RelativePosition) RelativePosition {
	return RelativePosition{X: r.X + o.X, Y: r.Y + o.Y}
}
