package engine

// LastAction remembers the most recent committed move or rotation of the
// active piece. Lock reads it to classify T-spins.
type LastAction struct {
	Rotated bool
	Step    SuperRotationStep
}

// ActivePiece is the falling piece. Position is the field cell covered by
// the top-left cell of the mino's local grid; local row r sits on field
// row Position.Y-r.
type ActivePiece struct {
	Mino     Mino
	Position Position
	Last     LastAction
}

// Cells returns the field positions occupied by the piece.
func (p ActivePiece) Cells() []Position {
	cells := make([]Position, 0, 4)
	p.Mino.cells(func(x, y int) {
		cells = append(cells, Position{X: p.Position.X + x, Y: p.Position.Y - y})
	})
	return cells
}

// ClearResult describes what a lock did to the field.
type ClearResult struct {
	TSpin        bool
	TSpinMini    bool
	PerfectClear bool
	LinesCleared int
}

// CanPlace reports whether every occupied cell of m, shifted by offset,
// lands on an empty cell of window. Walls and cells past the window edge
// reject just like locked blocks.
func CanPlace(window *Grid, m Mino, offset RelativePosition) bool {
	ok := true
	m.cells(func(x, y int) {
		if !ok {
			return
		}
		target := Position{X: offset.X + x, Y: offset.Y + y}
		if !window.Contains(target) || !window.IsEmpty(target) {
			ok = false
		}
	})
	return ok
}
