package engine

// tCorners are the diagonal cells of a T-mino's 3x3 box, in local
// coordinates.
var tCorners = [4]Position{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}}

// tFront marks, per facing, the two corners on either side of the T's
// point.
var tFront = [directionCount][4]bool{
	DirectionSpawn:   {true, true, false, false},
	DirectionRight:   {false, true, false, true},
	DirectionReverse: {false, false, true, true},
	DirectionLeft:    {true, false, true, false},
}

// clearLines removes every full row, bottom to top, and returns how many
// were removed. After a removal the same index is checked again because
// the row above has just moved into it.
func (f *Field) clearLines() int {
	cleared := 0
	for y := 0; y < f.grid.size.Y; {
		if f.grid.RowFull(y) {
			f.grid.RemoveRow(y)
			cleared++
			continue
		}
		y++
	}
	return cleared
}

// detectTSpin classifies a just-stamped piece. It must run before rows are
// cleared. Only a T whose last committed action was a rotation qualifies;
// three occupied corners make a T-spin, which is a mini when the empty
// corner sits in front of the point. A rotation that needed the last kick
// is always a full T-spin.
func (f *Field) detectTSpin(p ActivePiece) (tSpin, mini bool) {
	if p.Mino.Kind() != KindT || !p.Last.Rotated {
		return false, false
	}
	window := f.grid.Window(p.Position, Size{X: 3, Y: 3})
	front := tFront[p.Mino.Direction()%directionCount]

	occupied, frontOccupied := 0, 0
	for i, corner := range tCorners {
		if window.IsEmpty(corner) {
			continue
		}
		occupied++
		if front[i] {
			frontOccupied++
		}
	}

	switch {
	case occupied < 3:
		return false, false
	case p.Last.Step == lastKickStep:
		return true, false
	case frontOccupied == 2:
		return true, false
	default:
		return false, true
	}
}
