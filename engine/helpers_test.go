package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestField returns a default field whose bottom rows are loaded from
// rows, drawn top row first.
func newTestField(t *testing.T, rows ...string) *Field {
	t.Helper()
	f := NewField(WithSeed(1))
	loadBoard(t, f, rows...)
	return f
}

func loadBoard(t *testing.T, f *Field, rows ...string) {
	t.Helper()
	if len(rows) == 0 {
		return
	}
	g, err := ParseGrid(rows...)
	require.NoError(t, err)
	require.Equal(t, f.grid.size.X, g.size.X, "board width")
	for r, row := range g.rows {
		copy(f.grid.rows[len(rows)-1-r], row)
	}
}

// setActive puts kind, turned to dir, at pos without any collision test.
func setActive(f *Field, kind Kind, dir Direction, pos Position) {
	f.active = ActivePiece{Mino: minoFacing(kind, dir), Position: pos}
	f.hasActive = true
}

// bottomRows renders the lowest n rows of the field, top row first.
func bottomRows(f *Field, n int) string {
	return f.grid.Window(Position{X: 0, Y: n - 1}, Size{X: f.grid.size.X, Y: n}).String()
}

func minoFacing(kind Kind, dir Direction) Mino {
	m := NewMino(kind)
	for i := 0; i < directionCount && m.Direction() != dir; i++ {
		m = m.RotateRight()
	}
	return m
}
