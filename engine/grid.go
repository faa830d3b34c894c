package engine

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size matrix of blocks stored row by row. Every cell
// always holds exactly one Block.
//
// The main field grid stores row 0 at the bottom. Local piece grids and
// windows store row 0 at the top, which is the orientation produced by
// Window.
type Grid struct {
	size Size
	rows [][]Block
}

// NewGrid creates an all-empty grid.
func NewGrid(size Size) *Grid {
	g := &Grid{size: size, rows: make([][]Block, size.Y)}
	for y := range g.rows {
		g.rows[y] = make([]Block, size.X)
	}
	return g
}

// ParseGrid builds a grid from text rows, row 0 first. '.' and ' ' are
// empty, '#' is a wall and the letters IOSZJLT are typed blocks.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return NewGrid(Size{}), nil
	}
	width := len(rows[0])
	g := NewGrid(Size{X: width, Y: len(rows)})
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(row), width)
		}
		for x, r := range row {
			b, err := parseBlock(r)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", y, x, err)
			}
			g.rows[y][x] = b
		}
	}
	return g, nil
}

func parseBlock(r rune) (Block, error) {
	switch r {
	case '.', ' ':
		return Empty, nil
	case '#':
		return Wall, nil
	}
	for kind := KindI; kind <= KindT; kind++ {
		if kind.Rune() == r {
			return BlockOf(kind), nil
		}
	}
	return Empty, fmt.Errorf("unknown block %q", r)
}

// Size returns the grid extent. A grid with no cells reports (0,0).
func (g *Grid) Size() Size {
	return g.size
}

// Contains reports whether p addresses a cell of the grid.
func (g *Grid) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.size.X && p.Y < g.size.Y
}

// At returns the block at p. p must be inside the grid.
func (g *Grid) At(p Position) Block {
	return g.rows[p.Y][p.X]
}

// Set stores b at p. p must be inside the grid.
func (g *Grid) Set(p Position, b Block) {
	g.rows[p.Y][p.X] = b
}

func (g *Grid) IsEmpty(p Position) bool {
	return g.rows[p.Y][p.X].IsEmpty()
}

// Window copies a size-sized view of g whose top-left cell is origin.
// Window row r reads source row origin.Y-r, so a window taken from the
// bottom-up field grid is laid out top-down like a local piece grid.
// Cells that fall outside g are reported as Wall.
func (g *Grid) Window(origin Position, size Size) *Grid {
	w := NewGrid(size)
	for r := 0; r < size.Y; r++ {
		for c := 0; c < size.X; c++ {
			src := Position{X: origin.X + c, Y: origin.Y - r}
			if !g.Contains(src) {
				w.rows[r][c] = Wall
				continue
			}
			w.rows[r][c] = g.rows[src.Y][src.X]
		}
	}
	return w
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{size: g.size, rows: make([][]Block, len(g.rows))}
	for y, row := range g.rows {
		c.rows[y] = append([]Block(nil), row...)
	}
	return c
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []Block {
	return append([]Block(nil), g.rows[y]...)
}

// RowFull reports whether every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	for _, b := range g.rows[y] {
		if b.IsEmpty() {
			return false
		}
	}
	return true
}

// RemoveRow deletes row y, shifts every higher row down by one and
// appends a fresh empty row at the end.
func (g *Grid) RemoveRow(y int) {
	removed := g.rows[y]
	copy(g.rows[y:], g.rows[y+1:])
	for x := range removed {
		removed[x] = Empty
	}
	g.rows[len(g.rows)-1] = removed
}

// Occupied counts the non-empty cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, row := range g.rows {
		for _, b := range row {
			if !b.IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Cells calls fn for every occupied cell in row order.
func (g *Grid) Cells(fn func(p Position, b Block)) {
	for y, row := range g.rows {
		for x, b := range row {
			if !b.IsEmpty() {
				fn(Position{X: x, Y: y}, b)
			}
		}
	}
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.size != o.size {
		return false
	}
	for y, row := range g.rows {
		for x, b := range row {
			if o.rows[y][x] != b {
				return false
			}
		}
	}
	return true
}

// String renders the grid one line per row, row 0 first.
func (g *Grid) String() string {
	var sb strings.Builder
	for y, row := range g.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, b := range row {
			sb.WriteRune(b.Rune())
		}
	}
	return sb.String()
}
