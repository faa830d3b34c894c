package engine

import "fmt"

// Kind identifies one of the seven tetrominoes, or the empty placeholder
// used for an unoccupied hold slot. Kind values double as block tags.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindI
	KindO
	KindS
	KindZ
	KindJ
	KindL
	KindT
)

const kindRunes = ".IOSZJLT"

// AllKinds returns the seven playable kinds in catalog order.
func AllKinds() []Kind {
	return []Kind{KindI, KindO, KindS, KindZ, KindJ, KindL, KindT}
}

func (k Kind) Rune() rune {
	if int(k) >= len(kindRunes) {
		return '?'
	}
	return rune(kindRunes[k])
}

func (k Kind) String() string {
	if k == KindEmpty {
		return "empty"
	}
	if int(k) >= len(kindRunes) {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return string(kindRunes[k])
}

// turnFunc rotates a square local grid by a quarter turn.
type turnFunc func(g *Grid, clockwise bool) *Grid

type catalogEntry struct {
	shape *Grid
	turn  turnFunc
	kicks *kickTable
}

// catalog is indexed by Kind. Shapes are built once and never mutated;
// every Mino of a kind starts out referencing the same canonical grid.
var catalog = [...]catalogEntry{
	KindEmpty: {shape: NewGrid(Size{})},
	KindI: {
		shape: mustShape(KindI,
			"....",
			"####",
			"....",
			"....",
		),
		turn:  turnSquare,
		kicks: &kicksI,
	},
	KindO: {
		shape: mustShape(KindO,
			"##",
			"##",
		),
	},
	KindS: {
		shape: mustShape(KindS,
			".##",
			"##.",
			"...",
		),
		turn:  turnSquare,
		kicks: &kicksJLSTZ,
	},
	KindZ: {
		shape: mustShape(KindZ,
			"##.",
			".##",
			"...",
		),
		turn:  turnSquare,
		kicks: &kicksJLSTZ,
	},
	KindJ: {
		shape: mustShape(KindJ,
			"#..",
			"###",
			"...",
		),
		turn:  turnSquare,
		kicks: &kicksJLSTZ,
	},
	KindL: {
		shape: mustShape(KindL,
			"..#",
			"###",
			"...",
		),
		turn:  turnSquare,
		kicks: &kicksJLSTZ,
	},
	KindT: {
		shape: mustShape(KindT,
			".#.",
			"###",
			"...",
		),
		turn:  turnSquare,
		kicks: &kicksJLSTZ,
	},
}

func mustShape(kind Kind, rows ...string) *Grid {
	g := NewGrid(Size{X: len(rows), Y: len(rows)})
	for r, row := range rows {
		if len(row) != len(rows) {
			panic(fmt.Sprintf("shape %s: row %d is not square", kind, r))
		}
		for c, ch := range row {
			if ch == '#' {
				g.rows[r][c] = BlockOf(kind)
			}
		}
	}
	return g
}

// turnSquare maps cell (x, y) to (n-1-y, x) clockwise and to (y, n-1-x)
// counter-clockwise. On a 3x3 grid this permutes the ring around the
// fixed center cell.
func turnSquare(g *Grid, clockwise bool) *Grid {
	n := g.size.X
	out := NewGrid(g.size)
	for y, row := range g.rows {
		for x, b := range row {
			if clockwise {
				out.rows[x][n-1-y] = b
			} else {
				out.rows[n-1-x][y] = b
			}
		}
	}
	return out
}

// Mino is a piece shape in a particular facing. Minos are values: the
// rotate methods return a new Mino and never touch the receiver.
type Mino struct {
	kind      Kind
	grid      *Grid
	direction Direction
}

// NewMino returns kind in its spawn orientation.
func NewMino(kind Kind) Mino {
	if int(kind) >= len(catalog) {
		kind = KindEmpty
	}
	return Mino{kind: kind, grid: catalog[kind].shape, direction: DirectionSpawn}
}

func (m Mino) Kind() Kind {
	return m.kind
}

func (m Mino) Direction() Direction {
	return m.direction
}

// Size returns the local grid extent, (0,0) for the empty placeholder.
func (m Mino) Size() Size {
	if m.grid == nil {
		return Size{}
	}
	return m.grid.size
}

// Grid returns a copy of the local grid, row 0 at the top.
func (m Mino) Grid() *Grid {
	if m.grid == nil {
		return NewGrid(Size{})
	}
	return m.grid.Clone()
}

// Default returns the same kind in its canonical spawn orientation.
func (m Mino) Default() Mino {
	return NewMino(m.kind)
}

func (m Mino) IsEmpty() bool {
	return m.kind == KindEmpty
}

func (m Mino) RotateRight() Mino {
	return m.turn(true)
}

func (m Mino) RotateLeft() Mino {
	return m.turn(false)
}

func (m Mino) turn(clockwise bool) Mino {
	entry := catalog[m.kind]
	if entry.turn == nil {
		return m
	}
	next := Mino{kind: m.kind, grid: entry.turn(m.grid, clockwise)}
	if clockwise {
		next.direction = m.direction.Right()
	} else {
		next.direction = m.direction.Left()
	}
	return next
}

// Kicks reports whether the kind has a wall kick table. O and the empty
// placeholder never kick.
func (m Mino) Kicks() bool {
	return catalog[m.kind].kicks != nil
}

// Kick returns the row-space offset tried at step when turning from
// direction from to direction to. Kinds without a table return a zero
// offset.
func (m Mino) Kick(from, to Direction, step SuperRotationStep) (RelativePosition, error) {
	table := catalog[m.kind].kicks
	if table == nil {
		return RelativePosition{}, nil
	}
	return table.lookup(from, to, step)
}

// cells calls fn with the local coordinates of every occupied cell.
func (m Mino) cells(fn func(x, y int)) {
	if m.grid == nil {
		return
	}
	for y, row := range m.grid.rows {
		for x, b := range row {
			if !b.IsEmpty() {
				fn(x, y)
			}
		}
	}
}

// Equal reports whether both minos have the same kind, facing and shape.
func (m Mino) Equal(o Mino) bool {
	if m.kind != o.kind || m.direction != o.direction {
		return false
	}
	return m.Grid().Equal(o.Grid())
}
