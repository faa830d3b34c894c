package engine

import "strconv"

// Block is the content of a single grid cell.
// Zero is empty, Wall marks cells outside a window's source grid and
// positive values are locked minos tagged with their Kind.
type Block int8

const (
	Empty Block = 0
	Wall  Block = -1
)

// BlockOf returns the typed block painted by minos of the given kind.
func BlockOf(kind Kind) Block {
	return Block(kind)
}

func (b Block) IsEmpty() bool {
	return b == Empty
}

func (b Block) IsWall() bool {
	return b == Wall
}

// Kind returns the mino kind the block was painted by, if any.
func (b Block) Kind() (Kind, bool) {
	if b <= Empty || Kind(b) > KindT {
		return KindEmpty, false
	}
	return Kind(b), true
}

// Rune is the single character used by Grid.String.
func (b Block) Rune() rune {
	switch {
	case b == Empty:
		return '.'
	case b == Wall:
		return '#'
	}
	if kind, ok := b.Kind(); ok {
		return kind.Rune()
	}
	return '?'
}

func (b Block) String() string {
	if b == Wall {
		return "wall"
	}
	if kind, ok := b.Kind(); ok {
		return kind.String()
	}
	if b == Empty {
		return "empty"
	}
	return "block(" + strconv.Itoa(int(b)) + ")"
}
