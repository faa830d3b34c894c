package engine

import "fmt"

// Direction is the facing of a mino. The four states form a cycle in
// clockwise order starting from the spawn orientation.
type Direction uint8

const (
	DirectionSpawn Direction = iota
	DirectionRight
	DirectionReverse
	DirectionLeft
)

const directionCount = 4

// ParseDirection converts a raw value into a Direction.
func ParseDirection(v int) (Direction, error) {
	if v < 0 || v >= directionCount {
		return 0, fmt.Errorf("direction %d: %w", v, ErrInvalidDirection)
	}
	return Direction(v), nil
}

func (d Direction) Valid() bool {
	return d < directionCount
}

// Right returns the direction after a clockwise quarter turn.
func (d Direction) Right() Direction {
	return (d + 1) % directionCount
}

// Left returns the direction after a counter-clockwise quarter turn.
func (d Direction) Left() Direction {
	return (d + directionCount - 1) % directionCount
}

func (d Direction) String() string {
	switch d {
	case DirectionSpawn:
		return "0"
	case DirectionRight:
		return "R"
	case DirectionReverse:
		return "2"
	case DirectionLeft:
		return "L"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}
