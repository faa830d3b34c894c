package engine

import "fmt"

// SuperRotationStep indexes the kick tests that follow the in-place
// rotation test. Step 3 is the last, and most distant, nudge.
type SuperRotationStep uint8

const (
	superRotationSteps = 4
	lastKickStep       = SuperRotationStep(superRotationSteps - 1)
)

const (
	senseClockwise = iota
	senseCounterClockwise
)

// kickTable holds the published SRS kick offsets, x to the right and y
// upward, indexed by starting direction and rotation sense. Each entry is
// measured from the unkicked position, i.e. it already accumulates every
// nudge before it.
type kickTable [directionCount][2][superRotationSteps][2]int

var kicksJLSTZ = kickTable{
	DirectionSpawn: {
		senseClockwise:        {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		senseCounterClockwise: {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
	},
	DirectionRight: {
		senseClockwise:        {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
		senseCounterClockwise: {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
	},
	DirectionReverse: {
		senseClockwise:        {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
		senseCounterClockwise: {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	},
	DirectionLeft: {
		senseClockwise:        {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		senseCounterClockwise: {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	},
}

var kicksI = kickTable{
	DirectionSpawn: {
		senseClockwise:        {{-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		senseCounterClockwise: {{-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	},
	DirectionRight: {
		senseClockwise:        {{-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		senseCounterClockwise: {{2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	},
	DirectionReverse: {
		senseClockwise:        {{2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		senseCounterClockwise: {{1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	},
	DirectionLeft: {
		senseClockwise:        {{1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		senseCounterClockwise: {{-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	},
}

func (t *kickTable) lookup(from, to Direction, step SuperRotationStep) (RelativePosition, error) {
	if !from.Valid() || !to.Valid() {
		return RelativePosition{}, fmt.Errorf("kick %s->%s: %w", from, to, ErrInvalidDirection)
	}
	var sense int
	switch to {
	case from.Right():
		sense = senseClockwise
	case from.Left():
		sense = senseCounterClockwise
	default:
		return RelativePosition{}, fmt.Errorf("kick %s->%s is not a quarter turn: %w", from, to, ErrInvalidDirection)
	}
	if step > lastKickStep {
		return RelativePosition{}, fmt.Errorf("kick step %d out of range", step)
	}
	offset := t[from][sense][step]
	return RelativePosition{X: offset[0], Y: -offset[1]}, nil
}
