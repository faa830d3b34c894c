package main

import (
	"math/rand/v2"

	"github.com/kamstrup/intmap"

	"github.com/plus3/tetris/driver"
	"github.com/plus3/tetris/engine"
)

// actionWeights biases the bot toward sideways moves so pieces spread
// across the board instead of stacking in the spawn columns.
var actionWeights = []struct {
	action driver.Action
	weight int
}{
	{driver.ActionMoveLeft, 4},
	{driver.ActionMoveRight, 4},
	{driver.ActionSoftDrop, 2},
	{driver.ActionRotateLeft, 2},
	{driver.ActionRotateRight, 2},
	{driver.ActionHold, 1},
	{driver.ActionHardDrop, 2},
}

// BotSystem pushes one random action per frame. It runs before the
// InputSystem so the action applies in the same frame.
type BotSystem struct {
	rng    *rand.Rand
	last   driver.Action
	before engine.ActivePiece
	sum    int
}

func NewBotSystem(seed uint64) *BotSystem {
	b := &BotSystem{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	for _, w := range actionWeights {
		b.sum += w.weight
	}
	return b
}

func (b *BotSystem) Execute(frame *driver.UpdateFrame) {
	n := b.rng.IntN(b.sum)
	for _, w := range actionWeights {
		if n < w.weight {
			b.last = w.action
			break
		}
		n -= w.weight
	}
	b.before, _ = frame.Field.Active()
	frame.Commands.Push(b.last)
}

// RecorderSystem runs last and builds histograms of lines per lock and of
// the kick step used by successful rotations.
type RecorderSystem struct {
	bot *BotSystem

	Lines *intmap.Map[int, int64]
	Kicks *intmap.Map[engine.SuperRotationStep, int64]

	seenLocks int
}

func NewRecorderSystem(bot *BotSystem) *RecorderSystem {
	return &RecorderSystem{
		bot:   bot,
		Lines: intmap.New[int, int64](5),
		Kicks: intmap.New[engine.SuperRotationStep, int64](4),
	}
}

func (r *RecorderSystem) Execute(frame *driver.UpdateFrame) {
	recent := frame.Totals.Recent()
	fresh := min(frame.Totals.Locks-r.seenLocks, len(recent))
	for _, event := range recent[len(recent)-fresh:] {
		n, _ := r.Lines.Get(event.Result.LinesCleared)
		r.Lines.Put(event.Result.LinesCleared, n+1)
	}
	r.seenLocks = frame.Totals.Locks

	if fresh > 0 {
		return
	}
	if r.bot.last != driver.ActionRotateLeft && r.bot.last != driver.ActionRotateRight {
		return
	}
	piece, ok := frame.Field.Active()
	if !ok || piece.Mino.Direction() == r.bot.before.Mino.Direction() {
		return
	}
	n, _ := r.Kicks.Get(piece.Last.Step)
	r.Kicks.Put(piece.Last.Step, n+1)
}

// restart forgets the lock count of the previous game.
func (r *RecorderSystem) restart() {
	r.seenLocks = 0
}
