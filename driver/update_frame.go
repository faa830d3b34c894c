package driver

import (
	"fmt"

	"github.com/plus3/tetris/engine"
)

// UpdateFrame is what a system sees during one tick.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Field     *engine.Field
	Totals    *Totals

	err error
}

func newUpdateFrame(dt float64, field *engine.Field, commands *Commands, totals *Totals) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  commands,
		Field:     field,
		Totals:    totals,
	}
}

// Lock locks the resting piece and records the result.
func (f *UpdateFrame) Lock() (engine.ClearResult, bool) {
	return f.lock(f.Field.Lock, "lock")
}

// HardDrop drops and locks the active piece and records the result.
func (f *UpdateFrame) HardDrop() (engine.ClearResult, bool) {
	return f.lock(f.Field.HardDrop, "hard drop")
}

func (f *UpdateFrame) lock(fn func() (engine.ClearResult, error), op string) (engine.ClearResult, bool) {
	piece, ok := f.Field.Active()
	if !ok {
		f.Fail(fmt.Errorf("%s: %w", op, engine.ErrNoActivePiece))
		return engine.ClearResult{}, false
	}
	result, err := fn()
	if err != nil {
		f.Fail(err)
		return engine.ClearResult{}, false
	}
	f.Totals.Record(piece.Mino.Kind(), result)
	return result, true
}

// Fail records err for the scheduler. Only the first failure of a frame is
// kept.
func (f *UpdateFrame) Fail(err error) {
	if f.err == nil {
		f.err = err
	}
}
