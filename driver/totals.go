package driver

import (
	"github.com/kamstrup/intmap"

	"github.com/plus3/tetris/engine"
)

const recentLocks = 16

// LockEvent is one lock performed through the driver.
type LockEvent struct {
	Piece  uint64
	Kind   engine.Kind
	Result engine.ClearResult
}

// Totals accumulates lock results over a game.
type Totals struct {
	Locks         int
	Lines         int
	TSpins        int
	TSpinMinis    int
	PerfectClears int

	byKind *intmap.Map[engine.Kind, int]
	recent []LockEvent
}

func NewTotals() *Totals {
	return &Totals{byKind: intmap.New[engine.Kind, int](8)}
}

// Record adds one lock of the given kind.
func (t *Totals) Record(kind engine.Kind, r engine.ClearResult) {
	t.Locks++
	t.Lines += r.LinesCleared
	if r.TSpin {
		t.TSpins++
	}
	if r.TSpinMini {
		t.TSpinMinis++
	}
	if r.PerfectClear {
		t.PerfectClears++
	}

	n, _ := t.byKind.Get(kind)
	t.byKind.Put(kind, n+1)

	if len(t.recent) == recentLocks {
		copy(t.recent, t.recent[1:])
		t.recent = t.recent[:recentLocks-1]
	}
	t.recent = append(t.recent, LockEvent{Piece: uint64(t.Locks), Kind: kind, Result: r})
}

// LocksOf returns how many pieces of kind were locked.
func (t *Totals) LocksOf(kind engine.Kind) int {
	n, _ := t.byKind.Get(kind)
	return n
}

// Recent returns up to the last 16 locks, oldest first.
func (t *Totals) Recent() []LockEvent {
	return append([]LockEvent(nil), t.recent...)
}

func (t *Totals) Reset() {
	t.Locks, t.Lines, t.TSpins, t.TSpinMinis, t.PerfectClears = 0, 0, 0, 0, 0
	t.byKind.Clear()
	t.recent = nil
}
