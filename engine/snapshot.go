package engine

// Snapshot is a comparable copy of everything a presentation layer or a
// determinism check needs to see.
type Snapshot struct {
	Grid      string
	HasActive bool
	Kind      Kind
	Direction Direction
	Position  Position
	Ghost     Position
	Last      LastAction
	Hold      Kind
	Preview   []Kind
	Spawned   uint64
	ToppedOut bool
}

// Snapshot captures the current state of the field.
func (f *Field) Snapshot() Snapshot {
	s := Snapshot{
		Grid:      f.grid.Window(Position{X: 0, Y: f.grid.size.Y - 1}, f.grid.size).String(),
		HasActive: f.hasActive,
		Hold:      f.hold.Kind(),
		Preview:   f.Preview(f.current.Len() + f.next.Len()),
		Spawned:   f.spawned,
		ToppedOut: f.toppedOut,
	}
	if f.hasActive {
		s.Kind = f.active.Mino.Kind()
		s.Direction = f.active.Mino.Direction()
		s.Position = f.active.Position
		s.Ghost = f.GhostPosition()
		s.Last = f.active.Last
	}
	return s
}
