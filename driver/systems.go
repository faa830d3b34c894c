package driver

import "github.com/plus3/tetris/engine"

// Timings of the reference harness, which ran at 60 frames per second.
const (
	FrameRate            = 60
	DefaultGravityPeriod = 60.0 / FrameRate
	DefaultLockDelay     = 30.0 / FrameRate
	DefaultMaxResets     = 8
)

// pieceTracker notices when the active piece has been replaced, either by
// a spawn on the same field or by a new field.
type pieceTracker struct {
	field   *engine.Field
	spawned uint64
}

func (t *pieceTracker) changed(f *engine.Field) bool {
	if t.field == f && t.spawned == f.Spawned() {
		return false
	}
	t.field, t.spawned = f, f.Spawned()
	return true
}

func playing(f *engine.Field) bool {
	_, ok := f.Active()
	return ok && !f.ToppedOut()
}

// SpawnSystem spawns the first piece of a game. Later pieces are spawned
// by the engine as part of every lock.
type SpawnSystem struct{}

func (s *SpawnSystem) Execute(frame *UpdateFrame) {
	if _, ok := frame.Field.Active(); ok {
		return
	}
	if err := frame.Field.Spawn(); err != nil {
		frame.Fail(err)
	}
}

// InputSystem applies the queued actions in order. Actions queued after a
// top-out are dropped.
type InputSystem struct{}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	f := frame.Field
	for _, action := range frame.Commands.take() {
		if !playing(f) {
			return
		}
		switch action {
		case ActionMoveLeft:
			f.MoveLeft()
		case ActionMoveRight:
			f.MoveRight()
		case ActionSoftDrop:
			f.MoveDown()
		case ActionRotateLeft:
			f.RotateLeft()
		case ActionRotateRight:
			f.RotateRight()
		case ActionHold:
			if err := f.Hold(); err != nil {
				frame.Fail(err)
			}
		case ActionHardDrop:
			frame.HardDrop()
		}
	}
}

// GravitySystem moves the active piece down one row every Period seconds.
// A resting piece is left to LockDelaySystem.
type GravitySystem struct {
	// Period is the time per row in seconds; zero means DefaultGravityPeriod.
	Period float64

	elapsed float64
	piece   pieceTracker
}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	f := frame.Field
	if !playing(f) {
		return
	}
	if s.piece.changed(f) {
		s.elapsed = 0
	}

	period := s.Period
	if period <= 0 {
		period = DefaultGravityPeriod
	}

	s.elapsed += frame.DeltaTime
	for s.elapsed >= period {
		s.elapsed -= period
		if !f.MoveDown() {
			s.elapsed = 0
			return
		}
	}
}

// LockDelaySystem locks a resting piece once it has rested for Delay
// seconds. Every time the piece leaves the ground the timer restarts and a
// reset is counted; after MaxResets resets the piece locks as soon as it
// touches down again.
type LockDelaySystem struct {
	// Delay is in seconds; zero means DefaultLockDelay.
	Delay float64
	// MaxResets of zero means DefaultMaxResets.
	MaxResets int

	elapsed  float64
	resets   int
	grounded bool
	piece    pieceTracker
}

func (s *LockDelaySystem) Execute(frame *UpdateFrame) {
	f := frame.Field
	if !playing(f) {
		return
	}
	if s.piece.changed(f) {
		s.elapsed, s.resets, s.grounded = 0, 0, false
	}

	if !f.IsResting() {
		if s.grounded {
			s.resets++
			s.grounded = false
			s.elapsed = 0
		}
		return
	}

	delay := s.Delay
	if delay <= 0 {
		delay = DefaultLockDelay
	}
	maxResets := s.MaxResets
	if maxResets <= 0 {
		maxResets = DefaultMaxResets
	}

	s.grounded = true
	s.elapsed += frame.DeltaTime
	if s.elapsed >= delay || s.resets >= maxResets {
		frame.Lock()
	}
}

// Resets returns how many times the current piece has left the ground.
func (s *LockDelaySystem) Resets() int {
	return s.resets
}
