package main

import (
	"github.com/plus3/tetris/driver"
	"github.com/plus3/tetris/engine"
)

// session plays bot games back to back, starting a new game with the next
// seed after every top-out.
type session struct {
	seed      uint64
	scheduler *driver.Scheduler
	recorder  *RecorderSystem
	report    *Report
	kinds     map[engine.Kind]int
}

func newSession(seed uint64, report *Report) *session {
	scheduler := driver.NewScheduler(engine.NewField(engine.WithSeed(seed)))
	bot := NewBotSystem(seed)
	recorder := NewRecorderSystem(bot)

	scheduler.Register(bot)
	scheduler.Register(&driver.SpawnSystem{})
	scheduler.Register(&driver.InputSystem{})
	scheduler.Register(&driver.GravitySystem{})
	scheduler.Register(&driver.LockDelaySystem{})
	scheduler.Register(recorder)

	return &session{
		seed:      seed,
		scheduler: scheduler,
		recorder:  recorder,
		report:    report,
		kinds:     make(map[engine.Kind]int),
	}
}

// step runs one frame of dt seconds.
func (s *session) step(dt float64) error {
	if err := s.scheduler.Once(dt); err != nil {
		return err
	}
	if !s.scheduler.Field().ToppedOut() {
		return nil
	}

	s.accumulate()
	s.report.Games++
	s.scheduler.Reset(engine.NewField(engine.WithSeed(s.seed + uint64(s.report.Games))))
	s.recorder.restart()
	return nil
}

// accumulate adds the current game's totals to the report.
func (s *session) accumulate() {
	totals := s.scheduler.Totals()
	s.report.Pieces += s.scheduler.Field().Spawned()
	s.report.Locks += totals.Locks
	s.report.Lines += totals.Lines
	s.report.TSpins += totals.TSpins
	s.report.TSpinMinis += totals.TSpinMinis
	s.report.PerfectClears += totals.PerfectClears
	for _, kind := range engine.AllKinds() {
		s.kinds[kind] += totals.LocksOf(kind)
	}
}

// finish folds the unfinished game into the report and fills the
// histograms.
func (s *session) finish() {
	s.accumulate()
	s.report.collectHistograms(s.recorder, s.kinds)
}
