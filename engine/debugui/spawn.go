package debugui

import "github.com/plus3/tetris/driver"

// RegisterDebugUI registers an ImguiSystem on s that renders every
// inspector window against the scheduler's current field.
func RegisterDebugUI(s *driver.Scheduler) *ImguiSystem {
	viewer := NewFieldViewer(16)
	inspector := &PieceInspector{}
	queue := NewQueueViewer(5)
	history := &LockHistory{}
	perf := NewPerformanceStats(120)
	timer := NewFrameTimer()

	system := &ImguiSystem{}
	system.Add(func() { viewer.Render(s.Field()) })
	system.Add(func() { inspector.Render(s.Field()) })
	system.Add(func() { queue.Render(s.Field()) })
	system.Add(func() { history.Render(s.Totals()) })
	system.Add(func() { perf.Render(s.GetStats(), timer.GetDeltaTime()) })
	s.Register(system)
	return system
}
