package driver

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/tetris/engine"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler drives a field by running its systems in order once per tick.
type Scheduler struct {
	field       *engine.Field
	commands    *Commands
	totals      *Totals
	systems     []System
	systemStats []*systemStatsInternal
	frames      int64
}

// NewScheduler creates a scheduler for the given field.
func NewScheduler(field *engine.Field) *Scheduler {
	return &Scheduler{
		field:    field,
		commands: newCommands(),
		totals:   NewTotals(),
		systems:  make([]System, 0),
	}
}

// NewDefaultScheduler registers the standard systems: spawn, input,
// gravity and lock delay, all with default timings.
func NewDefaultScheduler(field *engine.Field) *Scheduler {
	s := NewScheduler(field)
	s.Register(&SpawnSystem{})
	s.Register(&InputSystem{})
	s.Register(&GravitySystem{})
	s.Register(&LockDelaySystem{})
	return s
}

// Register appends a system to the execution order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Field returns the field being driven.
func (s *Scheduler) Field() *engine.Field {
	return s.field
}

// Reset swaps in a new field and clears the queued commands and totals.
// Systems notice the new field on their next pass.
func (s *Scheduler) Reset(field *engine.Field) {
	s.field = field
	s.commands = newCommands()
	s.totals.Reset()
}

// Commands returns the buffer input layers push actions into.
func (s *Scheduler) Commands() *Commands {
	return s.commands
}

// Totals returns the running lock statistics.
func (s *Scheduler) Totals() *Totals {
	return s.totals
}

// Once executes all registered systems once with the given delta time in
// seconds. It returns the first error a system reported.
func (s *Scheduler) Once(dt float64) error {
	frame := newUpdateFrame(dt, s.field, s.commands, s.totals)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
	s.frames++

	frame.Commands.Flush()
	return frame.err
}

// Run executes all systems repeatedly at the given interval until the
// context is cancelled or a system fails.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := s.Once(dt); err != nil {
				return err
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
