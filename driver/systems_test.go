package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetris/driver"
	"github.com/plus3/tetris/engine"
)

func repeat(action driver.Action, n int) []driver.Action {
	actions := make([]driver.Action, n)
	for i := range actions {
		actions[i] = action
	}
	return actions
}

func activePosition(t *testing.T, s *driver.Scheduler) engine.Position {
	t.Helper()
	piece, ok := s.Field().Active()
	require.True(t, ok, "no active piece")
	return piece.Position
}

func TestSpawnSystem(t *testing.T) {
	s := driver.NewScheduler(engine.NewField(engine.WithSeed(3)))
	s.Register(&driver.SpawnSystem{})

	require.NoError(t, s.Once(0))
	require.NoError(t, s.Once(0))

	_, ok := s.Field().Active()
	assert.True(t, ok)
	assert.Equal(t, uint64(1), s.Field().Spawned())
}

func TestInputSystem(t *testing.T) {
	s := driver.NewScheduler(engine.NewField(engine.WithSeed(3)))
	s.Register(&driver.SpawnSystem{})
	s.Register(&driver.InputSystem{})
	require.NoError(t, s.Once(0))

	start := activePosition(t, s)
	s.Commands().Push(driver.ActionMoveRight, driver.ActionSoftDrop, driver.ActionSoftDrop)
	require.NoError(t, s.Once(0))
	assert.Equal(t, start.Add(1, -2), activePosition(t, s))
	assert.Equal(t, 0, s.Commands().Len())

	s.Commands().Push(driver.ActionHardDrop, driver.ActionHold, driver.ActionHardDrop)
	require.NoError(t, s.Once(0))

	assert.Equal(t, 2, s.Totals().Locks)
	assert.Equal(t, uint64(4), s.Field().Spawned())
	assert.False(t, s.Field().Held().IsEmpty())
}

func TestGravitySystem(t *testing.T) {
	s := driver.NewScheduler(engine.NewField(engine.WithSeed(3)))
	s.Register(&driver.SpawnSystem{})
	s.Register(&driver.GravitySystem{Period: 1})
	require.NoError(t, s.Once(0))
	start := activePosition(t, s)

	require.NoError(t, s.Once(0.5))
	assert.Equal(t, start, activePosition(t, s))

	require.NoError(t, s.Once(0.5))
	assert.Equal(t, start.Add(0, -1), activePosition(t, s))

	require.NoError(t, s.Once(3))
	assert.Equal(t, start.Add(0, -4), activePosition(t, s))

	// A long frame stops at the floor instead of locking.
	require.NoError(t, s.Once(100))
	assert.True(t, s.Field().IsResting())
	assert.Equal(t, 0, s.Totals().Locks)
}

func TestLockDelaySystem(t *testing.T) {
	s := driver.NewScheduler(engine.NewField(engine.WithSeed(3)))
	s.Register(&driver.SpawnSystem{})
	s.Register(&driver.InputSystem{})
	s.Register(&driver.LockDelaySystem{Delay: 0.5})
	require.NoError(t, s.Once(0))

	s.Commands().Push(repeat(driver.ActionSoftDrop, 40)...)
	require.NoError(t, s.Once(0))
	require.True(t, s.Field().IsResting())

	require.NoError(t, s.Once(0.25))
	assert.Equal(t, 0, s.Totals().Locks)

	require.NoError(t, s.Once(0.25))
	assert.Equal(t, 1, s.Totals().Locks)
	assert.Equal(t, uint64(2), s.Field().Spawned())
	assert.False(t, s.Field().IsResting())
}

func TestLockDelayResets(t *testing.T) {
	lockDelay := &driver.LockDelaySystem{Delay: 10, MaxResets: 1}
	s := driver.NewScheduler(engine.NewField(engine.WithSeed(8)))
	s.Register(&driver.SpawnSystem{})
	s.Register(&driver.InputSystem{})
	s.Register(lockDelay)
	require.NoError(t, s.Once(0))

	// Build a ledge against the left wall.
	s.Commands().Push(repeat(driver.ActionMoveLeft, 10)...)
	s.Commands().Push(driver.ActionHardDrop)
	require.NoError(t, s.Once(0))
	require.Equal(t, 1, s.Totals().Locks)

	s.Commands().Push(repeat(driver.ActionMoveLeft, 10)...)
	s.Commands().Push(repeat(driver.ActionSoftDrop, 40)...)
	require.NoError(t, s.Once(0))
	require.True(t, s.Field().IsResting())
	assert.Equal(t, 0, lockDelay.Resets())

	// Walking off the ledge lifts the piece off the ground.
	s.Commands().Push(repeat(driver.ActionMoveRight, 10)...)
	require.NoError(t, s.Once(0))
	require.False(t, s.Field().IsResting())
	assert.Equal(t, 1, lockDelay.Resets())

	// Out of resets: the piece locks on touchdown with no delay.
	s.Commands().Push(repeat(driver.ActionSoftDrop, 40)...)
	require.NoError(t, s.Once(0))
	assert.Equal(t, 2, s.Totals().Locks)
}

func TestSystemsIdleAfterTopOut(t *testing.T) {
	s := driver.NewDefaultScheduler(engine.NewField(engine.WithSeed(5)))
	require.NoError(t, s.Once(0))

	for i := 0; i < 200 && !s.Field().ToppedOut(); i++ {
		s.Commands().Push(driver.ActionHardDrop)
		require.NoError(t, s.Once(0))
	}
	require.True(t, s.Field().ToppedOut())

	locks := s.Totals().Locks
	spawned := s.Field().Spawned()
	s.Commands().Push(driver.ActionHardDrop, driver.ActionHold)
	require.NoError(t, s.Once(10))

	assert.Equal(t, locks, s.Totals().Locks)
	assert.Equal(t, spawned, s.Field().Spawned())
}

func TestSchedulerReset(t *testing.T) {
	s := driver.NewDefaultScheduler(engine.NewField(engine.WithSeed(5)))
	s.Commands().Push(driver.ActionHardDrop)
	require.NoError(t, s.Once(0))
	require.Equal(t, 1, s.Totals().Locks)

	s.Commands().Push(driver.ActionHardDrop)
	s.Reset(engine.NewField(engine.WithSeed(6)))

	assert.Equal(t, 0, s.Totals().Locks)
	assert.Equal(t, 0, s.Commands().Len())

	require.NoError(t, s.Once(0))
	assert.Equal(t, uint64(1), s.Field().Spawned())
	assert.Equal(t, 21, activePosition(t, s).Y)
}
