package engine_test

import (
	"testing"

	"github.com/plus3/tetris/engine"
	"github.com/stretchr/testify/assert"
)

func TestMinoShapes(t *testing.T) {
	tests := []struct {
		kind engine.Kind
		want string
	}{
		{engine.KindI, "....\nIIII\n....\n...."},
		{engine.KindO, "OO\nOO"},
		{engine.KindS, ".SS\nSS.\n..."},
		{engine.KindZ, "ZZ.\n.ZZ\n..."},
		{engine.KindJ, "J..\nJJJ\n..."},
		{engine.KindL, "..L\nLLL\n..."},
		{engine.KindT, ".T.\nTTT\n..."},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			m := engine.NewMino(tt.kind)
			assert.Equal(t, tt.want, m.Grid().String())
			assert.Equal(t, engine.DirectionSpawn, m.Direction())
			assert.Equal(t, 4, m.Grid().Occupied())
		})
	}
}

func TestEmptyMino(t *testing.T) {
	m := engine.NewMino(engine.KindEmpty)

	assert.True(t, m.IsEmpty())
	assert.Equal(t, engine.Size{}, m.Size())
	assert.False(t, m.Kicks())
	assert.True(t, m.RotateRight().Equal(m))
}

func TestRotateTransforms(t *testing.T) {
	tests := []struct {
		name string
		mino engine.Mino
		want string
		dir  engine.Direction
	}{
		{"T right", engine.NewMino(engine.KindT).RotateRight(), ".T.\n.TT\n.T.", engine.DirectionRight},
		{"T left", engine.NewMino(engine.KindT).RotateLeft(), ".T.\nTT.\n.T.", engine.DirectionLeft},
		{"T reverse", engine.NewMino(engine.KindT).RotateRight().RotateRight(), "...\nTTT\n.T.", engine.DirectionReverse},
		{"S right", engine.NewMino(engine.KindS).RotateRight(), ".S.\n.SS\n..S", engine.DirectionRight},
		{"J right", engine.NewMino(engine.KindJ).RotateRight(), ".JJ\n.J.\n.J.", engine.DirectionRight},
		{"I right", engine.NewMino(engine.KindI).RotateRight(), "..I.\n..I.\n..I.\n..I.", engine.DirectionRight},
		{"I left", engine.NewMino(engine.KindI).RotateLeft(), ".I..\n.I..\n.I..\n.I..", engine.DirectionLeft},
		{"I reverse", engine.NewMino(engine.KindI).RotateLeft().RotateLeft(), "....\n....\nIIII\n....", engine.DirectionReverse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mino.Grid().String())
			assert.Equal(t, tt.dir, tt.mino.Direction())
		})
	}
}

func TestFourRotationsRestore(t *testing.T) {
	for _, kind := range engine.AllKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			start := engine.NewMino(kind)

			right, left := start, start
			for range 4 {
				right = right.RotateRight()
				left = left.RotateLeft()
			}

			assert.True(t, right.Equal(start))
			assert.True(t, left.Equal(start))
			assert.True(t, start.RotateRight().RotateLeft().Equal(start))
		})
	}
}

func TestRotateDoesNotMutate(t *testing.T) {
	m := engine.NewMino(engine.KindL)
	before := m.Grid().String()

	_ = m.RotateRight()
	_ = m.RotateLeft()

	assert.Equal(t, before, m.Grid().String())
	assert.Equal(t, before, engine.NewMino(engine.KindL).Grid().String())
}

func TestOMinoIsFixed(t *testing.T) {
	o := engine.NewMino(engine.KindO)

	assert.True(t, o.RotateRight().Equal(o))
	assert.True(t, o.RotateLeft().Equal(o))
	assert.Equal(t, engine.DirectionSpawn, o.RotateRight().Direction())
	assert.False(t, o.Kicks())
}

func TestDefaultOrientation(t *testing.T) {
	m := engine.NewMino(engine.KindJ).RotateLeft()
	assert.True(t, m.Default().Equal(engine.NewMino(engine.KindJ)))
}

func TestDirectionCycle(t *testing.T) {
	d := engine.DirectionSpawn
	for range 4 {
		d = d.Right()
	}
	assert.Equal(t, engine.DirectionSpawn, d)
	assert.Equal(t, engine.DirectionLeft, engine.DirectionSpawn.Left())
	assert.Equal(t, engine.DirectionReverse, engine.DirectionLeft.Left())
}

func TestParseDirection(t *testing.T) {
	d, err := engine.ParseDirection(3)
	assert.NoError(t, err)
	assert.Equal(t, engine.DirectionLeft, d)

	_, err = engine.ParseDirection(4)
	assert.ErrorIs(t, err, engine.ErrInvalidDirection)

	_, err = engine.ParseDirection(-1)
	assert.ErrorIs(t, err, engine.ErrInvalidDirection)
}

func TestKickLookup(t *testing.T) {
	t.Run("row space flips y", func(t *testing.T) {
		// 0->R second test is (-1,+1) upward.
		offset, err := engine.NewMino(engine.KindT).Kick(engine.DirectionSpawn, engine.DirectionRight, 1)
		assert.NoError(t, err)
		assert.Equal(t, engine.RelativePosition{X: -1, Y: -1}, offset)
	})

	t.Run("I table differs", func(t *testing.T) {
		offset, err := engine.NewMino(engine.KindI).Kick(engine.DirectionSpawn, engine.DirectionRight, 0)
		assert.NoError(t, err)
		assert.Equal(t, engine.RelativePosition{X: -2, Y: 0}, offset)
	})

	t.Run("half turn rejected", func(t *testing.T) {
		_, err := engine.NewMino(engine.KindT).Kick(engine.DirectionSpawn, engine.DirectionReverse, 0)
		assert.ErrorIs(t, err, engine.ErrInvalidDirection)
	})

	t.Run("invalid direction", func(t *testing.T) {
		_, err := engine.NewMino(engine.KindS).Kick(engine.Direction(9), engine.DirectionSpawn, 0)
		assert.ErrorIs(t, err, engine.ErrInvalidDirection)
	})

	t.Run("step out of range", func(t *testing.T) {
		_, err := engine.NewMino(engine.KindS).Kick(engine.DirectionSpawn, engine.DirectionRight, 4)
		assert.Error(t, err)
	})

	t.Run("O never kicks", func(t *testing.T) {
		offset, err := engine.NewMino(engine.KindO).Kick(engine.DirectionSpawn, engine.DirectionRight, 2)
		assert.NoError(t, err)
		assert.Equal(t, engine.RelativePosition{}, offset)
	})
}
