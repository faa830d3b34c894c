package engine

import "math/rand/v2"

const (
	DefaultWidth   = 10
	DefaultHeight  = 40
	DefaultVisible = 20
)

// Config holds the construction parameters of a Field.
type Config struct {
	Width   int
	Height  int
	Visible int
	Seed    uint64
}

// Option customizes a Config.
type Option func(*Config)

// WithSeed fixes the randomizer seed. Two fields built with the same seed
// and fed the same commands evolve identically.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithSize sets the field width, total height and the number of visible
// rows counted from the bottom. Rows above the visible area are the spawn
// buffer.
func WithSize(width, height, visible int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
		c.Visible = visible
	}
}

func newConfig(opts []Option) Config {
	c := Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Visible: DefaultVisible,
		Seed:    rand.Uint64(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// spawnAnchor is the field cell taken by the top-left of a 3x3 piece.
func (c Config) spawnAnchor() Position {
	return Position{X: c.Width/2 - 1, Y: c.Visible + 1}
}

func (c Config) validate() {
	if c.Width < 4 {
		panic("field must be at least 4 cells wide")
	}
	if c.Visible < 1 || c.Height < c.Visible+4 {
		panic("field needs at least 4 buffer rows above the visible area")
	}
}
