package engine

import (
	"fmt"
	"math/rand/v2"
)

// Bag is one generation of the 7-bag randomizer: every playable kind
// exactly once, in shuffled order, consumed front to back.
type Bag struct {
	kinds []Kind
}

// NewBag returns a full bag shuffled with r.
func NewBag(r *rand.Rand) *Bag {
	kinds := AllKinds()
	r.Shuffle(len(kinds), func(i, j int) {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})
	return &Bag{kinds: kinds}
}

// Next removes and returns the front kind.
func (b *Bag) Next() (Kind, error) {
	if len(b.kinds) == 0 {
		return KindEmpty, fmt.Errorf("draw: %w", ErrEmptyBag)
	}
	kind := b.kinds[0]
	b.kinds = b.kinds[1:]
	return kind, nil
}

func (b *Bag) Len() int {
	return len(b.kinds)
}

// Peek returns a copy of the remaining kinds in draw order.
func (b *Bag) Peek() []Kind {
	return append([]Kind(nil), b.kinds...)
}
