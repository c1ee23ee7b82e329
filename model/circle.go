package model

import (
	"fmt"
	"math/rand"
)

// SkipIndex is the offer index a player gives to decline buying.
const SkipIndex = 3

const groupSize = 3

// Circle is the rotating offer of patches. The neutral marker sits
// implicitly before index 0; only the first three patches can be bought.
type Circle struct {
	patches []*Patch
}

func NewCircle(patches []*Patch) *Circle {
	return &Circle{patches: append([]*Patch(nil), patches...)}
}

// BasicDeck is the 40 patch deck of the basic variant, shuffled with rng.
func BasicDeck(rng *rand.Rand) []*Patch {
	deck := make([]*Patch, 0, 40)
	for i := 0; i < 20; i++ {
		deck = append(deck, BasicPatchA(), BasicPatchB())
	}
	ShuffleDeck(rng, deck)
	return deck
}

func ShuffleDeck(rng *rand.Rand, deck []*Patch) {
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}

func (c *Circle) Len() int { return len(c.patches) }

func (c *Circle) Patches() []*Patch { return append([]*Patch(nil), c.patches...) }

// PeekGroup returns the n-th group of up to three patches, n starting at 1.
func (c *Circle) PeekGroup(n int) ([]*Patch, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: group %d < 1", ErrInvalidArgument, n)
	}
	start := (n - 1) * groupSize
	group := make([]*Patch, 0, groupSize)
	for i := start; i < start+groupSize && i < len(c.patches); i++ {
		group = append(group, c.patches[i])
	}
	return group, nil
}

func (c *Circle) IsSelectionValid(index, currency int) bool {
	if index == SkipIndex {
		return true
	}
	if index < 0 || index >= groupSize || index >= len(c.patches) {
		return false
	}
	return c.patches[index].Price() <= currency
}

// Select removes the patch at index and moves the patches that preceded it
// to the back, keeping their order.
func (c *Circle) Select(index int) (*Patch, error) {
	if len(c.patches) == 0 {
		return nil, fmt.Errorf("%w: offer circle is empty", ErrIllegalState)
	}
	if index < 0 || index >= groupSize {
		return nil, fmt.Errorf("%w: offer index %d outside 0..2", ErrIllegalState, index)
	}
	if index >= len(c.patches) {
		return nil, fmt.Errorf("%w: offer index %d past %d remaining", ErrIllegalState, index, len(c.patches))
	}
	selected := c.patches[index]
	rest := make([]*Patch, 0, len(c.patches)-1)
	rest = append(rest, c.patches[index+1:]...)
	rest = append(rest, c.patches[:index]...)
	c.patches = rest
	return selected, nil
}

// SelectPatch removes p by identity; it must be among the first three.
func (c *Circle) SelectPatch(p *Patch) (*Patch, error) {
	if len(c.patches) == 0 {
		return nil, fmt.Errorf("%w: offer circle is empty", ErrIllegalState)
	}
	for i := 0; i < groupSize && i < len(c.patches); i++ {
		if c.patches[i] == p {
			c.patches = append(c.patches[:i:i], c.patches[i+1:]...)
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: patch is not among the available offers", ErrIllegalState)
}
