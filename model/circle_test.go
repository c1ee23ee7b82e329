package model

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numbered returns n distinct patches whose price is their position.
func numbered(n int) []*Patch {
	out := make([]*Patch, n)
	for i := range out {
		out[i] = Cube(1, 0, i, 1, ColorGold)
	}
	return out
}

func prices(ps []*Patch) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.Price()
	}
	return out
}

func TestPeekGroup(t *testing.T) {
	c := NewCircle(numbered(7))
	g, err := c.PeekGroup(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, prices(g))

	g, _ = c.PeekGroup(3)
	assert.Equal(t, []int{6}, prices(g))

	g, _ = c.PeekGroup(4)
	assert.Empty(t, g)

	_, err = c.PeekGroup(0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, 7, c.Len())
}

func TestSelectRotatesPreceding(t *testing.T) {
	c := NewCircle(numbered(6))
	p, err := c.Select(2)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Price())
	assert.Equal(t, []int{3, 4, 5, 0, 1}, prices(c.Patches()))

	p, err = c.Select(1)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Price())
	assert.Equal(t, []int{5, 0, 1, 3}, prices(c.Patches()))

	p, err = c.Select(0)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Price())
	assert.Equal(t, []int{0, 1, 3}, prices(c.Patches()))
}

func TestSelectZeroEmptiesCircle(t *testing.T) {
	c := NewCircle(numbered(5))
	for i := 0; i < 5; i++ {
		p, err := c.Select(0)
		require.NoError(t, err)
		assert.Equal(t, i, p.Price())
	}
	assert.Equal(t, 0, c.Len())
	_, err := c.Select(0)
	assert.True(t, errors.Is(err, ErrIllegalState))
}

func TestSelectErrors(t *testing.T) {
	c := NewCircle(numbered(2))
	_, err := c.Select(2)
	assert.True(t, errors.Is(err, ErrIllegalState))
	_, err = c.Select(3)
	assert.True(t, errors.Is(err, ErrIllegalState))
	_, err = c.Select(-1)
	assert.True(t, errors.Is(err, ErrIllegalState))
	assert.Equal(t, 2, c.Len())
}

func TestIsSelectionValid(t *testing.T) {
	c := NewCircle(numbered(2))
	cases := []struct {
		index, currency int
		want            bool
	}{
		{0, 0, true},
		{1, 0, false},
		{1, 1, true},
		{2, 10, false},
		{SkipIndex, 0, true},
		{4, 10, false},
		{-1, 10, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.IsSelectionValid(tc.index, tc.currency), "index %d currency %d", tc.index, tc.currency)
	}
	assert.True(t, NewCircle(nil).IsSelectionValid(SkipIndex, 0))
}

func TestSelectPatch(t *testing.T) {
	ps := numbered(5)
	c := NewCircle(ps)
	_, err := c.SelectPatch(ps[3])
	assert.True(t, errors.Is(err, ErrIllegalState))

	got, err := c.SelectPatch(ps[1])
	require.NoError(t, err)
	assert.Same(t, ps[1], got)
	assert.Equal(t, []int{0, 2, 3, 4}, prices(c.Patches()))

	_, err = c.SelectPatch(BasicPatchA())
	assert.True(t, errors.Is(err, ErrIllegalState))
}

func TestBasicDeckIsSeeded(t *testing.T) {
	a := BasicDeck(rand.New(rand.NewSource(42)))
	b := BasicDeck(rand.New(rand.NewSource(42)))
	require.Len(t, a, 40)
	assert.Equal(t, prices(a), prices(b))
	cheap := 0
	for _, p := range a {
		if p.Price() == 2 {
			cheap++
		}
	}
	assert.Equal(t, 20, cheap)
}
