package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lShape is
//   X .
//   X .
//   X X
func lShape(t *testing.T) *Patch {
	p, err := NewPatch(2, 4, 3, [][]bool{
		{true, false},
		{true, false},
		{true, true},
	}, 2, 3, ColorOrange)
	require.NoError(t, err)
	return p
}

func TestNewPatchRejectsBadInput(t *testing.T) {
	square := [][]bool{{true}}
	cases := []struct {
		name                  string
		currency, price, time int
		mask                  [][]bool
		width, height         int
	}{
		{"zero width", 0, 0, 0, square, 0, 1},
		{"zero height", 0, 0, 0, square, 1, 0},
		{"negative currency", -1, 0, 0, square, 1, 1},
		{"negative price", 0, -1, 0, square, 1, 1},
		{"negative time", 0, 0, -1, square, 1, 1},
		{"too few rows", 0, 0, 0, square, 1, 2},
		{"short row", 0, 0, 0, [][]bool{{true}, {true}}, 2, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPatch(tc.currency, tc.price, tc.time, tc.mask, tc.width, tc.height, ColorGold)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
		})
	}
}

func TestNewPatchCopiesMask(t *testing.T) {
	mask := [][]bool{{true, true}}
	p, err := NewPatch(0, 1, 1, mask, 2, 1, ColorGold)
	require.NoError(t, err)
	mask[0][0] = false
	assert.True(t, p.Occupied(0, 0))
}

func TestFlipRight(t *testing.T) {
	p, err := lShape(t).Flip(Right)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Width())
	assert.Equal(t, 2, p.Height())
	assert.Equal(t, [][]bool{
		{true, true, true},
		{true, false, false},
	}, p.Mask())
}

func TestFlipLeft(t *testing.T) {
	p, err := lShape(t).Flip(Left)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{
		{false, false, true},
		{true, true, true},
	}, p.Mask())
}

func TestFlipRoundTrip(t *testing.T) {
	orig := lShape(t)
	left, err := orig.Flip(Left)
	require.NoError(t, err)
	back, err := left.Flip(Right)
	require.NoError(t, err)
	assert.Equal(t, orig.Mask(), back.Mask())
	assert.Equal(t, orig.Width(), back.Width())
	assert.Equal(t, orig.Height(), back.Height())
	assert.Equal(t, 2, orig.Width(), "original untouched")
}

func TestMirror(t *testing.T) {
	orig := lShape(t)
	h, err := orig.Mirror(Horizontal)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{true, true}, {true, false}, {true, false}}, h.Mask())

	v, err := orig.Mirror(Vertical)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{false, true}, {false, true}, {true, true}}, v.Mask())

	for _, a := range []Axis{Horizontal, Vertical} {
		once, _ := orig.Mirror(a)
		twice, _ := once.Mirror(a)
		assert.Equal(t, orig.Mask(), twice.Mask(), a.Name())
	}
}

func TestTransformRejectsUnknownValues(t *testing.T) {
	p := lShape(t)
	_, err := p.Flip(Direction(7))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = p.Mirror(Axis(-1))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestOrientations(t *testing.T) {
	assert.Len(t, BasicPatchA().Orientations(), 1)
	assert.Len(t, lShape(t).Orientations(), 8)
	for _, o := range lShape(t).Orientations() {
		assert.Equal(t, 4, o.Cells())
		assert.Equal(t, 3, o.Time())
	}
}

func TestBuiltins(t *testing.T) {
	a := BasicPatchA()
	assert.Equal(t, []int{1, 3, 4, 2, 2}, []int{a.Currency(), a.Price(), a.Time(), a.Width(), a.Height()})
	b := BasicPatchB()
	assert.Equal(t, []int{0, 2, 2, 4}, []int{b.Currency(), b.Price(), b.Time(), b.Cells()})
	bonus := BonusPatch()
	assert.Equal(t, 1, bonus.Cells())
	assert.Equal(t, 0, bonus.Price()+bonus.Time()+bonus.Currency())
}
