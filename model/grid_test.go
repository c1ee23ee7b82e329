package model

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceMarksCells(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.Place(lShape(t), image.Pt(7, 6)))
	cells := g.Cells()
	assert.True(t, cells[6][7])
	assert.True(t, cells[8][8])
	assert.False(t, cells[6][8])
	assert.Equal(t, 81-4, g.EmptyCellCount())
	require.Len(t, g.Placements(), 1)
	assert.Equal(t, image.Pt(7, 6), g.Placements()[0].Anchor)
}

func TestPlaceRejects(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.Place(BasicPatchA(), image.Pt(0, 0)))
	cases := map[string]image.Point{
		"overlap":     {1, 1},
		"right edge":  {8, 0},
		"bottom edge": {0, 8},
		"negative":    {-1, 3},
	}
	for name, anchor := range cases {
		t.Run(name, func(t *testing.T) {
			err := g.Place(BasicPatchB(), anchor)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
			assert.False(t, g.CanPlace(BasicPatchB(), anchor))
		})
	}
	assert.Equal(t, 81-4, g.EmptyCellCount(), "failed placements leave the quilt unchanged")
	assert.Error(t, g.Place(nil, image.Pt(0, 0)))
}

func TestMaskHolesCanBeFilled(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.Place(lShape(t), image.Pt(0, 0)))
	hole := Cube(1, 0, 0, 0, ColorBrown)
	assert.NoError(t, g.Place(hole, image.Pt(1, 0)))
}

func TestCurrencyYield(t *testing.T) {
	g := NewGrid()
	assert.Equal(t, 0, g.CurrencyYield())
	require.NoError(t, g.Place(BasicPatchA(), image.Pt(0, 0)))
	require.NoError(t, g.Place(BasicPatchA(), image.Pt(2, 0)))
	require.NoError(t, g.Place(BasicPatchB(), image.Pt(4, 0)))
	assert.Equal(t, 2, g.CurrencyYield())
}

func TestSevenSquare(t *testing.T) {
	g := NewGrid()
	big := Cube(7, 0, 0, 0, ColorGold)
	assert.False(t, g.HasCompletedSevenSquare())
	require.NoError(t, g.Place(big, image.Pt(2, 1)))
	assert.True(t, g.HasCompletedSevenSquare())

	g = NewGrid()
	for y := 0; y < 8; y += 2 {
		for x := 0; x < 8; x += 2 {
			require.NoError(t, g.Place(BasicPatchB(), image.Pt(x, y)))
		}
	}
	assert.True(t, g.HasCompletedSevenSquare())
	assert.Equal(t, 17, g.EmptyCellCount())
}

func TestFits(t *testing.T) {
	g := NewGrid()
	// leave a single 1x3 vertical gap in column 8
	require.NoError(t, g.Place(Cube(8, 0, 0, 0, ColorGold), image.Pt(0, 0)))
	require.NoError(t, g.Place(Cube(1, 0, 0, 0, ColorGold), image.Pt(8, 0)))
	require.NoError(t, g.Place(Cube(1, 0, 0, 0, ColorGold), image.Pt(8, 1)))
	require.NoError(t, g.Place(Cube(1, 0, 0, 0, ColorGold), image.Pt(8, 2)))
	row, err := NewPatch(0, 0, 0, [][]bool{{true, true, true}}, 3, 1, ColorOrange)
	require.NoError(t, err)
	bottom := Cube(9, 0, 0, 0, ColorGold)
	assert.True(t, g.Fits(row, false), "still room in the last row")

	g = NewGrid()
	require.NoError(t, g.Place(Cube(8, 0, 0, 0, ColorGold), image.Pt(0, 0)))
	for y := 0; y < 9; y++ {
		if y >= 3 && y < 6 {
			continue
		}
		require.NoError(t, g.Place(Cube(1, 0, 0, 0, ColorGold), image.Pt(8, y)))
	}
	for x := 0; x < 8; x++ {
		require.NoError(t, g.Place(Cube(1, 0, 0, 0, ColorGold), image.Pt(x, 8)))
	}
	assert.Equal(t, 3, g.EmptyCellCount())
	assert.False(t, g.Fits(row, false))
	assert.True(t, g.Fits(row, true), "a quarter turn fits the column gap")
	assert.False(t, g.Fits(bottom, true))
	assert.True(t, g.Fits(BonusPatch(), false))
}
