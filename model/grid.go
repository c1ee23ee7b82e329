package model

import (
	"fmt"
	"image"
)

const (
	GridSize   = 9
	squareSide = 7
)

type Placement struct {
	Patch  *Patch
	Anchor image.Point
}

// Grid is a player's 9x9 quilt, indexed [row][col].
type Grid struct {
	cells      [GridSize][GridSize]bool
	placements []Placement
}

func NewGrid() *Grid {
	return &Grid{}
}

func (g *Grid) Cells() [GridSize][GridSize]bool { return g.cells }

func (g *Grid) Placements() []Placement { return append([]Placement(nil), g.placements...) }

func (g *Grid) CanPlace(p *Patch, anchor image.Point) bool {
	return g.check(p, anchor) == nil
}

func (g *Grid) check(p *Patch, anchor image.Point) error {
	if p == nil {
		return fmt.Errorf("%w: no patch", ErrInvalidArgument)
	}
	if anchor.X < 0 || anchor.X+p.Width() > GridSize || anchor.Y < 0 || anchor.Y+p.Height() > GridSize {
		return fmt.Errorf("%w: patch %dx%d at %v is out of bounds", ErrInvalidArgument, p.Width(), p.Height(), anchor)
	}
	for r := 0; r < p.Height(); r++ {
		for c := 0; c < p.Width(); c++ {
			if p.mask[r][c] && g.cells[anchor.Y+r][anchor.X+c] {
				return fmt.Errorf("%w: cell (%d,%d) is already occupied", ErrInvalidArgument, anchor.X+c, anchor.Y+r)
			}
		}
	}
	return nil
}

func (g *Grid) Place(p *Patch, anchor image.Point) error {
	if err := g.check(p, anchor); err != nil {
		return err
	}
	for r := 0; r < p.Height(); r++ {
		for c := 0; c < p.Width(); c++ {
			if p.mask[r][c] {
				g.cells[anchor.Y+r][anchor.X+c] = true
			}
		}
	}
	g.placements = append(g.placements, Placement{Patch: p, Anchor: anchor})
	return nil
}

// Fits reports whether p can go anywhere, trying every orientation when
// transforms are allowed.
func (g *Grid) Fits(p *Patch, transforms bool) bool {
	shapes := []*Patch{p}
	if transforms {
		shapes = p.Orientations()
	}
	for _, s := range shapes {
		for y := 0; y+s.Height() <= GridSize; y++ {
			for x := 0; x+s.Width() <= GridSize; x++ {
				if g.CanPlace(s, image.Pt(x, y)) {
					return true
				}
			}
		}
	}
	return false
}

func (g *Grid) CurrencyYield() int {
	total := 0
	for _, pl := range g.placements {
		total += pl.Patch.Currency()
	}
	return total
}

func (g *Grid) EmptyCellCount() int {
	n := 0
	for r := range g.cells {
		for c := range g.cells[r] {
			if !g.cells[r][c] {
				n++
			}
		}
	}
	return n
}

func (g *Grid) HasCompletedSevenSquare() bool {
	for y := 0; y <= GridSize-squareSide; y++ {
		for x := 0; x <= GridSize-squareSide; x++ {
			if g.fullSquare(x, y) {
				return true
			}
		}
	}
	return false
}

func (g *Grid) fullSquare(x, y int) bool {
	for r := 0; r < squareSide; r++ {
		for c := 0; c < squareSide; c++ {
			if !g.cells[y+r][x+c] {
				return false
			}
		}
	}
	return true
}
