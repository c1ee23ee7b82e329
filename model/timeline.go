package model

import (
	"fmt"
	"image"
)

const (
	TimelineSize = 54
	LastPosition = TimelineSize - 1
)

type Cell int

const (
	CellEmpty Cell = iota
	CellCurrency
	CellPatch
)

func (c Cell) Name() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellCurrency:
		return "currency"
	case CellPatch:
		return "patch"
	default:
		return fmt.Sprintf("n/a:%d", c)
	}
}

// Timeline is the shared path both tokens walk along.
type Timeline struct {
	cells [TimelineSize]Cell
}

func NewBasicTimeline() *Timeline {
	t := &Timeline{}
	for i := 0; i < 9; i++ {
		t.cells[5+6*i] = CellCurrency
	}
	return t
}

func NewFullTimeline() *Timeline {
	t := NewBasicTimeline()
	for i := 0; i < 5; i++ {
		t.cells[26+6*i] = CellPatch
	}
	return t
}

func (t *Timeline) Cells() [TimelineSize]Cell { return t.cells }

func (t *Timeline) Cell(index int) (Cell, error) {
	if index < 0 || index >= TimelineSize {
		return CellEmpty, fmt.Errorf("%w: timeline index %d out of range", ErrInvalidArgument, index)
	}
	return t.cells[index], nil
}

// CrossingEffects returns the effects of the non-empty cells in
// (from, to]. Patch cells are consumed by the crossing.
func (t *Timeline) CrossingEffects(from, to int) ([]Cell, error) {
	if from < 0 || from >= TimelineSize {
		return nil, fmt.Errorf("%w: start %d out of range", ErrInvalidArgument, from)
	}
	if to < 0 || to >= TimelineSize {
		return nil, fmt.Errorf("%w: finish %d out of range", ErrInvalidArgument, to)
	}
	if to <= from {
		return nil, fmt.Errorf("%w: finish %d <= start %d", ErrInvalidArgument, to, from)
	}
	var effects []Cell
	for i := from + 1; i <= to; i++ {
		switch t.cells[i] {
		case CellCurrency:
			effects = append(effects, CellCurrency)
		case CellPatch:
			t.cells[i] = CellEmpty
			effects = append(effects, CellPatch)
		}
	}
	return effects, nil
}

// spiral runs on the 9x6 board, clockwise from the top-left corner.
var spiral = []struct {
	n, dx, dy int
}{
	{8, 1, 0}, {5, 0, 1}, {8, -1, 0}, {4, 0, -1},
	{7, 1, 0}, {3, 0, 1}, {6, -1, 0}, {2, 0, -1},
	{5, 1, 0}, {1, 0, 1}, {4, -1, 0},
}

// PositionToCoordinates maps a timeline index to its square on the board.
func PositionToCoordinates(index int) (image.Point, error) {
	if index < 0 || index >= TimelineSize {
		return image.Point{}, fmt.Errorf("%w: timeline index %d out of range", ErrInvalidArgument, index)
	}
	var p image.Point
	steps := index
	for _, run := range spiral {
		if steps == 0 {
			break
		}
		n := run.n
		if n > steps {
			n = steps
		}
		p.X += n * run.dx
		p.Y += n * run.dy
		steps -= n
	}
	return p, nil
}
