package model

import (
	"fmt"
	"image"
)

func NewModel(deck []*Patch, timeline *Timeline) *Model {
	one, _ := NewPlayer(1)
	two, _ := NewPlayer(2)
	return &Model{
		Players:       [2]*Player{one, two},
		Circle:        NewCircle(deck),
		Timeline:      timeline,
		TokenOneOnTop: true,
	}
}

type CommandKind int

const (
	CmdChoose CommandKind = iota + 1
	CmdPlace
	CmdFlip
	CmdMirror
)

func (k CommandKind) Name() string {
	switch k {
	case CmdChoose:
		return "CHOOSE"
	case CmdPlace:
		return "PLACE"
	case CmdFlip:
		return "FLIP"
	case CmdMirror:
		return "MIRROR"
	default:
		return fmt.Sprintf("n/a:%d", k)
	}
}

// Command is what a front end sends to the engine.
type Command struct {
	Kind      CommandKind
	Index     int
	Anchor    image.Point
	Direction Direction
	Axis      Axis
}

func Choose(index int) Command { return Command{Kind: CmdChoose, Index: index} }

func Skip() Command { return Choose(SkipIndex) }

func Place(x, y int) Command { return Command{Kind: CmdPlace, Anchor: image.Pt(x, y)} }

func Flip(d Direction) Command { return Command{Kind: CmdFlip, Direction: d} }

func Mirror(a Axis) Command { return Command{Kind: CmdMirror, Axis: a} }
