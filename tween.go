package main

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/patchwork/model"
)

type Action struct {
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// moveToken glides a token along the timeline spiral.
func (g *Game) moveToken(player int, from, to int) {
	if from == to {
		return
	}
	t := gween.New(float32(from), float32(to), 0.04*float32(to-from)+0.2, ease.OutQuad)
	action := Action{onChange: func(v float32) { g.tokens[player-1] = v }}
	action.addOnFinish(func() { g.tokens[player-1] = float32(to) })
	g.Tweens[t] = action
}

// tokenPoint interpolates the pixel center of a fractional timeline index.
func tokenPoint(v float32) (float64, float64) {
	lo := int(math.Floor(float64(v)))
	if lo >= model.LastPosition {
		lo = model.LastPosition - 1
	}
	if lo < 0 {
		lo = 0
	}
	a, _ := model.PositionToCoordinates(lo)
	b, _ := model.PositionToCoordinates(lo + 1)
	f := float64(v) - float64(lo)
	x := float64(a.X) + (float64(b.X)-float64(a.X))*f
	y := float64(a.Y) + (float64(b.Y)-float64(a.Y))*f
	return float64(timelineOrigin.X) + (x+0.5)*timelineCell, float64(timelineOrigin.Y) + (y+0.5)*timelineCell
}
