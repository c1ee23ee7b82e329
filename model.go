package main

import "image"

// Areas of the window, in pixels.
var (
	timelineOrigin = image.Pt(20, 60)
	gridOrigins    = [2]image.Point{image.Pt(420, 60), image.Pt(700, 60)}
	offerBoxes     = [3]image.Rectangle{
		image.Rect(20, 360, 170, 510),
		image.Rect(190, 360, 340, 510),
		image.Rect(360, 360, 510, 510),
	}
	skipBox = image.Rect(530, 410, 640, 460)
)

const (
	timelineCell = 40
	gridCell     = 26
	offerCell    = 22
)

// gridCellAt maps a cursor position to a cell of the given player's quilt.
func gridCellAt(player int, x, y int) (image.Point, bool) {
	o := gridOrigins[player-1]
	if x < o.X || y < o.Y {
		return image.Point{}, false
	}
	c := image.Pt((x-o.X)/gridCell, (y-o.Y)/gridCell)
	if c.X >= 9 || c.Y >= 9 {
		return image.Point{}, false
	}
	return c, true
}

func offerAt(x, y int) (int, bool) {
	p := image.Pt(x, y)
	for i, r := range offerBoxes {
		if p.In(r) {
			return i, true
		}
	}
	return 0, false
}
