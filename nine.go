package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

const panelRadius = 8

// Nine draws a rounded panel from a 3x3 sliced image; corners keep their
// size and the edges and center stretch.
type Nine struct {
	images              *ebiten.Image
	alpha               float64
	R, G, B, Scale      float64
	positions           [4]int
	x, y, width, height int
	targets             [4][2]float64
	scales              [3][2]float64
}

func NewNine(r, g, b, alpha float64) *Nine {
	return &Nine{
		images:    panelImage(),
		alpha:     alpha,
		R:         r,
		G:         g,
		B:         b,
		Scale:     1,
		positions: [4]int{0, panelRadius, panelRadius + 1, 2*panelRadius + 1},
	}
}

var panelSource *ebiten.Image

// panelImage renders a white disc once; its slices make the panel corners.
func panelImage() *ebiten.Image {
	if panelSource != nil {
		return panelSource
	}
	size := 2*panelRadius + 1
	src := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-panelRadius, y-panelRadius
			if dx*dx+dy*dy <= panelRadius*panelRadius {
				src.Set(x, y, color.White)
			}
		}
	}
	panelSource, _ = ebiten.NewImageFromImage(src, ebiten.FilterDefault)
	return panelSource
}

func (n *Nine) SetRect(r image.Rectangle) {
	n.x, n.y = r.Min.X, r.Min.Y
	n.width, n.height = r.Dx(), r.Dy()
	p := n.positions
	n.targets[0] = [2]float64{float64(n.x), float64(n.y)}
	n.targets[1] = [2]float64{float64(n.x) + n.Scale*float64(p[1]), float64(n.y) + n.Scale*float64(p[1])}
	n.targets[2] = [2]float64{float64(n.x+n.width) - n.Scale*float64(p[3]-p[2]), float64(n.y+n.height) - n.Scale*float64(p[3]-p[2])}
	n.targets[3] = [2]float64{float64(n.x + n.width), float64(n.y + n.height)}
	for i := 0; i < 3; i++ {
		src := float64(p[i+1] - p[i])
		n.scales[i][0] = (n.targets[i+1][0] - n.targets[i][0]) / src
		n.scales[i][1] = (n.targets[i+1][1] - n.targets[i][1]) / src
	}
}

func (n *Nine) Draw(screen *ebiten.Image) {
	p := n.positions
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(n.scales[col][0], n.scales[row][1])
			op.GeoM.Translate(n.targets[col][0], n.targets[row][1])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			slice := image.Rect(p[col], p[row], p[col+1], p[row+1])
			screen.DrawImage(n.images.SubImage(slice).(*ebiten.Image), op)
		}
	}
}
