package model

import (
	"fmt"
	"image/color"
)

type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) Name() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("n/a:%d", d)
	}
}

type Axis int

const (
	// Horizontal reflects rows, top becomes bottom.
	Horizontal Axis = iota
	// Vertical reflects columns, left becomes right.
	Vertical
)

func (a Axis) Name() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("n/a:%d", a)
	}
}

var (
	ColorOrange = color.RGBA{0xff, 0xc8, 0x00, 0xff}
	ColorGold   = color.RGBA{0xff, 0xcc, 0x33, 0xff}
	ColorBrown  = color.RGBA{0x66, 0x33, 0x00, 0xff}
)

// Patch is immutable. Mask is indexed [row][col], rows = height.
type Patch struct {
	currency int
	price    int
	time     int
	width    int
	height   int
	mask     [][]bool
	color    color.RGBA
}

func NewPatch(currency, price, time int, mask [][]bool, width, height int, c color.RGBA) (*Patch, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d <= 0", ErrInvalidArgument, width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: height %d <= 0", ErrInvalidArgument, height)
	}
	if currency < 0 {
		return nil, fmt.Errorf("%w: currency %d < 0", ErrInvalidArgument, currency)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price %d < 0", ErrInvalidArgument, price)
	}
	if time < 0 {
		return nil, fmt.Errorf("%w: time %d < 0", ErrInvalidArgument, time)
	}
	if len(mask) != height {
		return nil, fmt.Errorf("%w: mask has %d rows, want %d", ErrInvalidArgument, len(mask), height)
	}
	for r, row := range mask {
		if len(row) != width {
			return nil, fmt.Errorf("%w: mask row %d has %d cells, want %d", ErrInvalidArgument, r, len(row), width)
		}
	}
	return &Patch{
		currency: currency,
		price:    price,
		time:     time,
		width:    width,
		height:   height,
		mask:     copyMask(mask),
		color:    c,
	}, nil
}

func (p *Patch) Currency() int     { return p.currency }
func (p *Patch) Price() int        { return p.price }
func (p *Patch) Time() int         { return p.time }
func (p *Patch) Width() int        { return p.width }
func (p *Patch) Height() int       { return p.height }
func (p *Patch) Color() color.RGBA { return p.color }
func (p *Patch) Mask() [][]bool    { return copyMask(p.mask) }
func (p *Patch) Occupied(x, y int) bool {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return false
	}
	return p.mask[y][x]
}

// Cells counts the occupied cells of the mask.
func (p *Patch) Cells() int {
	n := 0
	for _, row := range p.mask {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Flip rotates the patch a quarter turn. Left is counter-clockwise.
func (p *Patch) Flip(d Direction) (*Patch, error) {
	if d != Left && d != Right {
		return nil, fmt.Errorf("%w: unknown flip direction %d", ErrInvalidArgument, d)
	}
	w, h := p.height, p.width
	mask := newMask(w, h)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if d == Right {
				mask[r][c] = p.mask[p.height-1-c][r]
			} else {
				mask[r][c] = p.mask[c][p.width-1-r]
			}
		}
	}
	return &Patch{p.currency, p.price, p.time, w, h, mask, p.color}, nil
}

func (p *Patch) Mirror(a Axis) (*Patch, error) {
	if a != Horizontal && a != Vertical {
		return nil, fmt.Errorf("%w: unknown mirror axis %d", ErrInvalidArgument, a)
	}
	mask := newMask(p.width, p.height)
	for r := 0; r < p.height; r++ {
		for c := 0; c < p.width; c++ {
			if a == Horizontal {
				mask[r][c] = p.mask[p.height-1-r][c]
			} else {
				mask[r][c] = p.mask[r][p.width-1-c]
			}
		}
	}
	return &Patch{p.currency, p.price, p.time, p.width, p.height, mask, p.color}, nil
}

// Orientations returns the distinct shapes reachable by flips and mirrors.
func (p *Patch) Orientations() []*Patch {
	out := make([]*Patch, 0, 8)
	seen := make(map[string]bool)
	cur := p
	for i := 0; i < 4; i++ {
		for _, q := range []*Patch{cur, mustMirror(cur)} {
			k := q.shapeKey()
			if !seen[k] {
				seen[k] = true
				out = append(out, q)
			}
		}
		cur, _ = cur.Flip(Right)
	}
	return out
}

func (p *Patch) String() string {
	return fmt.Sprintf("patch %dx%d currency:%d price:%d time:%d", p.width, p.height, p.currency, p.price, p.time)
}

func (p *Patch) shapeKey() string {
	b := make([]byte, 0, p.width*p.height+4)
	b = append(b, byte(p.width), byte(p.height))
	for _, row := range p.mask {
		for _, v := range row {
			if v {
				b = append(b, '1')
			} else {
				b = append(b, '0')
			}
		}
	}
	return string(b)
}

func mustMirror(p *Patch) *Patch {
	q, _ := p.Mirror(Vertical)
	return q
}

func newMask(width, height int) [][]bool {
	mask := make([][]bool, height)
	for r := range mask {
		mask[r] = make([]bool, width)
	}
	return mask
}

func copyMask(mask [][]bool) [][]bool {
	out := make([][]bool, len(mask))
	for r, row := range mask {
		out[r] = append([]bool(nil), row...)
	}
	return out
}

// Cube builds a full square patch.
func Cube(size, currency, price, time int, c color.RGBA) *Patch {
	mask := newMask(size, size)
	for r := range mask {
		for col := range mask[r] {
			mask[r][col] = true
		}
	}
	return &Patch{currency, price, time, size, size, mask, c}
}

func BasicPatchA() *Patch { return Cube(2, 1, 3, 4, ColorOrange) }

func BasicPatchB() *Patch { return Cube(2, 0, 2, 2, ColorGold) }

// BonusPatch is the free 1x1 patch picked up on a timeline patch cell.
func BonusPatch() *Patch { return Cube(1, 0, 0, 0, ColorBrown) }
