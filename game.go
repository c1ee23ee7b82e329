package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/zucenko/patchwork/deck"
	"github.com/zucenko/patchwork/engine"
	"github.com/zucenko/patchwork/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	screenWidth  = 1000
	screenHeight = 640
)

var (
	colorBackground = color.RGBA{70, 70, 70, 255}
	colorEmpty      = color.RGBA{230, 225, 210, 255}
	colorCurrency   = color.RGBA{40, 110, 220, 255}
	colorBonusPatch = color.RGBA{102, 51, 0, 255}
	colorTokens     = [2]color.RGBA{{250, 54, 54, 255}, {10, 189, 56, 255}}
	colorValid      = color.RGBA{255, 255, 255, 160}
	colorInvalid    = color.RGBA{220, 30, 30, 160}
)

var Font font.Face

type Game struct {
	Engine  *engine.Engine
	Snap    model.Snapshot
	Tweens  map[*gween.Tween]Action
	tokens  [2]float32
	panel   *Nine
	message string
}

func NewGame(e *engine.Engine) *Game {
	s := e.Snapshot()
	return &Game{
		Engine: e,
		Snap:   s,
		Tweens: make(map[*gween.Tween]Action),
		panel:  NewNine(0.25, 0.25, 0.3, 1),
	}
}

func loadFont() font.Face {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72
	return truetype.NewFace(tt, &truetype.Options{
		Size:    18,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

// apply sends a command and starts token animations for moved players.
func (g *Game) apply(cmd model.Command) {
	next, err := g.Engine.Apply(cmd)
	if err != nil {
		g.message = err.Error()
		return
	}
	g.message = ""
	for i := range next.Players {
		g.moveToken(i+1, g.Snap.Players[i].Position, next.Players[i].Position)
	}
	if next.Players[0].BonusTile != g.Snap.Players[0].BonusTile || next.Players[1].BonusTile != g.Snap.Players[1].BonusTile {
		g.message = "7x7 square completed, bonus tile awarded (+7)"
	}
	g.Snap = next
}

func (g *Game) handleInput() {
	if g.Engine.State() == engine.GameOver {
		return
	}
	switch g.Engine.State() {
	case engine.PlacePatch, engine.PlaceBonusPatch:
		keys := map[ebiten.Key]model.Command{
			ebiten.KeyL: model.Flip(model.Left),
			ebiten.KeyR: model.Flip(model.Right),
			ebiten.KeyH: model.Mirror(model.Horizontal),
			ebiten.KeyV: model.Mirror(model.Vertical),
		}
		for k, cmd := range keys {
			if inpututil.IsKeyJustPressed(k) {
				g.apply(cmd)
			}
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	switch g.Engine.State() {
	case engine.OfferOrSkip:
		if i, ok := offerAt(x, y); ok {
			g.apply(model.Choose(i))
		} else if image.Pt(x, y).In(skipBox) {
			g.apply(model.Skip())
		}
	case engine.PlacePatch, engine.PlaceBonusPatch:
		if c, ok := gridCellAt(g.Snap.Current, x, y); ok {
			g.apply(model.Place(c.X, c.Y))
		}
	}
}

func (g *Game) updateTweens() {
	for t, a := range g.Tweens {
		curr, finished := t.Update(0.02)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			delete(g.Tweens, t)
		}
	}
}

func (g *Game) update(screen *ebiten.Image) error {
	g.updateTweens()
	g.handleInput()

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	if e := screen.Fill(colorBackground); e != nil {
		log.Printf("%v", e)
	}
	g.drawTimeline(screen)
	for i := range g.Snap.Players {
		g.drawGrid(screen, i+1)
	}
	g.drawOffer(screen)
	g.drawPending(screen)
	g.drawStatus(screen)
	ebitenutil.DebugPrintAt(screen, g.Engine.State().Name(), 860, 0)
	return nil
}

func (g *Game) drawTimeline(screen *ebiten.Image) {
	for i, c := range g.Snap.Timeline {
		p, _ := model.PositionToCoordinates(i)
		x := float64(timelineOrigin.X + p.X*timelineCell)
		y := float64(timelineOrigin.Y + p.Y*timelineCell)
		ebitenutil.DrawRect(screen, x+1, y+1, timelineCell-2, timelineCell-2, colorEmpty)
		switch c {
		case model.CellCurrency:
			ebitenutil.DrawRect(screen, x+12, y+12, timelineCell-24, timelineCell-24, colorCurrency)
		case model.CellPatch:
			ebitenutil.DrawRect(screen, x+10, y+10, timelineCell-20, timelineCell-20, colorBonusPatch)
		}
	}
	// the token on top is drawn last
	order := []int{1, 0}
	if !g.Snap.TokenOneOnTop {
		order = []int{0, 1}
	}
	for _, i := range order {
		cx, cy := tokenPoint(g.tokens[i])
		off := float64(i*8) - 4
		ebitenutil.DrawRect(screen, cx-8+off, cy-8+off, 16, 16, colorTokens[i])
	}
}

func (g *Game) drawGrid(screen *ebiten.Image, player int) {
	o := gridOrigins[player-1]
	view := g.Snap.Players[player-1]
	g.panel.SetRect(image.Rect(o.X-8, o.Y-40, o.X+9*gridCell+8, o.Y+9*gridCell+8))
	g.panel.Draw(screen)
	label := fmt.Sprintf("P%d  buttons %d  score %d", player, view.Currency, view.Score)
	text.Draw(screen, label, Font, o.X, o.Y-14, colorTokens[player-1])
	for r := 0; r < model.GridSize; r++ {
		for c := 0; c < model.GridSize; c++ {
			ebitenutil.DrawRect(screen, float64(o.X+c*gridCell)+1, float64(o.Y+r*gridCell)+1, gridCell-2, gridCell-2, colorEmpty)
		}
	}
	for _, pl := range view.Placements {
		drawMask(screen, pl.Patch, o.X+pl.X*gridCell, o.Y+pl.Y*gridCell, gridCell, pl.Patch.Color)
	}
}

func drawMask(screen *ebiten.Image, p model.PatchView, x, y, cell int, clr color.Color) {
	for r, row := range p.Mask {
		for c, v := range row {
			if v {
				ebitenutil.DrawRect(screen, float64(x+c*cell)+1, float64(y+r*cell)+1, float64(cell-2), float64(cell-2), clr)
			}
		}
	}
}

func (g *Game) drawOffer(screen *ebiten.Image) {
	for i, box := range offerBoxes {
		g.panel.SetRect(box)
		g.panel.Draw(screen)
		if i >= len(g.Snap.Offer) {
			continue
		}
		p := g.Snap.Offer[i]
		drawMask(screen, p, box.Min.X+8, box.Min.Y+8, offerCell, p.Color)
		info := fmt.Sprintf("$%d  t%d  +%d", p.Price, p.Time, p.Currency)
		text.Draw(screen, info, Font, box.Min.X+8, box.Max.Y-8, color.White)
	}
	g.panel.SetRect(skipBox)
	g.panel.Draw(screen)
	text.Draw(screen, "Skip", Font, skipBox.Min.X+36, skipBox.Min.Y+32, color.White)
	if rest := len(g.Snap.Offer) - len(offerBoxes); rest > 0 {
		text.Draw(screen, fmt.Sprintf("%d more in the circle", rest), Font, 20, 540, color.White)
	}
}

// drawPending previews the patch being placed under the cursor.
func (g *Game) drawPending(screen *ebiten.Image) {
	if g.Snap.Pending == nil || g.Snap.Current == 0 {
		return
	}
	x, y := ebiten.CursorPosition()
	c, ok := gridCellAt(g.Snap.Current, x, y)
	if !ok {
		drawMask(screen, *g.Snap.Pending, x, y, gridCell, g.Snap.Pending.Color)
		return
	}
	o := gridOrigins[g.Snap.Current-1]
	clr := colorValid
	if !fits(g.Snap, c) {
		clr = colorInvalid
	}
	drawMask(screen, *g.Snap.Pending, o.X+c.X*gridCell, o.Y+c.Y*gridCell, gridCell, clr)
}

// fits checks the pending patch against the snapshot, for the preview only.
func fits(s model.Snapshot, anchor image.Point) bool {
	p := s.Pending
	grid := s.Players[s.Current-1].Grid
	if anchor.X+p.Width > model.GridSize || anchor.Y+p.Height > model.GridSize {
		return false
	}
	for r, row := range p.Mask {
		for c, v := range row {
			if v && grid[anchor.Y+r][anchor.X+c] {
				return false
			}
		}
	}
	return true
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	var status string
	switch g.Engine.State() {
	case engine.OfferOrSkip:
		status = fmt.Sprintf("Player %d: pick a patch or skip", g.Snap.Current)
	case engine.PlacePatch:
		status = fmt.Sprintf("Player %d: place your patch", g.Snap.Current)
	case engine.PlaceBonusPatch:
		status = fmt.Sprintf("Player %d: place your special patch", g.Snap.Current)
	case engine.GameOver:
		status = fmt.Sprintf("Game over  P1 %d  P2 %d", g.Snap.Players[0].Score, g.Snap.Players[1].Score)
		switch g.Snap.Winner {
		case 0:
			status += "  draw"
		default:
			status += fmt.Sprintf("  player %d wins", g.Snap.Winner)
		}
	}
	if g.Engine.Variant() == engine.Full && g.Snap.Pending != nil {
		status += "  (L/R flip, H/V mirror)"
	}
	text.Draw(screen, status, Font, 20, 30, color.White)
	if g.message != "" {
		text.Draw(screen, g.message, Font, 20, 600, color.RGBA{255, 200, 120, 255})
	}
}

func main() {
	mode := flag.String("mode", "full", "game mode, basic or full")
	seed := flag.Int64("seed", time.Now().UnixNano(), "shuffle seed")
	deckPath := flag.String("deck", deck.DefaultPath, "deck file for the full mode")
	flag.Parse()

	variant, err := engine.ParseVariant(*mode)
	if err != nil {
		log.Fatal(err)
	}
	Font = loadFont()
	cfg := engine.Config{Variant: variant, Seed: *seed}
	if variant == engine.Full {
		cfg.Deck = Load(*deckPath, rand.New(rand.NewSource(*seed)))
	}
	theGame := NewGame(engine.New(cfg))
	if err := ebiten.Run(theGame.update, screenWidth, screenHeight, 1, "Patchwork"); err != nil {
		log.Fatal(err)
	}
}
