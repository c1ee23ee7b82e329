package model

import "image/color"

// Snapshot is the public view of a session after a step. It holds no
// references into the live game.
type Snapshot struct {
	SessionId        string
	State            string
	Variant          string
	Current          int
	TokenOneOnTop    bool
	BonusTileClaimed bool
	Pending          *PatchView
	Players          [2]PlayerView
	Offer            []PatchView
	Timeline         [TimelineSize]Cell
	Over             bool
	Winner           int
}

type PlayerView struct {
	Id           int
	Currency     int
	Position     int
	Finished     bool
	BonusTile    bool
	BonusPatches int
	Score        int
	Grid         [GridSize][GridSize]bool
	Placements   []PlacementView
}

type PatchView struct {
	Currency int
	Price    int
	Time     int
	Width    int
	Height   int
	Mask     [][]bool
	Color    color.RGBA
}

type PlacementView struct {
	Patch PatchView
	X, Y  int
}

func ViewPatch(p *Patch) PatchView {
	return PatchView{
		Currency: p.Currency(),
		Price:    p.Price(),
		Time:     p.Time(),
		Width:    p.Width(),
		Height:   p.Height(),
		Mask:     p.Mask(),
		Color:    p.Color(),
	}
}

func ViewPlayer(p *Player) PlayerView {
	placements := make([]PlacementView, 0, len(p.Grid.placements))
	for _, pl := range p.Grid.placements {
		placements = append(placements, PlacementView{Patch: ViewPatch(pl.Patch), X: pl.Anchor.X, Y: pl.Anchor.Y})
	}
	return PlayerView{
		Id:           p.Id,
		Currency:     p.Currency,
		Position:     p.Position,
		Finished:     p.Finished,
		BonusTile:    p.BonusTile,
		BonusPatches: p.BonusPatches,
		Score:        p.Score(),
		Grid:         p.Grid.Cells(),
		Placements:   placements,
	}
}

// View copies the board part of a snapshot.
func (m *Model) View() Snapshot {
	current, _ := m.Turn()
	offer := make([]PatchView, 0, m.Circle.Len())
	for _, p := range m.Circle.patches {
		offer = append(offer, ViewPatch(p))
	}
	s := Snapshot{
		Current:          current.Id,
		TokenOneOnTop:    m.TokenOneOnTop,
		BonusTileClaimed: m.BonusTileClaimed,
		Players:          [2]PlayerView{ViewPlayer(m.Players[0]), ViewPlayer(m.Players[1])},
		Offer:            offer,
		Timeline:         m.Timeline.Cells(),
		Over:             m.Over(),
	}
	if s.Over {
		s.Winner = m.Winner()
	}
	return s
}
