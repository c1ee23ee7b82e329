package model

// Model is the shared board of one game session.
type Model struct {
	Players  [2]*Player
	Circle   *Circle
	Timeline *Timeline
	// TokenOneOnTop is true while player 1's token sits on player 2's.
	TokenOneOnTop    bool
	BonusTileClaimed bool
}

// Turn returns the player to move and the opponent.
func (m *Model) Turn() (current, opponent *Player) {
	one, two := m.Players[0], m.Players[1]
	if one.TurnPriority(two, m.TokenOneOnTop) {
		return one, two
	}
	return two, one
}

func (m *Model) Over() bool {
	return m.Players[0].Finished && m.Players[1].Finished
}

// Winner is the id of the higher scoring player, 0 on a draw.
func (m *Model) Winner() int {
	one, two := m.Players[0].Score(), m.Players[1].Score()
	switch {
	case one > two:
		return 1
	case two > one:
		return 2
	default:
		return 0
	}
}
