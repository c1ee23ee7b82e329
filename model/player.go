package model

import "fmt"

const (
	StartingCurrency = 5
	BonusTileValue   = 7
)

type Player struct {
	Id           int
	Currency     int
	Position     int
	Finished     bool
	BonusTile    bool
	BonusPatches int
	Grid         *Grid
}

func NewPlayer(id int) (*Player, error) {
	if id != 1 && id != 2 {
		return nil, fmt.Errorf("%w: unknown player id %d", ErrInvalidArgument, id)
	}
	return &Player{
		Id:       id,
		Currency: StartingCurrency,
		Grid:     NewGrid(),
	}, nil
}

// TurnPriority tells whether p plays before other. On a shared square the
// token on top plays first.
func (p *Player) TurnPriority(other *Player, selfTokenOnTop bool) bool {
	if p.Position < other.Position {
		return true
	}
	return p.Position == other.Position && selfTokenOnTop
}

func (p *Player) Score() int {
	return p.Currency - 2*p.Grid.EmptyCellCount()
}

func (p *Player) Pay(price int) error {
	if price < 0 {
		return fmt.Errorf("%w: price %d < 0", ErrInvalidArgument, price)
	}
	if price > p.Currency {
		return fmt.Errorf("%w: player %d cannot pay %d with %d", ErrIllegalState, p.Id, price, p.Currency)
	}
	p.Currency -= price
	return nil
}

func (p *Player) Earn(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: amount %d < 0", ErrInvalidArgument, amount)
	}
	p.Currency += amount
	return nil
}

// MoveTo sets the token position. Reaching the last square finishes the
// player for good.
func (p *Player) MoveTo(position int) error {
	if position < 0 || position > LastPosition {
		return fmt.Errorf("%w: position %d out of range", ErrInvalidArgument, position)
	}
	p.Position = position
	if position == LastPosition {
		p.Finished = true
	}
	return nil
}

// Destination is where a patch of the given time value takes the token.
func (p *Player) Destination(time int) int {
	if p.Position+time > LastPosition {
		return LastPosition
	}
	return p.Position + time
}

func (p *Player) Advance(patch *Patch) error {
	return p.MoveTo(p.Destination(patch.Time()))
}

func (p *Player) AwardBonusTile() error {
	if p.BonusTile {
		return fmt.Errorf("%w: player %d already holds the bonus tile", ErrIllegalState, p.Id)
	}
	p.BonusTile = true
	p.Currency += BonusTileValue
	return nil
}

func (p *Player) CollectBonusPatch() {
	p.BonusPatches++
}

// TilesAndCurrencyOnSkip returns where p lands when declining to buy and
// how many squares it crosses, which is also the currency earned.
func (p *Player) TilesAndCurrencyOnSkip(opponent *Player) (destination, tiles int, err error) {
	if opponent.Position < p.Position {
		return 0, 0, fmt.Errorf("%w: opponent at %d is behind player at %d", ErrIllegalState, opponent.Position, p.Position)
	}
	if opponent.Finished {
		return LastPosition, opponent.Position - p.Position, nil
	}
	return opponent.Position + 1, opponent.Position - p.Position + 1, nil
}
