package engine

import (
	"fmt"

	"github.com/zucenko/patchwork/model"
)

type TurnState int

const (
	SelectTurn TurnState = iota
	OfferOrSkip
	PlacePatch
	CrossTimeline
	PlaceBonusPatch
	CheckBonusTile
	CheckGameEnd
	GameOver
)

func (s TurnState) Name() string {
	switch s {
	case SelectTurn:
		return "SELECT_TURN"
	case OfferOrSkip:
		return "OFFER_OR_SKIP"
	case PlacePatch:
		return "PLACE_PATCH"
	case CrossTimeline:
		return "CROSS_TIMELINE"
	case PlaceBonusPatch:
		return "PLACE_BONUS_PATCH"
	case CheckBonusTile:
		return "CHECK_BONUS_TILE"
	case CheckGameEnd:
		return "CHECK_GAME_END"
	case GameOver:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("n/a:%d", s)
	}
}

// Waiting reports whether the engine needs a command to leave the state.
func (s TurnState) Waiting() bool {
	return s == OfferOrSkip || s == PlacePatch || s == PlaceBonusPatch
}

type Variant int

const (
	Basic Variant = iota
	Full
)

func (v Variant) Name() string {
	switch v {
	case Basic:
		return "basic"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("n/a:%d", v)
	}
}

func ParseVariant(s string) (Variant, error) {
	switch s {
	case "basic":
		return Basic, nil
	case "full":
		return Full, nil
	default:
		return Basic, fmt.Errorf("%w: unknown variant %q", model.ErrInvalidArgument, s)
	}
}
