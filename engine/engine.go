package engine

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/patchwork/model"
)

// Observer receives a snapshot after every completed step.
type Observer interface {
	Publish(s model.Snapshot)
}

type Config struct {
	Variant Variant
	Seed    int64
	// Deck is the loaded full deck. When empty the basic deck is used.
	Deck     []*model.Patch
	Log      log.FieldLogger
	Observer Observer
}

// Engine runs the turns of one game. It is not safe for concurrent use.
type Engine struct {
	Id       string
	variant  Variant
	model    *model.Model
	state    TurnState
	log      log.FieldLogger
	observer Observer

	current  *model.Player
	opponent *model.Player
	pending  *model.Patch
	bought   bool
	effects  []model.Cell
}

func New(cfg Config) *Engine {
	logger := cfg.Log
	if logger == nil {
		logger = log.StandardLogger()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	deck := cfg.Deck
	if cfg.Variant != Full || len(deck) == 0 {
		deck = model.BasicDeck(rng)
	} else {
		deck = append([]*model.Patch(nil), deck...)
		model.ShuffleDeck(rng, deck)
	}
	timeline := model.NewBasicTimeline()
	if cfg.Variant == Full {
		timeline = model.NewFullTimeline()
	}

	id := uuid.New().String()
	e := &Engine{
		Id:       id,
		variant:  cfg.Variant,
		model:    model.NewModel(deck, timeline),
		state:    SelectTurn,
		log:      logger.WithField("session", id),
		observer: cfg.Observer,
	}
	e.log.WithFields(log.Fields{
		"variant": cfg.Variant.Name(),
		"seed":    cfg.Seed,
		"patches": len(deck),
	}).Info("Engine.New game created")
	e.run()
	e.publish()
	return e
}

func (e *Engine) State() TurnState { return e.state }

func (e *Engine) Variant() Variant { return e.variant }

// Current is the id of the player to move, 0 once the game is over.
func (e *Engine) Current() int {
	if e.current == nil {
		return 0
	}
	return e.current.Id
}

func (e *Engine) Snapshot() model.Snapshot {
	s := e.model.View()
	s.SessionId = e.Id
	s.State = e.state.Name()
	s.Variant = e.variant.Name()
	s.Current = e.Current()
	if e.pending != nil {
		v := model.ViewPatch(e.pending)
		s.Pending = &v
	}
	return s
}

// Apply feeds one decision to the engine and runs the automatic states that
// follow it. A failed command leaves the game untouched.
func (e *Engine) Apply(cmd model.Command) (model.Snapshot, error) {
	var err error
	switch cmd.Kind {
	case model.CmdChoose:
		err = e.choose(cmd.Index)
	case model.CmdPlace:
		err = e.place(cmd)
	case model.CmdFlip, model.CmdMirror:
		err = e.transform(cmd)
	default:
		err = fmt.Errorf("%w: unknown command %d", model.ErrInvalidArgument, cmd.Kind)
	}
	if err != nil {
		e.log.WithFields(log.Fields{
			"state":   e.state.Name(),
			"command": cmd.Kind.Name(),
		}).Debugf("Engine.Apply rejected: %v", err)
		return e.Snapshot(), err
	}
	e.run()
	e.publish()
	return e.Snapshot(), nil
}

func (e *Engine) expect(states ...TurnState) error {
	for _, s := range states {
		if e.state == s {
			return nil
		}
	}
	return fmt.Errorf("%w: command not allowed in %s", model.ErrIllegalState, e.state.Name())
}

func (e *Engine) choose(index int) error {
	if err := e.expect(OfferOrSkip); err != nil {
		return err
	}
	circle := e.model.Circle
	if !circle.IsSelectionValid(index, e.current.Currency) {
		return fmt.Errorf("%w: offer %d not available with %d currency", model.ErrInvalidArgument, index, e.current.Currency)
	}
	if index == model.SkipIndex {
		return e.skip()
	}
	group, _ := circle.PeekGroup(1)
	if !e.current.Grid.Fits(group[index], e.variant == Full) {
		return fmt.Errorf("%w: offer %d does not fit on the quilt", model.ErrIllegalState, index)
	}
	patch, err := circle.Select(index)
	if err != nil {
		return err
	}
	if err := e.current.Pay(patch.Price()); err != nil {
		return err
	}
	e.log.WithFields(log.Fields{
		"player":   e.current.Id,
		"offer":    index,
		"price":    patch.Price(),
		"currency": e.current.Currency,
	}).Info("Engine.choose patch bought")
	e.pending = patch
	e.bought = true
	e.state = PlacePatch
	return nil
}

func (e *Engine) skip() error {
	destination, tiles, err := e.current.TilesAndCurrencyOnSkip(e.opponent)
	if err != nil {
		return err
	}
	effects, err := e.model.Timeline.CrossingEffects(e.current.Position, destination)
	if err != nil {
		return err
	}
	if err := e.current.Earn(tiles); err != nil {
		return err
	}
	if err := e.current.MoveTo(destination); err != nil {
		return err
	}
	e.log.WithFields(log.Fields{
		"player":   e.current.Id,
		"tiles":    tiles,
		"position": destination,
	}).Info("Engine.skip")
	e.model.TokenOneOnTop = false
	e.bought = false
	e.effects = effects
	e.state = CrossTimeline
	return nil
}

func (e *Engine) place(cmd model.Command) error {
	if err := e.expect(PlacePatch, PlaceBonusPatch); err != nil {
		return err
	}
	if err := e.current.Grid.Place(e.pending, cmd.Anchor); err != nil {
		return err
	}
	e.log.WithFields(log.Fields{
		"player": e.current.Id,
		"x":      cmd.Anchor.X,
		"y":      cmd.Anchor.Y,
	}).Debug("Engine.place")
	patch := e.pending
	e.pending = nil
	if e.state == PlaceBonusPatch {
		e.state = CrossTimeline
		return nil
	}
	destination := e.current.Destination(patch.Time())
	if destination > e.current.Position {
		effects, err := e.model.Timeline.CrossingEffects(e.current.Position, destination)
		if err != nil {
			return err
		}
		e.effects = effects
	}
	if err := e.current.Advance(patch); err != nil {
		return err
	}
	e.state = CrossTimeline
	return nil
}

func (e *Engine) transform(cmd model.Command) error {
	if err := e.expect(PlacePatch, PlaceBonusPatch); err != nil {
		return err
	}
	if e.variant != Full {
		return fmt.Errorf("%w: transforms are disabled in the %s variant", model.ErrIllegalState, e.variant.Name())
	}
	var (
		p   *model.Patch
		err error
	)
	if cmd.Kind == model.CmdFlip {
		p, err = e.pending.Flip(cmd.Direction)
	} else {
		p, err = e.pending.Mirror(cmd.Axis)
	}
	if err != nil {
		return err
	}
	e.pending = p
	return nil
}

// run steps through the automatic states until a decision is needed.
func (e *Engine) run() {
	for !e.state.Waiting() && e.state != GameOver {
		switch e.state {
		case SelectTurn:
			e.current, e.opponent = e.model.Turn()
			e.state = OfferOrSkip
			e.log.WithFields(log.Fields{
				"player":   e.current.Id,
				"position": e.current.Position,
				"currency": e.current.Currency,
			}).Info("Engine turn")
		case CrossTimeline:
			e.resolveEffects()
		case CheckBonusTile:
			e.checkBonusTile()
			e.state = CheckGameEnd
		case CheckGameEnd:
			if e.model.Over() {
				e.current, e.opponent = nil, nil
				e.state = GameOver
				e.log.WithFields(log.Fields{
					"score1": e.model.Players[0].Score(),
					"score2": e.model.Players[1].Score(),
					"winner": e.model.Winner(),
				}).Info("Engine game over")
			} else {
				e.state = SelectTurn
			}
		}
	}
}

// resolveEffects consumes crossed cells in order, stopping at a bonus
// patch that needs placing.
func (e *Engine) resolveEffects() {
	for len(e.effects) > 0 {
		effect := e.effects[0]
		e.effects = e.effects[1:]
		switch effect {
		case model.CellCurrency:
			yield := e.current.Grid.CurrencyYield()
			if err := e.current.Earn(yield); err != nil {
				e.log.Errorf("Engine.resolveEffects %v", err)
				continue
			}
			e.log.WithFields(log.Fields{"player": e.current.Id, "yield": yield}).Info("Engine currency cell crossed")
		case model.CellPatch:
			e.current.CollectBonusPatch()
			bonus := model.BonusPatch()
			if !e.current.Grid.Fits(bonus, false) {
				e.log.WithField("player", e.current.Id).Warn("Engine bonus patch forfeited, quilt is full")
				continue
			}
			e.pending = bonus
			e.state = PlaceBonusPatch
			return
		}
	}
	e.settleTokens()
	e.state = CheckBonusTile
}

// settleTokens puts player 1 on top only when a purchase by player 1 lands
// on player 2. A skip already reset the flag.
func (e *Engine) settleTokens() {
	if e.bought {
		one, two := e.model.Players[0], e.model.Players[1]
		e.model.TokenOneOnTop = e.current.Id == 1 && one.Position == two.Position
	}
	e.bought = false
}

func (e *Engine) checkBonusTile() {
	if e.model.BonusTileClaimed || !e.current.Grid.HasCompletedSevenSquare() {
		return
	}
	if err := e.current.AwardBonusTile(); err != nil {
		e.log.Errorf("Engine.checkBonusTile %v", err)
		return
	}
	e.model.BonusTileClaimed = true
	e.log.WithField("player", e.current.Id).Info("Engine bonus tile awarded")
}

func (e *Engine) publish() {
	if e.observer != nil {
		e.observer.Publish(e.Snapshot())
	}
}

// Result returns both scores and the winner id, 0 on a draw.
func (e *Engine) Result() (score1, score2, winner int) {
	return e.model.Players[0].Score(), e.model.Players[1].Score(), e.model.Winner()
}
