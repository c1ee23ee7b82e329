package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zucenko/patchwork/engine"
	"github.com/zucenko/patchwork/model"
)

var errNoInput = errors.New("input closed")

type prompt struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompt(scanner *bufio.Scanner, out io.Writer) *prompt {
	scanner.Split(bufio.ScanWords)
	return &prompt{scanner: scanner, out: out}
}

func (p *prompt) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompt) word() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", errNoInput
	}
	return p.scanner.Text(), nil
}

// number returns -1 for anything that is not an integer.
func (p *prompt) number() (int, error) {
	w, err := p.word()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(w)
	if err != nil {
		return -1, nil
	}
	return n, nil
}

func askVariant(p *prompt, mode string) (engine.Variant, error) {
	p.printf("### Game mode selection\n\n")
	for {
		if mode == "" {
			p.printf("# Input \"basic\" for the basic mode or \"full\" for the full game\n")
			w, err := p.word()
			if err != nil {
				return engine.Basic, err
			}
			mode = w
		}
		v, err := engine.ParseVariant(strings.ToLower(mode))
		if err == nil {
			return v, nil
		}
		p.printf("# Unknown mode %q\n", mode)
		mode = ""
	}
}

func play(game *engine.Engine, p *prompt) error {
	for game.State() != engine.GameOver {
		s := game.Snapshot()
		var err error
		switch game.State() {
		case engine.OfferOrSkip:
			err = turnStart(game, p, s)
		case engine.PlacePatch, engine.PlaceBonusPatch:
			err = placement(game, p, s)
		default:
			return fmt.Errorf("unexpected engine state %s", game.State().Name())
		}
		if err != nil {
			return err
		}
	}
	s := game.Snapshot()
	p.printf("%s%s\n", displayScore(s), displayResult(s))
	return nil
}

func turnStart(game *engine.Engine, p *prompt, s model.Snapshot) error {
	p.printf("\n### IT IS PLAYER %d's TURN! ###\n\n", s.Current)
	p.printf("%s", displayStartOfTurn(s))
	p.printf("## Select your patch with its id !\n## Or skip it (enter '%d')\n", model.SkipIndex)
	for {
		index, err := p.number()
		if err != nil {
			return err
		}
		before := s.Players[s.Current-1]
		next, err := game.Apply(model.Choose(index))
		if err != nil {
			p.printf("# Choice invalid (%v), please retry\n", err)
			continue
		}
		if index == model.SkipIndex {
			after := next.Players[s.Current-1]
			p.printf("## You chose not to choose a patch\n")
			p.printf("You have crossed %d tiles and have been awarded the same amount of buttons\n", after.Position-before.Position)
		}
		reportTurnEnd(p, before, next)
		return nil
	}
}

func placement(game *engine.Engine, p *prompt, s model.Snapshot) error {
	current := s.Players[s.Current-1]
	if game.State() == engine.PlaceBonusPatch {
		p.printf("You have picked up a special patch!\nPlease place your special patch\n")
	} else {
		p.printf("## Select the coordinates to place your patch!\n")
	}
	for {
		if game.Variant() == engine.Full {
			if err := transforms(game, p); err != nil {
				return err
			}
		}
		p.printf("# State of your quiltboard:\n%s", displayGrid(current.Grid[:]))
		p.printf("# Please input valid coordinates to place your patch\n# For x y, example for (x = 2 and y = 4) : 2 4\n")
		x, err := p.number()
		if err != nil {
			return err
		}
		y, err := p.number()
		if err != nil {
			return err
		}
		next, err := game.Apply(model.Place(x, y))
		if err != nil {
			p.printf("# Input invalid, please retry\n\n")
			continue
		}
		p.printf("# State of your quiltboard after placing your patch:\n%s", displayGrid(next.Players[s.Current-1].Grid[:]))
		reportTurnEnd(p, current, next)
		return nil
	}
}

func transforms(game *engine.Engine, p *prompt) error {
	for {
		s := game.Snapshot()
		p.printf("# State of your patch:\n%s", displayPatch(*s.Pending))
		p.printf("Do you want to flip/mirror your patch ?\n")
		p.printf("Input 'L' to flip to the left, 'R' to the right\n")
		p.printf("Input 'V' to mirror vertically, 'H' to mirror horizontally\n")
		p.printf("Input 'Y' to stop\n")
		w, err := p.word()
		if err != nil {
			return err
		}
		var cmd model.Command
		switch strings.ToUpper(w)[0] {
		case 'L':
			cmd = model.Flip(model.Left)
		case 'R':
			cmd = model.Flip(model.Right)
		case 'H':
			cmd = model.Mirror(model.Horizontal)
		case 'V':
			cmd = model.Mirror(model.Vertical)
		case 'Y':
			return nil
		default:
			continue
		}
		if _, err := game.Apply(cmd); err != nil {
			p.printf("# %v\n", err)
		}
	}
}

// reportTurnEnd tells the player about awards once the turn is closed.
func reportTurnEnd(p *prompt, before model.PlayerView, s model.Snapshot) {
	after := s.Players[before.Id-1]
	if after.BonusTile && !before.BonusTile {
		p.printf("%s", displaySpecialTileMessage())
	}
	if gained := after.Currency - before.Currency; gained > 0 && s.State != engine.PlacePatch.Name() {
		p.printf("You now have %d buttons (+%d)\n", after.Currency, gained)
	}
}
