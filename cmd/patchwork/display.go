package main

import (
	"fmt"
	"strings"

	"github.com/zucenko/patchwork/model"
)

func displayGrid(rows [][model.GridSize]bool) string {
	board := make([][]bool, len(rows))
	for i := range rows {
		board[i] = rows[i][:]
	}
	return drawCells(board, model.GridSize)
}

func displayPatch(p model.PatchView) string {
	return drawCells(p.Mask, p.Width)
}

func drawCells(board [][]bool, width int) string {
	var sb strings.Builder
	sb.WriteString("╔══" + strings.Repeat("╦══", width-1) + "╗\n")
	separator := "╠══" + strings.Repeat("╬══", width-1) + "╣\n"
	for i, row := range board {
		sb.WriteString("║")
		for _, occupied := range row {
			if occupied {
				sb.WriteString("**║")
			} else {
				sb.WriteString("  ║")
			}
		}
		sb.WriteString("\n")
		if i < len(board)-1 {
			sb.WriteString(separator)
		}
	}
	sb.WriteString("╚══" + strings.Repeat("╩══", width-1) + "╝\n")
	return sb.String()
}

func displayOffer(offer []model.PatchView) string {
	var sb strings.Builder
	for i, p := range offer {
		if i == 3 {
			break
		}
		fmt.Fprintf(&sb, "id : %d\nTime: %d\nButtons: %d\nPrice: %d\n", i, p.Time, p.Currency, p.Price)
		sb.WriteString(displayPatch(p))
		sb.WriteString("\n")
	}
	return sb.String()
}

func displayTimelinePath(cells [model.TimelineSize]model.Cell) string {
	var sb strings.Builder
	border := strings.Repeat("═", model.TimelineSize) + "\n"
	sb.WriteString(border)
	for _, c := range cells {
		switch c {
		case model.CellCurrency:
			sb.WriteString("©")
		case model.CellPatch:
			sb.WriteString("■")
		default:
			sb.WriteString(" ")
		}
	}
	sb.WriteString("\n")
	sb.WriteString(border)
	return sb.String()
}

// displayTokens draws both tokens above the path; on a shared square the
// token on top is printed first.
func displayTokens(one, two model.PlayerView, oneOnTop bool) string {
	line := func(pos int, id int) string {
		return fmt.Sprintf("%s%d\n", strings.Repeat(" ", pos), id)
	}
	switch {
	case one.Position == two.Position && oneOnTop:
		return line(one.Position, 1) + line(two.Position, 2)
	case one.Position == two.Position:
		return line(two.Position, 2) + line(one.Position, 1)
	case one.Position > two.Position:
		return fmt.Sprintf("%s2%s1\n", strings.Repeat(" ", two.Position), strings.Repeat(" ", one.Position-two.Position-1))
	default:
		return fmt.Sprintf("%s1%s2\n", strings.Repeat(" ", one.Position), strings.Repeat(" ", two.Position-one.Position-1))
	}
}

func displayTimeline(s model.Snapshot) string {
	return "╔═════════════════════════════════════╗\n" +
		"║   Current state of the time board   ║\n" +
		"╚═════════════════════════════════════╝\n" +
		displayTokens(s.Players[0], s.Players[1], s.TokenOneOnTop) +
		displayTimelinePath(s.Timeline)
}

func displayStartOfTurn(s model.Snapshot) string {
	current := s.Players[s.Current-1]
	var sb strings.Builder
	sb.WriteString(displayTimeline(s))
	fmt.Fprintf(&sb, "# You currently have %d buttons\n", current.Currency)
	sb.WriteString("# Patches you can choose :\n")
	sb.WriteString(displayOffer(s.Offer))
	sb.WriteString("# State of your quiltboard:\n")
	sb.WriteString(displayGrid(current.Grid[:]))
	return sb.String()
}

func displayScore(s model.Snapshot) string {
	return fmt.Sprintf("Player 1's score is %d\nPlayer 2's score is %d\n", s.Players[0].Score, s.Players[1].Score)
}

func displayResult(s model.Snapshot) string {
	switch s.Winner {
	case 1:
		return "Player 1 has won !"
	case 2:
		return "Player 2 has won !"
	default:
		return "It's a draw !"
	}
}

func displaySpecialTileMessage() string {
	return "You are the first to have completed a 7 by 7 square !\n" +
		"You have obtained the special tile which is worth 7 buttons!\n"
}
