package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ValentinPeron/gomoku-ai/internal/game"
	"github.com/ValentinPeron/gomoku-ai/internal/match"
)

const (
	emptyRune = "·"
	blackRune = "○"
	whiteRune = "●"
)

var (
	blackStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	whiteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	candidateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	bannerStyle    = lipgloss.NewStyle().Bold(true)
)

// RenderBoard draws the position in the indexed console layout: column
// numbers on top and bottom, row numbers on both sides, one rune per cell.
// Cells listed in candidates render as highlighted empties.
func RenderBoard(b game.Board, candidates []game.Move) string {
	size := b.Size()
	isCandidate := make([]bool, size*size)
	for _, m := range candidates {
		if m.IsValid(size) {
			isCandidate[m.Y*size+m.X] = true
		}
	}

	var sb strings.Builder
	writeColumnIndex(&sb, size)
	sb.WriteString("    " + strings.Repeat("─", size*3) + "\n")
	for y := 0; y < size; y++ {
		fmt.Fprintf(&sb, "%2d │ ", y)
		for x := 0; x < size; x++ {
			switch b.At(x, y) {
			case game.CellBlack:
				sb.WriteString(blackStyle.Render(blackRune))
			case game.CellWhite:
				sb.WriteString(whiteStyle.Render(whiteRune))
			default:
				if isCandidate[y*size+x] {
					sb.WriteString(candidateStyle.Render(emptyRune))
				} else {
					sb.WriteString(emptyRune)
				}
			}
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "│ %2d\n", y)
	}
	sb.WriteString("    " + strings.Repeat("─", size*3) + "\n")
	writeColumnIndex(&sb, size)
	return sb.String()
}

func writeColumnIndex(sb *strings.Builder, size int) {
	sb.WriteString("    ")
	for x := 0; x < size; x++ {
		fmt.Fprintf(sb, "%2d ", x)
	}
	sb.WriteString("\n")
}

// RenderTurn formats the banner, think time and board for one played turn.
func RenderTurn(res match.TurnResult) string {
	var sb strings.Builder
	banner := fmt.Sprintf("Round %d: %s's turn", res.Round, res.Player)
	sb.WriteString("\n" + bannerStyle.Render(banner) + "\n")
	if res.Moved {
		fmt.Fprintf(&sb, "Move %s  score %.1f  think time %.2fs\n", res.Move, res.Score, res.ThinkTime.Seconds())
	} else {
		sb.WriteString("No move available\n")
	}
	sb.WriteString(RenderBoard(res.Board, res.Candidates))
	return sb.String()
}

// RenderSummary formats the end-of-match report: outcome, totals, and
// per-engine search work.
func RenderSummary(res match.Result) string {
	var sb strings.Builder
	outcome := "Draw"
	switch res.Status {
	case match.StatusBlackWon, match.StatusWhiteWon:
		outcome = fmt.Sprintf("%s wins!", res.Winner)
	case match.StatusBlocked:
		outcome = "Blocked: no moves available"
	}
	sb.WriteString(bannerStyle.Render(outcome) + "\n")
	avg := time.Duration(0)
	if res.Rounds > 0 {
		avg = res.Duration / time.Duration(res.Rounds)
	}
	fmt.Fprintf(&sb, "Game took %.2fs | %d rounds | avg %.2fs per round\n",
		res.Duration.Seconds(), res.Rounds, avg.Seconds())
	fmt.Fprintf(&sb, "Black: %d nodes, %d cached positions | White: %d nodes, %d cached positions\n",
		res.BlackStats.Nodes, res.BlackCache, res.WhiteStats.Nodes, res.WhiteCache)
	return sb.String()
}
