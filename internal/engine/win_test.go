package engine

import (
	"testing"

	"github.com/ValentinPeron/gomoku-ai/internal/game"
)

func TestWinDetectedInAllFourDirections(t *testing.T) {
	for _, dir := range lineDirections {
		board := game.NewBoard(15)
		x, y := 3, 7
		for i := 0; i < winLength; i++ {
			board.Set(x+i*dir[0], y+i*dir[1], game.CellBlack)
		}
		if !IsWinningLine(board, game.CellBlack) {
			t.Fatalf("expected a win along direction (%d,%d)", dir[0], dir[1])
		}
		if IsWinningLine(board, game.CellWhite) {
			t.Fatalf("expected no white win along direction (%d,%d)", dir[0], dir[1])
		}
	}
}

func TestFourInARowIsNotAWin(t *testing.T) {
	board := game.NewBoard(15)
	for i := 0; i < 4; i++ {
		board.Set(3+i, 7, game.CellBlack)
	}
	if IsWinningLine(board, game.CellBlack) {
		t.Fatalf("expected four stones not to count as a win")
	}
}

func TestGapBreaksTheRun(t *testing.T) {
	board := game.NewBoard(15)
	for i := 0; i < 6; i++ {
		if i == 2 {
			continue
		}
		board.Set(3+i, 7, game.CellBlack)
	}
	if IsWinningLine(board, game.CellBlack) {
		t.Fatalf("expected a gap to break the run")
	}
}

func TestOpponentStoneBreaksTheRun(t *testing.T) {
	board := game.NewBoard(15)
	for i := 0; i < 5; i++ {
		board.Set(3+i, 7, game.CellBlack)
	}
	board.Set(5, 7, game.CellWhite)
	if IsWinningLine(board, game.CellBlack) {
		t.Fatalf("expected an opponent stone to break the run")
	}
}

func TestWinAtBoardEdge(t *testing.T) {
	board := game.NewBoard(9)
	for i := 0; i < winLength; i++ {
		board.Set(8, i, game.CellWhite)
	}
	if !IsWinningLine(board, game.CellWhite) {
		t.Fatalf("expected a vertical win on the last column")
	}
}
