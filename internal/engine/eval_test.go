package engine

import (
	"math"
	"testing"

	"github.com/ValentinPeron/gomoku-ai/internal/game"
)

func TestIsolatedStoneScoresZero(t *testing.T) {
	board := game.NewBoard(15)
	board.Set(7, 7, game.CellBlack)
	if got := lineScore(board, game.CellBlack); got != 0 {
		t.Fatalf("expected an isolated stone to score 0, got %v", got)
	}
	if got := Evaluate(board, game.CellBlack, game.CellWhite); got != 0 {
		t.Fatalf("expected a neutral evaluation, got %v", got)
	}
}

func TestPairScoresOne(t *testing.T) {
	board := game.NewBoard(15)
	board.Set(7, 7, game.CellBlack)
	board.Set(8, 7, game.CellBlack)
	if got := lineScore(board, game.CellBlack); got != twoRunScore {
		t.Fatalf("expected a pair to score %v, got %v", twoRunScore, got)
	}
}

func TestOpenThreeScoresEleven(t *testing.T) {
	// Runs overlap: the first stone starts a three, the second a pair.
	board := game.NewBoard(15)
	for i := 0; i < 3; i++ {
		board.Set(7+i, 7, game.CellBlack)
	}
	want := threeRunScore + twoRunScore
	if got := lineScore(board, game.CellBlack); got != want {
		t.Fatalf("expected an open three to score %v, got %v", want, got)
	}
}

func TestCompletedRunSaturatesScore(t *testing.T) {
	board := game.NewBoard(15)
	for i := 0; i < 5; i++ {
		board.Set(7+i, 7, game.CellBlack)
	}
	if got := lineScore(board, game.CellBlack); got != winRunScore {
		t.Fatalf("expected a completed run to score exactly %v, got %v", winRunScore, got)
	}
}

func TestEvaluateAppliesAttackBias(t *testing.T) {
	board := game.NewBoard(15)
	for i := 0; i < 3; i++ {
		board.Set(7+i, 7, game.CellBlack)
	}
	board.Set(2, 2, game.CellWhite)
	board.Set(2, 3, game.CellWhite)

	want := (threeRunScore+twoRunScore)*attackBias - twoRunScore
	got := Evaluate(board, game.CellBlack, game.CellWhite)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected evaluation %v, got %v", want, got)
	}
}
