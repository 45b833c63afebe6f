package engine

import (
	"testing"

	"github.com/ValentinPeron/gomoku-ai/internal/game"
)

func TestCandidatesEmptyBoard(t *testing.T) {
	board := game.NewBoard(9)
	if moves := CandidateMoves(board); len(moves) != 0 {
		t.Fatalf("expected no candidates on an empty board, got %d", len(moves))
	}
}

func TestCandidatesLoneStoneNeighborhood(t *testing.T) {
	board := game.NewBoard(9)
	board.Set(4, 4, game.CellBlack)

	moves := CandidateMoves(board)
	if len(moves) != 24 {
		t.Fatalf("expected the full 5x5 neighborhood minus the stone, got %d moves", len(moves))
	}
	for _, move := range moves {
		if move.X == 4 && move.Y == 4 {
			t.Fatalf("expected the occupied cell to be excluded")
		}
		if move.X < 2 || move.X > 6 || move.Y < 2 || move.Y > 6 {
			t.Fatalf("expected %s within distance 2 of the stone", move)
		}
	}
}

func TestCandidatesClippedAtEdge(t *testing.T) {
	board := game.NewBoard(9)
	board.Set(0, 0, game.CellBlack)

	moves := CandidateMoves(board)
	if len(moves) != 8 {
		t.Fatalf("expected 8 in-bounds candidates around a corner stone, got %d", len(moves))
	}
	for _, move := range moves {
		if !move.IsValid(9) {
			t.Fatalf("expected only in-bounds candidates, got %s", move)
		}
	}
}

func TestCandidatesDeduplicatedAndSorted(t *testing.T) {
	board := game.NewBoard(9)
	board.Set(4, 4, game.CellBlack)
	board.Set(5, 4, game.CellWhite)

	moves := CandidateMoves(board)
	seen := make(map[game.Move]bool, len(moves))
	for i, move := range moves {
		if seen[move] {
			t.Fatalf("expected each candidate once, got %s twice", move)
		}
		seen[move] = true
		if board.At(move.X, move.Y) != game.CellEmpty {
			t.Fatalf("expected only empty cells, got occupied %s", move)
		}
		if i == 0 {
			continue
		}
		prev := moves[i-1]
		if move.Y < prev.Y || (move.Y == prev.Y && move.X <= prev.X) {
			t.Fatalf("expected row-then-column order, got %s after %s", move, prev)
		}
	}
}
