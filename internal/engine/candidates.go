package engine

import (
	"sort"

	"github.com/ValentinPeron/gomoku-ai/internal/game"
)

// proximityRadius bounds candidate generation to cells within this
// Chebyshev distance of an existing stone.
const proximityRadius = 2

// CandidateMoves returns the empty cells within proximityRadius of at least
// one stone, each cell listed once, sorted by row then column. An entirely
// empty board yields no candidates: the opening move is the caller's to
// choose.
func CandidateMoves(b game.Board) []game.Move {
	size := b.Size()
	seen := make([]bool, size*size)
	moves := []game.Move{}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if b.At(x, y) == game.CellEmpty {
				continue
			}
			for dy := -proximityRadius; dy <= proximityRadius; dy++ {
				for dx := -proximityRadius; dx <= proximityRadius; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := x + dx
					ny := y + dy
					if !b.IsEmpty(nx, ny) {
						continue
					}
					idx := ny*size + nx
					if seen[idx] {
						continue
					}
					seen[idx] = true
					moves = append(moves, game.Move{X: nx, Y: ny})
				}
			}
		}
	}
	sort.SliceStable(moves, func(i, j int) bool {
		if moves[i].Y != moves[j].Y {
			return moves[i].Y < moves[j].Y
		}
		return moves[i].X < moves[j].X
	})
	return moves
}
