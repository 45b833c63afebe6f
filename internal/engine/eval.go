package engine

import "github.com/ValentinPeron/gomoku-ai/internal/game"

// Run scores by length. Runs are measured per (stone, direction) pair, so
// overlapping runs accumulate: an open three contributes threeRunScore from
// its first stone plus twoRunScore from its second. That double counting is
// part of the scoring model.
const (
	winRunScore   = 10000.0
	fourRunScore  = 100.0
	threeRunScore = 10.0
	twoRunScore   = 1.0

	// attackBias scales the engine's own line score before the opponent's
	// is subtracted.
	attackBias = 1.2
)

// Evaluate scores a position from own's perspective: own line score times
// attackBias, minus the opponent's line score. Higher is better for own.
func Evaluate(b game.Board, own, opp game.Cell) float64 {
	return lineScore(b, own)*attackBias - lineScore(b, opp)
}

// lineScore totals the run scores over every (stone, direction) pair of the
// given color. A completed run of winLength saturates the score and returns
// winRunScore immediately.
func lineScore(b game.Board, cell game.Cell) float64 {
	total := 0.0
	size := b.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if b.At(x, y) != cell {
				continue
			}
			for _, dir := range lineDirections {
				switch runLength(b, x, y, dir[0], dir[1], cell) {
				case winLength:
					return winRunScore
				case 4:
					total += fourRunScore
				case 3:
					total += threeRunScore
				case 2:
					total += twoRunScore
				}
			}
		}
	}
	return total
}
