package engine

import "github.com/ValentinPeron/gomoku-ai/internal/game"

// winLength is the run length that ends the game.
const winLength = 5

// lineDirections spans every alignment exactly once when runs are walked
// forward only: right, down, down-right, up-right.
var lineDirections = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// IsWinningLine reports whether the given color has winLength contiguous
// stones anywhere on the board. Every stone is tried as a run start, so any
// alignment is found from its first cell; the scan short-circuits on the
// first hit.
func IsWinningLine(b game.Board, cell game.Cell) bool {
	size := b.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if b.At(x, y) != cell {
				continue
			}
			for _, dir := range lineDirections {
				if runLength(b, x, y, dir[0], dir[1], cell) >= winLength {
					return true
				}
			}
		}
	}
	return false
}

// runLength counts contiguous stones of the given color starting at (x, y)
// and walking in direction (dx, dy), the starting stone included. Counting
// stops at winLength; board edges clip runs naturally.
func runLength(b game.Board, x, y, dx, dy int, cell game.Cell) int {
	count := 0
	for count < winLength && b.InBounds(x, y) && b.At(x, y) == cell {
		count++
		x += dx
		y += dy
	}
	return count
}
