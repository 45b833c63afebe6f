package engine

import "github.com/ValentinPeron/gomoku-ai/internal/game"

// Zobrist holds one random nonzero key per (cell, stone color) pair.
// Whoever constructs engines owns the table and injects it, so both sides
// of a match fingerprint positions identically. Keys are derived
// deterministically from the board size, which keeps fingerprints stable
// across runs.
type Zobrist struct {
	size  int
	cells []uint64
}

func NewZobrist(size int) *Zobrist {
	rng := splitmix64{state: uint64(0x9e3779b97f4a7c15) ^ uint64(size)}
	z := &Zobrist{size: size, cells: make([]uint64, size*size*2)}
	for i := range z.cells {
		key := rng.next()
		for key == 0 {
			key = rng.next()
		}
		z.cells[i] = key
	}
	return z
}

func (z *Zobrist) Size() int {
	return z.size
}

// Hash fingerprints a position by XORing the key of every stone on the
// board. The empty board hashes to zero, and the result does not depend on
// the order the stones were placed. The board must match the table size.
func (z *Zobrist) Hash(b game.Board) uint64 {
	var hash uint64
	size := b.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cell := b.At(x, y)
			if cell == game.CellEmpty {
				continue
			}
			hash ^= z.stone(x, y, cell)
		}
	}
	return hash
}

func (z *Zobrist) stone(x, y int, cell game.Cell) uint64 {
	idx := (y*z.size + x) * 2
	if cell == game.CellWhite {
		idx++
	}
	return z.cells[idx]
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
