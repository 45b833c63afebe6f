package game

import (
	"errors"
	"fmt"
)

type Cell int

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

// Boundary misuse sentinels. A move that trips one of these was produced
// outside the engine's candidate generation and indicates a caller bug.
var (
	ErrOutOfBounds  = errors.New("move out of bounds")
	ErrCellOccupied = errors.New("cell already occupied")
)

// Board is a flat row-major grid of cells. Methods that mutate take a
// pointer receiver; read-only methods copy only the slice header, so the
// underlying cells stay shared.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(boardSize int) Board {
	b := Board{}
	b.Reset(boardSize)
	return b
}

func (b *Board) Reset(boardSize int) {
	b.size = boardSize
	b.cells = make([]Cell, boardSize*boardSize)
}

func (b Board) At(x, y int) Cell {
	return b.cells[b.index(x, y)]
}

func (b *Board) Set(x, y int, value Cell) {
	b.cells[b.index(x, y)] = value
}

func (b *Board) Remove(x, y int) {
	b.cells[b.index(x, y)] = CellEmpty
}

// Place is the validating mutator for boundary callers: it rejects moves
// outside the grid or onto occupied cells. The search loop uses Set/Remove
// directly because its candidates are empty cells by construction.
func (b *Board) Place(x, y int, value Cell) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("place %s at (%d,%d): %w", value, x, y, ErrOutOfBounds)
	}
	if b.At(x, y) != CellEmpty {
		return fmt.Errorf("place %s at (%d,%d): %w", value, x, y, ErrCellOccupied)
	}
	b.Set(x, y, value)
	return nil
}

func (b Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.size && y < b.size
}

func (b Board) IsEmpty(x, y int) bool {
	return b.InBounds(x, y) && b.At(x, y) == CellEmpty
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

func (b Board) Size() int {
	return b.size
}

func (b Board) Clone() Board {
	clone := Board{size: b.size}
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

// Equal reports whether both boards hold the same cells. Used by callers
// that need to assert the search left the board untouched.
func (b Board) Equal(other Board) bool {
	if b.size != other.size {
		return false
	}
	for i, cell := range b.cells {
		if other.cells[i] != cell {
			return false
		}
	}
	return true
}

func (b Board) index(x, y int) int {
	return y*b.size + x
}

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "Black"
	case CellWhite:
		return "White"
	default:
		return "Empty"
	}
}
