package game

import (
	"tictactoe/internal/apperror"
	"tictactoe/internal/bitboard"
)

const (
	emptyBoard  = bitboard.Empty
	filledBoard bitboard.BitBoard = 0b111111111
)

// wonBoards holds every mask that fills a complete line: three rows, three
// columns and the two diagonals. Cell 0 is the top-left corner, indices grow
// left to right, then top to bottom.
var wonBoards = [8]bitboard.BitBoard{
	0b111000000, // top horizontal
	0b000111000, // mid horizontal
	0b000000111, // bot horizontal
	0b100100100, // left vertical
	0b010010010, // mid vertical
	0b001001001, // right vertical
	0b100010001, // left-right diagonal
	0b001010100, // right-left diagonal
}

// Board tracks which cells each player marked. The two masks never overlap;
// placement is the sole mutator and refuses occupied cells, so the
// disjointness holds for every Board built from the empty one.
type Board struct {
	x bitboard.BitBoard
	o bitboard.BitBoard
}

func (that Board) union() bitboard.BitBoard {
	return that.x.Or(that.o)
}

func (that Board) IsEmpty() bool {
	return that.union() == emptyBoard
}

func (that Board) IsFull() bool {
	return that.union() == filledBoard
}

// IsOccupied reports whether either player marked the cell. The index is
// 0-based; the state machine validates user placements before translating.
func (that Board) IsOccupied(cell int) bool {
	return that.union().Test(cell)
}

// PlaceX returns a copy of the board with the cell marked for X, or
// ErrCellOccupied and the receiver unchanged.
func (that Board) PlaceX(cell int) (Board, error) {
	if that.IsOccupied(cell) {
		return that, apperror.ErrCellOccupied
	}
	return Board{x: that.x.Or(bitboard.WithBit(cell)), o: that.o}, nil
}

// PlaceO is PlaceX for the O mask.
func (that Board) PlaceO(cell int) (Board, error) {
	if that.IsOccupied(cell) {
		return that, apperror.ErrCellOccupied
	}
	return Board{x: that.x, o: that.o.Or(bitboard.WithBit(cell))}, nil
}

func (that Board) XBoard() bitboard.BitBoard {
	return that.x
}

func (that Board) OBoard() bitboard.BitBoard {
	return that.o
}

// hasWon reports whether the mark-set covers at least one full line.
func hasWon(marks bitboard.BitBoard) bool {
	for _, line := range wonBoards {
		if marks.And(line) == line {
			return true
		}
	}
	return false
}
