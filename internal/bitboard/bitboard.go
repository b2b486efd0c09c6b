package bitboard

import (
	"fmt"
	"math/bits"
)

// BitBoard is a set of cell indices packed into the low nine bits of an
// unsigned integer. The zero value is the empty set; every operation returns
// a new value.
type BitBoard uint16

// Empty is the board with no cells set.
const Empty BitBoard = 0

// WithBit returns a board with only bit i set. Indices outside 0..8 are a
// caller error; nothing in the engine ever reads above bit 8.
func WithBit(i int) BitBoard {
	return BitBoard(1) << i
}

func (b BitBoard) And(other BitBoard) BitBoard { return b & other }

func (b BitBoard) Or(other BitBoard) BitBoard { return b | other }

func (b BitBoard) Xor(other BitBoard) BitBoard { return b ^ other }

// Raw-pattern overloads for combining with literal masks.

func (b BitBoard) AndBits(pattern uint16) BitBoard { return b & BitBoard(pattern) }

func (b BitBoard) OrBits(pattern uint16) BitBoard { return b | BitBoard(pattern) }

func (b BitBoard) XorBits(pattern uint16) BitBoard { return b ^ BitBoard(pattern) }

func (b BitBoard) Shl(n int) BitBoard { return b << n }

func (b BitBoard) Shr(n int) BitBoard { return b >> n }

// Test reports whether bit i is set.
func (b BitBoard) Test(i int) bool {
	return b&WithBit(i) != Empty
}

// Count returns the number of set bits.
func (b BitBoard) Count() int {
	return bits.OnesCount16(uint16(b))
}

func (b BitBoard) String() string {
	return fmt.Sprintf("%09b", uint16(b))
}
