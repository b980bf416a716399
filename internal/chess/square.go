package chess

import (
	"math/bits"
	"strings"
)

// Square identifies a board square by file and rank characters.
type Square struct {
	Col  Col
	Rank Rank
}

// NoSquare is the zero Square; it is not on the board.
var NoSquare = Square{}

// Sq builds a square from its file and rank characters.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// ParseSquare parses algebraic square notation such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 || !IsCol(s[0]) || !IsRank(s[1]) {
		return NoSquare, false
	}
	return Square{Col: Col(s[0]), Rank: Rank(s[1])}, true
}

// IsValid reports whether the square lies on the board.
func (s Square) IsValid() bool {
	return IsCol(byte(s.Col)) && IsRank(byte(s.Rank))
}

// Offset returns the square dc files and dr ranks away. The result may be
// off the board; check it with IsValid.
func (s Square) Offset(dc, dr int) Square {
	return Square{Col: Col(int(s.Col) + dc), Rank: Rank(int(s.Rank) + dr)}
}

// String returns the algebraic name of the square, or "-" when off board.
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// index maps a valid square to 0..63, a1 first, h8 last.
func (s Square) index() int {
	return int(s.Rank-RankBase)*BoardSize + int(s.Col-ColBase)
}

func squareAt(index int) Square {
	return Square{
		Col:  Col(ColBase + index%BoardSize),
		Rank: Rank(RankBase + index/BoardSize),
	}
}

// SquareSet is a set of board squares.
type SquareSet uint64

// NewSquareSet builds a set holding the given squares.
func NewSquareSet(squares ...Square) SquareSet {
	var set SquareSet
	for _, sq := range squares {
		set = set.With(sq)
	}
	return set
}

// With returns the set with sq added. Off-board squares are ignored.
func (set SquareSet) With(sq Square) SquareSet {
	if !sq.IsValid() {
		return set
	}
	return set | 1<<uint(sq.index())
}

// Has reports whether sq is in the set.
func (set SquareSet) Has(sq Square) bool {
	if !sq.IsValid() {
		return false
	}
	return set&(1<<uint(sq.index())) != 0
}

// Len returns the number of squares in the set.
func (set SquareSet) Len() int {
	return bits.OnesCount64(uint64(set))
}

// Filter returns the squares of the set for which keep returns true.
func (set SquareSet) Filter(keep func(Square) bool) SquareSet {
	var out SquareSet
	for _, sq := range set.Squares() {
		if keep(sq) {
			out = out.With(sq)
		}
	}
	return out
}

// Squares lists the members in a1, b1, ..., h8 order.
func (set SquareSet) Squares() []Square {
	squares := make([]Square, 0, set.Len())
	for rest := uint64(set); rest != 0; rest &= rest - 1 {
		squares = append(squares, squareAt(bits.TrailingZeros64(rest)))
	}
	return squares
}

// String lists the members separated by spaces.
func (set SquareSet) String() string {
	names := make([]string, 0, set.Len())
	for _, sq := range set.Squares() {
		names = append(names, sq.String())
	}
	return strings.Join(names, " ")
}
