package chess

import "strings"

// Castling is the set of castling rights still available.
type Castling uint8

const (
	WhiteKingside Castling = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  Castling = 0
	AllCastling          = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// castlingOrder is the fixed FEN order of the rights.
var castlingOrder = []struct {
	right  Castling
	letter byte
	corner Square
}{
	{WhiteKingside, 'K', Square{'h', '1'}},
	{WhiteQueenside, 'Q', Square{'a', '1'}},
	{BlackKingside, 'k', Square{'h', '8'}},
	{BlackQueenside, 'q', Square{'a', '8'}},
}

// ParseCastling parses a FEN castling field: a subset of KQkq in that
// order, or "-" for none.
func ParseCastling(field string) (Castling, bool) {
	if field == "-" {
		return NoCastling, true
	}
	if field == "" {
		return NoCastling, false
	}
	rights := NoCastling
	next := 0
	for i := 0; i < len(field); i++ {
		matched := false
		for next < len(castlingOrder) {
			entry := castlingOrder[next]
			next++
			if entry.letter == field[i] {
				rights |= entry.right
				matched = true
				break
			}
		}
		if !matched {
			return NoCastling, false
		}
	}
	return rights, true
}

// Has reports whether every right in r is present.
func (c Castling) Has(r Castling) bool {
	return c&r == r
}

// Without returns the rights with r removed.
func (c Castling) Without(r Castling) Castling {
	return c &^ r
}

// String renders the rights in FEN form.
func (c Castling) String() string {
	if c == NoCastling {
		return "-"
	}
	var sb strings.Builder
	for _, entry := range castlingOrder {
		if c.Has(entry.right) {
			sb.WriteByte(entry.letter)
		}
	}
	return sb.String()
}

// KingRights returns both rights belonging to colour.
func KingRights(colour Colour) Castling {
	if colour == White {
		return WhiteKingside | WhiteQueenside
	}
	return BlackKingside | BlackQueenside
}

// CornerRight returns the right tied to a rook starting corner, or
// NoCastling for any other square.
func CornerRight(sq Square) Castling {
	for _, entry := range castlingOrder {
		if entry.corner == sq {
			return entry.right
		}
	}
	return NoCastling
}
