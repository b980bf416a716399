// Package engine provides the chess position value, its FEN codec, move
// notation decoding and single-move application.
//
// A Position is immutable: every operation that would change it returns a
// new value instead. Positions hold no pointers and may be shared freely
// between goroutines.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fenmove-go/internal/chess"
)

// Position is a board plus the game metadata FEN records alongside it.
// The zero value is not a valid position; use NewPosition or ParseFEN.
type Position struct {
	board         chess.Board
	toMove        chess.Colour
	castling      chess.Castling
	enPassant     chess.Square // NoSquare when absent
	halfmoveClock uint
	moveNumber    uint
}

// NewPosition returns the standard starting position.
func NewPosition() Position {
	return Position{
		board:      chess.InitialBoard(),
		toMove:     chess.White,
		castling:   chess.AllCastling,
		enPassant:  chess.NoSquare,
		moveNumber: 1,
	}
}

// Equal reports whether two positions have the same board and metadata.
func (p Position) Equal(q Position) bool {
	return p == q
}

// Board returns a copy of the square contents.
func (p Position) Board() chess.Board {
	return p.board
}

// PieceAt returns the coloured piece on sq, or chess.Empty.
func (p Position) PieceAt(sq chess.Square) chess.Piece {
	return p.board.Get(sq)
}

// ToMove returns the colour whose move is next.
func (p Position) ToMove() chess.Colour {
	return p.toMove
}

// Castling returns the castling rights still available.
func (p Position) Castling() chess.Castling {
	return p.castling
}

// EnPassant returns the square skipped by the previous double pawn
// advance, if there was one.
func (p Position) EnPassant() (chess.Square, bool) {
	return p.enPassant, p.enPassant != chess.NoSquare
}

// HalfmoveClock returns the number of moves since the last pawn move.
func (p Position) HalfmoveClock() uint {
	return p.halfmoveClock
}

// MoveNumber returns the fullmove number, starting at 1.
func (p Position) MoveNumber() uint {
	return p.moveNumber
}

// Occupied returns every square holding a piece.
func (p Position) Occupied() chess.SquareSet {
	return p.board.Occupied()
}

// PiecesOf returns the squares holding a piece of the given type and colour.
func (p Position) PiecesOf(piece chess.Piece, colour chess.Colour) chess.SquareSet {
	return p.board.Find(chess.MakeColouredPiece(colour, piece))
}

// BoardString renders the board as eight lines, rank 8 first, with '.' for
// empty squares.
func (p Position) BoardString() string {
	var sb strings.Builder
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece := p.board.Get(chess.Sq(col, rank))
			if piece == chess.Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(ColouredPieceToFENLetter(piece))
			}
		}
		if rank > chess.FirstRank {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// String returns the position in FEN.
func (p Position) String() string {
	return p.FEN()
}

// GoString returns a Go-like constructor expression for the position.
func (p Position) GoString() string {
	return fmt.Sprintf("Position(%q)", p.FEN())
}
