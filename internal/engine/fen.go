package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated fields in a full FEN.
const fenFields = 6

// ConvertFENCharToPiece converts a FEN character to a coloured piece.
// It returns chess.Empty for anything that is not a piece letter.
func ConvertFENCharToPiece(c byte) chess.Piece {
	piece := chess.PieceFromLetter(byte(unicode.ToUpper(rune(c))))
	if piece == chess.Empty {
		return chess.Empty
	}
	if c >= 'a' && c <= 'z' {
		return chess.B(piece)
	}
	return chess.W(piece)
}

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece:
// uppercase for White, lowercase for Black.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// ParseFEN parses a six-field FEN string into a Position.
func ParseFEN(fen string) (Position, error) {
	parts := strings.Split(fen, " ")
	if len(parts) != fenFields {
		return Position{}, &errors.ParseError{
			Err:   errors.ErrInvalidFEN,
			Input: fen,
			Field: fmt.Sprintf("expected %d space-separated fields, got %d", fenFields, len(parts)),
		}
	}

	board, err := decodePlacement(fen, parts[0])
	if err != nil {
		return Position{}, err
	}

	pos := Position{board: board}

	if pos.toMove, err = parseSideToMove(fen, parts[1]); err != nil {
		return Position{}, err
	}

	castling, ok := chess.ParseCastling(parts[2])
	if !ok {
		return Position{}, &errors.ParseError{
			Err: errors.ErrInvalidCastling, Input: fen, Field: "castling", Got: parts[2],
		}
	}
	pos.castling = castling

	if pos.enPassant, err = parseEnPassant(fen, parts[3]); err != nil {
		return Position{}, err
	}

	if pos.halfmoveClock, err = parseCounter(fen, "halfmove clock", parts[4], 0); err != nil {
		return Position{}, err
	}
	if pos.moveNumber, err = parseCounter(fen, "fullmove number", parts[5], 1); err != nil {
		return Position{}, err
	}

	return pos, nil
}

// MustParseFEN is like ParseFEN but panics on error. It is meant for
// package-level fixtures built from constant strings.
func MustParseFEN(fen string) Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// DecodePlacement parses the piece placement field of a FEN string.
func DecodePlacement(field string) (chess.Board, error) {
	return decodePlacement(field, field)
}

// decodePlacement parses a placement field, reporting errors against input.
func decodePlacement(input, field string) (chess.Board, error) {
	var board chess.Board

	ranks := strings.Split(field, "/")
	if len(ranks) != chess.BoardSize {
		return board, &errors.ParseError{
			Err:   errors.ErrInvalidPlacement,
			Input: input,
			Field: fmt.Sprintf("expected %d ranks, got %d", chess.BoardSize, len(ranks)),
		}
	}

	for i, text := range ranks {
		rank := chess.Rank(chess.LastRank - i)
		squares := 0
		for j := 0; j < len(text) && squares <= chess.BoardSize; j++ {
			c := text[j]
			if c >= '1' && c <= '8' {
				squares += int(c - '0')
				continue
			}
			piece := ConvertFENCharToPiece(c)
			if piece == chess.Empty {
				return chess.Board{}, &errors.ParseError{
					Err:   errors.ErrInvalidPlacement,
					Input: input,
					Field: fmt.Sprintf("rank %c", rank),
					Got:   string(c),
				}
			}
			if squares < chess.BoardSize {
				board.Set(chess.Sq(chess.Col(chess.FirstCol+squares), rank), piece)
			}
			squares++
		}
		if squares != chess.BoardSize {
			return chess.Board{}, &errors.ParseError{
				Err:   errors.ErrInvalidPlacement,
				Input: input,
				Field: fmt.Sprintf("rank %c does not describe %d squares", rank, chess.BoardSize),
				Got:   text,
			}
		}
	}
	return board, nil
}

// parseSideToMove parses the active colour field.
func parseSideToMove(fen, field string) (chess.Colour, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, &errors.ParseError{
		Err: errors.ErrInvalidColour, Input: fen, Field: "active colour", Got: field,
	}
}

// parseEnPassant parses the en passant target square field. The square
// must be on rank 3 or rank 6.
func parseEnPassant(fen, field string) (chess.Square, error) {
	if field == "-" {
		return chess.NoSquare, nil
	}
	sq, ok := chess.ParseSquare(field)
	if !ok || (sq.Rank != '3' && sq.Rank != '6') {
		return chess.NoSquare, &errors.ParseError{
			Err: errors.ErrInvalidEnPassant, Input: fen, Field: "en passant", Got: field,
		}
	}
	return sq, nil
}

// parseCounter parses a base-10 clock field holding at least min. Signs and
// leading zeros are rejected so the text survives a round trip unchanged.
func parseCounter(fen, name, field string, min uint) (uint, error) {
	invalid := &errors.ParseError{Err: errors.ErrInvalidClock, Input: fen, Field: name, Got: field}

	if field == "" || (len(field) > 1 && field[0] == '0') {
		return 0, invalid
	}
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return 0, invalid
		}
	}
	n, err := strconv.ParseUint(field, 10, 0)
	if err != nil || uint(n) < min {
		return 0, invalid
	}
	return uint(n), nil
}

// FEN converts the position to a FEN string.
func (p Position) FEN() string {
	var sb strings.Builder

	sb.WriteString(EncodePlacement(p.board))
	sb.WriteByte(' ')
	if p.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", p.halfmoveClock, p.moveNumber)

	return sb.String()
}

// EncodePlacement writes the piece placement field for a board.
func EncodePlacement(board chess.Board) string {
	var sb strings.Builder
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece := board.Get(chess.Sq(col, rank))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
