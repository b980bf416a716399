package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/errors"
)

// Castling tokens accepted by DecodeMove, letter O or digit zero.
var castleTokens = map[string]chess.CastleKind{
	"O-O":   chess.KingsideCastle,
	"0-0":   chess.KingsideCastle,
	"O-O-O": chess.QueensideCastle,
	"0-0-0": chess.QueensideCastle,
}

// isCastlingChar returns true if c can start a castling token.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0'
}

// isPromotionPiece reports whether piece may be chosen on promotion.
func isPromotionPiece(piece chess.Piece) bool {
	switch piece {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		return true
	}
	return false
}

// DecodeMove parses a single algebraic move token such as "e4", "Nbd7",
// "exd5", "e8=Q+" or "O-O" into a move descriptor. It checks syntax only;
// whether the move can be played is decided by Position.Apply.
func DecodeMove(moveString string) (chess.MoveDescriptor, error) {
	move := chess.MoveDescriptor{Text: moveString}

	invalid := func(field, got string) error {
		return &errors.ParseError{Err: errors.ErrInvalidMoveText, Input: moveString, Field: field, Got: got}
	}

	if !utf8.ValidString(moveString) {
		return chess.MoveDescriptor{}, &errors.ParseError{Err: errors.ErrNotText, Input: moveString}
	}
	if moveString == "" {
		return chess.MoveDescriptor{}, invalid("empty move", "")
	}

	if isCastlingChar(moveString[0]) {
		kind, ok := castleTokens[moveString]
		if !ok {
			return chess.MoveDescriptor{}, invalid("castling", moveString)
		}
		move.Castle = kind
		move.PieceToMove = chess.King
		return move, nil
	}

	rest := moveString
	if piece := chess.PieceFromLetter(rest[0]); piece != chess.Empty {
		move.PieceToMove = piece
		rest = rest[1:]
	} else if chess.IsCol(rest[0]) {
		move.PieceToMove = chess.Pawn
	} else {
		return chess.MoveDescriptor{}, invalid("piece", rest[:1])
	}

	switch strings.Count(rest, "x") {
	case 0:
	case 1:
		move.Capture = true
		rest = strings.Replace(rest, "x", "", 1)
	default:
		return chess.MoveDescriptor{}, invalid("capture marker", "x")
	}

	// The target is the last rank digit and the character before it.
	end := strings.LastIndexFunc(rest, func(r rune) bool {
		return r < utf8.RuneSelf && chess.IsRank(byte(r))
	})
	if end < 1 {
		return chess.MoveDescriptor{}, invalid("target square", rest)
	}
	to, ok := chess.ParseSquare(rest[end-1 : end+1])
	if !ok {
		return chess.MoveDescriptor{}, invalid("target square", rest[end-1:end+1])
	}
	move.To = to

	if err := decodeOrigin(&move, rest[:end-1]); err != nil {
		return chess.MoveDescriptor{}, invalid("origin", rest[:end-1])
	}

	if err := decodeSuffix(&move, rest[end+1:]); err != nil {
		return chess.MoveDescriptor{}, invalid("suffix", rest[end+1:])
	}

	return move, nil
}

// decodeOrigin reads the optional disambiguator in front of the target.
func decodeOrigin(move *chess.MoveDescriptor, origin string) error {
	switch len(origin) {
	case 0:
		return nil
	case 1:
		switch c := origin[0]; {
		case chess.IsCol(c):
			move.FromCol = chess.Col(c)
		case chess.IsRank(c):
			move.FromRank = chess.Rank(c)
		default:
			return errors.ErrInvalidMoveText
		}
		return nil
	case 2:
		if !chess.IsCol(origin[0]) || !chess.IsRank(origin[1]) {
			return errors.ErrInvalidMoveText
		}
		move.FromCol = chess.Col(origin[0])
		move.FromRank = chess.Rank(origin[1])
		return nil
	}
	return errors.ErrInvalidMoveText
}

// decodeSuffix reads an optional "=P" promotion then an optional '+' or '#'.
func decodeSuffix(move *chess.MoveDescriptor, suffix string) error {
	if strings.HasPrefix(suffix, "=") {
		if len(suffix) < 2 {
			return errors.ErrInvalidMoveText
		}
		piece := chess.PieceFromLetter(suffix[1])
		if !isPromotionPiece(piece) {
			return errors.ErrInvalidMoveText
		}
		move.PromotedPiece = piece
		suffix = suffix[2:]
	}

	switch suffix {
	case "":
	case "+":
		move.CheckStatus = chess.Check
	case "#":
		move.CheckStatus = chess.Checkmate
	default:
		return errors.ErrInvalidMoveText
	}
	return nil
}
