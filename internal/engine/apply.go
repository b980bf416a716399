package engine

import (
	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/errors"
)

// Move decodes moveText and plays it, returning the successor position.
// The receiver is never modified; on failure the zero Position and an
// error are returned. Format failures are *errors.ParseError; rule
// failures are *errors.MoveError wrapping ErrIllegalMove or ErrUnsupported.
func (p Position) Move(moveText string) (Position, error) {
	move, err := DecodeMove(moveText)
	if err != nil {
		return Position{}, err
	}
	return p.Apply(move)
}

// Apply plays an already decoded move.
func (p Position) Apply(move chess.MoveDescriptor) (Position, error) {
	next, err := p.apply(move)
	if err != nil {
		return Position{}, &errors.MoveError{Err: err, MoveText: move.Text, FEN: p.FEN()}
	}
	return next, nil
}

func (p Position) apply(move chess.MoveDescriptor) (Position, error) {
	if err := checkSupported(move); err != nil {
		return Position{}, err
	}

	from, err := p.findOrigin(move)
	if err != nil {
		return Position{}, err
	}

	colour := p.toMove
	next := p
	next.enPassant = chess.NoSquare

	switch move.PieceToMove {
	case chess.Pawn:
		if move.To.Rank == chess.PromotionRank(colour) {
			return Position{}, errors.ErrMustPromote
		}
		if int(move.To.Rank)-int(from.Rank) == 2*chess.ColourOffset(colour) {
			next.enPassant = from.Offset(0, chess.ColourOffset(colour))
		}
		next.halfmoveClock = 0
	case chess.King:
		next.castling = next.castling.Without(chess.KingRights(colour))
		next.halfmoveClock++
	case chess.Rook:
		next.castling = next.castling.Without(chess.CornerRight(from))
		next.halfmoveClock++
	default:
		next.halfmoveClock++
	}

	piece := next.board.Get(from)
	next.board.Set(from, chess.Empty)
	next.board.Set(move.To, piece)

	if colour == chess.Black {
		next.moveNumber++
	}
	next.toMove = colour.Opposite()

	return next, nil
}

// Replay plays a sequence of moves from p, stopping at the first failure.
// It returns every position reached, starting with p itself. A failing
// move is reported as a *errors.MoveError carrying its 1-based ply.
func (p Position) Replay(moves []string) ([]Position, error) {
	positions := make([]Position, 0, len(moves)+1)
	positions = append(positions, p)
	current := p
	for i, text := range moves {
		next, err := current.Move(text)
		if err != nil {
			return positions, withPly(err, text, current, i+1)
		}
		positions = append(positions, next)
		current = next
	}
	return positions, nil
}

// withPly attaches replay context to a move failure.
func withPly(err error, text string, at Position, ply int) error {
	if moveErr, ok := err.(*errors.MoveError); ok {
		moveErr.Ply = ply
		return moveErr
	}
	return &errors.MoveError{Err: err, MoveText: text, FEN: at.FEN(), Ply: ply}
}
