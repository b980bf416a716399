package engine

import (
	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/errors"
)

// checkSupported rejects the requests this engine does not execute.
func checkSupported(move chess.MoveDescriptor) error {
	switch {
	case move.IsCastle():
		return errors.ErrCastlingUnsupported
	case move.IsPromotion():
		return errors.ErrPromotionUnsupported
	case move.Capture:
		return errors.ErrCaptureUnsupported
	}
	return nil
}

// candidateOrigins returns the squares from which the side to move could
// play the described move, after applying any disambiguators.
func (p Position) candidateOrigins(move chess.MoveDescriptor) chess.SquareSet {
	reaching := p.PiecesThatCanReach(move.PieceToMove, move.To, p.toMove)
	return reaching.Filter(func(from chess.Square) bool {
		if !move.MatchesOrigin(from) {
			return false
		}
		// Without a capture a pawn only moves along its file.
		if move.PieceToMove == chess.Pawn && !move.Capture && from.Col != move.To.Col {
			return false
		}
		return true
	})
}

// findOrigin resolves the unique origin square of a supported move.
func (p Position) findOrigin(move chess.MoveDescriptor) (chess.Square, error) {
	if !p.board.IsEmpty(move.To) {
		return chess.NoSquare, errors.ErrOccupiedTarget
	}

	origins := p.candidateOrigins(move)
	switch origins.Len() {
	case 0:
		return chess.NoSquare, errors.ErrNoOrigin
	case 1:
		return origins.Squares()[0], nil
	default:
		return chess.NoSquare, errors.Wrapf(errors.ErrAmbiguousOrigin, "%s", origins)
	}
}
