package chess

// MoveDescriptor is the parsed form of one algebraic move token.
type MoveDescriptor struct {
	// The move text as supplied (e.g., "Nbd7", "e4", "O-O").
	Text string

	// Castle is set for O-O and O-O-O; the other fields are then unused
	// apart from Text and CheckStatus.
	Castle CastleKind

	// The piece being moved.
	PieceToMove Piece

	// Optional origin disambiguators; zero when absent.
	FromCol  Col
	FromRank Rank

	// Destination square.
	To Square

	// Capture is set when the text carried an 'x'.
	Capture bool

	// The piece promoted to (Empty if not a promotion).
	PromotedPiece Piece

	// Whether the text claims check or checkmate. Informational only.
	CheckStatus CheckStatus
}

// IsCastle returns true if this move is a castling move.
func (m MoveDescriptor) IsCastle() bool {
	return m.Castle != NoCastle
}

// IsPromotion returns true if the text named a promotion piece.
func (m MoveDescriptor) IsPromotion() bool {
	return m.PromotedPiece != Empty
}

// MatchesOrigin reports whether sq agrees with the disambiguators.
func (m MoveDescriptor) MatchesOrigin(sq Square) bool {
	if m.FromCol != 0 && sq.Col != m.FromCol {
		return false
	}
	if m.FromRank != 0 && sq.Rank != m.FromRank {
		return false
	}
	return true
}
