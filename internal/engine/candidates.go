package engine

import "github.com/lgbarn/fenmove-go/internal/chess"

// Offset tables in (file, rank) steps.
var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingDirs = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// CandidateTargetsFrom returns the squares the piece on from could reach
// by its movement geometry, taking blocking pieces, captures of opposing
// pieces and the en passant target into account. Whether the move would
// leave the mover's own king in check is not considered.
//
// ok is false when from is empty; an occupied square whose piece has no
// moves yields an empty set and ok == true.
func (p Position) CandidateTargetsFrom(from chess.Square) (targets chess.SquareSet, ok bool) {
	piece := p.board.Get(from)
	if piece == chess.Empty {
		return 0, false
	}
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return p.pawnTargets(from, colour), true
	case chess.Knight:
		return p.steppingTargets(from, colour, knightOffsets), true
	case chess.King:
		return p.steppingTargets(from, colour, kingOffsets), true
	case chess.Bishop:
		return p.slidingTargets(from, colour, diagonalDirs), true
	case chess.Rook:
		return p.slidingTargets(from, colour, straightDirs), true
	case chess.Queen:
		return p.slidingTargets(from, colour, allSlidingDirs), true
	}
	return 0, true
}

// PiecesThatCanReach returns the squares holding a piece of the given type
// and colour whose candidate targets include target.
func (p Position) PiecesThatCanReach(piece chess.Piece, target chess.Square, colour chess.Colour) chess.SquareSet {
	return p.PiecesOf(piece, colour).Filter(func(from chess.Square) bool {
		targets, _ := p.CandidateTargetsFrom(from)
		return targets.Has(target)
	})
}

// isOpponent reports whether sq holds a piece of the other colour.
func (p Position) isOpponent(sq chess.Square, colour chess.Colour) bool {
	piece := p.board.Get(sq)
	return piece != chess.Empty && chess.ExtractColour(piece) != colour
}

// pawnTargets covers single and double advances, diagonal captures and the
// en passant target.
func (p Position) pawnTargets(from chess.Square, colour chess.Colour) chess.SquareSet {
	var targets chess.SquareSet
	dir := chess.ColourOffset(colour)

	oneStep := from.Offset(0, dir)
	if oneStep.IsValid() && p.board.IsEmpty(oneStep) {
		targets = targets.With(oneStep)

		twoStep := from.Offset(0, 2*dir)
		if from.Rank == chess.PawnStartRank(colour) && p.board.IsEmpty(twoStep) {
			targets = targets.With(twoStep)
		}
	}

	ep, hasEP := p.EnPassant()
	for dc := -1; dc <= 1; dc += 2 {
		diag := from.Offset(dc, dir)
		if !diag.IsValid() {
			continue
		}
		if p.isOpponent(diag, colour) || (hasEP && diag == ep) {
			targets = targets.With(diag)
		}
	}
	return targets
}

// steppingTargets covers knights and kings: one step per offset.
func (p Position) steppingTargets(from chess.Square, colour chess.Colour, offsets [][2]int) chess.SquareSet {
	var targets chess.SquareSet
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !to.IsValid() {
			continue
		}
		if p.board.IsEmpty(to) || p.isOpponent(to, colour) {
			targets = targets.With(to)
		}
	}
	return targets
}

// slidingTargets walks each ray until it leaves the board or meets a piece.
// An opposing piece ends the ray as a candidate, an own piece ends it
// without one.
func (p Position) slidingTargets(from chess.Square, colour chess.Colour, dirs [][2]int) chess.SquareSet {
	var targets chess.SquareSet
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.IsValid(); to = to.Offset(dir[0], dir[1]) {
			if p.board.IsEmpty(to) {
				targets = targets.With(to)
				continue
			}
			if p.isOpponent(to, colour) {
				targets = targets.With(to)
			}
			break
		}
	}
	return targets
}
