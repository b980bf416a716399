package chess

// Board holds the contents of the 64 squares, indexed [file][rank] from a1.
// It is an array so assignment copies it.
type Board [BoardSize][BoardSize]Piece

// InitialBoard returns the standard chess starting array.
func InitialBoard() Board {
	var b Board
	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b[col][0] = W(backRank[col])
		b[col][1] = W(Pawn)
		b[col][6] = B(Pawn)
		b[col][7] = B(backRank[col])
	}
	return b
}

// Get returns the piece on sq, or Empty when sq is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.IsValid() {
		return Empty
	}
	return b[sq.Col-ColBase][sq.Rank-RankBase]
}

// Set places a piece on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.IsValid() {
		b[sq.Col-ColBase][sq.Rank-RankBase] = piece
	}
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == Empty
}

// Occupied returns every square holding a piece.
func (b *Board) Occupied() SquareSet {
	var set SquareSet
	for col := Col(FirstCol); col <= LastCol; col++ {
		for rank := Rank(FirstRank); rank <= LastRank; rank++ {
			if sq := Sq(col, rank); b.Get(sq) != Empty {
				set = set.With(sq)
			}
		}
	}
	return set
}

// Find returns every square holding exactly the given coloured piece.
func (b *Board) Find(colouredPiece Piece) SquareSet {
	var set SquareSet
	for col := Col(FirstCol); col <= LastCol; col++ {
		for rank := Rank(FirstRank); rank <= LastRank; rank++ {
			if sq := Sq(col, rank); b.Get(sq) == colouredPiece {
				set = set.With(sq)
			}
		}
	}
	return set
}
