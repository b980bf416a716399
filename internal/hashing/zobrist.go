package hashing

import (
	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/engine"
)

// Zobrist key tables, filled once from a fixed seed so hashes are stable
// across runs.
var (
	pieceKeys     [2][chess.NumPieceValues][chess.BoardSize * chess.BoardSize]uint64
	whiteToMove   uint64
	castlingKeys  [16]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	state := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		// splitmix64
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for colour := range pieceKeys {
		for piece := range pieceKeys[colour] {
			for sq := range pieceKeys[colour][piece] {
				pieceKeys[colour][piece][sq] = next()
			}
		}
	}
	whiteToMove = next()
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = next()
	}
}

// squareIndex maps a square to 0..63, a1 first.
func squareIndex(sq chess.Square) int {
	return int(sq.Rank-chess.RankBase)*chess.BoardSize + int(sq.Col-chess.ColBase)
}

// GenerateZobristHash hashes the placement, side to move, castling rights
// and en passant file of pos. The move counters are not hashed.
func GenerateZobristHash(pos engine.Position) uint64 {
	var hash uint64
	for _, sq := range pos.Occupied().Squares() {
		piece := pos.PieceAt(sq)
		hash ^= pieceKeys[chess.ExtractColour(piece)][chess.ExtractPiece(piece)][squareIndex(sq)]
	}
	if pos.ToMove() == chess.White {
		hash ^= whiteToMove
	}
	hash ^= castlingKeys[pos.Castling()&chess.AllCastling]
	if ep, ok := pos.EnPassant(); ok {
		hash ^= enPassantKeys[ep.Col-chess.ColBase]
	}
	return hash
}

// WeakHash is a cheap placement-only checksum used as a second opinion
// when Zobrist hashes collide.
func WeakHash(pos engine.Position) uint32 {
	var hash uint32
	for _, sq := range pos.Occupied().Squares() {
		hash = hash*31 + uint32(pos.PieceAt(sq))*uint32(squareIndex(sq)+1)
	}
	return hash
}
