package output

import (
	"fmt"

	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/config"
	"github.com/lgbarn/fenmove-go/internal/engine"
	"github.com/lgbarn/fenmove-go/internal/errors"
	"github.com/lgbarn/fenmove-go/internal/hashing"
	"github.com/lgbarn/fenmove-go/internal/worker"
)

// JSONLine represents one replayed input line in JSON format.
type JSONLine struct {
	Line       int             `json:"line"` // 1-based among replayed lines
	StartFEN   string          `json:"startFEN,omitempty"`
	Moves      []JSONMove      `json:"moves,omitempty"`
	PlyCount   int             `json:"plyCount"`
	FinalFEN   string          `json:"finalFEN,omitempty"`
	Hash       string          `json:"hash,omitempty"` // Zobrist hash of the final position
	Error      *JSONError      `json:"error,omitempty"`
	Candidates *JSONCandidates `json:"candidates,omitempty"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	Ply        int    `json:"ply"`
	MoveNumber int    `json:"moveNumber,omitempty"` // set on White's moves
	Color      string `json:"color"`                // "white" or "black"
	SAN        string `json:"san"`
	Piece      string `json:"piece,omitempty"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONError describes why a line stopped early.
type JSONError struct {
	Class   string `json:"class"` // "format", "illegal" or "unsupported"
	Ply     int    `json:"ply,omitempty"`
	Move    string `json:"move,omitempty"`
	Message string `json:"message"`
}

// JSONCandidates lists the candidate targets of one square.
type JSONCandidates struct {
	From    string   `json:"from"`
	Piece   string   `json:"piece"`
	Targets []string `json:"targets"`
}

// JSONOutput holds multiple lines for array output.
type JSONOutput struct {
	Lines []*JSONLine `json:"lines"`
}

// ResultToJSON converts a replay result to JSON format.
func ResultToJSON(result worker.ProcessResult, cfg *config.Config) *JSONLine {
	jl := &JSONLine{Line: result.Index + 1}
	if result.Err != nil {
		jl.Error = convertError(result.Err)
	}
	if !result.Replayed() {
		return jl
	}

	final := result.Final()
	jl.StartFEN = result.Start.FEN()
	jl.FinalFEN = final.FEN()
	jl.Hash = fmt.Sprintf("%016x", hashing.GenerateZobristHash(final))
	jl.Moves = convertMoves(result, cfg.Output.AllPlies)
	jl.PlyCount = len(jl.Moves)

	if sq, ok := cfg.Query.Square(); ok {
		jl.Candidates = candidatesToJSON(final, sq)
	}

	return jl
}

// convertMoves lists the moves that were played successfully.
// The includeFEN parameter controls whether FEN is added after each move.
func convertMoves(result worker.ProcessResult, includeFEN bool) []JSONMove {
	if len(result.Positions) < 2 {
		return nil
	}
	moves := make([]JSONMove, 0, len(result.Positions)-1)
	for i := 1; i < len(result.Positions); i++ {
		before, after := result.Positions[i-1], result.Positions[i]
		jm := JSONMove{
			Ply:   i,
			Color: colorName(before.ToMove()),
		}
		if i <= len(result.Moves) {
			jm.SAN = result.Moves[i-1]
		}
		if before.ToMove() == chess.White {
			jm.MoveNumber = int(before.MoveNumber())
		}

		from, to := movedSquares(before, after)
		jm.From = from.String()
		jm.To = to.String()
		jm.Piece = pieceTypeName(chess.ExtractPiece(after.PieceAt(to)))

		if includeFEN {
			jm.FEN = after.FEN()
		}
		moves = append(moves, jm)
	}
	return moves
}

// movedSquares finds the square a quiet move vacated and the one it filled.
func movedSquares(before, after engine.Position) (from, to chess.Square) {
	vacated := before.Occupied().Filter(func(sq chess.Square) bool {
		return after.PieceAt(sq) == chess.Empty
	})
	filled := after.Occupied().Filter(func(sq chess.Square) bool {
		return before.PieceAt(sq) == chess.Empty
	})
	from, to = chess.NoSquare, chess.NoSquare
	if squares := vacated.Squares(); len(squares) == 1 {
		from = squares[0]
	}
	if squares := filled.Squares(); len(squares) == 1 {
		to = squares[0]
	}
	return from, to
}

// convertError classifies a replay failure.
func convertError(err error) *JSONError {
	je := &JSONError{
		Class:   ErrorClass(err),
		Message: err.Error(),
	}
	if moveErr, ok := err.(*errors.MoveError); ok {
		je.Ply = moveErr.Ply
		je.Move = moveErr.MoveText
	}
	return je
}

// ErrorClass names the failure class of err: "format", "illegal",
// "unsupported", or "error" for anything else.
func ErrorClass(err error) string {
	switch {
	case errors.IsFormatError(err):
		return "format"
	case errors.IsIllegalMove(err):
		return "illegal"
	case errors.IsUnsupported(err):
		return "unsupported"
	default:
		return "error"
	}
}

// candidatesToJSON reports the candidate targets of the piece on sq.
// An empty square yields no report.
func candidatesToJSON(pos engine.Position, sq chess.Square) *JSONCandidates {
	targets, ok := pos.CandidateTargetsFrom(sq)
	if !ok {
		return nil
	}
	jc := &JSONCandidates{
		From:    sq.String(),
		Piece:   chess.PieceName(pos.PieceAt(sq)),
		Targets: make([]string, 0, targets.Len()),
	}
	for _, target := range targets.Squares() {
		jc.Targets = append(jc.Targets, target.String())
	}
	return jc
}

// colorName returns "white" or "black".
func colorName(colour chess.Colour) string {
	if colour == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
