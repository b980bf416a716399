package config

import (
	"fmt"

	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/errors"
)

// QueryConfig holds settings for inspecting the final position of a line.
type QueryConfig struct {
	// CandidatesFrom names a square whose candidate targets are listed
	// for the final position. Empty disables the query.
	CandidatesFrom string
}

// NewQueryConfig creates a QueryConfig with default values.
// All queries are disabled by default.
func NewQueryConfig() *QueryConfig {
	return &QueryConfig{}
}

// Square returns the parsed query square, if one is set.
func (q *QueryConfig) Square() (chess.Square, bool) {
	if q.CandidatesFrom == "" {
		return chess.NoSquare, false
	}
	return chess.ParseSquare(q.CandidatesFrom)
}

// Validate checks that the query square, if any, names a board square.
func (q *QueryConfig) Validate() error {
	if q.CandidatesFrom == "" {
		return nil
	}
	if _, ok := chess.ParseSquare(q.CandidatesFrom); !ok {
		return fmt.Errorf("candidate square %q: %w", q.CandidatesFrom, errors.ErrInvalidConfig)
	}
	return nil
}
