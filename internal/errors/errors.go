// Package errors provides sentinel errors and error types for the position engine.
// It defines the three failure classes (format, illegal move, unsupported
// feature) and structured error types that preserve context while allowing
// error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Format errors: malformed text handed to a parser.
var (
	// ErrInvalidFEN indicates a malformed full-position string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidPlacement indicates a malformed piece placement field.
	ErrInvalidPlacement = fmt.Errorf("invalid piece placement: %w", ErrInvalidFEN)

	// ErrInvalidColour indicates an active colour other than w or b.
	ErrInvalidColour = fmt.Errorf("invalid active colour: %w", ErrInvalidFEN)

	// ErrInvalidCastling indicates a malformed castling availability field.
	ErrInvalidCastling = fmt.Errorf("invalid castling availability: %w", ErrInvalidFEN)

	// ErrInvalidEnPassant indicates a malformed en passant target field.
	ErrInvalidEnPassant = fmt.Errorf("invalid en passant target: %w", ErrInvalidFEN)

	// ErrInvalidClock indicates a malformed halfmove clock or fullmove number.
	ErrInvalidClock = fmt.Errorf("invalid move counter: %w", ErrInvalidFEN)

	// ErrInvalidMoveText indicates move text that does not follow algebraic notation.
	ErrInvalidMoveText = errors.New("invalid move notation")

	// ErrNotText indicates move input that is not valid text at all.
	ErrNotText = errors.New("move input is not text")
)

// Illegal moves: well-formed requests the rules forbid.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrOccupiedTarget indicates a non-capturing move onto an occupied square.
	ErrOccupiedTarget = fmt.Errorf("target square occupied: %w", ErrIllegalMove)

	// ErrNoOrigin indicates that no piece can reach the target square.
	ErrNoOrigin = fmt.Errorf("no piece can reach target: %w", ErrIllegalMove)

	// ErrAmbiguousOrigin indicates that several pieces can reach the target square.
	ErrAmbiguousOrigin = fmt.Errorf("ambiguous origin: %w", ErrIllegalMove)

	// ErrMustPromote indicates a pawn reaching the last rank without promotion.
	ErrMustPromote = fmt.Errorf("pawn must promote: %w", ErrIllegalMove)
)

// Unsupported features: requests the engine does not execute yet.
var (
	// ErrUnsupported indicates a feature the engine does not implement.
	ErrUnsupported = errors.New("unsupported move")

	// ErrCastlingUnsupported indicates a castling request.
	ErrCastlingUnsupported = fmt.Errorf("castling: %w", ErrUnsupported)

	// ErrPromotionUnsupported indicates a promotion request.
	ErrPromotionUnsupported = fmt.Errorf("promotion: %w", ErrUnsupported)

	// ErrCaptureUnsupported indicates a capture request, en passant included.
	ErrCaptureUnsupported = fmt.Errorf("capture: %w", ErrUnsupported)
)

// Configuration errors.
var (
	// ErrInvalidConfig indicates an invalid configuration value.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError represents a failure to parse position or move text.
// Every format failure is reported as a *ParseError.
type ParseError struct {
	Err   error  // The underlying sentinel
	Input string // The full text being parsed
	Field string // Which part failed (e.g. "placement", "rank 3", "target")
	Got   string // The offending fragment, if any
}

// Error returns a formatted error message with the failing field and fragment.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// MoveError wraps a rejected move with the position it was played in.
// It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The move text that caused the error
	FEN      string // The position the move was attempted in
	Ply      int    // Ply number within a replay (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.FEN))
	}

	context := strings.Join(parts, " ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// IsFormatError reports whether err stems from malformed input text.
func IsFormatError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsIllegalMove reports whether err is an illegal-move rejection.
func IsIllegalMove(err error) bool {
	return errors.Is(err, ErrIllegalMove)
}

// IsUnsupported reports whether err is an unsupported-feature rejection.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
