// Package output writes replay results as FEN lines, board diagrams or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/fenmove-go/internal/config"
	"github.com/lgbarn/fenmove-go/internal/engine"
	"github.com/lgbarn/fenmove-go/internal/worker"
)

// ResultWriter is the interface for writing replay results to output.
type ResultWriter interface {
	// WriteResult writes a single replayed line to the output.
	WriteResult(result worker.ProcessResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewResultWriter returns the writer for cfg.Output.Format.
func NewResultWriter(w io.Writer, cfg *config.Config) ResultWriter {
	switch cfg.Output.Format {
	case config.Board:
		return NewBoardWriter(w, cfg)
	case config.JSON:
		return NewJSONWriter(w, cfg)
	default:
		return NewFENWriter(w, cfg)
	}
}

// textWriter holds what the FEN and board writers share.
type textWriter struct {
	w      io.Writer
	cfg    *config.Config
	render func(io.Writer, engine.Position) error
}

func (tw *textWriter) WriteResult(result worker.ProcessResult) error {
	positions := result.Positions
	if len(positions) == 0 {
		return nil
	}
	if !tw.cfg.Output.AllPlies {
		positions = positions[len(positions)-1:]
	}

	first := len(result.Positions) - len(positions)
	for i, pos := range positions {
		if tw.cfg.Output.ShowMoveNumbers {
			if err := writePlyHeader(tw.w, result, first+i); err != nil {
				return err
			}
		}
		if err := tw.render(tw.w, pos); err != nil {
			return err
		}
	}

	if sq, ok := tw.cfg.Query.Square(); ok {
		if jc := candidatesToJSON(result.Final(), sq); jc != nil {
			if _, err := fmt.Fprintf(tw.w, "candidates %s (%s): %s\n", jc.From, jc.Piece, strings.Join(jc.Targets, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}

// writePlyHeader names the move that produced positions[ply].
func writePlyHeader(w io.Writer, result worker.ProcessResult, ply int) error {
	if ply <= 0 || ply > len(result.Moves) {
		_, err := fmt.Fprintf(w, "line %d start\n", result.Index+1)
		return err
	}
	_, err := fmt.Fprintf(w, "line %d ply %d %s\n", result.Index+1, ply, result.Moves[ply-1])
	return err
}

func (tw *textWriter) Flush() error {
	return nil
}

func (tw *textWriter) Close() error {
	return nil
}

// NewFENWriter creates a writer that emits one FEN per position.
func NewFENWriter(w io.Writer, cfg *config.Config) ResultWriter {
	return &textWriter{w: w, cfg: cfg, render: func(w io.Writer, pos engine.Position) error {
		_, err := fmt.Fprintln(w, pos.FEN())
		return err
	}}
}

// NewBoardWriter creates a writer that emits a diagram per position,
// followed by its FEN and a blank line.
func NewBoardWriter(w io.Writer, cfg *config.Config) ResultWriter {
	return &textWriter{w: w, cfg: cfg, render: func(w io.Writer, pos engine.Position) error {
		_, err := fmt.Fprintf(w, "%s\n%s\n\n", pos.BoardString(), pos.FEN())
		return err
	}}
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	lines  []*JSONLine
	single bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:     w,
		cfg:   cfg,
		lines: make([]*JSONLine, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result
// immediately, one document per line.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteResult buffers a result for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteResult(result worker.ProcessResult) error {
	line := ResultToJSON(result, jw.cfg)
	if jw.single {
		return jw.encoder().Encode(line)
	}
	jw.lines = append(jw.lines, line)
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.lines) == 0 {
		return nil
	}

	err := jw.encoder().Encode(&JSONOutput{Lines: jw.lines})

	// Clear buffer after writing
	jw.lines = jw.lines[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encoder() *json.Encoder {
	enc := json.NewEncoder(jw.w)
	if jw.cfg.Output.IndentJSON {
		enc.SetIndent("", "  ")
	}
	return enc
}
