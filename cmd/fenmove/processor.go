// processor.go - Input parsing, replay and output functions
package main

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/lgbarn/fenmove-go/internal/config"
	"github.com/lgbarn/fenmove-go/internal/engine"
	"github.com/lgbarn/fenmove-go/internal/hashing"
	"github.com/lgbarn/fenmove-go/internal/output"
	"github.com/lgbarn/fenmove-go/internal/worker"
)

// fenSeparator splits an input line into its FEN and its moves.
const fenSeparator = "|"

// RunStats counts what a run did, for the summary line.
type RunStats struct {
	Lines  int // input lines replayed or attempted
	Failed int // lines that stopped early
	Plies  int // moves played successfully

	Duplicates int // lines suppressed as repeats of an earlier final position
}

// add folds one result into the counts.
func (s *RunStats) add(result worker.ProcessResult) {
	s.Lines++
	if result.Err != nil {
		s.Failed++
	}
	if result.Replayed() {
		s.Plies += len(result.Positions) - 1
	}
}

// ProcessingContext holds all processing state
type ProcessingContext struct {
	cfg    *config.Config
	start  engine.Position
	writer output.ResultWriter
	stats  RunStats
	dupes  *hashing.DuplicateDetector // nil unless SuppressDuplicates
	halted bool                       // set once StopOnError has ended the run
}

// NewProcessingContext validates cfg and prepares a run writing to w.
func NewProcessingContext(cfg *config.Config, w output.ResultWriter) (*ProcessingContext, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start, err := cfg.StartPosition()
	if err != nil {
		return nil, err
	}
	ctx := &ProcessingContext{cfg: cfg, start: start, writer: w}
	if cfg.Batch.SuppressDuplicates {
		ctx.dupes = hashing.NewDuplicateDetector(cfg.Batch.DuplicatesMatchCounters, 0)
	}
	return ctx, nil
}

// isSkippable reports whether a line carries no work: blank or a # comment.
func isSkippable(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// parseLine splits "FEN | moves" or a bare move list into a work item.
// A malformed FEN is recorded on the item rather than returned, so the
// line still takes its place in the output order.
func parseLine(line string, index int, start engine.Position) worker.WorkItem {
	item := worker.WorkItem{Start: start, Source: line, Index: index}

	moves := line
	if fen, rest, found := strings.Cut(line, fenSeparator); found {
		pos, err := engine.ParseFEN(strings.TrimSpace(fen))
		if err != nil {
			item.Err = err
			return item
		}
		item.Start = pos
		moves = rest
	}
	item.Moves = strings.Fields(moves)
	return item
}

// readItems reads every non-skippable line from r as a work item,
// numbering them from firstIndex.
func readItems(r io.Reader, firstIndex int, start engine.Position) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if isSkippable(line) {
			continue
		}
		items = append(items, parseLine(line, firstIndex+len(items), start))
	}
	return items, scanner.Err()
}

// processInput replays every line of r and writes the results in order.
func processInput(r io.Reader, name string, ctx *ProcessingContext) error {
	if ctx.halted {
		return nil
	}
	items, err := readItems(r, ctx.stats.Lines, ctx.start)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if ctx.cfg.Verbosity > 1 {
		fmt.Fprintf(ctx.cfg.LogFile, "%s: %d line(s)\n", name, len(items))
	}
	return replayItems(items, ctx)
}

// Halted reports whether a failing line stopped the run.
func (ctx *ProcessingContext) Halted() bool {
	return ctx.halted
}

// numWorkers resolves the configured worker count.
func numWorkers(cfg *config.Config) int {
	if cfg.Batch.Workers <= 0 {
		return runtime.NumCPU()
	}
	return cfg.Batch.Workers
}

// replayItems picks sequential or parallel replay.
func replayItems(items []worker.WorkItem, ctx *ProcessingContext) error {
	n := numWorkers(ctx.cfg)

	// Use parallel processing for multiple workers and enough lines
	if n > 1 && len(items) > 2 {
		return replayParallel(items, ctx, n)
	}
	return replaySequential(items, ctx)
}

// replaySequential replays items one after another (single-threaded).
func replaySequential(items []worker.WorkItem, ctx *ProcessingContext) error {
	replay := worker.Replayer(ctx.cfg.Batch.MaxPlies)
	for _, item := range items {
		keepGoing, err := ctx.handleResult(replay(item))
		if err != nil || !keepGoing {
			return err
		}
	}
	return nil
}

// replayParallel replays items on a worker pool and writes the results
// back in input order.
func replayParallel(items []worker.WorkItem, ctx *ProcessingContext, n int) error {
	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(n, bufferSize, worker.Replayer(ctx.cfg.Batch.MaxPlies))
	pool.Start()

	go func() {
		for _, item := range items {
			if pool.IsStopped() {
				break
			}
			pool.Submit(item)
		}
		pool.Close()
	}()

	var writeErr error
	first := 0
	if len(items) > 0 {
		first = items[0].Index
	}
	worker.Ordered(pool.Results(), first, func(result worker.ProcessResult) bool {
		keepGoing, err := ctx.handleResult(result)
		if err != nil {
			writeErr = err
		}
		if err != nil || !keepGoing {
			pool.Stop()
			return false
		}
		return true
	})
	return writeErr
}

// handleResult logs and writes one result. keepGoing is false once the
// run should stop.
func (ctx *ProcessingContext) handleResult(result worker.ProcessResult) (keepGoing bool, err error) {
	ctx.stats.add(result)
	ctx.logResult(result)

	if ctx.isDuplicate(result) {
		ctx.stats.Duplicates++
		return true, nil
	}
	if err := ctx.writer.WriteResult(result); err != nil {
		return false, fmt.Errorf("writing line %d: %w", result.Index+1, err)
	}
	if result.Err != nil && ctx.cfg.Batch.StopOnError {
		ctx.halted = true
		return false, nil
	}
	return true, nil
}

// isDuplicate reports whether a cleanly replayed line ends in a position
// already written. Failed lines are never suppressed.
func (ctx *ProcessingContext) isDuplicate(result worker.ProcessResult) bool {
	if ctx.dupes == nil || result.Err != nil || !result.Replayed() {
		return false
	}
	return ctx.dupes.CheckAndAdd(result.Final())
}

// logResult reports a result on the log file according to verbosity.
func (ctx *ProcessingContext) logResult(result worker.ProcessResult) {
	cfg := ctx.cfg
	switch {
	case result.Err != nil && cfg.Verbosity > 0:
		fmt.Fprintf(cfg.LogFile, "line %d: %s: %v\n", result.Index+1, output.ErrorClass(result.Err), result.Err)
	case result.Err == nil && cfg.Verbosity > 1:
		fmt.Fprintf(cfg.LogFile, "line %d: %d ply(s) -> %s\n", result.Index+1, len(result.Positions)-1, result.Final().FEN())
	}
}

// Stats returns the counts accumulated so far.
func (ctx *ProcessingContext) Stats() RunStats {
	return ctx.stats
}
