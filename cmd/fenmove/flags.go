// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/fenmove-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("W", "fen", "Output format: fen, board, json")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format (same as -W json)")
	jsonLines    = flag.Bool("jsonl", false, "With JSON output, write one document per line instead of an array")
	indentJSON   = flag.Bool("indent", false, "Pretty-print JSON output")
	allPlies     = flag.Bool("allplies", false, "Write every intermediate position, not just the last")
	plyHeaders   = flag.Bool("plyheaders", false, "Precede each position with its line, ply and move")

	// Replay options
	startFEN    = flag.String("fen", "", "Start position for lines without their own FEN (default: initial position)")
	maxPlies    = flag.Uint("maxplies", 0, "Replay at most N moves per line (0 = no limit)")
	stopOnError = flag.Bool("stoponerror", false, "Stop at the first line that fails")
	suppressDup = flag.Bool("D", false, "Suppress lines whose final position was already output")
	dupCounters = flag.Bool("Dcounters", false, "With -D, positions must also agree on move counters")

	// Queries
	candidates = flag.String("candidates", "", "List candidate targets from this square in each final position")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	verbose = flag.Bool("v", false, "Report every line on the log")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyReplayFlags(cfg)
	cfg.Query.CandidatesFrom = *candidates

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyOutputFlags configures the output format and its options.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return fmt.Errorf("-W: %w", err)
	}
	if *jsonOutput {
		format = config.JSON
	}
	cfg.Output.Format = format
	cfg.Output.IndentJSON = *indentJSON
	cfg.Output.AllPlies = *allPlies
	cfg.Output.ShowMoveNumbers = *plyHeaders
	return nil
}

// applyReplayFlags configures the start position and batch settings.
func applyReplayFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
	cfg.Batch.Workers = *workers
	cfg.Batch.MaxPlies = *maxPlies
	cfg.Batch.StopOnError = *stopOnError
	cfg.Batch.SuppressDuplicates = *suppressDup
	cfg.Batch.DuplicatesMatchCounters = *dupCounters
}
