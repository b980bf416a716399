// fenmove replays algebraic move lists from FEN start positions and writes
// the positions reached.
//
// Each input line is either a move list played from the start position, or
// "FEN | moves" to start from a position of its own:
//
//	e4 e5 Nf3
//	4k3/8/8/8/8/8/8/R4RK1 w - - 0 1 | Rac1 Ke7
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/fenmove-go/internal/config"
	"github.com/lgbarn/fenmove-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fenmove version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	writer := newWriter(cfg)
	ctx, err := NewProcessingContext(cfg, writer)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		os.Exit(2)
	}

	runErr := processAllInputs(ctx, flag.Args())
	if err := writer.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", runErr)
		os.Exit(1)
	}

	stats := ctx.Stats()
	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, stats, ctx.Halted())
	}
	if stats.Failed > 0 {
		os.Exit(1)
	}
}

// newWriter picks the result writer for the configured format.
func newWriter(cfg *config.Config) output.ResultWriter {
	if cfg.Output.Format == config.JSON && *jsonLines {
		return output.NewJSONWriterSingle(cfg.OutputFile, cfg)
	}
	return output.NewResultWriter(cfg.OutputFile, cfg)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// processAllInputs processes all input files, or stdin when there are none.
func processAllInputs(ctx *ProcessingContext, args []string) error {
	if len(args) == 0 {
		return processInput(os.Stdin, "stdin", ctx)
	}

	for _, filename := range args {
		if ctx.Halted() {
			break
		}

		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(ctx.cfg.LogFile, "Error opening file %s: %v\n", filename, err)
			continue
		}

		err = processInput(file, filename, ctx)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			return err
		}
	}
	return nil
}

// reportStatistics prints the final summary to the log.
func reportStatistics(w io.Writer, stats RunStats, halted bool) {
	fmt.Fprintf(w, "%d line(s) replayed, %d failed, %d ply(s) played.\n", stats.Lines, stats.Failed, stats.Plies)
	if stats.Duplicates > 0 {
		fmt.Fprintf(w, "%d duplicate line(s) suppressed.\n", stats.Duplicates)
	}
	if halted {
		fmt.Fprintf(w, "Stopped at the first failing line.\n")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fenmove [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays algebraic move lists and writes the resulting positions.\n")
	fmt.Fprintf(os.Stderr, "Input lines are \"moves...\" or \"FEN | moves...\"; # starts a comment line.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  fen    One FEN per position (default)\n")
	fmt.Fprintf(os.Stderr, "  board  Eight-line diagram and FEN per position\n")
	fmt.Fprintf(os.Stderr, "  json   JSON report per line\n")
}
