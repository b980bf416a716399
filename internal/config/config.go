// Package config provides configuration for the fenmove driver.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/fenmove-go/internal/engine"
	"github.com/lgbarn/fenmove-go/internal/errors"
)

// OutputFormat selects how replayed positions are written.
type OutputFormat int

const (
	FEN   OutputFormat = iota // One FEN line per position
	Board                     // Eight-line diagram per position
	JSON                      // One JSON report per input line
)

var formatNames = []string{"fen", "board", "json"}

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseOutputFormat maps a flag value such as "board" to its format.
func ParseOutputFormat(name string) (OutputFormat, error) {
	for i, candidate := range formatNames {
		if strings.EqualFold(name, candidate) {
			return OutputFormat(i), nil
		}
	}
	return FEN, fmt.Errorf("unknown output format %q: %w", name, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// StartFEN is the position lines without their own FEN start from.
	StartFEN string

	// Sub-configurations
	Output *OutputConfig
	Batch  *BatchConfig
	Query  *QueryConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		StartFEN:   engine.InitialFEN,
		Output:     NewOutputConfig(),
		Batch:      NewBatchConfig(),
		Query:      NewQueryConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer positions are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// StartPosition parses StartFEN.
func (c *Config) StartPosition() (engine.Position, error) {
	return engine.ParseFEN(c.StartFEN)
}

// Validate checks the configuration as a whole.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if _, err := c.StartPosition(); err != nil {
		return fmt.Errorf("start position: %w: %w", err, errors.ErrInvalidConfig)
	}
	if err := c.Batch.Validate(); err != nil {
		return err
	}
	return c.Query.Validate()
}
