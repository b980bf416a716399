package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/fenmove-go/internal/chess"
	"github.com/lgbarn/fenmove-go/internal/errors"
	"github.com/lgbarn/fenmove-go/internal/testutil"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != FEN {
		t.Errorf("Format = %v, want %v", cfg.Format, FEN)
	}
	if cfg.AllPlies {
		t.Error("AllPlies should be false by default")
	}
	if cfg.IndentJSON {
		t.Error("IndentJSON should be false by default")
	}
}

// TestBatchConfig_Defaults verifies BatchConfig replays sequentially by default
func TestBatchConfig_Defaults(t *testing.T) {
	cfg := NewBatchConfig()

	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.StopOnError {
		t.Error("StopOnError should be false by default")
	}
	if cfg.MaxPlies != 0 {
		t.Errorf("MaxPlies = %d, want 0", cfg.MaxPlies)
	}
}

// TestBatchConfig_Validate verifies batch config validation
func TestBatchConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     BatchConfig
		wantErr bool
	}{
		{"empty config is valid", BatchConfig{}, false},
		{"several workers", BatchConfig{Workers: 8, BufferSize: 16}, false},
		{"negative workers", BatchConfig{Workers: -1}, true},
		{"negative buffer", BatchConfig{Workers: 2, BufferSize: -4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}

// TestQueryConfig verifies the candidate square is parsed and validated
func TestQueryConfig(t *testing.T) {
	q := NewQueryConfig()
	_, ok := q.Square()
	testutil.AssertFalse(t, ok, "no query by default")
	testutil.AssertNoError(t, q.Validate())

	q.CandidatesFrom = "g1"
	sq, ok := q.Square()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, sq, chess.Sq('g', '1'))
	testutil.AssertNoError(t, q.Validate())

	q.CandidatesFrom = "z9"
	testutil.AssertErrorIs(t, q.Validate(), errors.ErrInvalidConfig)
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"fen", FEN, false},
		{"board", Board, false},
		{"JSON", JSON, false},
		{"pgn", FEN, true},
		{"", FEN, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}

	testutil.AssertEqual(t, Board.String(), "board")
	testutil.AssertEqual(t, OutputFormat(9).String(), "unknown")
}

// TestConfig_Defaults verifies that Config wires its sub-configs
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Output.Format != FEN {
		t.Errorf("Output.Format = %v, want %v", cfg.Output.Format, FEN)
	}
	if cfg.Batch.Workers != 1 {
		t.Errorf("Batch.Workers = %d, want 1", cfg.Batch.Workers)
	}
	if cfg.Query.CandidatesFrom != "" {
		t.Error("Query.CandidatesFrom should be empty")
	}
	testutil.AssertEqual(t, cfg.StartFEN, testutil.StartFEN)
	testutil.AssertNoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }},
		{"verbosity negative", func(c *Config) { c.Verbosity = -1 }},
		{"bad start FEN", func(c *Config) { c.StartFEN = "8/8/8 w - - 0 1" }},
		{"bad batch", func(c *Config) { c.Batch.Workers = -2 }},
		{"bad query", func(c *Config) { c.Query.CandidatesFrom = "e" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			testutil.AssertErrorIs(t, cfg.Validate(), errors.ErrInvalidConfig)
		})
	}
}

func TestConfig_StartPosition(t *testing.T) {
	cfg := NewConfig()
	cfg.StartFEN = testutil.SicilianFEN

	pos, err := cfg.StartPosition()
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, pos.FEN(), testutil.SicilianFEN)

	cfg.StartFEN = "nonsense"
	err = cfg.Validate()
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN, "the FEN failure stays inspectable")
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(log)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != log {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithStartFEN(testutil.RooksFEN).
		WithOutputFormat(JSON).
		WithIndentedJSON(true).
		WithAllPlies(true).
		WithWorkers(4).
		WithStopOnError(true).
		WithMaxPlies(40).
		WithSuppressDuplicates(true).
		WithCandidatesFrom("e1").
		WithOutput(out).
		WithVerbosity(2).
		Build()

	if cfg.Output.Format != JSON {
		t.Errorf("Format = %v, want JSON", cfg.Output.Format)
	}
	if !cfg.Output.IndentJSON || !cfg.Output.AllPlies {
		t.Error("output flags should be set")
	}
	if cfg.Batch.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Batch.Workers)
	}
	if !cfg.Batch.StopOnError {
		t.Error("StopOnError should be true")
	}
	if cfg.Batch.MaxPlies != 40 {
		t.Errorf("MaxPlies = %d, want 40", cfg.Batch.MaxPlies)
	}
	if !cfg.Batch.SuppressDuplicates || cfg.Batch.DuplicatesMatchCounters {
		t.Error("only SuppressDuplicates should be set")
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	testutil.AssertEqual(t, cfg.StartFEN, testutil.RooksFEN)
	testutil.AssertEqual(t, cfg.Query.CandidatesFrom, "e1")
	testutil.AssertEqual(t, cfg.Verbosity, 2)
	testutil.AssertNoError(t, cfg.Validate())
}
