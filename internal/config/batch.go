package config

import (
	"fmt"

	"github.com/lgbarn/fenmove-go/internal/errors"
)

// BatchConfig holds settings for replaying many input lines.
type BatchConfig struct {
	// Workers is the number of replay goroutines; 0 picks one per CPU
	// and 1 replays sequentially.
	Workers int

	// BufferSize is the work queue length; 0 uses twice the worker count.
	BufferSize int

	// StopOnError ends the run at the first line that fails.
	StopOnError bool

	// MaxPlies caps the moves replayed per line (0 = no limit).
	MaxPlies uint

	// SuppressDuplicates drops lines whose final position was already
	// written. Move counters are ignored unless DuplicatesMatchCounters.
	SuppressDuplicates      bool
	DuplicatesMatchCounters bool
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{Workers: 1}
}

// Validate checks that the batch configuration is valid.
func (b *BatchConfig) Validate() error {
	if b.Workers < 0 {
		return fmt.Errorf("worker count (%d) is negative: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.BufferSize < 0 {
		return fmt.Errorf("buffer size (%d) is negative: %w", b.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
