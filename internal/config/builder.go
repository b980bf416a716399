package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the default start position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithAllPlies writes every intermediate position.
func (b *ConfigBuilder) WithAllPlies(enabled bool) *ConfigBuilder {
	b.cfg.Output.AllPlies = enabled
	return b
}

// WithIndentedJSON enables pretty-printed JSON reports.
func (b *ConfigBuilder) WithIndentedJSON(enabled bool) *ConfigBuilder {
	b.cfg.Output.IndentJSON = enabled
	return b
}

// WithWorkers sets the number of replay goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Batch.Workers = n
	return b
}

// WithStopOnError ends the run at the first failing line.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.Batch.StopOnError = enabled
	return b
}

// WithMaxPlies caps the moves replayed per line.
func (b *ConfigBuilder) WithMaxPlies(n uint) *ConfigBuilder {
	b.cfg.Batch.MaxPlies = n
	return b
}

// WithSuppressDuplicates drops lines ending in an already written position.
func (b *ConfigBuilder) WithSuppressDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.Batch.SuppressDuplicates = enabled
	return b
}

// WithCandidatesFrom enables the candidate target query for a square.
func (b *ConfigBuilder) WithCandidatesFrom(square string) *ConfigBuilder {
	b.cfg.Query.CandidatesFrom = square
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
