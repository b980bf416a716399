package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies how positions are written (FEN, Board, JSON)
	Format OutputFormat

	// AllPlies writes every intermediate position, not just the last one
	AllPlies bool

	// IndentJSON pretty-prints JSON reports
	IndentJSON bool

	// ShowMoveNumbers prefixes each position with its ply and move text
	ShowMoveNumbers bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: FEN,
	}
}
