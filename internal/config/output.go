package config

// OutputConfig holds settings related to the analysis report.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowBoard includes a diagram of the position
	ShowBoard bool

	// ListMoves includes the legal moves of the side to move
	ListMoves bool

	// BestMove runs a search and includes its result
	BestMove bool

	// Square restricts the move listing to the piece on this square
	Square string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ListMoves: true,
		BestMove:  true,
	}
}
