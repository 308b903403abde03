package config

import "github.com/lgbarn/chess-engine-go/internal/errors"

// Search depth limits.
const (
	DefaultDepth = 2
	MinDepth     = 1
	MaxDepth     = 6
)

// SearchConfig holds settings for move search.
type SearchConfig struct {
	// Depth is the number of plies searched
	Depth int

	// Workers is the number of goroutines searching root moves (1 = sequential)
	Workers int

	// UseEvalCache enables the per-search evaluation cache
	UseEvalCache bool

	// Development adds the minor-piece development term to evaluation
	Development bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:        DefaultDepth,
		Workers:      1,
		UseEvalCache: true,
	}
}

// Validate checks that the search settings are within range.
func (c *SearchConfig) Validate() error {
	if c.Depth < MinDepth || c.Depth > MaxDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "depth %d not in %d..%d", c.Depth, MinDepth, MaxDepth)
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d must be at least 1", c.Workers)
	}
	return nil
}
