// Package config provides configuration for the chess-engine command.
package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Config holds all program configuration.
type Config struct {
	// Embedded sub-configurations
	Search *SearchConfig
	Output *OutputConfig

	// Starting position and the moves to play from it
	FEN   string
	Moves []string

	Verbosity int // 0=warnings, 1=info, 2+=debug

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     NewSearchConfig(),
		Output:     NewOutputConfig(),
		FEN:        "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the log writer.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	return c.Search.Validate()
}

// LogLevel maps the verbosity to a zerolog level.
func (c *Config) LogLevel() zerolog.Level {
	switch {
	case c.Verbosity <= 0:
		return zerolog.WarnLevel
	case c.Verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// Logger builds a logger writing to LogFile at the configured level.
func (c *Config) Logger() zerolog.Logger {
	w := c.LogFile
	if w == nil {
		w = io.Discard
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(c.LogLevel()).
		With().
		Timestamp().
		Logger()
}
