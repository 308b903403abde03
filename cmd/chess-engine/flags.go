// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Position options
	fenString = flag.String("fen", "", "Starting position in FEN (default: the initial position)")
	moveList  = flag.String("moves", "", "Moves to play first, in coordinate notation (e.g. \"e2e4 e7e5\")")

	// Search options
	depth       = flag.Int("depth", config.DefaultDepth, "Search depth in plies (1-6)")
	workers     = flag.Int("workers", 1, "Number of goroutines searching root moves")
	noCache     = flag.Bool("nocache", false, "Disable the per-search evaluation cache")
	development = flag.Bool("development", false, "Reward developing knights and bishops in evaluation")

	// Report options
	bestMove   = flag.Bool("best", true, "Search for and report the best move")
	listMoves  = flag.Bool("list", true, "List the legal moves of the side to move")
	square     = flag.String("square", "", "List only the legal moves of the piece on this square")
	showBoard  = flag.Bool("board", false, "Print a diagram of the position")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to log file (default: stderr)")
	verbosity  = flag.Int("v", 0, "Log verbosity: 0=warnings, 1=info, 2=debug")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applySearchFlags(cfg)
	applyReportFlags(cfg)
	cfg.Verbosity = *verbosity
}

// applyPositionFlags sets the starting position and move list.
func applyPositionFlags(cfg *config.Config) {
	if *fenString != "" {
		cfg.FEN = *fenString
	}
	cfg.Moves = parseMoveList(*moveList)
}

// applySearchFlags configures the search.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.Workers = *workers
	cfg.Search.UseEvalCache = !*noCache
	cfg.Search.Development = *development
}

// applyReportFlags configures what the report contains.
func applyReportFlags(cfg *config.Config) {
	cfg.Output.BestMove = *bestMove
	cfg.Output.ListMoves = *listMoves
	cfg.Output.Square = strings.ToLower(strings.TrimSpace(*square))
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.JSONFormat = *jsonOutput
}

// parseMoveList splits a move list on spaces and commas.
func parseMoveList(s string) []string {
	moves := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	if len(moves) == 0 {
		return nil
	}
	return moves
}
