// chess-engine analyses a chess position: it reports the game state,
// the evaluation, the legal moves and the move an alpha-beta search picks.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/output"
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
		fmt.Printf("chess-engine-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "chess-engine: %v\n", err)
		os.Exit(1)
	}
}

// run validates cfg, analyses the position and writes the report.
func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := cfg.Logger()

	report, err := analyzePosition(cfg, log)
	if err != nil {
		log.Error().Err(err).Str("fen", cfg.FEN).Strs("moves", cfg.Moves).Msg("analysis failed")
		return err
	}

	w := output.NewReportWriter(cfg.OutputFile, cfg)
	if err := w.WriteReport(report); err != nil {
		return err
	}
	return w.Close()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-engine [options]\n\n")
	fmt.Fprintf(os.Stderr, "Analyses a chess position and searches for the best move.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -moves \"e2e4 e7e5 g1f3\" -depth 3\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -fen \"7k/8/8/8/8/8/8/R6K w - - 0 1\" -square a1 -board\n")
}
