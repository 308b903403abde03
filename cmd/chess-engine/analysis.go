package main

import (
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/output"
)

// engineOptions translates the search configuration into engine options.
func engineOptions(cfg *config.Config, log zerolog.Logger) []engine.Option {
	return []engine.Option{
		engine.WithDepth(cfg.Search.Depth),
		engine.WithWorkers(cfg.Search.Workers),
		engine.WithEvalCache(cfg.Search.UseEvalCache),
		engine.WithDevelopment(cfg.Search.Development),
		engine.WithLogger(log),
	}
}

// analyzePosition sets up the configured position, plays the configured
// moves and builds a report on the result.
func analyzePosition(cfg *config.Config, log zerolog.Logger) (*output.Report, error) {
	e, err := engine.NewFromFEN(cfg.FEN, engineOptions(cfg, log)...)
	if err != nil {
		return nil, err
	}
	if len(cfg.Moves) > 0 {
		if err := e.ApplyMoves(cfg.Moves); err != nil {
			return nil, err
		}
		log.Info().Int("plies", len(cfg.Moves)).Str("fen", e.PositionNotation()).Msg("moves applied")
	}

	side := e.SideToMove()
	status, err := e.Status(side)
	if err != nil {
		return nil, err
	}
	eval, err := e.Evaluate()
	if err != nil {
		return nil, err
	}

	r := &output.Report{
		FEN:        e.PositionNotation(),
		Position:   e.Position(),
		SideToMove: side,
		Status:     status,
		Evaluation: eval,
		Material:   [2]engine.Score{e.MaterialValue(chess.White), e.MaterialValue(chess.Black)},
		Mobility:   [2]engine.Score{e.MobilityValue(chess.White), e.MobilityValue(chess.Black)},
	}

	switch {
	case cfg.Output.Square != "":
		r.Square = cfg.Output.Square
		if r.Moves, err = e.LegalMovesFor(cfg.Output.Square); err != nil {
			return nil, err
		}
	case cfg.Output.ListMoves:
		r.Moves = e.LegalMovesForSide(side)
	}

	if cfg.Output.BestMove {
		if r.Search, err = e.Search(side); err != nil {
			return nil, err
		}
		log.Info().Str("search_id", r.Search.ID).Str("move", r.Search.Move).Msg("best move")
	}
	return r, nil
}
