package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// ApplyMove plays a move given in coordinate notation for the side to move.
// Illegal or malformed moves return a *errors.MoveError and leave the
// position untouched.
func (e *Engine) ApplyMove(notation string) error {
	m, err := chess.ParseMove(notation)
	if err != nil {
		return e.moveError(notation, err)
	}
	return e.applyMove(m, false)
}

// ApplyMoves plays a sequence of moves. Either every move is applied or,
// on the first failure, none is; the error records the failing ply.
func (e *Engine) ApplyMoves(moves []string) error {
	work := e.Clone()
	for i, notation := range moves {
		if err := work.ApplyMove(notation); err != nil {
			var moveErr *errors.MoveError
			if errors.As(err, &moveErr) {
				moveErr.Ply = i + 1
			}
			return err
		}
	}
	e.pos = work.pos
	e.cache = engineCache{}
	return nil
}

// applyMove updates the position for m. Search passes skipLegality for
// moves it has just generated.
func (e *Engine) applyMove(m chess.Move, skipLegality bool) error {
	pos := e.pos
	piece := pos.PieceAt(m.From.File, m.From.Rank)
	if piece == chess.Empty {
		return e.moveError(m.String(), errors.Wrapf(errors.ErrIllegalMove, "no piece on %s", m.From))
	}
	if !skipLegality && !e.isLegal(m) {
		return e.moveError(m.String(), errors.ErrIllegalMove)
	}

	colour := chess.ExtractColour(piece)
	pieceType := chess.ExtractPiece(piece)
	m = normalizePromotion(m, piece)
	captured := pos.PieceAt(m.To.File, m.To.Rank)

	pos.MovePiece(m.From, m.To)

	switch pieceType {
	case chess.King:
		if abs(m.To.File-m.From.File) == 2 {
			applyCastleRook(pos, m.From, m.To)
		}
		pos.ClearCastling(chess.KingsideRight(colour) | chess.QueensideRight(colour))
	case chess.Rook:
		updateCastlingRightsForRook(pos, colour, m.From)
	case chess.Pawn:
		if isPromotion(piece, m.To.Rank) {
			promo := m.Promotion
			if promo == chess.Empty {
				promo = chess.MakeColouredPiece(colour, chess.Queen)
			}
			if err := pos.SetPieceAt(m.To.File, m.To.Rank, promo); err != nil {
				return e.moveError(m.String(), err)
			}
		}
	}
	if captured != chess.Empty && chess.ExtractPiece(captured) == chess.Rook {
		updateCastlingRightsForRook(pos, colour.Opposite(), m.To)
	}

	if pieceType == chess.Pawn || captured != chess.Empty {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	pos.EnPassant = "-"
	pos.AdvanceTurn()
	return nil
}

func (e *Engine) moveError(notation string, err error) error {
	return &errors.MoveError{
		Err:      err,
		MoveText: notation,
		FEN:      e.PositionNotation(),
	}
}
