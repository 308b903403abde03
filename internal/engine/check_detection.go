package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InCheck reports whether the king of the given colour is attacked.
// It returns ErrMissingKing if that king is not on the board.
func (e *Engine) InCheck(colour chess.Colour) (bool, error) {
	return kingInCheck(e.pos, colour)
}

func kingInCheck(pos *chess.Position, colour chess.Colour) (bool, error) {
	king, ok := pos.FindKing(colour)
	if !ok {
		return false, errors.Wrapf(errors.ErrMissingKing, "%s king", colour)
	}
	return pos.IsSquareAttackedBy(king, colour.Opposite()), nil
}

// leavesKingSafe reports whether moving the piece on from to to keeps the
// mover's king out of check. The move is tried on a copy of the position.
// A side without a king is never in check here.
func leavesKingSafe(pos *chess.Position, from, to chess.Square, colour chess.Colour) bool {
	test := pos.Copy()
	test.MovePiece(from, to)

	king, ok := test.FindKing(colour)
	if !ok {
		return true
	}
	return !test.IsSquareAttackedBy(king, colour.Opposite())
}
