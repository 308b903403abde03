package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// GameStatus classifies a side's situation.
type GameStatus int

const (
	Normal GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the lowercase name of the status.
func (s GameStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "normal"
	}
}

// InCheckmate reports whether the given colour is in check with no legal moves.
func (e *Engine) InCheckmate(colour chess.Colour) (bool, error) {
	status, err := e.Status(colour)
	return status == Checkmate, err
}

// InStalemate reports whether the given colour is not in check but has no
// legal moves.
func (e *Engine) InStalemate(colour chess.Colour) (bool, error) {
	status, err := e.Status(colour)
	return status == Stalemate, err
}

// Status returns exactly one of Normal, Check, Checkmate or Stalemate for
// the given colour.
func (e *Engine) Status(colour chess.Colour) (GameStatus, error) {
	inCheck, err := e.InCheck(colour)
	if err != nil {
		return Normal, err
	}
	hasMoves := e.HasLegalMoves(colour)
	switch {
	case inCheck && !hasMoves:
		return Checkmate, nil
	case inCheck:
		return Check, nil
	case !hasMoves:
		return Stalemate, nil
	}
	return Normal, nil
}
