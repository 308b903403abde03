package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// LegalMovesFrom returns the legal destinations of the piece on (file, rank):
// target square names, with a promotion letter appended for pawns reaching
// the last rank. An empty square has no moves. The side to move is not
// consulted.
func (e *Engine) LegalMovesFrom(file, rank int) ([]string, error) {
	if err := checkSquare(file, rank); err != nil {
		return nil, err
	}
	return validMovesFrom(e.pos, chess.Sq(file, rank)), nil
}

// LegalMovesFor is LegalMovesFrom addressed by square name.
func (e *Engine) LegalMovesFor(square string) ([]string, error) {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		return nil, err
	}
	return validMovesFrom(e.pos, sq), nil
}

// LegalMovesForSide returns every legal move of the given colour in full
// notation ("e2e4", "a7a8Q"), scanning the board file by file.
func (e *Engine) LegalMovesForSide(colour chess.Colour) []string {
	return slices.Clone(e.legalMoves(colour))
}

// legalMoves returns the cached move list for colour. Callers must not
// modify it.
func (e *Engine) legalMoves(colour chess.Colour) []string {
	c := e.caches()
	if c.hasMoves[colour] {
		return c.moves[colour]
	}

	var moves []string
	for file := chess.FirstFile; file <= chess.LastFile; file++ {
		for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
			piece := e.pos.PieceAt(file, rank)
			if piece == chess.Empty || chess.ExtractColour(piece) != colour {
				continue
			}
			from := chess.Sq(file, rank)
			for _, dest := range validMovesFrom(e.pos, from) {
				moves = append(moves, from.String()+dest)
			}
		}
	}

	c.moves[colour] = moves
	c.hasMoves[colour] = true
	return moves
}

// HasLegalMoves reports whether the given colour has at least one legal move.
func (e *Engine) HasLegalMoves(colour chess.Colour) bool {
	return len(e.legalMoves(colour)) > 0
}

// IsLegalMove reports whether notation names a legal move for the side to
// move. Malformed notation is simply not legal. The promotion letter may be
// given in either case.
func (e *Engine) IsLegalMove(notation string) bool {
	m, err := chess.ParseMove(notation)
	if err != nil {
		return false
	}
	return e.isLegal(m)
}

func (e *Engine) isLegal(m chess.Move) bool {
	piece := e.pos.PieceAt(m.From.File, m.From.Rank)
	if piece == chess.Empty || chess.ExtractColour(piece) != e.pos.ToMove {
		return false
	}
	m = normalizePromotion(m, piece)
	return slices.Contains(validMovesFrom(e.pos, m.From), m.Destination())
}

// normalizePromotion writes the promotion letter in the mover's case.
func normalizePromotion(m chess.Move, piece chess.Piece) chess.Move {
	if m.Promotion != chess.Empty {
		m.Promotion = chess.MakeColouredPiece(chess.ExtractColour(piece), m.Promotion)
	}
	return m
}

// validMovesFrom generates the legal destinations for the piece on from.
func validMovesFrom(pos *chess.Position, from chess.Square) []string {
	piece := pos.PieceAt(from.File, from.Rank)
	if piece == chess.Empty {
		return nil
	}
	colour := chess.ExtractColour(piece)
	pieceType := chess.ExtractPiece(piece)

	var result []string
	for _, to := range pos.CoveredSquaresFrom(from.File, from.Rank) {
		target := pos.PieceAt(to.File, to.Rank)
		if target != chess.Empty && chess.ExtractColour(target) == colour {
			continue
		}
		// Pawns only take diagonally
		if pieceType == chess.Pawn && target == chess.Empty {
			continue
		}
		if !leavesKingSafe(pos, from, to, colour) {
			continue
		}
		result = appendDestination(result, piece, to)
	}

	switch pieceType {
	case chess.Pawn:
		result = append(result, pawnAdvances(pos, from, colour)...)
	case chess.King:
		result = append(result, castlingDestinations(pos, from, colour)...)
	}
	return result
}
