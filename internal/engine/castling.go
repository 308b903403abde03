package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// castleSide describes one castling direction relative to the king.
type castleSide struct {
	dir      int // +1 kingside, -1 queenside
	rookDist int // files from the king to the rook
}

var (
	kingside  = castleSide{dir: 1, rookDist: 3}
	queenside = castleSide{dir: -1, rookDist: 4}
)

func (s castleSide) right(colour chess.Colour) chess.CastlingRights {
	if s.dir > 0 {
		return chess.KingsideRight(colour)
	}
	return chess.QueensideRight(colour)
}

// castlingDestinations returns the king destinations reachable by castling
// from the king on from. The king must be on its home rank and not in check,
// the right must be held and the rook must stand on its corner. The two
// squares next to the king on that side must be empty and not attacked; on
// the queenside the b-file square is not examined.
func castlingDestinations(pos *chess.Position, from chess.Square, colour chess.Colour) []string {
	if from.Rank != chess.HomeRank(colour) {
		return nil
	}
	enemy := colour.Opposite()
	if pos.IsSquareAttackedBy(from, enemy) {
		return nil
	}

	var result []string
	for _, side := range []castleSide{kingside, queenside} {
		if canCastle(pos, from, colour, side) {
			result = append(result, from.Offset(2*side.dir, 0).String())
		}
	}
	return result
}

func canCastle(pos *chess.Position, from chess.Square, colour chess.Colour, side castleSide) bool {
	if !pos.Castling.Has(side.right(colour)) {
		return false
	}
	rook := from.Offset(side.rookDist*side.dir, 0)
	if !rook.Valid() || pos.PieceAt(rook.File, rook.Rank) != chess.MakeColouredPiece(colour, chess.Rook) {
		return false
	}
	enemy := colour.Opposite()
	for step := 1; step <= 2; step++ {
		sq := from.Offset(step*side.dir, 0)
		if pos.HasPieceAt(sq.File, sq.Rank) || pos.IsSquareAttackedBy(sq, enemy) {
			return false
		}
	}
	return true
}

// applyCastleRook moves the rook that accompanies a castling king from
// kingFrom to kingTo.
func applyCastleRook(pos *chess.Position, kingFrom, kingTo chess.Square) {
	side := queenside
	if kingTo.File > kingFrom.File {
		side = kingside
	}
	rookFrom := kingFrom.Offset(side.rookDist*side.dir, 0)
	rookTo := kingTo.Offset(-side.dir, 0)
	pos.MovePiece(rookFrom, rookTo)
}

// updateCastlingRightsForRook clears the right tied to a rook's home corner
// when a rook of the given colour leaves it or is captured on it.
func updateCastlingRightsForRook(pos *chess.Position, colour chess.Colour, sq chess.Square) {
	if sq.Rank != chess.HomeRank(colour) {
		return
	}
	switch sq.File {
	case chess.LastFile:
		pos.ClearCastling(chess.KingsideRight(colour))
	case chess.FirstFile:
		pos.ClearCastling(chess.QueensideRight(colour))
	}
}
