package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// pawnAdvances returns the non-capturing moves of the pawn on from: one
// square forward onto an empty square, and two from the starting rank when
// both squares are empty.
func pawnAdvances(pos *chess.Position, from chess.Square, colour chess.Colour) []string {
	dir := chess.ColourOffset(colour)
	one := from.Offset(0, dir)
	if !one.Valid() || pos.HasPieceAt(one.File, one.Rank) {
		return nil
	}

	var result []string
	pawn := chess.MakeColouredPiece(colour, chess.Pawn)
	if leavesKingSafe(pos, from, one, colour) {
		result = appendDestination(result, pawn, one)
	}

	if from.Rank == chess.PawnStartRank(colour) {
		two := from.Offset(0, 2*dir)
		if !pos.HasPieceAt(two.File, two.Rank) && leavesKingSafe(pos, from, two, colour) {
			result = append(result, two.String())
		}
	}
	return result
}

// appendDestination adds the destination to, expanded into the four
// promotion choices when a pawn reaches its last rank.
func appendDestination(result []string, piece chess.Piece, to chess.Square) []string {
	if !isPromotion(piece, to.Rank) {
		return append(result, to.String())
	}
	colour := chess.ExtractColour(piece)
	for _, promo := range chess.PromotionPieces {
		result = append(result, to.String()+string(byte(chess.MakeColouredPiece(colour, promo))))
	}
	return result
}

// isPromotion reports whether moving piece to the given rank promotes it.
func isPromotion(piece chess.Piece, rank int) bool {
	return chess.ExtractPiece(piece) == chess.Pawn && rank == chess.PromotionRank(chess.ExtractColour(piece))
}
