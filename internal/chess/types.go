// Package chess provides core chess types and the board position.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the notation letter for a colour ('w' or 'b').
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Piece is a single-character piece code: uppercase for White, lowercase
// for Black. Empty and Off are the only non-letter values.
type Piece byte

const (
	Empty Piece = 0
	Off   Piece = '#' // Off the board (hedge square)

	Pawn   Piece = 'P'
	Knight Piece = 'N'
	Bishop Piece = 'B'
	Rook   Piece = 'R'
	Queen  Piece = 'Q'
	King   Piece = 'K'
)

// PromotionPieces lists the promotion choices in generation order.
var PromotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece.
func (p Piece) String() string {
	switch p {
	case Empty:
		return "Empty"
	case Off:
		return "Off"
	}
	if !IsValidPiece(p) {
		return "Unknown"
	}
	return fmt.Sprintf("%s %s", ExtractColour(p), pieceNames[ExtractPiece(p)])
}

var pieceNames = map[Piece]string{
	Pawn:   "Pawn",
	Knight: "Knight",
	Bishop: "Bishop",
	Rook:   "Rook",
	Queen:  "Queen",
	King:   "King",
}

// IsValidPiece reports whether p is one of the twelve recognised codes.
func IsValidPiece(p Piece) bool {
	_, ok := pieceNames[ExtractPiece(p)]
	return ok
}

// ParsePiece validates a piece letter.
func ParsePiece(c byte) (Piece, error) {
	p := Piece(c)
	if !IsValidPiece(p) {
		return Empty, errors.Wrapf(errors.ErrInvalidPiece, "piece code %q", c)
	}
	return p, nil
}

// MakeColouredPiece creates a coloured piece from an uppercase piece kind.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	piece = ExtractPiece(piece)
	if colour == Black {
		return piece + ('a' - 'A')
	}
	return piece
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	if colouredPiece >= 'a' && colouredPiece <= 'z' {
		return Black
	}
	return White
}

// ExtractPiece extracts the uppercase piece kind from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	if colouredPiece >= 'a' && colouredPiece <= 'z' {
		return colouredPiece - ('a' - 'A')
	}
	return colouredPiece
}

// CastlingRights is a set of the four independent castling flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every flag in r is set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// String renders the rights in notation order, or "-" when empty.
func (c CastlingRights) String() string {
	var out []byte
	for _, f := range []struct {
		flag   CastlingRights
		letter byte
	}{
		{WhiteKingside, 'K'},
		{WhiteQueenside, 'Q'},
		{BlackKingside, 'k'},
		{BlackQueenside, 'q'},
	} {
		if c.Has(f.flag) {
			out = append(out, f.letter)
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}

// KingsideRight returns the kingside flag for a colour.
func KingsideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside flag for a colour.
func QueensideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	Hedge     = 2 // Hedge size for knight move calculations

	FirstFile = 1
	LastFile  = BoardSize
	FirstRank = 1
	LastRank  = BoardSize
)

// OnBoard reports whether file and rank are both within 1..8.
func OnBoard(file, rank int) bool {
	return file >= FirstFile && file <= LastFile && rank >= FirstRank && rank <= LastRank
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank a colour starts on.
func HomeRank(colour Colour) int {
	if colour == White {
		return FirstRank
	}
	return LastRank
}

// PawnStartRank returns the rank a colour's pawns may double-step from.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 2
	}
	return 7
}

// PromotionRank returns the rank on which a colour's pawns promote.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}
