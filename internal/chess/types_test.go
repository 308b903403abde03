package chess

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestColouredPieces(t *testing.T) {
	for _, kind := range []Piece{Pawn, Knight, Bishop, Rook, Queen, King} {
		white, black := W(kind), B(kind)
		testutil.AssertEqual(t, white, kind)
		testutil.AssertEqual(t, ExtractColour(white), White)
		testutil.AssertEqual(t, ExtractColour(black), Black)
		testutil.AssertEqual(t, ExtractPiece(black), kind)
		testutil.AssertEqual(t, MakeColouredPiece(Black, black), black)
		testutil.AssertTrue(t, IsValidPiece(black))
	}
	testutil.AssertEqual(t, B(Queen), Piece('q'))
	testutil.AssertEqual(t, B(Queen).String(), "Black Queen")
	testutil.AssertFalse(t, IsValidPiece(Off))
	testutil.AssertEqual(t, Piece('x').String(), "Unknown")
}

func TestParsePiece(t *testing.T) {
	for _, c := range []byte("KQRBNPkqrbnp") {
		p, err := ParsePiece(c)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, byte(p), c)
	}
	for _, c := range []byte("xX1 #") {
		_, err := ParsePiece(c)
		testutil.AssertErrorIs(t, err, errors.ErrInvalidPiece, "ParsePiece(%q)", c)
	}
}

func TestColour(t *testing.T) {
	testutil.AssertEqual(t, White.Opposite(), Black)
	testutil.AssertEqual(t, Black.Opposite(), White)
	testutil.AssertEqual(t, White.String(), "White")
	testutil.AssertEqual(t, Black.Letter(), byte('b'))
	testutil.AssertEqual(t, HomeRank(Black), 8)
	testutil.AssertEqual(t, PawnStartRank(Black), 7)
	testutil.AssertEqual(t, PromotionRank(White), 8)
	testutil.AssertEqual(t, ColourOffset(Black), -1)
}

func TestCastlingRights(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{NoCastling, "-"},
		{AllCastling, "KQkq"},
		{WhiteKingside | BlackQueenside, "Kq"},
		{KingsideRight(Black) | QueensideRight(White), "Qk"},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, tt.rights.String(), tt.want)
	}

	r := AllCastling
	r &^= KingsideRight(White) | QueensideRight(White)
	testutil.AssertEqual(t, r.String(), "kq")
	testutil.AssertTrue(t, r.Has(BlackKingside|BlackQueenside))
	testutil.AssertFalse(t, r.Has(WhiteKingside|BlackKingside))
}
