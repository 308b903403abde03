package engine

import (
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

// Positions without an en passant target, which the generator does not
// interpret.
var oracleFENs = []string{
	InitialFEN,
	testutil.KiwipeteNoCastleFEN,
	testutil.RookPawnEndgameFEN,
	testutil.PromotionCheckFEN,
	testutil.CastlingFEN,
	"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
	"r3k2r/8/8/5r2/8/8/8/R3K2R w KQkq - 0 1",
	"8/8/8/8/1k6/2q5/PK6/1R6 w - - 0 1",
	"4k3/8/8/8/8/8/p7/4K3 b - - 0 1",
	"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
}

func TestLegalMoves_AgreeWithDragontooth(t *testing.T) {
	for _, fen := range oracleFENs {
		t.Run(fen, func(t *testing.T) {
			e := mustEngine(t, fen)
			var got []string
			for _, m := range e.LegalMovesForSide(e.SideToMove()) {
				got = append(got, strings.ToLower(m))
			}

			board := dragontoothmg.ParseFen(fen)
			var want []string
			for _, m := range board.GenerateLegalMoves() {
				mv := m
				want = append(want, mv.String())
			}

			testutil.AssertSameMoves(t, got, want)
		})
	}
}

func TestApplyMoves_AgreesWithNotnil(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
	}{
		{"sicilian", InitialFEN, []string{"e2e4", "c7c5", "g1f3"}},
		{"both castle short", InitialFEN, []string{"e2e4", "e7e5", "g1f3", "g8f6", "f1c4", "f8c5", "e1g1", "e8g8"}},
		{"queenside castle", InitialFEN, []string{"d2d4", "d7d5", "b1c3", "b8c6", "c1f4", "c8f5", "d1d2", "d8d7", "e1c1", "e8c8"}},
		{"rook trade on the corner", testutil.CastlingFEN, []string{"a1a8", "e8e7", "a8h8"}},
		{"promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", []string{"a7a8q", "e8d7", "a8b8"}},
		{"underpromotion", "4k3/8/8/8/8/8/p7/4K3 b - - 0 1", []string{"a2a1n", "e1d2"}},
		{"fool's mate", InitialFEN, []string{"f2f3", "e7e5", "g2g4", "d8h4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustEngine(t, tt.fen)
			if err := e.ApplyMoves(tt.moves); err != nil {
				t.Fatalf("ApplyMoves: %v", err)
			}

			opt, err := nchess.FEN(tt.fen)
			if err != nil {
				t.Fatalf("notnil FEN: %v", err)
			}
			game := nchess.NewGame(opt, nchess.UseNotation(nchess.UCINotation{}))
			for _, m := range tt.moves {
				if err := game.MoveStr(m); err != nil {
					t.Fatalf("notnil move %s: %v", m, err)
				}
			}

			testutil.AssertEqual(t, e.Placement(), game.Position().Board().String())
		})
	}
}
