package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestApplyMove(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{
			name:  "king's pawn",
			fen:   InitialFEN,
			moves: []string{"e2e4"},
			want:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		},
		{
			name:  "sicilian with knight out",
			fen:   InitialFEN,
			moves: []string{"e2e4", "c7c5", "g1f3"},
			want:  "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		},
		{
			name:  "white castles kingside",
			fen:   testutil.CastlingFEN,
			moves: []string{"e1g1"},
			want:  "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name:  "black castles queenside",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			moves: []string{"e8c8"},
			want:  "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name:  "queenside castle past a knight on b1",
			fen:   "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1",
			moves: []string{"e1c1"},
			want:  "r3k2r/8/8/8/8/8/8/1NKR3R b kq - 1 1",
		},
		{
			name:  "rook move drops its right",
			fen:   testutil.CastlingFEN,
			moves: []string{"h1h2"},
			want:  "r3k2r/8/8/8/8/8/7R/R3K3 b Qkq - 1 1",
		},
		{
			name:  "king move drops both rights",
			fen:   testutil.CastlingFEN,
			moves: []string{"e1e2"},
			want:  "r3k2r/8/8/8/8/8/4K3/R6R b kq - 1 1",
		},
		{
			name:  "capturing a rook drops the opponent's right",
			fen:   testutil.CastlingFEN,
			moves: []string{"a1a8"},
			want:  "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:  "promotion to knight",
			fen:   "4k3/P7/8/8/8/8/8/4K3 w - - 5 40",
			moves: []string{"a7a8N"},
			want:  "N3k3/8/8/8/8/8/8/4K3 b - - 0 40",
		},
		{
			name:  "promotion letter takes the mover's colour",
			fen:   "4k3/8/8/8/8/8/p7/4K3 b - - 0 40",
			moves: []string{"a2a1R"},
			want:  "4k3/8/8/8/8/8/8/r3K3 w - - 0 41",
		},
		{
			name:  "en passant field cleared",
			fen:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			moves: []string{"g8f6"},
			want:  "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustEngine(t, tt.fen)
			for _, m := range tt.moves {
				if err := e.ApplyMove(m); err != nil {
					t.Fatalf("ApplyMove(%q): %v", m, err)
				}
			}
			testutil.AssertEqual(t, e.PositionNotation(), tt.want)
		})
	}
}

func TestApplyMove_Placement(t *testing.T) {
	e := mustEngine(t, InitialFEN)
	testutil.AssertNoError(t, e.ApplyMove("e2e4"))
	testutil.AssertEqual(t, e.Placement(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR")
	testutil.AssertEqual(t, e.SideToMove(), chess.Black)
}

func TestApplyMove_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		notation string
		target   error
	}{
		{"illegal destination", InitialFEN, "e2e5", errors.ErrIllegalMove},
		{"empty square", InitialFEN, "e4e5", errors.ErrIllegalMove},
		{"opponent's piece", InitialFEN, "e7e5", errors.ErrIllegalMove},
		{"pinned piece", "8/8/8/8/p7/1r6/1Q6/1K6 w - - 0 1", "b2c2", errors.ErrIllegalMove},
		{"castle through check", "r3k2r/8/8/5r2/8/8/8/R3K2R w KQkq - 0 1", "e1g1", errors.ErrIllegalMove},
		{"too short", InitialFEN, "e2", errors.ErrMalformedNotation},
		{"bad promotion letter", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8K", errors.ErrMalformedNotation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustEngine(t, tt.fen)
			before := e.PositionNotation()

			err := e.ApplyMove(tt.notation)
			testutil.AssertErrorIs(t, err, tt.target)

			var moveErr *errors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("error %v is not a *MoveError", err)
			}
			testutil.AssertEqual(t, moveErr.MoveText, tt.notation)
			testutil.AssertEqual(t, moveErr.FEN, before)
			testutil.AssertEqual(t, e.PositionNotation(), before)
		})
	}
}

func TestApplyMoves(t *testing.T) {
	e := mustEngine(t, InitialFEN)
	testutil.AssertNoError(t, e.ApplyMoves([]string{"f2f3", "e7e5", "g2g4", "d8h4"}))
	testutil.AssertEqual(t, e.PositionNotation(), testutil.FoolsMateFEN)

	mated, err := e.InCheckmate(chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, mated, "white should be mated")
}

func TestApplyMoves_AllOrNothing(t *testing.T) {
	e := mustEngine(t, InitialFEN)
	moves := e.LegalMovesForSide(chess.White)

	err := e.ApplyMoves([]string{"e2e4", "e7e5", "e1e3", "g8f6"})
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)

	var moveErr *errors.MoveError
	if !errors.As(err, &moveErr) {
		t.Fatalf("error %v is not a *MoveError", err)
	}
	testutil.AssertEqual(t, moveErr.Ply, 3)
	testutil.AssertEqual(t, moveErr.MoveText, "e1e3")
	testutil.AssertEqual(t, moveErr.FEN, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")

	testutil.AssertEqual(t, e.PositionNotation(), InitialFEN)
	testutil.AssertEqual(t, e.LegalMovesForSide(chess.White), moves)
}

func TestApplyMoves_Empty(t *testing.T) {
	e := mustEngine(t, testutil.CastlingFEN)
	testutil.AssertNoError(t, e.ApplyMoves(nil))
	testutil.AssertEqual(t, e.PositionNotation(), testutil.CastlingFEN)
}
