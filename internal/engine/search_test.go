package engine

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

// Best-move positions. Every move that does not win the material in
// question loses by a wide margin.
var bestMoveTests = []struct {
	name   string
	fen    string
	colour chess.Colour
	depth  int
	want   string
	mate   bool
}{
	{"queen mates on the h-file", "k4q2/6r1/8/8/8/8/7K/8 b - - 0 1", chess.Black, 2, "f8h8", true},
	{"pawn takes rook", "q6k/5p2/6R1/8/8/8/8/1K6 b - - 0 1", chess.Black, 2, "f7g6", false},
	{"rook takes queen", "k7/6p1/q5R1/8/8/8/8/7K w - - 0 1", chess.White, 2, "g6a6", false},
	{"greedy capture at one ply", "7k/2p5/3r4/8/8/8/7K/n2R4 w - - 0 1", chess.White, 1, "d1d6", false},
	{"defended rook refused at two plies", "7k/2p5/3r4/8/8/8/7K/n2R4 w - - 0 1", chess.White, 2, "d1a1", false},
	{"fool's mate", "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2", chess.Black, 1, "d8h4", true},
}

func TestSearch_BestMove(t *testing.T) {
	for _, tt := range bestMoveTests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustEngine(t, tt.fen, WithDepth(tt.depth))
			res, err := e.Search(tt.colour)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, res.Move, tt.want)
			testutil.AssertEqual(t, res.Mate, tt.mate)
			testutil.AssertEqual(t, res.Depth, tt.depth)
			testutil.AssertEqual(t, res.Side, tt.colour)
			if tt.mate {
				testutil.AssertEqual(t, res.Score, mateScore(tt.colour))
			}
			testutil.AssertTrue(t, res.Nodes > 0, "nodes counted")
		})
	}
}

func TestSearch_ParallelMatchesSequential(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth int
	}{
		{"start", InitialFEN, 2},
		{"kiwipete", testutil.KiwipeteNoCastleFEN, 1},
		{"rook ending", testutil.RookPawnEndgameFEN, 2},
	}
	for _, tt := range bestMoveTests {
		cases = append(cases, struct {
			name  string
			fen   string
			depth int
		}{tt.name, tt.fen, tt.depth})
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			seq := mustEngine(t, tt.fen, WithDepth(tt.depth))
			par := mustEngine(t, tt.fen, WithDepth(tt.depth), WithWorkers(4))
			side := seq.SideToMove()

			want, err := seq.Search(side)
			testutil.AssertNoError(t, err)
			got, err := par.Search(side)
			testutil.AssertNoError(t, err)

			testutil.AssertEqual(t, got.Move, want.Move)
			testutil.AssertEqual(t, got.Score, want.Score)
			testutil.AssertEqual(t, got.Mate, want.Mate)
		})
	}
}

func TestSearch_ColourNotToMove(t *testing.T) {
	e := mustEngine(t, "k4q2/6r1/8/8/8/8/7K/8 w - - 0 1")
	before := e.PositionNotation()

	move, err := e.BestMove(chess.Black)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, move, "f8h8")
	testutil.AssertEqual(t, e.PositionNotation(), before)
	testutil.AssertEqual(t, e.SideToMove(), chess.White)
}

func TestSearch_NoLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		score  Score
	}{
		{"stalemated", testutil.StalemateFEN, chess.Black, 0},
		{"checkmated", testutil.FoolsMateFEN, chess.White, -Mate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustEngine(t, tt.fen, WithWorkers(4))
			res, err := e.Search(tt.colour)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, res.Move, "")
			testutil.AssertEqual(t, res.Score, tt.score)
			testutil.AssertEqual(t, res.Nodes, uint64(1))

			move, err := e.BestMove(tt.colour)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, move, "")
		})
	}
}

func TestSearch_RejectsBadRoot(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		target error
	}{
		{"no kings", "5q2/6r1/8/8/8/8/8/8 b - - 0 1", chess.Black, errors.ErrMissingKing},
		{"no white king", "k4q2/6r1/8/8/8/8/8/8 b - - 0 1", chess.Black, errors.ErrMissingKing},
		{"opponent already in check", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1", chess.White, errors.ErrIllegalPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustEngine(t, tt.fen)
			_, err := e.Search(tt.colour)
			testutil.AssertErrorIs(t, err, tt.target)
		})
	}

	// The side in check may still search for a way out.
	e := mustEngine(t, "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1")
	_, err := e.Search(chess.Black)
	testutil.AssertNoError(t, err)
}

func TestSearch_EvalCache(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	cached := mustEngine(t, fen, WithDepth(3))
	uncached := mustEngine(t, fen, WithDepth(3), WithEvalCache(false))

	withCache, err := cached.Search(chess.White)
	testutil.AssertNoError(t, err)
	without, err := uncached.Search(chess.White)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, withCache.Move, without.Move)
	testutil.AssertEqual(t, withCache.Score, without.Score)
	testutil.AssertTrue(t, withCache.CacheHits > 0, "king moves transpose within three plies")
	testutil.AssertEqual(t, without.CacheHits, uint64(0))

	// Every miss stores a new entry.
	testutil.AssertTrue(t, withCache.CacheMisses > 0, "first visits miss")
	testutil.AssertEqual(t, withCache.CacheEntries, int(withCache.CacheMisses))
	testutil.AssertEqual(t, without.CacheMisses, uint64(0))
	testutil.AssertEqual(t, without.CacheEntries, 0)
}

func TestSearch_NodeCount(t *testing.T) {
	// The white king on a1 has three moves and none of them is answered
	// at depth 1, so the root and its three successors are counted.
	fen := "7k/8/8/8/8/8/8/K7 w - - 0 1"
	for _, workers := range []int{1, 4} {
		e := mustEngine(t, fen, WithDepth(1), WithWorkers(workers))
		res, err := e.Search(chess.White)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, res.Nodes, uint64(4), "workers=%d", workers)
	}
}

func TestAlphabeta_TerminalNodeCountedOnce(t *testing.T) {
	e := mustEngine(t, testutil.StalemateFEN)
	s := &searchContext{}

	val, err := s.alphabeta(e, 3, -Infinity, Infinity)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, val, Score(0))
	testutil.AssertEqual(t, s.nodes, uint64(0), "no successors are built")
}

func TestSearch_IDs(t *testing.T) {
	e := mustEngine(t, InitialFEN, WithDepth(1))
	first, err := e.Search(chess.White)
	testutil.AssertNoError(t, err)
	second, err := e.Search(chess.White)
	testutil.AssertNoError(t, err)

	_, err = uuid.Parse(first.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, first.ID != second.ID, "each search gets its own id")
}

func TestSearch_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	e := mustEngine(t, "k4q2/6r1/8/8/8/8/7K/8 b - - 0 1", WithLogger(logger))
	res, err := e.Search(chess.Black)
	testutil.AssertNoError(t, err)

	out := buf.String()
	testutil.AssertContains(t, out, `"message":"search complete"`)
	testutil.AssertContains(t, out, `"move":"f8h8"`)
	testutil.AssertContains(t, out, `"mate":true`)
	testutil.AssertContains(t, out, `"search_id":"`+res.ID+`"`)
}

func TestWithDepth(t *testing.T) {
	tests := []struct {
		depth int
		want  int
	}{
		{0, DefaultDepth},
		{-1, DefaultDepth},
		{1, 1},
		{4, 4},
		{MaxDepth, MaxDepth},
		{MaxDepth + 1, DefaultDepth},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, New(WithDepth(tt.depth)).Depth(), tt.want, "WithDepth(%d)", tt.depth)
	}
}
