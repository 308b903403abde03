package testutil

// Positions shared by tests. Well-known perft positions keep their usual
// names.
const (
	StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// Kiwipete without castling rights, so every generator agrees on it.
	KiwipeteNoCastleFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1"

	// Perft position 3: a rook and pawn ending with pins along the fifth rank.
	RookPawnEndgameFEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	// Perft position 4 with White to move and in check from the b6 bishop.
	PromotionCheckFEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"

	// Both sides may castle either way.
	CastlingFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	// Fool's mate: White is checkmated.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// Black to move is stalemated.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)
