package engine

import (
	"strconv"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Score is a position value from White's point of view, in tenths of a
// point where a pawn is worth 10 points.
type Score int

// Piece values and evaluation terms.
const (
	PawnValue   Score = 100
	KnightValue Score = 325
	BishopValue Score = 325
	RookValue   Score = 500
	QueenValue  Score = 975

	BishopPairBonus    Score = 50
	CoveredSquareValue Score = 5
	DevelopmentBonus   Score = 50

	// Mate is the value of a checkmate for the winning side.
	Mate Score = 10000

	// Infinity bounds the alpha-beta window.
	Infinity Score = 100000
)

var pieceValues = map[chess.Piece]Score{
	chess.Pawn:   PawnValue,
	chess.Knight: KnightValue,
	chess.Bishop: BishopValue,
	chess.Rook:   RookValue,
	chess.Queen:  QueenValue,
}

// Float returns the score in points.
func (s Score) Float() float64 {
	return float64(s) / 10
}

// String formats the score in points.
func (s Score) String() string {
	return strconv.FormatFloat(s.Float(), 'f', -1, 64)
}

// mateScore is the value of mating the opponent of colour.
func mateScore(colour chess.Colour) Score {
	if colour == chess.White {
		return Mate
	}
	return -Mate
}

// Evaluate returns the static value of the position: -Mate if White is
// mated, +Mate if Black is mated, 0 if the side to move is stalemated, and
// otherwise the difference of material plus mobility.
func (e *Engine) Evaluate() (Score, error) {
	white, err := e.Status(chess.White)
	if err != nil {
		return 0, err
	}
	if white == Checkmate {
		return -Mate, nil
	}
	black, err := e.Status(chess.Black)
	if err != nil {
		return 0, err
	}
	if black == Checkmate {
		return Mate, nil
	}
	toMove := white
	if e.pos.ToMove == chess.Black {
		toMove = black
	}
	if toMove == Stalemate {
		return 0, nil
	}

	return e.MaterialValue(chess.White) - e.MaterialValue(chess.Black) +
		e.MobilityValue(chess.White) - e.MobilityValue(chess.Black), nil
}

// MaterialValue sums the piece values of the given colour. Kings count 0.
func (e *Engine) MaterialValue(colour chess.Colour) Score {
	c := e.caches()
	if c.hasMaterial[colour] {
		return c.material[colour]
	}
	var total Score
	for file := chess.FirstFile; file <= chess.LastFile; file++ {
		for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
			piece := e.pos.PieceAt(file, rank)
			if piece == chess.Empty || chess.ExtractColour(piece) != colour {
				continue
			}
			total += pieceValues[chess.ExtractPiece(piece)]
		}
	}
	c.material[colour] = total
	c.hasMaterial[colour] = true
	return total
}

// MobilityValue returns the positional value of the given colour: a bonus
// for holding two or more bishops plus half a point per covered square,
// counting a square once for every piece that covers it.
func (e *Engine) MobilityValue(colour chess.Colour) Score {
	c := e.caches()
	if c.hasMobility[colour] {
		return c.mobility[colour]
	}
	var total Score
	if e.pos.PieceCount(chess.MakeColouredPiece(colour, chess.Bishop)) >= 2 {
		total += BishopPairBonus
	}
	total += CoveredSquareValue * Score(len(e.pos.CoveredSquares(colour)))
	if e.opts.development {
		total += developmentValue(e.pos, colour)
	}
	c.mobility[colour] = total
	c.hasMobility[colour] = true
	return total
}

// minorHomes lists the starting files of knights and bishops.
var minorHomes = [4]struct {
	file  int
	piece chess.Piece
}{
	{2, chess.Knight},
	{3, chess.Bishop},
	{6, chess.Bishop},
	{7, chess.Knight},
}

// undevelopedMinors counts the colour's knights and bishops still on their
// starting squares.
func undevelopedMinors(pos *chess.Position, colour chess.Colour) int {
	rank := chess.HomeRank(colour)
	n := 0
	for _, h := range minorHomes {
		if pos.PieceAt(h.file, rank) == chess.MakeColouredPiece(colour, h.piece) {
			n++
		}
	}
	return n
}

// developmentValue awards DevelopmentBonus to colour when it has fewer
// undeveloped minor pieces than its opponent.
func developmentValue(pos *chess.Position, colour chess.Colour) Score {
	if undevelopedMinors(pos, colour) < undevelopedMinors(pos, colour.Opposite()) {
		return DevelopmentBonus
	}
	return 0
}
