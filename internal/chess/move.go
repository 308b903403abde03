package chess

import "github.com/lgbarn/chess-engine-go/internal/errors"

// Move is a move in coordinate notation: "e2e4", or "e7e8Q" with a
// promotion letter.
type Move struct {
	From Square
	To   Square

	// The piece promoted to (Empty if not a promotion). The letter's case
	// is kept as written.
	Promotion Piece
}

// ParseMove parses 4 or 5 characters of coordinate notation.
func ParseMove(notation string) (Move, error) {
	if len(notation) != 4 && len(notation) != 5 {
		return Move{}, errors.Wrapf(errors.ErrMalformedNotation, "move %q: want 4 or 5 characters", notation)
	}
	from, err := ParseSquare(notation[0:2])
	if err != nil {
		return Move{}, errors.Wrapf(errors.ErrMalformedNotation, "move %q: %v", notation, err)
	}
	to, err := ParseSquare(notation[2:4])
	if err != nil {
		return Move{}, errors.Wrapf(errors.ErrMalformedNotation, "move %q: %v", notation, err)
	}
	m := Move{From: from, To: to}
	if len(notation) == 5 {
		promo, err := ParsePiece(notation[4])
		if err != nil || ExtractPiece(promo) == King || ExtractPiece(promo) == Pawn {
			return Move{}, errors.Wrapf(errors.ErrMalformedNotation, "move %q: bad promotion letter", notation)
		}
		m.Promotion = promo
	}
	return m, nil
}

// String returns the coordinate notation of the move.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(byte(m.Promotion))
	}
	return s
}

// Destination returns the part of the notation after the start square:
// the target name plus any promotion letter.
func (m Move) Destination() string {
	return m.String()[2:]
}
