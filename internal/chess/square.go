package chess

import "github.com/lgbarn/chess-engine-go/internal/errors"

// Square identifies a board square by file (1=a .. 8=h) and rank (1..8).
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square is on the board.
func (s Square) Valid() bool {
	return OnBoard(s.File, s.Rank)
}

// String returns the algebraic name of the square ("a1".."h8").
func (s Square) String() string {
	return SquareName(s.File, s.Rank)
}

// Offset returns the square shifted by the given file and rank deltas.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// SquareName maps (file, rank) to an algebraic name. Off-board coordinates
// render as "-".
func SquareName(file, rank int) string {
	if !OnBoard(file, rank) {
		return "-"
	}
	return string([]byte{byte('a' + file - 1), byte('0' + rank)})
}

// CoordsFromName maps an algebraic name back to (file, rank).
func CoordsFromName(name string) (file, rank int, err error) {
	sq, err := ParseSquare(name)
	if err != nil {
		return 0, 0, err
	}
	return sq.File, sq.Rank, nil
}

// ParseSquare parses an algebraic square name.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "square %q", name)
	}
	file := int(name[0]-'a') + 1
	rank := int(name[1]-'0')
	if name[0] < 'a' || name[1] < '0' || !OnBoard(file, rank) {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "square %q", name)
	}
	return Square{File: file, Rank: rank}, nil
}

// SquareNames renders a list of squares as names, preserving order.
func SquareNames(squares []Square) []string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}
