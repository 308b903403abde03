// Package engine provides chess move validation, board manipulation and
// move search.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castlingLetters maps castling field letters to their flags.
var castlingLetters = map[rune]chess.CastlingRights{
	'K': chess.WhiteKingside,
	'Q': chess.WhiteQueenside,
	'k': chess.BlackKingside,
	'q': chess.BlackQueenside,
}

// NewPositionFromFEN creates a position from a FEN string. The string is
// parsed into a fresh position, so callers only ever see a complete result.
// Fields after the placement are optional: side defaults to White, castling
// and en passant to "-", the clocks to 0.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, errors.Wrap(errors.ErrMalformedNotation, "empty FEN string")
	}
	if len(parts) > 6 {
		return nil, &errors.ParseError{
			Err:      errors.ErrMalformedNotation,
			Field:    "fen",
			Expected: "at most 6 fields",
			Got:      strconv.Itoa(len(parts)),
		}
	}

	pos := chess.NewPosition()

	if err := parsePiecePositions(pos, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, parts); err != nil {
		return nil, err
	}
	parseEnPassant(pos, parts)
	if err := parseClocks(pos, parts); err != nil {
		return nil, err
	}

	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrMalformedNotation,
			Field:    "placement",
			Expected: "8 ranks",
			Got:      strconv.Itoa(len(ranks)),
		}
	}

	column := 0
	for i, rankText := range ranks {
		rank := chess.LastRank - i
		file := chess.FirstFile
		for _, c := range rankText {
			column++
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				if c > 0x7f {
					return &errors.ParseError{Err: errors.ErrMalformedNotation, Field: "placement", Column: column, Got: string(c)}
				}
				piece, err := chess.ParsePiece(byte(c))
				if err != nil {
					return &errors.ParseError{
						Err:    fmt.Errorf("%w: %w", errors.ErrMalformedNotation, err),
						Field:  "placement",
						Column: column,
						Got:    strconv.QuoteRune(c),
					}
				}
				if file > chess.LastFile {
					return &errors.ParseError{Err: errors.ErrMalformedNotation, Field: "placement", Column: column, Expected: "8 files", Got: "more"}
				}
				if err := pos.SetPieceAt(file, rank, piece); err != nil {
					return err
				}
				file++
			}
			if file > chess.LastFile+1 {
				return &errors.ParseError{Err: errors.ErrMalformedNotation, Field: "placement", Column: column, Expected: "8 files", Got: "more"}
			}
		}
		if file != chess.LastFile+1 {
			return &errors.ParseError{
				Err:      errors.ErrMalformedNotation,
				Field:    "placement",
				Column:   column,
				Expected: fmt.Sprintf("8 files on rank %d", rank),
				Got:      strconv.Itoa(file - 1),
			}
		}
		column++ // the '/' separator
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.SetToMove(chess.White)
	case "b":
		pos.SetToMove(chess.Black)
	default:
		return &errors.ParseError{Err: errors.ErrMalformedNotation, Field: "side to move", Expected: "w or b", Got: parts[1]}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, parts []string) error {
	pos.SetCastling(chess.NoCastling)
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	var rights chess.CastlingRights
	for i, c := range parts[2] {
		flag, ok := castlingLetters[c]
		if !ok {
			return &errors.ParseError{Err: errors.ErrMalformedNotation, Field: "castling", Column: i + 1, Expected: "KQkq or -", Got: string(c)}
		}
		rights |= flag
	}
	pos.SetCastling(rights)
	return nil
}

// parseEnPassant stores the en passant field verbatim.
func parseEnPassant(pos *chess.Position, parts []string) {
	pos.EnPassant = "-"
	if len(parts) >= 4 {
		pos.EnPassant = parts[3]
	}
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, parts []string) error {
	fields := []struct {
		name  string
		index int
		dest  *int
	}{
		{"halfmove clock", 4, &pos.HalfmoveClock},
		{"fullmove number", 5, &pos.MoveNumber},
	}
	for _, f := range fields {
		*f.dest = 0
		if len(parts) <= f.index {
			continue
		}
		n, err := strconv.Atoi(parts[f.index])
		if err != nil || n < 0 {
			return &errors.ParseError{Err: errors.ErrMalformedNotation, Field: f.name, Expected: "non-negative integer", Got: parts[f.index]}
		}
		*f.dest = n
	}
	return nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	sb.WriteString(pos.Placement())
	sb.WriteByte(' ')
	sb.WriteByte(pos.ToMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	if pos.EnPassant == "" {
		sb.WriteByte('-')
	} else {
		sb.WriteString(pos.EnPassant)
	}
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// NewInitialPosition creates a position with the standard starting setup.
func NewInitialPosition() *chess.Position {
	pos, _ := NewPositionFromFEN(InitialFEN)
	return pos
}
