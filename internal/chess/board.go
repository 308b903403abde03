package chess

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Position represents a chess board with all state needed for the game.
type Position struct {
	// The board squares with a hedge of 2 around for knight move calculation.
	// Squares[file+Hedge-1][rank+Hedge-1] holds the piece on (file, rank).
	Squares [Hedge + BoardSize + Hedge][Hedge + BoardSize + Hedge]Piece

	// Who has the next move.
	ToMove Colour

	// Which castling options remain.
	Castling CastlingRights

	// The en passant field exactly as it was read; never interpreted.
	EnPassant string

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number.
	MoveNumber int

	// version is bumped on every mutation so that derived caches held
	// elsewhere can detect staleness.
	version uint64

	placement string
	covered   [2][]Square
	hasCover  [2]bool
}

// NewPosition creates a new empty position with White to move.
func NewPosition() *Position {
	p := &Position{
		ToMove:    White,
		EnPassant: "-",
	}
	// Initialize all squares to Off (hedge) or Empty
	for col := 0; col < Hedge+BoardSize+Hedge; col++ {
		for rank := 0; rank < Hedge+BoardSize+Hedge; rank++ {
			if col >= Hedge && col < Hedge+BoardSize &&
				rank >= Hedge && rank < Hedge+BoardSize {
				p.Squares[col][rank] = Empty
			} else {
				p.Squares[col][rank] = Off
			}
		}
	}
	return p
}

// Get returns the piece at (file, rank), or Off for hedge squares.
// file and rank may stray up to Hedge squares off the board.
func (p *Position) Get(file, rank int) Piece {
	c := file + Hedge - 1
	r := rank + Hedge - 1
	if c < 0 || r < 0 || c >= Hedge+BoardSize+Hedge || r >= Hedge+BoardSize+Hedge {
		return Off
	}
	return p.Squares[c][r]
}

// PieceAt returns the piece at (file, rank), Empty for empty or off-board squares.
func (p *Position) PieceAt(file, rank int) Piece {
	if !OnBoard(file, rank) {
		return Empty
	}
	return p.Get(file, rank)
}

// HasPieceAt reports whether (file, rank) holds a piece.
func (p *Position) HasPieceAt(file, rank int) bool {
	return p.PieceAt(file, rank) != Empty
}

// SetPieceAt places a piece at (file, rank).
func (p *Position) SetPieceAt(file, rank int, piece Piece) error {
	if !IsValidPiece(piece) {
		return errors.Wrapf(errors.ErrInvalidPiece, "set %s: piece code %q", SquareName(file, rank), byte(piece))
	}
	if !OnBoard(file, rank) {
		return errors.Wrapf(errors.ErrInvalidSquare, "set (%d,%d)", file, rank)
	}
	p.Squares[file+Hedge-1][rank+Hedge-1] = piece
	p.invalidate()
	return nil
}

// RemovePieceAt clears (file, rank). Clearing an empty or off-board square is a no-op.
func (p *Position) RemovePieceAt(file, rank int) {
	if !OnBoard(file, rank) {
		return
	}
	p.Squares[file+Hedge-1][rank+Hedge-1] = Empty
	p.invalidate()
}

// SetCastling replaces the castling rights.
func (p *Position) SetCastling(rights CastlingRights) {
	p.Castling = rights
	p.invalidate()
}

// ClearCastling removes the given castling flags.
func (p *Position) ClearCastling(rights CastlingRights) {
	p.Castling &^= rights
	p.invalidate()
}

// SetToMove sets the side to move.
func (p *Position) SetToMove(colour Colour) {
	p.ToMove = colour
	p.invalidate()
}

// AdvanceTurn flips the side to move, counting a full move each time Black
// hands the move back to White.
func (p *Position) AdvanceTurn() {
	if p.ToMove == Black {
		p.MoveNumber++
	}
	p.ToMove = p.ToMove.Opposite()
	p.invalidate()
}

// Version returns a counter that changes whenever the position is mutated.
func (p *Position) Version() uint64 {
	return p.version
}

// invalidate drops every derived cache.
func (p *Position) invalidate() {
	p.version++
	p.placement = ""
	p.covered = [2][]Square{}
	p.hasCover = [2]bool{}
}

// Copy creates a deep copy of the position. Caches are not carried over.
func (p *Position) Copy() *Position {
	newPos := &Position{}
	*newPos = *p
	newPos.placement = ""
	newPos.covered = [2][]Square{}
	newPos.hasCover = [2]bool{}
	return newPos
}

// Placement returns the piece-placement field: ranks 8 to 1, empty squares
// run-length encoded, ranks separated by '/'. Side to move and castling are
// not part of it.
func (p *Position) Placement() string {
	if p.placement != "" {
		return p.placement
	}
	var sb strings.Builder
	for rank := LastRank; rank >= FirstRank; rank-- {
		emptyCount := 0
		for file := FirstFile; file <= LastFile; file++ {
			piece := p.Get(file, rank)
			if piece == Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(byte(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > FirstRank {
			sb.WriteByte('/')
		}
	}
	p.placement = sb.String()
	return p.placement
}

// FindPieces returns every square holding piece, in file-then-rank order.
func (p *Position) FindPieces(piece Piece) []Square {
	var found []Square
	for file := FirstFile; file <= LastFile; file++ {
		for rank := FirstRank; rank <= LastRank; rank++ {
			if p.Get(file, rank) == piece {
				found = append(found, Sq(file, rank))
			}
		}
	}
	return found
}

// FindKing finds the king of the given colour on the board.
func (p *Position) FindKing(colour Colour) (Square, bool) {
	king := MakeColouredPiece(colour, King)
	for file := FirstFile; file <= LastFile; file++ {
		for rank := FirstRank; rank <= LastRank; rank++ {
			if p.Get(file, rank) == king {
				return Sq(file, rank), true
			}
		}
	}
	return Square{}, false
}

// PieceCount counts the occurrences of piece on the board.
func (p *Position) PieceCount(piece Piece) int {
	count := 0
	for file := FirstFile; file <= LastFile; file++ {
		for rank := FirstRank; rank <= LastRank; rank++ {
			if p.Get(file, rank) == piece {
				count++
			}
		}
	}
	return count
}

// MovePiece relocates whatever stands on from to to, capturing anything
// there. It applies no rules.
func (p *Position) MovePiece(from, to Square) {
	piece := p.PieceAt(from.File, from.Rank)
	if piece == Empty || !to.Valid() {
		return
	}
	p.Squares[from.File+Hedge-1][from.Rank+Hedge-1] = Empty
	p.Squares[to.File+Hedge-1][to.Rank+Hedge-1] = piece
	p.invalidate()
}
