package chess

// Ray directions as (file, rank) deltas.
var (
	orthogonalDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonalDirs   = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	knightOffsets  = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// CoveredSquaresFrom returns the squares the piece on (file, rank) attacks.
// Sliding rays stop at, and include, the first occupied square. Pawns cover
// only their two forward diagonals. An empty square covers nothing.
func (p *Position) CoveredSquaresFrom(file, rank int) []Square {
	piece := p.PieceAt(file, rank)
	if piece == Empty {
		return nil
	}
	from := Sq(file, rank)

	switch ExtractPiece(piece) {
	case King:
		return p.rays(from, 1, true, true)
	case Queen:
		return p.rays(from, BoardSize, true, true)
	case Rook:
		return p.rays(from, BoardSize, true, false)
	case Bishop:
		return p.rays(from, BoardSize, false, true)
	case Knight:
		covered := make([]Square, 0, len(knightOffsets))
		for _, off := range knightOffsets {
			to := from.Offset(off[0], off[1])
			if to.Valid() {
				covered = append(covered, to)
			}
		}
		return covered
	case Pawn:
		dir := ColourOffset(ExtractColour(piece))
		covered := make([]Square, 0, 2)
		for _, df := range [2]int{-1, 1} {
			to := from.Offset(df, dir)
			if to.Valid() {
				covered = append(covered, to)
			}
		}
		return covered
	}
	return nil
}

// rays walks up to limit squares along each selected direction.
func (p *Position) rays(from Square, limit int, straight, diagonal bool) []Square {
	var dirs [][2]int
	if straight {
		dirs = append(dirs, orthogonalDirs[:]...)
	}
	if diagonal {
		dirs = append(dirs, diagonalDirs[:]...)
	}

	var covered []Square
	for _, dir := range dirs {
		to := from
		for step := 0; step < limit; step++ {
			to = to.Offset(dir[0], dir[1])
			piece := p.Get(to.File, to.Rank)
			if piece == Off {
				break
			}
			covered = append(covered, to)
			if piece != Empty {
				break // Blocked
			}
		}
	}
	return covered
}

// CoveredSquares returns every square covered by the given colour's pieces,
// scanned file by file. A square covered by several pieces appears once per
// piece.
func (p *Position) CoveredSquares(colour Colour) []Square {
	if p.hasCover[colour] {
		return p.covered[colour]
	}
	var all []Square
	for file := FirstFile; file <= LastFile; file++ {
		for rank := FirstRank; rank <= LastRank; rank++ {
			piece := p.Get(file, rank)
			if piece == Empty || ExtractColour(piece) != colour {
				continue
			}
			all = append(all, p.CoveredSquaresFrom(file, rank)...)
		}
	}
	p.covered[colour] = all
	p.hasCover[colour] = true
	return all
}

// IsSquareAttackedBy reports whether any piece of byColour covers sq.
func (p *Position) IsSquareAttackedBy(sq Square, byColour Colour) bool {
	for _, c := range p.CoveredSquares(byColour) {
		if c == sq {
			return true
		}
	}
	return false
}
