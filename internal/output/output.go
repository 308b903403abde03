// Package output formats position analysis reports as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Report is the analysis of one position.
type Report struct {
	FEN        string
	Position   *chess.Position
	SideToMove chess.Colour
	Status     engine.GameStatus
	Evaluation engine.Score
	Material   [2]engine.Score
	Mobility   [2]engine.Score

	// Square, when set, is the square Moves were generated from;
	// otherwise Moves holds every legal move of the side to move.
	Square string
	Moves  []string

	Search *engine.SearchResult // nil when no search was run
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	indent        string
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. Wrapped lines start with
// indent.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		indent:        indent,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, adding a space separator or a line break as needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// BoardDiagram draws the position with rank 8 at the top, '.' for empty
// squares and file letters underneath.
func BoardDiagram(pos *chess.Position) string {
	var sb strings.Builder
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		fmt.Fprintf(&sb, "%d", rank)
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			sb.WriteByte(' ')
			if piece := pos.PieceAt(file, rank); piece != chess.Empty {
				sb.WriteByte(byte(piece))
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
