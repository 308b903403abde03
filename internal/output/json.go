package output

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

// JSONReport represents a report in JSON format. Scores are in points.
type JSONReport struct {
	FEN        string      `json:"fen"`
	SideToMove string      `json:"sideToMove"` // "white" or "black"
	Status     string      `json:"status"`
	Evaluation float64     `json:"evaluation"`
	Material   JSONSides   `json:"material"`
	Mobility   JSONSides   `json:"mobility"`
	Square     string      `json:"square,omitempty"`
	Moves      []string    `json:"moves"`
	Board      []string    `json:"board,omitempty"`
	Best       *JSONSearch `json:"best,omitempty"`
}

// JSONSides holds one value per colour.
type JSONSides struct {
	White float64 `json:"white"`
	Black float64 `json:"black"`
}

// JSONSearch represents a search result in JSON format.
type JSONSearch struct {
	ID        string  `json:"id"`
	Move      string  `json:"move,omitempty"`
	Score     float64 `json:"score"`
	Mate      bool    `json:"mate,omitempty"`
	Depth     int     `json:"depth"`
	Nodes     uint64  `json:"nodes"`
	CacheHits uint64  `json:"cacheHits"`
	ElapsedMS float64 `json:"elapsedMs"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
}

// ReportToJSON converts a report to JSON format.
func ReportToJSON(r *Report, cfg *config.Config) *JSONReport {
	jr := &JSONReport{
		FEN:        r.FEN,
		SideToMove: strings.ToLower(r.SideToMove.String()),
		Status:     r.Status.String(),
		Evaluation: r.Evaluation.Float(),
		Material:   JSONSides{White: r.Material[0].Float(), Black: r.Material[1].Float()},
		Mobility:   JSONSides{White: r.Mobility[0].Float(), Black: r.Mobility[1].Float()},
		Square:     r.Square,
		Moves:      r.Moves,
	}
	if jr.Moves == nil {
		jr.Moves = []string{}
	}

	if cfg.Output.ShowBoard && r.Position != nil {
		jr.Board = strings.Split(strings.TrimRight(BoardDiagram(r.Position), "\n"), "\n")
	}

	if s := r.Search; s != nil {
		jr.Best = &JSONSearch{
			ID:        s.ID,
			Move:      s.Move,
			Score:     s.Score.Float(),
			Mate:      s.Mate,
			Depth:     s.Depth,
			Nodes:     s.Nodes,
			CacheHits: s.CacheHits,
			ElapsedMS: float64(s.Elapsed.Microseconds()) / 1000,
		}
	}
	return jr
}
