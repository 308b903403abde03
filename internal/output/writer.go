package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

// ReportWriter is the interface for writing analysis reports.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewReportWriter returns the writer selected by cfg.
func NewReportWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriterSingle(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes reports as aligned "label: value" lines.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

const labelWidth = 12

// WriteReport writes a report in text form.
func (tw *TextWriter) WriteReport(r *Report) error {
	ew := &errWriter{w: tw.w}

	if tw.cfg.Output.ShowBoard && r.Position != nil {
		fmt.Fprintln(ew, BoardDiagram(r.Position))
	}
	tw.line(ew, "FEN", r.FEN)
	tw.line(ew, "To move", r.SideToMove.String())
	tw.line(ew, "Status", r.Status.String())
	tw.line(ew, "Evaluation", r.Evaluation.String())
	tw.line(ew, "Material", fmt.Sprintf("%s / %s", r.Material[0], r.Material[1]))
	tw.line(ew, "Mobility", fmt.Sprintf("%s / %s", r.Mobility[0], r.Mobility[1]))

	if tw.cfg.Output.ListMoves || r.Square != "" {
		label := fmt.Sprintf("Moves (%d)", len(r.Moves))
		if r.Square != "" {
			label = fmt.Sprintf("%s (%d)", r.Square, len(r.Moves))
		}
		fmt.Fprintf(ew, "%-*s", labelWidth, label+":")
		ow := NewOutputWriter(ew, 80, fmt.Sprintf("%*s", labelWidth, ""))
		ow.lineLength = labelWidth
		if len(r.Moves) == 0 {
			ow.Write("none")
		}
		for _, m := range r.Moves {
			ow.Write(m)
		}
		ow.NewLine()
	}

	if r.Search != nil {
		tw.line(ew, "Best move", bestMoveText(r))
	}
	return ew.err
}

func (tw *TextWriter) line(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%-*s%s\n", labelWidth, label+":", value)
}

func bestMoveText(r *Report) string {
	s := r.Search
	if s.Move == "" {
		return "none"
	}
	text := fmt.Sprintf("%s (score %s, depth %d, %d nodes, %s)", s.Move, s.Score, s.Depth, s.Nodes, s.Elapsed.Round(time.Microsecond))
	if s.Mate {
		text += " mate"
	}
	return text
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	reports []*Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		reports: make([]*Report, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteReport buffers a report for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteReport(r *Report) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(ReportToJSON(r, jw.cfg))
	}

	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	out := &JSONOutput{
		Reports: make([]*JSONReport, 0, len(jw.reports)),
	}
	for _, r := range jw.reports {
		out.Reports = append(out.Reports, ReportToJSON(r, jw.cfg))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// errWriter remembers the first write error so callers can check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
