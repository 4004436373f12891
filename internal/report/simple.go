package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/drills/internal/model"
)

// SimpleWriter outputs plain text for terminal display.
//
// By default it prints exactly the result: the annotated board one row per
// line, or the winning series name (or the not-found message). Verbose mode
// adds the intermediate board stages and fetch statistics.
type SimpleWriter struct {
	baseWriter

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteBoard prints the annotated board, one row per line.
func (w *SimpleWriter) WriteBoard(report *model.BoardReport) (int, error) {
	var sb strings.Builder

	if w.verbose {
		sb.WriteString("Input:\n")
		writeRows(&sb, report.Input.String())
		sb.WriteString("Sanitized:\n")
		writeRows(&sb, report.Sanitized.String())
		sb.WriteString("Annotated:\n")
	}

	for i := 0; i < report.Annotated.Rows(); i++ {
		sb.WriteString(report.Annotated.RowString(i))
		sb.WriteString("\n")
	}

	if w.verbose {
		fmt.Fprintf(&sb, "%dx%d board, %d mines\n", report.Rows, report.Cols, report.Mines)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeRows writes an indented multi-line grid rendering.
func writeRows(sb *strings.Builder, rows string) {
	if rows == "" {
		sb.WriteString("  (empty)\n")
		return
	}
	for _, line := range strings.Split(rows, "\n") {
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

// WriteRanking prints the result line, then the top list if present.
func (w *SimpleWriter) WriteRanking(report *model.RankingReport) (int, error) {
	var sb strings.Builder

	sb.WriteString(report.Message)
	sb.WriteString("\n")

	if len(report.Top) > 0 {
		sb.WriteString("\n")
		for i, s := range report.Top {
			fmt.Fprintf(&sb, "%3d. %-40s %s\n", i+1, s.Name, formatRating(s.Rating))
		}
	}

	if w.verbose {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "Genre:       %s\n", report.Genre)
		fmt.Fprintf(&sb, "Candidates:  %d of %d records\n", report.Candidates, report.RecordsFetched)
		fmt.Fprintf(&sb, "Pages:       %d fetched, %d reported\n", report.PagesFetched, report.TotalPages)
		fmt.Fprintf(&sb, "Stopped at:  %s\n", report.StopReason)
	}

	return w.output.Write([]byte(sb.String()))
}

// formatRating renders a rating with one decimal, e.g. "9.0".
func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', 1, 64)
}
