package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/drills/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// version, when set, wraps every report in an Envelope.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion wraps each report with the version of drills that produced it.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Envelope wraps a report with metadata about its producer.
type Envelope struct {
	// Version is the drills version that generated this report.
	Version string `json:"version"`

	// Kind is "board" or "ranking".
	Kind string `json:"kind"`

	// Report is the wrapped report.
	Report any `json:"report"`
}

// WriteBoard outputs the board report in JSON format.
func (w *JSONWriter) WriteBoard(report *model.BoardReport) (int, error) {
	return w.writeJSON("board", report)
}

// WriteRanking outputs the ranking report in JSON format.
func (w *JSONWriter) WriteRanking(report *model.RankingReport) (int, error) {
	return w.writeJSON("ranking", report)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(kind string, v any) (int, error) {
	if w.version != "" {
		v = Envelope{Version: w.version, Kind: kind, Report: v}
	}

	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
