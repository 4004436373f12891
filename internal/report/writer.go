package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/nao1215/drills/internal/model"
)

// ErrUnknownFormat is returned by NewWriter for an unsupported format.
var ErrUnknownFormat = errors.New("unknown report format")

// Format names an output format.
type Format string

const (
	// FormatText is plain terminal output. The board is printed one row per
	// line and the ranking as a single line.
	FormatText Format = "text"

	// FormatJSON is structured output for tool integration.
	FormatJSON Format = "json"

	// FormatMarkdown is GitHub-flavored Markdown with tables and charts.
	FormatMarkdown Format = "markdown"
)

// Writer defines the interface for report output.
// Implementations write results in various formats.
type Writer interface {
	// WriteBoard outputs an annotated board.
	// Returns the number of bytes written and any error encountered.
	WriteBoard(report *model.BoardReport) (int, error)

	// WriteRanking outputs the result of a genre query.
	WriteRanking(report *model.RankingReport) (int, error)
}

// FormatFromFlags picks the format selected by the --json and --markdown
// flags. Text is used when neither is set.
func FormatFromFlags(jsonReport, markdownReport bool) Format {
	switch {
	case jsonReport:
		return FormatJSON
	case markdownReport:
		return FormatMarkdown
	default:
		return FormatText
	}
}

// Options are the settings NewWriter passes to the selected writer.
type Options struct {
	// Version wraps JSON output with the producing version when set.
	Version string

	// Verbose adds detail to text output.
	Verbose bool
}

// NewWriter creates the writer for format.
// JSON output is always pretty-printed.
func NewWriter(format Format, output io.Writer, opts Options) (Writer, error) {
	switch format {
	case FormatText, "":
		return NewSimpleWriter(output, WithVerbose(opts.Verbose)), nil
	case FormatJSON:
		jsonOpts := []JSONWriterOption{WithPrettyPrint()}
		if opts.Version != "" {
			jsonOpts = append(jsonOpts, WithVersion(opts.Version))
		}
		return NewJSONWriter(output, jsonOpts...), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
