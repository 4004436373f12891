package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/drills/internal/board"
	"github.com/nao1215/drills/internal/model"
	"github.com/nao1215/drills/internal/ranking"
)

// createBoardReport annotates the default board for testing.
func createBoardReport(t *testing.T) *model.BoardReport {
	t.Helper()

	sanitized, err := board.Sanitize(board.DefaultBoard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return model.NewBoardReport(board.DefaultBoard, sanitized, board.Annotate(sanitized))
}

// createRankingReport creates a found ranking with a top list.
func createRankingReport() *model.RankingReport {
	winner := model.Series{Name: "Avatar: The Last Airbender", Rating: 9.3, Genres: []string{"Animation", "Action"}}
	return &model.RankingReport{
		Genre:      "Action",
		Found:      true,
		Winner:     &winner,
		Message:    winner.Name,
		Candidates: 3,
		Top: []model.Series{
			winner,
			{Name: "Game of Thrones", Rating: 9.3, Genres: []string{"Action", "Drama"}},
		},
		RecordsFetched: 10,
		PagesFetched:   2,
		TotalPages:     2,
		StopReason:     model.StopLastPage,
		QueriedAt:      time.Now(),
	}
}

// createNotFoundReport creates a ranking without a winner.
func createNotFoundReport() *model.RankingReport {
	return &model.RankingReport{
		Genre:          "Western",
		Message:        ranking.NotFoundMessage,
		RecordsFetched: 10,
		PagesFetched:   2,
		TotalPages:     2,
		StopReason:     model.StopLastPage,
		QueriedAt:      time.Now(),
	}
}

// TestSimpleWriter tests the plain text writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("board is printed one row per line", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteBoard(createBoardReport(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "[1, 9, 2, 1]\n[2, 3, 9, 2]\n[3, 9, 4, 9]\n[9, 9, 3, 1]\n"
		if diff := cmp.Diff(want, buf.String()); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("verbose board shows every stage", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithVerbose(true)).WriteBoard(createBoardReport(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{"Input:", "  [0, 1, 0, 0]", "Sanitized:", "  [0, 9, 0, 0]", "Annotated:", "4x4 board, 6 mines"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, output)
			}
		}
	})

	t.Run("ranking prints the winner name only", func(t *testing.T) {
		t.Parallel()

		rep := createRankingReport()
		rep.Top = nil

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteRanking(rep); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := buf.String(); got != "Avatar: The Last Airbender\n" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("not found prints the fixed message", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteRanking(createNotFoundReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := buf.String(); got != ranking.NotFoundMessage+"\n" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("top list follows the winner", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteRanking(createRankingReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.HasPrefix(output, "Avatar: The Last Airbender\n") {
			t.Errorf("expected winner first, got:\n%s", output)
		}
		if !strings.Contains(output, "  2. Game of Thrones") {
			t.Errorf("expected ranked entry, got:\n%s", output)
		}
		if !strings.Contains(output, "9.3") {
			t.Errorf("expected rating, got:\n%s", output)
		}
	})

	t.Run("verbose ranking adds fetch statistics", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithVerbose(true)).WriteRanking(createRankingReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		for _, want := range []string{"Candidates:  3 of 10 records", "Pages:       2 fetched, 2 reported", "last-page"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, output)
			}
		}
	})
}

// TestJSONWriter tests the JSON report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("board round trips", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteBoard(createBoardReport(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed model.BoardReport
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		want := [][]int{{1, 9, 2, 1}, {2, 3, 9, 2}, {3, 9, 4, 9}, {9, 9, 3, 1}}
		if diff := cmp.Diff(want, parsed.Annotated.Ints()); diff != "" {
			t.Errorf("annotated mismatch (-want +got):\n%s", diff)
		}
		if parsed.Mines != 6 {
			t.Errorf("expected 6 mines, got %d", parsed.Mines)
		}
	})

	t.Run("compact output by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteRanking(createRankingReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 1 {
			t.Errorf("expected compact output (1 line), got %d lines", len(lines))
		}
	})

	t.Run("pretty print with indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithIndent(">>", "\t")).WriteRanking(createRankingReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, ">>\t") {
			t.Errorf("expected custom indentation, got:\n%s", output)
		}
	})

	t.Run("not found omits winner", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteRanking(createNotFoundReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed map[string]any
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if _, ok := parsed["winner"]; ok {
			t.Error("expected no winner field")
		}
		if parsed["found"] != false {
			t.Errorf("found = %v, expected false", parsed["found"])
		}
		if parsed["message"] != ranking.NotFoundMessage {
			t.Errorf("message = %v", parsed["message"])
		}
	})

	t.Run("version envelope", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithVersion("v1.2.3")).WriteRanking(createRankingReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed struct {
			Version string              `json:"version"`
			Kind    string              `json:"kind"`
			Report  model.RankingReport `json:"report"`
		}
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if parsed.Version != "v1.2.3" || parsed.Kind != "ranking" {
			t.Errorf("unexpected envelope: version=%q kind=%q", parsed.Version, parsed.Kind)
		}
		if parsed.Report.Winner == nil || parsed.Report.Winner.Name != "Avatar: The Last Airbender" {
			t.Errorf("unexpected winner: %+v", parsed.Report.Winner)
		}
	})
}

// TestMarkdownWriter tests the Markdown report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("board tables and chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteBoard(createBoardReport(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{"# Minesweeper Board", "## Input", "## Annotated", "4 x 4", "💣", "pie", "Cell Distribution", "drills"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("empty board", func(t *testing.T) {
		t.Parallel()

		rep := model.NewBoardReport(board.Grid{}, board.Grid{}, board.Grid{})
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteBoard(rep); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "The board is empty.") {
			t.Error("expected empty board note")
		}
		if strings.Contains(output, "pie") {
			t.Error("expected no chart for empty board")
		}
	})

	t.Run("ranking with top list", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteRanking(createRankingReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{"# Best Action Series", "Avatar: The Last Airbender", "## Top 2", "Game of Thrones", "[!TIP]"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("not found is a warning", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteRanking(createNotFoundReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "[!WARNING]") {
			t.Error("expected warning alert")
		}
		if !strings.Contains(output, ranking.NotFoundMessage) {
			t.Error("expected not-found message")
		}
	})

	t.Run("truncated fetch is a caution", func(t *testing.T) {
		t.Parallel()

		rep := createRankingReport()
		rep.StopReason = model.StopPageCeiling
		rep.TotalPages = 40
		rep.PagesFetched = 20

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteRanking(rep); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "[!CAUTION]") {
			t.Error("expected caution alert")
		}
		if !strings.Contains(output, "20 of 40") {
			t.Error("expected page counts")
		}
	})
}

// TestNewWriter tests format selection.
func TestNewWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format  Format
		wantErr bool
		check   func(Writer) bool
	}{
		{format: FormatText, check: func(w Writer) bool { _, ok := w.(*SimpleWriter); return ok }},
		{format: "", check: func(w Writer) bool { _, ok := w.(*SimpleWriter); return ok }},
		{format: FormatJSON, check: func(w Writer) bool { _, ok := w.(*JSONWriter); return ok }},
		{format: FormatMarkdown, check: func(w Writer) bool { _, ok := w.(*MarkdownWriter); return ok }},
		{format: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			w, err := NewWriter(tt.format, &bytes.Buffer{}, Options{})
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.check(w) {
				t.Errorf("unexpected writer type %T", w)
			}
		})
	}
}

// TestFormatFromFlags tests flag to format mapping.
func TestFormatFromFlags(t *testing.T) {
	t.Parallel()

	if got := FormatFromFlags(false, false); got != FormatText {
		t.Errorf("got %q, expected %q", got, FormatText)
	}
	if got := FormatFromFlags(true, false); got != FormatJSON {
		t.Errorf("got %q, expected %q", got, FormatJSON)
	}
	if got := FormatFromFlags(false, true); got != FormatMarkdown {
		t.Errorf("got %q, expected %q", got, FormatMarkdown)
	}
}
