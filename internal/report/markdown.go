package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/drills/internal/board"
	"github.com/nao1215/drills/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// Boards are rendered as tables with a mermaid pie chart of the cell values;
// rankings as a property table followed by the top list.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteBoard outputs the board report in Markdown format.
func (w *MarkdownWriter) WriteBoard(report *model.BoardReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Minesweeper Board")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Size", strconv.Itoa(report.Rows) + " x " + strconv.Itoa(report.Cols)},
			{"Mines", strconv.Itoa(report.Mines)},
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")

	md.H2("Input")
	md.PlainText("")
	w.writeGrid(md, report.Input)

	md.H2("Annotated")
	md.PlainText("")
	w.writeGrid(md, report.Annotated)

	if report.Rows > 0 && report.Cols > 0 {
		w.writePieChart(md, report)
	}

	switch {
	case report.Rows == 0 || report.Cols == 0:
		md.Note("The board is empty.")
	case report.Mines == 0:
		md.Tip("No mines on this board.")
	case report.Mines*2 > report.Rows*report.Cols:
		md.Warningf("More than half of the board is mined: %d of %d cells.",
			report.Mines, report.Rows*report.Cols)
	default:
		md.Note("Cells marked 💣 are mines; every other cell counts its mined neighbours.")
	}
	md.PlainText("")

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeGrid renders a grid as a table with row and column indices.
// Mines in annotated grids are shown as a bomb.
func (w *MarkdownWriter) writeGrid(md *markdown.Markdown, g board.Grid) {
	if g.Rows() == 0 || g.Cols() == 0 {
		md.PlainText("_empty_")
		md.PlainText("")
		return
	}

	header := make([]string, 0, g.Cols()+1)
	header = append(header, "")
	for j := 0; j < g.Cols(); j++ {
		header = append(header, strconv.Itoa(j))
	}

	rows := make([][]string, 0, g.Rows())
	for i, values := range g.Ints() {
		row := make([]string, 0, len(values)+1)
		row = append(row, "**"+strconv.Itoa(i)+"**")
		for _, v := range values {
			if board.Cell(v).IsMine() {
				row = append(row, "💣")
				continue
			}
			row = append(row, strconv.Itoa(v))
		}
		rows = append(rows, row)
	}

	md.Table(markdown.TableSet{Header: header, Rows: rows})
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of annotated cell values.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.BoardReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Cell Distribution"),
		piechart.WithShowData(true),
	)

	dist := report.CellDistribution()
	if n := dist[int(board.Mine)]; n > 0 {
		chart.LabelAndIntValue("Mine", uint64(n))
	}
	for v := 0; v <= 8; v++ {
		if n := dist[v]; n > 0 {
			chart.LabelAndIntValue(strconv.Itoa(v)+" adjacent", uint64(n))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// WriteRanking outputs the ranking report in Markdown format.
func (w *MarkdownWriter) WriteRanking(report *model.RankingReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Best " + report.Genre + " Series")
	md.PlainText("")

	winner, rating := "-", "-"
	if report.Winner != nil {
		winner = "**" + report.Winner.Name + "**"
		rating = formatRating(report.Winner.Rating)
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Genre", report.Genre},
			{"Winner", winner},
			{"Rating", rating},
			{"Candidates", strconv.Itoa(report.Candidates)},
			{"Records Fetched", strconv.Itoa(report.RecordsFetched)},
			{"Pages Fetched", strconv.Itoa(report.PagesFetched) + " of " + strconv.Itoa(report.TotalPages)},
			{"Stop Reason", "`" + report.StopReason.String() + "`"},
			{"Queried", report.QueriedAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")

	switch {
	case !report.Found:
		md.Warningf("%s", report.Message)
	case report.StopReason.Truncated():
		md.Cautionf(
			"The page ceiling was reached after %d of %d pages. A better %s series may exist on a later page.",
			report.PagesFetched, report.TotalPages, report.Genre,
		)
	default:
		md.Tip("All pages were fetched.")
	}
	md.PlainText("")

	if len(report.Top) > 0 {
		w.writeTop(md, report.Top)
	}

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeTop writes the ranked list as a table.
func (w *MarkdownWriter) writeTop(md *markdown.Markdown, top []model.Series) {
	md.H2("Top " + strconv.Itoa(len(top)))
	md.PlainText("")

	rows := make([][]string, len(top))
	for i, s := range top {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			s.Name,
			formatRating(s.Rating),
			strings.Join(s.Genres, ", "),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Name", "Rating", "Genres"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [drills](https://github.com/nao1215/drills)*")
}
