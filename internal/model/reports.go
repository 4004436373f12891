package model

import (
	"time"

	"github.com/nao1215/drills/internal/board"
)

// StopReason tells why a paginated fetch stopped requesting pages.
type StopReason string

const (
	// StopLastPage means the server reported no further pages.
	StopLastPage StopReason = "last-page"

	// StopPageCeiling means the page ceiling was reached before the server
	// reported its last page. The result may be missing records.
	StopPageCeiling StopReason = "page-ceiling"
)

// String returns the string representation.
func (r StopReason) String() string {
	return string(r)
}

// Truncated reports whether records may have been left unfetched.
func (r StopReason) Truncated() bool {
	return r == StopPageCeiling
}

// BoardReport is the result of annotating one board.
type BoardReport struct {
	// Input is the raw board as read.
	Input board.Grid `json:"input"`

	// Sanitized is the board with mines marked as 9.
	Sanitized board.Grid `json:"sanitized"`

	// Annotated is the board with adjacent mine counts.
	Annotated board.Grid `json:"annotated"`

	Rows  int `json:"rows"`
	Cols  int `json:"cols"`
	Mines int `json:"mines"`

	// GeneratedAt is when the report was created.
	GeneratedAt time.Time `json:"generated_at"`
}

// NewBoardReport creates a report for the three stages of one board.
func NewBoardReport(input, sanitized, annotated board.Grid) *BoardReport {
	return &BoardReport{
		Input:       input,
		Sanitized:   sanitized,
		Annotated:   annotated,
		Rows:        annotated.Rows(),
		Cols:        annotated.Cols(),
		Mines:       annotated.MineCount(),
		GeneratedAt: time.Now(),
	}
}

// CellDistribution counts annotated cells by value (0..8 and 9 for mines).
func (r *BoardReport) CellDistribution() map[int]int {
	dist := make(map[int]int)
	for _, row := range r.Annotated.Ints() {
		for _, v := range row {
			dist[v]++
		}
	}
	return dist
}

// RankingReport is the result of one genre query.
type RankingReport struct {
	// Genre is the genre as requested.
	Genre string `json:"genre"`

	// Found is false when no record carries the genre.
	Found bool `json:"found"`

	// Winner is the best-rated series, nil when Found is false.
	Winner *Series `json:"winner,omitempty"`

	// Message is the line printed for this result: the winner's name or the
	// not-found message.
	Message string `json:"message"`

	// Candidates is the number of records carrying the genre.
	Candidates int `json:"candidates"`

	// Top holds the best candidates in rank order when requested.
	Top []Series `json:"top,omitempty"`

	RecordsFetched int        `json:"records_fetched"`
	PagesFetched   int        `json:"pages_fetched"`
	TotalPages     int        `json:"total_pages"`
	StopReason     StopReason `json:"stop_reason"`

	// QueriedAt is when the fetch started.
	QueriedAt time.Time `json:"queried_at"`
}
