package ranking

import (
	"slices"

	"github.com/nao1215/drills/internal/model"
)

// NotFoundMessage is printed when no record carries the requested genre.
const NotFoundMessage = "No TV series found for the given genre."

// Candidates returns the records carrying genre, in arrival order.
// Matching is case-insensitive over each record's genre list.
func Candidates(genre string, records []model.Series) []model.Series {
	out := make([]model.Series, 0)
	for _, r := range records {
		if r.HasGenre(genre) {
			out = append(out, r)
		}
	}
	return out
}

// Less reports whether a ranks strictly before b: higher rating first,
// then lexicographically smaller name.
func Less(a, b model.Series) bool {
	if a.Rating != b.Rating {
		return a.Rating > b.Rating
	}
	return a.Name < b.Name
}

// BestInGenre returns the highest-rated record carrying genre, breaking
// rating ties by the smaller name. The boolean is false when no record
// carries the genre.
//
// Records that tie on both rating and name keep the earliest one.
func BestInGenre(genre string, records []model.Series) (model.Series, bool) {
	var (
		best  model.Series
		found bool
	)
	for _, r := range records {
		if !r.HasGenre(genre) {
			continue
		}
		if !found || Less(r, best) {
			best = r
			found = true
		}
	}
	return best, found
}

// Rank returns the candidates for genre ordered best first.
// The sort is stable, so full ties keep arrival order and Rank(...)[0]
// is the BestInGenre winner. n <= 0 returns every candidate.
func Rank(genre string, records []model.Series, n int) []model.Series {
	out := Candidates(genre, records)
	slices.SortStableFunc(out, func(a, b model.Series) int {
		switch {
		case Less(a, b):
			return -1
		case Less(b, a):
			return 1
		default:
			return 0
		}
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Report holds what a genre query produced.
type Report struct {
	Best       model.Series
	Found      bool
	Candidates int
	Top        []model.Series
}

// Evaluate runs the reductions needed for a report in one call.
// top <= 0 leaves Top empty.
func Evaluate(genre string, records []model.Series, top int) Report {
	best, found := BestInGenre(genre, records)
	rep := Report{
		Best:       best,
		Found:      found,
		Candidates: len(Candidates(genre, records)),
	}
	if top > 0 {
		rep.Top = Rank(genre, records, top)
	}
	return rep
}

// Message returns the line printed for r: the winner's name, or
// NotFoundMessage.
func (r Report) Message() string {
	if !r.Found {
		return NotFoundMessage
	}
	return r.Best.Name
}
