package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// UnknownGenre is the genre assigned to a record whose genre field is missing.
const UnknownGenre = "Unknown"

// ErrInvalidRating is returned when an imdb_rating value is neither a JSON
// number nor a string holding one.
var ErrInvalidRating = errors.New("invalid rating")

// Series is a TV series as used by the ranking stage.
type Series struct {
	// Name is the series title. It may be empty.
	Name string `json:"name"`

	// Rating is the IMDb rating.
	Rating float64 `json:"imdb_rating"` //nolint:tagliatelle // wire name of the API

	// Genres is the list of genres in the order the API reported them.
	Genres []string `json:"genres"`
}

// HasGenre reports whether genre is one of the series' genres.
// The comparison uses Unicode case folding, so "action" matches "Action".
func (s Series) HasGenre(genre string) bool {
	want := cases.Fold().String(genre)
	for _, g := range s.Genres {
		if cases.Fold().String(g) == want {
			return true
		}
	}
	return false
}

// Rating is an imdb_rating value on the wire.
// The API has served it both as a number and as a numeric string.
type Rating float64

// UnmarshalJSON accepts 8.1 as well as "8.1".
// Non-finite values such as "NaN" and "Inf" are rejected.
func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRating, err)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %q is not a finite number", ErrInvalidRating, s)
		}
		*r = Rating(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %s is not a number", ErrInvalidRating, data)
	}
	*r = Rating(f)
	return nil
}

// RawSeries is one element of a page's data array.
// Pointer fields distinguish a missing field from its zero value.
type RawSeries struct {
	Name   *string `json:"name"`
	Rating *Rating `json:"imdb_rating"` //nolint:tagliatelle // wire name of the API
	Genre  *string `json:"genre"`
}

// ToSeries converts a wire record, applying the defaults for missing fields:
// empty name, rating 0 and genre "Unknown".
func (r RawSeries) ToSeries() Series {
	s := Series{Genres: SplitGenres(UnknownGenre)}
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Rating != nil {
		s.Rating = float64(*r.Rating)
	}
	if r.Genre != nil {
		s.Genres = SplitGenres(*r.Genre)
	}
	return s
}

// SplitGenres splits a comma-separated genre field.
// Entries are trimmed and empty entries are dropped.
func SplitGenres(field string) []string {
	parts := strings.Split(field, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}
