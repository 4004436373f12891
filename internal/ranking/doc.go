// Package ranking reduces fetched series to the best one of a genre.
//
// A record qualifies when one of its genres equals the requested genre under
// Unicode case folding. Qualifying records are ordered by the key
// (-rating, name): higher rating first, then alphabetical name. "Not found"
// is a normal outcome, not an error.
package ranking
