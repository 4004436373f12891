// Package tvseries fetches TV series records from a paginated JSON API.
//
// The API answers GET {base}?page=N with
//
//	{"page": N, "total_pages": T, "data": [{"name": ..., "imdb_rating": ..., "genre": "A, B"}]}
//
// Client.FetchAll walks the pages in order and flattens their records into
// model.Series values. It stops at the server's last page or at
// HardPageCeiling, and reports which of the two happened.
//
// Requests are sequential and never retried. Errors fall into two classes,
// ErrTransport and ErrFormat; either aborts the fetch.
package tvseries
