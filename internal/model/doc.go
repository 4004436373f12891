// Package model defines the data structures shared by the fetch, ranking and
// report packages.
//
// This package contains the following main types:
//   - Series: A TV series with its rating and genre list
//   - RawSeries: One record of the series API, before defaults are applied
//   - BoardReport: The stages of one annotated Minesweeper board
//   - RankingReport: The outcome of one genre query
//
// Models live in their own package so that report writers can render results
// without importing the packages that produce them.
package model
