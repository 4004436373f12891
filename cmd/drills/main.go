// Package main provides the entry point for the drills CLI.
//
// drills runs two small pipelines: a Minesweeper board annotator and a
// best-rated TV series lookup against a paginated JSON API.
//
// Usage:
//
//	drills minesweeper
//	drills minesweeper --board board.yaml
//	drills best Action
//
// See --help for all available options.
package main

// main is the entry point for drills.
func main() {
	Execute()
}
