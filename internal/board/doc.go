// Package board annotates Minesweeper boards.
//
// A raw board is a rectangular matrix of 0 (empty) and 1 (mine) cells.
// Annotation happens in two stages, each producing a new Grid:
//
//	raw, _ := board.Parse(rows)         // rectangular check
//	sanitized, _ := board.Sanitize(raw) // 1 -> 9, anything but 0/1 rejected
//	annotated := board.Annotate(sanitized)
//
// In the annotated board every mine keeps the value 9 and every other cell
// holds the number of mines in its 8-neighbourhood.
//
// Grid values are only created through Parse (or the helpers built on it),
// so a Grid is always rectangular. All failures wrap ErrInvalidInput and can
// be detected with errors.Is.
package board
