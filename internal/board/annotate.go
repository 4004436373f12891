package board

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultBoard is the board annotated when no board file is given.
var DefaultBoard = MustParse([][]int{
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 1, 0, 1},
	{1, 1, 0, 0},
})

// neighbourOffsets lists the 8-neighbourhood as (row, col) deltas.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Sanitize validates a raw board and replaces every raw mine (1) with the
// sanitized marker (9). Any cell other than 0 or 1 fails with ErrInvalidCell.
func Sanitize(g Grid) (Grid, error) {
	cells := make([]Cell, len(g.cells))
	for i, c := range g.cells {
		switch c {
		case Empty:
			cells[i] = Empty
		case RawMine:
			cells[i] = Mine
		default:
			return Grid{}, fmt.Errorf("%w: got %d at (%d, %d)",
				ErrInvalidCell, int(c), i/g.cols, i%g.cols)
		}
	}
	return Grid{rows: g.rows, cols: g.cols, cells: cells}, nil
}

// SanitizeRows parses and sanitizes nested rows in one step.
func SanitizeRows(rows [][]int) (Grid, error) {
	g, err := Parse(rows)
	if err != nil {
		return Grid{}, err
	}
	return Sanitize(g)
}

// CountMines returns how many of the up to 8 neighbours of (row, col) hold
// the sanitized mine marker. The cell itself is not counted.
func CountMines(g Grid, row, col int) (int, error) {
	if !g.Contains(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return g.countMines(row, col), nil
}

func (g Grid) countMines(row, col int) int {
	n := 0
	for _, d := range neighbourOffsets {
		r, c := row+d[0], col+d[1]
		if g.Contains(r, c) && g.at(r, c).IsMine() {
			n++
		}
	}
	return n
}

// Annotate returns a new grid in which mines keep the value 9 and every
// other cell holds its adjacent mine count.
func Annotate(g Grid) Grid {
	cells := make([]Cell, len(g.cells))
	for i, c := range g.cells {
		if c.IsMine() {
			cells[i] = Mine
			continue
		}
		cells[i] = Cell(g.countMines(i/g.cols, i%g.cols))
	}
	return Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// LoadFile reads a raw board from a YAML or JSON file.
// The file holds a sequence of integer rows, e.g. [[0, 1], [1, 0]].
func LoadFile(path string) (Grid, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided board path is intentional
	if err != nil {
		return Grid{}, fmt.Errorf("failed to read board file: %w", err)
	}

	var g Grid
	if err := yaml.Unmarshal(data, &g); err != nil {
		return Grid{}, fmt.Errorf("failed to parse board file %s: %w", path, err)
	}
	return g, nil
}
