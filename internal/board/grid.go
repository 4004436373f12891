package board

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Cell is the value of a single board cell.
type Cell int

const (
	// Empty is a cell without a mine, in both raw and sanitized boards.
	Empty Cell = 0

	// RawMine marks a mine in a raw board.
	RawMine Cell = 1

	// Mine marks a mine in sanitized and annotated boards.
	Mine Cell = 9
)

// IsMine reports whether the cell holds the sanitized mine marker.
func (c Cell) IsMine() bool {
	return c == Mine
}

// Grid is an immutable rectangular matrix of cells.
// The zero value is the empty 0x0 grid.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// Parse builds a Grid from nested rows.
// It fails with ErrNotRectangular when the rows differ in length.
// Cell values are not checked here; see Sanitize.
func Parse(rows [][]int) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, nil
	}

	cols := len(rows[0])
	cells := make([]Cell, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, expected %d",
				ErrNotRectangular, i, len(row), cols)
		}
		for _, v := range row {
			cells = append(cells, Cell(v))
		}
	}

	return Grid{rows: len(rows), cols: cols, cells: cells}, nil
}

// MustParse is like Parse but panics on error.
// It is meant for compiled-in literals.
func MustParse(rows [][]int) Grid {
	g, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	return g.cols
}

// Contains reports whether (row, col) lies inside the grid.
func (g Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at (row, col).
func (g Grid) At(row, col int) (Cell, error) {
	if !g.Contains(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return g.at(row, col), nil
}

// at returns the cell at (row, col) without bounds checking.
func (g Grid) at(row, col int) Cell {
	return g.cells[row*g.cols+col]
}

// MineCount returns the number of sanitized mine markers.
func (g Grid) MineCount() int {
	n := 0
	for _, c := range g.cells {
		if c.IsMine() {
			n++
		}
	}
	return n
}

// Ints returns a fresh copy of the grid as nested rows.
func (g Grid) Ints() [][]int {
	out := make([][]int, g.rows)
	for i := range out {
		row := make([]int, g.cols)
		for j := range row {
			row[j] = int(g.at(i, j))
		}
		out[i] = row
	}
	return out
}

// String renders one row per line, e.g. "[1, 9, 2, 1]".
func (g Grid) String() string {
	var sb strings.Builder
	for i := 0; i < g.rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(g.RowString(i))
	}
	return sb.String()
}

// RowString renders a single row as "[a, b, c]".
// An index outside the grid yields "[]".
func (g Grid) RowString(row int) string {
	if row < 0 || row >= g.rows {
		return "[]"
	}
	parts := make([]string, g.cols)
	for j := range parts {
		parts[j] = strconv.Itoa(int(g.at(row, j)))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// MarshalJSON encodes the grid as [[int]].
func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Ints())
}

// UnmarshalJSON decodes [[int]] and enforces rectangularity.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]int
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	parsed, err := Parse(rows)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// MarshalYAML encodes the grid as a sequence of sequences.
func (g Grid) MarshalYAML() (interface{}, error) {
	return g.Ints(), nil
}

// UnmarshalYAML decodes a sequence of integer sequences.
func (g *Grid) UnmarshalYAML(value *yaml.Node) error {
	var rows [][]int
	if err := value.Decode(&rows); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	parsed, err := Parse(rows)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
