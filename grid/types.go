package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidCell indicates a character outside the grid alphabet.
	ErrInvalidCell = errors.New("grid: invalid cell character")
	// ErrBadCoordinate indicates a malformed "r,c" identifier.
	ErrBadCoordinate = errors.New("grid: malformed coordinate")
)

// Cell characters.
const (
	Blocked byte = '#'
	Open    byte = '.'
	Start   byte = 'S'
	Target  byte = 'T'
)

// Coordinate identifies a single cell by row and column.
// The zero value is the top-left cell.
type Coordinate struct {
	Row, Col int
}

// String renders the coordinate as "row,col".
func (c Coordinate) String() string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// ParseCoordinate is the inverse of Coordinate.String.
func ParseCoordinate(s string) (Coordinate, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q: %v", ErrBadCoordinate, s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q: %v", ErrBadCoordinate, s, err)
	}
	return Coordinate{Row: r, Col: c}, nil
}

// offsets lists the orthogonal moves in exploration order: up, down, left, right.
var offsets = [4]Coordinate{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an immutable rectangular character map.
type Grid struct {
	rows  []string
	nrows int
	ncols int
}

// New validates rows and returns a Grid holding a private copy of them.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrInvalidCell.
// Complexity: O(R×C).
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c := 0; c < w; c++ {
			switch row[c] {
			case Blocked, Open, Start, Target:
			default:
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrInvalidCell, row[c], r, c)
			}
		}
	}
	// strings are immutable; copying the slice header array is enough
	cp := make([]string, len(rows))
	copy(cp, rows)

	return &Grid{rows: cp, nrows: len(cp), ncols: w}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.nrows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.ncols }

// InBounds reports whether c lies within the grid boundaries.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.nrows && c.Col >= 0 && c.Col < g.ncols
}

// At returns the character at c. c must be in bounds.
func (g *Grid) At(c Coordinate) byte {
	return g.rows[c.Row][c.Col]
}

// Index maps c to its row-major index: Row*Cols + Col.
func (g *Grid) Index(c Coordinate) int {
	return c.Row*g.ncols + c.Col
}

// Coordinate converts a row-major index back to a Coordinate.
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.ncols, Col: idx % g.ncols}
}

// Size returns Rows*Cols.
func (g *Grid) Size() int { return g.nrows * g.ncols }

// String joins the rows with newlines.
func (g *Grid) String() string {
	return strings.Join(g.rows, "\n")
}
