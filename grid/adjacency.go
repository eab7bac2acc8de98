package grid

// Adjacency maps each open cell that has at least one open orthogonal
// neighbor to that neighbor list. Lists are stored in a flat slice indexed
// by row-major cell index; blocked and isolated cells hold nil.
// It is read-only once built by Parse; the zero value has no cells.
type Adjacency struct {
	grid  *Grid
	lists [][]Coordinate
	count int
}

// Has reports whether c has an adjacency entry.
func (a *Adjacency) Has(c Coordinate) bool {
	if a.grid == nil || !a.grid.InBounds(c) {
		return false
	}
	return a.lists[a.grid.Index(c)] != nil
}

// Neighbors returns the open neighbors of c in up, down, left, right order,
// or nil if c has no entry. The returned slice must not be modified.
func (a *Adjacency) Neighbors(c Coordinate) []Coordinate {
	if a.grid == nil || !a.grid.InBounds(c) {
		return nil
	}
	return a.lists[a.grid.Index(c)]
}

// Adjacent reports whether to is listed among the neighbors of from.
func (a *Adjacency) Adjacent(from, to Coordinate) bool {
	for _, n := range a.Neighbors(from) {
		if n == to {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (a *Adjacency) Len() int { return a.count }

// Coordinates returns every key in row-major order.
// Complexity: O(R×C).
func (a *Adjacency) Coordinates() []Coordinate {
	out := make([]Coordinate, 0, a.count)
	for i, l := range a.lists {
		if l != nil {
			out = append(out, a.grid.Coordinate(i))
		}
	}
	return out
}

// Grid returns the grid the mapping was built from, or nil for the zero value.
func (a *Adjacency) Grid() *Grid { return a.grid }
