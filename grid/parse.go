package grid

// Layout is the result of a single Parse pass.
type Layout struct {
	Adjacency *Adjacency

	Start     Coordinate
	HasStart  bool
	Target    Coordinate
	HasTarget bool
}

// Parse scans g once in row-major order. It records the start and target
// markers (the last one scanned wins if a marker repeats) and builds the
// 4-directional adjacency between non-blocked cells.
//
// Blocked cells get no entry and never appear as neighbors. An open cell
// whose neighbors are all blocked or out of bounds gets no entry either.
//
// Complexity: O(R×C×4) time, O(R×C) memory.
func Parse(g *Grid) *Layout {
	adj := &Adjacency{
		grid:  g,
		lists: make([][]Coordinate, g.Size()),
	}
	l := &Layout{Adjacency: adj}

	for r := 0; r < g.nrows; r++ {
		row := g.rows[r]
		for c := 0; c < g.ncols; c++ {
			cur := Coordinate{Row: r, Col: c}
			switch row[c] {
			case Blocked:
				continue
			case Start:
				l.Start, l.HasStart = cur, true
			case Target:
				l.Target, l.HasTarget = cur, true
			}

			var nbrs []Coordinate
			for _, d := range offsets {
				n := Coordinate{Row: r + d.Row, Col: c + d.Col}
				if !g.InBounds(n) || g.At(n) == Blocked {
					continue
				}
				nbrs = append(nbrs, n)
			}
			if len(nbrs) > 0 {
				adj.lists[g.Index(cur)] = nbrs
				adj.count++
			}
		}
	}

	return l
}

// ParseRows validates rows with New and parses the resulting Grid.
func ParseRows(rows []string) (*Layout, error) {
	g, err := New(rows)
	if err != nil {
		return nil, err
	}
	return Parse(g), nil
}
