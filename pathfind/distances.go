package pathfind

import (
	"github.com/katalvlaran/gridpath/grid"
)

// Distances labels every cell reachable from 'from' with its step distance,
// exploring the whole component without stopping early. The origin maps to 0.
// Returns ErrLayoutNil for a nil layout and ErrStartNotFound when 'from'
// lies off the map or on a blocked cell.
//
// Complexity: O(R·C) time and memory.
func Distances(l *grid.Layout, from grid.Coordinate) (map[grid.Coordinate]int, error) {
	if l == nil || l.Adjacency == nil || l.Adjacency.Grid() == nil {
		return nil, ErrLayoutNil
	}
	adj := l.Adjacency
	g := adj.Grid()
	if !openCell(g, from) {
		return nil, ErrStartNotFound
	}

	dist := map[grid.Coordinate]int{from: 0}
	queue := []grid.Coordinate{from}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range adj.Neighbors(u) {
			if _, seen := dist[v]; seen {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}
	return dist, nil
}
