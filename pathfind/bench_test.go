package pathfind_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfind"
)

// openField returns an n×n grid with 'S' top-left and 'T' bottom-right.
func openField(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat(".", n)
	}
	rows[0] = "S" + rows[0][1:]
	rows[n-1] = rows[n-1][:n-1] + "T"
	return rows
}

// serpentine returns an n×n maze of horizontal walls with alternating gaps,
// forcing the route to sweep every corridor.
func serpentine(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		switch {
		case i%2 == 0:
			rows[i] = strings.Repeat(".", n)
		case (i/2)%2 == 0:
			rows[i] = strings.Repeat("#", n-1) + "."
		default:
			rows[i] = "." + strings.Repeat("#", n-1)
		}
	}
	rows[0] = "S" + rows[0][1:]
	last := n - 1
	if last%2 == 1 {
		last--
	}
	rows[last] = rows[last][:n-1] + "T"
	return rows
}

// BenchmarkShortestPath_OpenField measures parse + search on an empty 200×200 map.
func BenchmarkShortestPath_OpenField(b *testing.B) {
	rows := openField(200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfind.ShortestPath(rows)
	}
}

// BenchmarkShortestPath_Serpentine measures a long forced route on a 201×201 maze.
func BenchmarkShortestPath_Serpentine(b *testing.B) {
	rows := serpentine(201)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfind.ShortestPath(rows)
	}
}

// BenchmarkSearch_Preparsed isolates the search from parsing.
func BenchmarkSearch_Preparsed(b *testing.B) {
	l, err := grid.ParseRows(openField(200))
	if err != nil {
		b.Fatalf("setup ParseRows failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfind.Search(l)
	}
}

// TestSerpentine_Reachable keeps the benchmark fixture honest.
func TestSerpentine_Reachable(t *testing.T) {
	path, err := pathfind.ShortestPath(serpentine(9))
	if err != nil {
		t.Fatalf("serpentine(9): %v", err)
	}
	if path.Len() < 9*4 {
		t.Errorf("serpentine(9) path length = %d; want a sweeping route", path.Len())
	}
}
