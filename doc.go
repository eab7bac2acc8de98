// Package gridpath finds the shortest route between two marked cells of a
// character grid.
//
// What is gridpath?
//
//	A small, dependency-light library that splits the job in two:
//		• grid/     — validate a map, mark 'S' and 'T', build 4-way adjacency
//		• pathfind/ — breadth-first search, route reconstruction, distance labels
//
// Grid alphabet:
//
//	#  blocked
//	.  open
//	S  start
//	T  target
//
// Quick example:
//
//	S . #
//	. . T
//
//	path, err := pathfind.ShortestPath([]string{"S.#", "..T"})
//	// path.Strings() == [0,0 1,0 1,1 1,2]
//
// Every search is local to its call: no shared state, safe to run from many
// goroutines at once.
package gridpath
