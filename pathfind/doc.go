// Package pathfind finds the shortest route between the 'S' and 'T' markers
// of a grid using breadth-first search over the grid's 4-directional
// adjacency.
//
// What
//
//   - ShortestPath parses the rows once with grid.Parse and returns the
//     fewest-step Path from start to target, both inclusive.
//   - Search runs the same search on an already parsed grid.Layout and
//     returns a Result with the Path and traversal counters.
//   - Distances labels every cell reachable from a coordinate with its
//     step distance.
//   - Supports functional hooks at three stages: OnEnqueue (a cell joins
//     the frontier), OnDequeue (a cell leaves it) and OnVisit (a cell is
//     expanded; may abort the search with an error).
//   - Honors a MaxDepth bound (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	grid.Parse lists neighbors in up, down, left, right order and the search
//	enqueues them in that order, so among equally short routes the same one
//	is returned on every call.
//
// Degenerate inputs
//
//   - No 'S' or no 'T'                 → ErrNoPath
//   - 'S' walled in on every side      → ErrNoPath
//   - start or target off the map or on a blocked cell (hand-built
//     Layout)                          → ErrNoPath
//   - start coordinate equals target   → one-element Path, no search
//
// Complexity (R×C grid)
//
//   - Time:   O(R·C)   (each cell enqueued once, at most 4 edges per cell)
//   - Memory: O(R·C)   (adjacency, predecessor table, queue)
//
// Usage
//
//	path, err := pathfind.ShortestPath([]string{
//	    "S.#",
//	    "..T",
//	})
//	if errors.Is(err, pathfind.ErrNoPath) {
//	    // unreachable or missing marker
//	}
//
// Errors
//
//   - ErrNoPath           no route exists, or a marker is missing.
//   - ErrStartNotFound    Distances origin is off the map or blocked.
//   - ErrLayoutNil        nil layout, or a layout not built by grid.Parse,
//     passed to Search or Distances.
//   - ErrOptionViolation  invalid Option (e.g. negative MaxDepth).
//   - grid.ErrEmptyGrid, grid.ErrNonRectangular, grid.ErrInvalidCell
//     for malformed input rows.
//   - Wrapped user-supplied hook errors from OnVisit.
package pathfind
