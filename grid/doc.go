// Package grid turns a rectangular character map into an adjacency graph
// suitable for unweighted shortest-path search.
//
// What:
//
//   - Grid wraps an immutable []string map drawn from the alphabet
//     '#' (blocked), '.' (open), 'S' (start) and 'T' (target).
//   - Coordinate names a cell by (Row, Col) and compares structurally.
//   - Parse scans the grid once, records the start and target markers and
//     builds an Adjacency of 4-directional open neighbors.
//
// Why:
//
//   - Separates map scanning from search so the search only ever sees a
//     read-only neighbor table.
//   - Fixed neighbor order (up, down, left, right) keeps every consumer of
//     the Adjacency deterministic.
//
// Complexity:
//
//   - New:   O(R×C) time and memory (validation + copy).
//   - Parse: O(R×C×4) time, O(R×C) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell: a character outside the grid alphabet.
//
// A missing 'S' or 'T' is not an error; Layout reports it through
// HasStart and HasTarget.
package grid
