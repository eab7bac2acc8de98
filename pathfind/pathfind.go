package pathfind

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Predecessor table markers.
const (
	unvisited = -2
	none      = -1
)

// queueItem pairs a cell index with its distance from the start.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable search state for one invocation.
type walker struct {
	adj    *grid.Adjacency
	g      *grid.Grid
	opts   Options
	queue  []queueItem
	pred   []int
	target int
	res    *Result
}

// ShortestPath parses rows and returns the fewest-step Path from 'S' to 'T'.
// Returns a grid validation error for malformed rows, ErrNoPath when no
// route exists or a marker is missing, ErrOptionViolation for bad options,
// or any user-supplied hook error.
func ShortestPath(rows []string, opts ...Option) (Path, error) {
	l, err := grid.ParseRows(rows)
	if err != nil {
		return nil, err
	}
	res, err := Search(l, opts...)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Search runs breadth-first search over an already parsed layout, from
// l.Start to l.Target.
func Search(l *grid.Layout, opts ...Option) (*Result, error) {
	if l == nil || l.Adjacency == nil || l.Adjacency.Grid() == nil {
		return nil, ErrLayoutNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !l.HasStart || !l.HasTarget {
		return nil, ErrNoPath
	}
	// hand-built layouts may point off the map or into a wall
	g := l.Adjacency.Grid()
	if !openCell(g, l.Start) || !openCell(g, l.Target) {
		return nil, ErrNoPath
	}
	if l.Start == l.Target {
		return &Result{Path: Path{l.Start}, Discovered: 1}, nil
	}
	// isolated start: nothing to explore
	if !l.Adjacency.Has(l.Start) {
		return nil, ErrNoPath
	}

	w := &walker{
		adj:    l.Adjacency,
		g:      g,
		opts:   o,
		queue:  make([]queueItem, 0, l.Adjacency.Len()),
		pred:   make([]int, g.Size()),
		target: g.Index(l.Target),
		res:    &Result{},
	}
	for i := range w.pred {
		w.pred[i] = unvisited
	}

	// Seed queue with start (no predecessor)
	start := g.Index(l.Start)
	w.pred[start] = none
	w.res.Discovered = 1
	w.enqueue(start, 0)

	found, err := w.loop()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoPath
	}
	w.res.Path = w.reconstruct()

	return w.res, nil
}

// openCell reports whether c lies on the map and is not blocked.
func openCell(g *grid.Grid, c grid.Coordinate) bool {
	return g.InBounds(c) && g.At(c) != grid.Blocked
}

func (w *walker) enqueue(idx, depth int) {
	w.opts.OnEnqueue(w.g.Coordinate(idx), depth)
	w.queue = append(w.queue, queueItem{idx: idx, depth: depth})
}

func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(w.g.Coordinate(item.idx), item.depth)
	return item
}

// loop processes the frontier until the target is discovered, the queue
// drains, or a hook fails.
func (w *walker) loop() (bool, error) {
	for len(w.queue) > 0 {
		item := w.dequeue()
		w.res.Expanded++

		cur := w.g.Coordinate(item.idx)
		if err := w.opts.OnVisit(cur, item.depth); err != nil {
			return false, fmt.Errorf("pathfind: OnVisit error at %v: %w", cur, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj.Neighbors(cur) {
			v := w.g.Index(nbr)
			if w.pred[v] != unvisited {
				continue
			}
			w.pred[v] = item.idx
			w.res.Discovered++
			if v == w.target {
				return true, nil
			}
			w.enqueue(v, next)
		}
	}
	return false, nil
}

// reconstruct walks predecessors back from the target and reverses the
// collected cells into start → target order.
func (w *walker) reconstruct() Path {
	var path Path
	for at := w.target; at != none; at = w.pred[at] {
		path = append(path, w.g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
