package pathfind

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for path search.
var (
	// ErrNoPath is returned when the target cannot be reached from the start,
	// or when either marker is absent from the grid.
	ErrNoPath = errors.New("pathfind: no path")

	// ErrStartNotFound is returned by Distances when the origin is not an open cell.
	ErrStartNotFound = errors.New("pathfind: start coordinate not found")

	// ErrLayoutNil is returned if a nil layout is passed to Search or Distances.
	ErrLayoutNil = errors.New("pathfind: layout is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// Option configures the search via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when the search starts.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// OnEnqueue is called when a cell joins the frontier.
	// Receives the cell and its distance from the start.
	OnEnqueue func(c grid.Coordinate, depth int)

	// OnDequeue is called when a cell leaves the frontier.
	OnDequeue func(c grid.Coordinate, depth int)

	// OnVisit is called before a cell's neighbors are examined. If it
	// returns an error, the search aborts and propagates that error.
	OnVisit func(c grid.Coordinate, depth int) error

	// MaxDepth, if > 0, rejects routes longer than this many steps.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with no depth limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(grid.Coordinate, int) {},
		OnDequeue: func(grid.Coordinate, int) {},
		OnVisit:   func(grid.Coordinate, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c grid.Coordinate, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c grid.Coordinate, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(c grid.Coordinate, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the search to routes of at most d steps.
//
//	d > 0: limit to d steps
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Path is an ordered route of coordinates from start to target, inclusive.
type Path []grid.Coordinate

// Len returns the number of steps (edges) in the path.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Strings renders each coordinate as "row,col".
func (p Path) Strings() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.String()
	}
	return out
}

// Result holds the outcome of a successful search:
//   - Path: route from start to target.
//   - Expanded: number of cells taken off the frontier.
//   - Discovered: number of cells that received a predecessor, start included.
type Result struct {
	Path       Path
	Expanded   int
	Discovered int
}
