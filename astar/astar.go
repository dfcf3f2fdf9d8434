package astar

import (
	"github.com/katalvlaran/gridsearch/frontier"
	"github.com/katalvlaran/gridsearch/grid"
)

// noParent marks the root node of the arena.
const noParent = -1

// node is one generated search node. parent indexes the same arena.
type node struct {
	cell   grid.Cell
	g      int
	h, f   float64
	parent int
}

// Search runs A* from start to goal on g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. options must be valid (ErrNilHeuristic).
//  3. start and goal must be in bounds and passable (grid.ErrInvalidCoordinate).
//
// An unreachable goal is reported as Result.Found == false with a nil error.
func Search(g *grid.Grid, start, goal grid.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := g.ValidateEndpoints(start, goal); err != nil {
		return nil, err
	}

	s := &searcher{
		g:      g,
		goal:   goal,
		opts:   cfg,
		arena:  make([]node, 0, g.PassableCount()),
		closed: make([]bool, g.Size()),
		open:   frontier.New[int, float64](g.PassableCount()),
	}
	s.push(start, 0, noParent)

	return s.run(), nil
}

// searcher holds the mutable state of one A* run. It owns every node.
type searcher struct {
	g      *grid.Grid
	goal   grid.Cell
	opts   Options
	arena  []node
	closed []bool
	open   *frontier.Queue[int, float64] // arena index keyed by f
	nClose int
	stale  int
}

// push creates a node for c in the arena and inserts it into the frontier.
func (s *searcher) push(c grid.Cell, g int, parent int) {
	h := s.opts.Heuristic(c, s.goal)
	n := node{cell: c, g: g, h: h, f: float64(g) + h, parent: parent}
	s.arena = append(s.arena, n)
	s.open.Insert(len(s.arena)-1, n.f)
}

// run is the main loop: extract min f, test goal, close, expand.
func (s *searcher) run() *Result {
	for {
		id, _, ok := s.open.ExtractMin()
		if !ok {
			return s.result(nil)
		}
		cur := s.arena[id]

		if cur.cell == s.goal {
			return s.result(s.reconstruct(id))
		}

		ci := s.g.Index(cur.cell)
		if s.closed[ci] {
			s.stale++
			continue
		}
		s.closed[ci] = true
		s.nClose++
		s.opts.OnExpand(cur.cell, cur.g, cur.f)

		for _, nb := range s.g.Neighbors(cur.cell) {
			if s.closed[s.g.Index(nb)] {
				continue
			}
			s.push(nb, cur.g+1, id)
		}
	}
}

// reconstruct walks parent indices from id to the root and returns the
// cells in start→goal order.
func (s *searcher) reconstruct(id int) grid.Path {
	path := make(grid.Path, 0, s.arena[id].g+1)
	for i := id; i != noParent; i = s.arena[i].parent {
		path = append(path, s.arena[i].cell)
	}
	path.Reverse()

	return path
}

// result assembles the Result; path is nil when the goal was not reached.
func (s *searcher) result(path grid.Path) *Result {
	closed := make([]grid.Cell, 0, s.nClose)
	for i, c := range s.closed {
		if c {
			closed = append(closed, s.g.CellAt(i))
		}
	}
	res := &Result{
		Path:        path,
		Found:       path != nil,
		Closed:      closed,
		ClosedCount: s.nClose,
		Generated:   len(s.arena),
		Stale:       s.stale,
	}
	if res.Found {
		res.Cost = path.Cost()
	}
	return res
}
