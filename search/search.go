package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/dijkstra"
	"github.com/katalvlaran/gridsearch/grid"
)

// Find searches a path from start to goal on g with the configured strategy.
//
// Errors: ErrNilGrid, grid.ErrInvalidCoordinate (checked before any search
// work), ErrUnknownStrategy. An unreachable goal is not an error.
func Find(g *grid.Grid, start, goal grid.Cell, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return run(g, start, goal, cfg.Strategy, cfg)
}

// Compare runs Dijkstra and A* concurrently on the same grid. The grid is
// only read; each engine owns its own frontier and bookkeeping.
// ctx cancels waiting for the results, not the engines themselves; an
// already cancelled ctx returns its error before any search starts.
func Compare(ctx context.Context, g *grid.Grid, start, goal grid.Cell, opts ...Option) (*Comparison, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.ValidateEndpoints(start, goal); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		cmp Comparison
		eg  errgroup.Group
	)
	eg.Go(func() error {
		res, err := run(g, start, goal, Dijkstra, cfg)
		cmp.Dijkstra = res
		return err
	})
	eg.Go(func() error {
		res, err := run(g, start, goal, AStar, cfg)
		cmp.AStar = res
		return err
	})

	done := make(chan error, 1)
	go func() { done <- eg.Wait() }()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case err := <-done:
		if err != nil {
			return nil, err
		}
	}
	return &cmp, nil
}

// run dispatches a single search and times the engine.
func run(g *grid.Grid, start, goal grid.Cell, s Strategy, cfg Options) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.ValidateEndpoints(start, goal); err != nil {
		return nil, err
	}

	began := time.Now()
	switch s {
	case Dijkstra:
		path, field, err := dijkstra.ShortestPath(g, start, goal)
		elapsed := time.Since(began)
		if err != nil && !errors.Is(err, dijkstra.ErrUnreachable) {
			return nil, err
		}
		return &Result{
			Strategy:     Dijkstra,
			Path:         path,
			Found:        err == nil,
			Visited:      field.Visited(),
			VisitedCount: field.VisitedCount(),
			Elapsed:      elapsed,
		}, nil

	case AStar:
		res, err := astar.Search(g, start, goal, astar.WithHeuristic(cfg.Heuristic))
		elapsed := time.Since(began)
		if err != nil {
			return nil, err
		}
		return &Result{
			Strategy:     AStar,
			Path:         res.Path,
			Found:        res.Found,
			Visited:      res.Closed,
			VisitedCount: res.ClosedCount,
			Elapsed:      elapsed,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
}
