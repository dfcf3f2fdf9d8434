package main

import (
	"fmt"
	"io"

	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/render"
	"github.com/katalvlaran/gridsearch/search"
)

func newRunCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search a path with one strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := cfg.load()
			if err != nil {
				return err
			}
			s, err := search.ParseStrategy(cfg.strategy)
			if err != nil {
				return err
			}

			res, err := search.Find(p.g, p.start, p.goal, append(p.opts, search.WithStrategy(s))...)
			if err != nil {
				return err
			}
			log.Debugf("%s: %s finished in %s", programName, s, res.Elapsed)

			if err := report(cmd.OutOrStdout(), p, res, cfg.format); err != nil {
				return err
			}
			if !res.Found {
				return errNoPath
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfg.strategy, "strategy", "s", search.AStar.String(), "search strategy (dijkstra|astar)")
	return cmd
}

// report prints one result the way the classic demo programs did: verdict,
// cost in cells, visited count against the cells reachable from start, the
// map and the elapsed time.
func report(w io.Writer, p *problem, res *search.Result, format string) error {
	fmt.Fprintf(w, "Strategy: %s\n", res.Strategy)
	if res.Found {
		fmt.Fprintln(w, "Path found")
		fmt.Fprintf(w, "Path cost: %d\n", res.Path.Len())
	} else {
		fmt.Fprintln(w, "No path found")
	}
	fmt.Fprintf(w, "Visited nodes: %d\n", res.VisitedCount)
	fmt.Fprintf(w, "Reachable cells: %d\n", p.reachable)

	switch format {
	case formatASCII:
		if err := render.WriteASCII(w, p.g, res.Path, res.Visited); err != nil {
			return err
		}
	case formatDOT:
		dot, err := render.DOT(p.g, res.Path, res.Visited)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, dot)
	}

	_, err := fmt.Fprintf(w, "Elapsed: %s\n", res.Elapsed)
	return err
}
