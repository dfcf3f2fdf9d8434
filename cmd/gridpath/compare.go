package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/search"
)

func newCompareCmd(cfg *config) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run Dijkstra and A* concurrently and compare them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := cfg.load()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			cmp, err := search.Compare(ctx, p.g, p.start, p.goal, p.opts...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, res := range []*search.Result{cmp.Dijkstra, cmp.AStar} {
				if err := report(w, p, res, cfg.format); err != nil {
					return err
				}
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "Agree: %t\n", cmp.Agree())
			if !cmp.Agree() {
				log.Warningf("%s: strategies disagree: dijkstra cost %d, astar cost %d",
					programName, cmp.Dijkstra.Cost(), cmp.AStar.Cost())
			}

			changes, err := cmp.Differences()
			if err != nil {
				return err
			}
			for _, ch := range changes {
				fmt.Fprintf(w, "  %s: %v (dijkstra) -> %v (astar)\n", strings.Join(ch.Path, "."), ch.From, ch.To)
			}

			if !cmp.Dijkstra.Found {
				return errNoPath
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "give up waiting after this long (0 = no limit)")
	return cmd
}
