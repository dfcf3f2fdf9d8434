package search

import "github.com/r3labs/diff/v3"

// Summary is the engine-independent digest of a Result.
type Summary struct {
	Found   bool `diff:"found"`
	Cost    int  `diff:"cost"`
	Visited int  `diff:"visited"`
}

// Summary returns the digest of r. Cost is -1 when no path was found.
func (r *Result) Summary() Summary {
	return Summary{Found: r.Found, Cost: r.Cost(), Visited: r.VisitedCount}
}

// Differences lists the summary fields on which the engines disagree, each
// change going from the Dijkstra value to the A* value. On any solvable
// query "visited" differs: A* stops before closing the goal.
func (c *Comparison) Differences() (diff.Changelog, error) {
	return diff.Diff(c.Dijkstra.Summary(), c.AStar.Summary())
}
