// Command gridpath finds shortest paths on occupancy grids.
//
//	gridpath run --grid maze.txt --strategy dijkstra
//	gridpath run --builtin box --heuristic euclidean --format dot
//	gridpath compare --grid maze.yaml --start 0,0 --goal 19,19
//
// Exit status is 0 when a path was found, 2 when the goal is unreachable
// and 1 on any other error.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/safing/portbase/log"
)

// Exit codes.
const (
	exitOK      = 0
	exitError   = 1
	exitNoPath  = 2
	programName = "gridpath"
)

// errNoPath is returned by commands whose search did not reach the goal.
var errNoPath = errors.New("no path found")

func main() {
	code := execute(os.Args[1:], os.Stdout, os.Stderr)
	log.Shutdown()
	os.Exit(code)
}

// execute runs the command tree with args and maps the outcome to an exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errNoPath):
		return exitNoPath
	default:
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return exitError
	}
}
