package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/safing/portbase/log"
	"github.com/spf13/cobra"
	"github.com/tevino/abool"

	"github.com/katalvlaran/gridsearch/converters"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/internal/fixtures"
	"github.com/katalvlaran/gridsearch/search"
)

// Output formats for the result map.
const (
	formatASCII = "ascii"
	formatDOT   = "dot"
	formatNone  = "none"
)

// config holds the flag values shared by all subcommands.
type config struct {
	gridPath  string
	builtin   string
	start     string
	goal      string
	strategy  string
	heuristic string
	format    string
	logLevel  string
}

// problem is a loaded grid with resolved endpoints.
// reachable is the size of the start's region, 0 when start is invalid.
type problem struct {
	g           *grid.Grid
	start, goal grid.Cell
	reachable   int
	opts        []search.Option
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:           programName,
		Short:         "Shortest paths on 4-connected occupancy grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return startLogging(cfg.logLevel)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&cfg.gridPath, "grid", "g", "", "grid file (.txt, .yaml, .yml or .json)")
	pf.StringVar(&cfg.builtin, "builtin", "walls", "built-in maze used without --grid (walls|box)")
	pf.StringVar(&cfg.start, "start", "", "start cell as row,col (default from file, else 0,0)")
	pf.StringVar(&cfg.goal, "goal", "", "goal cell as row,col (default from file, else bottom-right)")
	pf.StringVar(&cfg.heuristic, "heuristic", "manhattan", "A* heuristic (manhattan|euclidean|zero)")
	pf.StringVarP(&cfg.format, "format", "f", formatASCII, "map output (ascii|dot|none)")
	pf.StringVar(&cfg.logLevel, "log-level", "warning", "log level (trace|debug|info|warning|error|critical)")

	root.AddCommand(newRunCmd(cfg), newCompareCmd(cfg))
	return root
}

// logStarted guards the one-time portbase log.Start.
var logStarted = abool.New()

// startLogging starts portbase logging once and applies level on every call.
func startLogging(level string) error {
	sev := log.ParseLevel(level)
	if sev == 0 {
		return fmt.Errorf("invalid log level %q", level)
	}
	if logStarted.SetToIf(false, true) {
		if err := log.Start(); err != nil {
			logStarted.UnSet()
			return fmt.Errorf("start logging: %w", err)
		}
	}
	log.SetLogLevel(sev)
	return nil
}

// load resolves the grid and endpoints from the flags.
func (cfg *config) load() (*problem, error) {
	doc, source, err := cfg.document()
	if err != nil {
		return nil, err
	}
	g, err := doc.Grid()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	log.Infof("%s: loaded %s grid %dx%d, %d passable cells", programName, source, g.Rows(), g.Cols(), g.PassableCount())

	p := &problem{g: g}
	switch {
	case cfg.start != "":
		if p.start, err = parseCell(cfg.start); err != nil {
			return nil, fmt.Errorf("--start: %w", err)
		}
	case doc.HasStart:
		p.start = doc.Start
	}
	switch {
	case cfg.goal != "":
		if p.goal, err = parseCell(cfg.goal); err != nil {
			return nil, fmt.Errorf("--goal: %w", err)
		}
	case doc.HasGoal:
		p.goal = doc.Goal
	default:
		p.goal = grid.Cell{Row: g.Rows() - 1, Col: g.Cols() - 1}
	}
	p.reachable = len(g.Region(p.start))

	h, err := search.ParseHeuristic(cfg.heuristic)
	if err != nil {
		return nil, err
	}
	p.opts = []search.Option{search.WithHeuristic(h)}

	switch cfg.format {
	case formatASCII, formatDOT, formatNone:
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.format)
	}
	log.Debugf("%s: start %s goal %s heuristic %s", programName, p.start, p.goal, cfg.heuristic)
	return p, nil
}

// document reads --grid, or the built-in maze when no file is given.
func (cfg *config) document() (*converters.Document, string, error) {
	if cfg.gridPath != "" {
		doc, err := converters.LoadFile(cfg.gridPath)
		return doc, cfg.gridPath, err
	}
	switch strings.ToLower(cfg.builtin) {
	case "walls":
		return &converters.Document{
			Cells:    fixtures.Walls(),
			Goal:     grid.Cell{Row: 19, Col: 19},
			HasStart: true,
			HasGoal:  true,
		}, "builtin walls", nil
	case "box":
		return &converters.Document{
			Cells:    fixtures.Box(),
			Start:    grid.Cell{Row: 4, Col: 10},
			Goal:     grid.Cell{Row: 28, Col: 10},
			HasStart: true,
			HasGoal:  true,
		}, "builtin box", nil
	default:
		return nil, "", fmt.Errorf("unknown builtin maze %q", cfg.builtin)
	}
}

// parseCell parses "row,col".
func parseCell(s string) (grid.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Cell{}, fmt.Errorf("cell %q: want row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("cell %q: row: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("cell %q: col: %w", s, err)
	}
	return grid.Cell{Row: r, Col: c}, nil
}
