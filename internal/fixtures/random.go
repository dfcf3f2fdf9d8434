// Package fixtures holds the reference mazes with known answers (also the
// CLI's built-in maps), seeded random grids and a plain BFS oracle used to
// cross-check the engines.
package fixtures

import (
	"sync"

	"github.com/brianvoe/gofakeit"
)

// fakeLock serializes use of the global gofakeit source so seeded grids are
// reproducible even when tests run in parallel.
var fakeLock sync.Mutex

// Random returns a rows×cols maze (0 = passable, 1 = blocked) in which each
// cell is blocked with probability blockedPct/100. The same seed always
// yields the same maze. The corners (0,0) and (rows-1,cols-1) are kept open.
func Random(seed int64, rows, cols, blockedPct int) [][]int {
	fakeLock.Lock()
	defer fakeLock.Unlock()

	gofakeit.Seed(seed)
	out := make([][]int, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			if gofakeit.Number(0, 99) < blockedPct {
				out[r][c] = 1
			}
		}
	}
	out[0][0] = 0
	out[rows-1][cols-1] = 0

	return out
}

// Open returns a rows×cols maze with no blocked cells.
func Open(rows, cols int) [][]int {
	out := make([][]int, rows)
	for r := range out {
		out[r] = make([]int, cols)
	}
	return out
}

// BFSSteps returns the number of orthogonal unit steps between (sr,sc) and
// (gr,gc) in maze, or -1 when either endpoint is blocked or no route exists.
func BFSSteps(maze [][]int, sr, sc, gr, gc int) int {
	rows, cols := len(maze), len(maze[0])
	if maze[sr][sc] != 0 || maze[gr][gc] != 0 {
		return -1
	}
	dist := make([]int, rows*cols)
	for i := range dist {
		dist[i] = -1
	}
	dist[sr*cols+sc] = 0
	queue := []int{sr*cols + sc}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ur, uc := u/cols, u%cols
		if ur == gr && uc == gc {
			return dist[u]
		}
		for _, d := range [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
			vr, vc := ur+d[0], uc+d[1]
			if vr < 0 || vr >= rows || vc < 0 || vc >= cols || maze[vr][vc] != 0 {
				continue
			}
			v := vr*cols + vc
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return -1
}
