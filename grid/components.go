package grid

// Components finds all 4-connected regions of passable cells.
// Returns a slice of components; each component lists its cells in BFS
// order starting from the region's first cell in row-major order.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Components() [][]Cell {
	seen := make([]bool, g.Size())
	var comps [][]Cell

	for i := range g.blocked {
		if g.blocked[i] || seen[i] {
			continue
		}
		seen[i] = true
		comp := []Cell{g.CellAt(i)}
		for qi := 0; qi < len(comp); qi++ {
			for _, n := range g.Neighbors(comp[qi]) {
				ni := g.Index(n)
				if !seen[ni] {
					seen[ni] = true
					comp = append(comp, n)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// Region returns the 4-connected component containing c, or nil if c is
// not passable.
func (g *Grid) Region(c Cell) []Cell {
	if !g.IsPassable(c) {
		return nil
	}
	seen := make([]bool, g.Size())
	seen[g.Index(c)] = true
	region := []Cell{c}
	for qi := 0; qi < len(region); qi++ {
		for _, n := range g.Neighbors(region[qi]) {
			ni := g.Index(n)
			if !seen[ni] {
				seen[ni] = true
				region = append(region, n)
			}
		}
	}
	return region
}

// Connected reports whether a and b are passable and lie in the same region.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.IsPassable(a) || !g.IsPassable(b) {
		return false
	}
	for _, c := range g.Region(a) {
		if c == b {
			return true
		}
	}
	return false
}
