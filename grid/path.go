package grid

import "strings"

// Path is an ordered sequence of cells from start to goal inclusive.
// A nil or empty Path means "no path".
type Path []Cell

// Len returns the number of cells on the path.
func (p Path) Len() int { return len(p) }

// Cost returns the number of unit steps: Len()-1, or 0 for an empty path.
func (p Path) Cost() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Empty reports whether the path carries no cells.
func (p Path) Empty() bool { return len(p) == 0 }

// Start returns the first cell. ok is false for an empty path.
func (p Path) Start() (c Cell, ok bool) {
	if len(p) == 0 {
		return Cell{}, false
	}
	return p[0], true
}

// Goal returns the last cell. ok is false for an empty path.
func (p Path) Goal() (c Cell, ok bool) {
	if len(p) == 0 {
		return Cell{}, false
	}
	return p[len(p)-1], true
}

// Contiguous reports whether each consecutive pair differs by exactly one
// orthogonal step. Empty and single-cell paths are contiguous.
func (p Path) Contiguous() bool {
	for i := 1; i < len(p); i++ {
		if !p[i-1].Adjacent(p[i]) {
			return false
		}
	}
	return true
}

// Contains reports whether c appears on the path.
// Complexity: O(Len).
func (p Path) Contains(c Cell) bool {
	for _, x := range p {
		if x == c {
			return true
		}
	}
	return false
}

// Reverse reverses the path in place.
func (p Path) Reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// String renders the path as "(r,c)->(r,c)->...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, "->")
}
