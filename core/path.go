// File: path.go
// Role: Path value type and validation against a Graph.
// Determinism:
//   - ValidatePath reports the first violation in path order.
// Concurrency:
//   - ValidatePath holds the graph read lock for the whole scan.

package core

import "fmt"

// Path is a simple path and its accumulated weight: the sum of the weights of
// consecutive-vertex edges. A single vertex has weight 0; an empty Path
// (nil Vertices) means "no path".
type Path struct {
	Vertices []int
	Weight   float64
}

// Len returns the number of vertices on the path.
func (p Path) Len() int { return len(p.Vertices) }

// Empty reports whether the path has no vertices.
func (p Path) Empty() bool { return len(p.Vertices) == 0 }

// Clone returns a copy of p that shares no memory with it.
func (p Path) Clone() Path {
	if p.Vertices == nil {
		return Path{Weight: p.Weight}
	}
	vs := make([]int, len(p.Vertices))
	copy(vs, p.Vertices)

	return Path{Vertices: vs, Weight: p.Weight}
}

// ValidatePath checks that vertices form a simple path in g and returns the
// recomputed weight.
//
// Errors (wrapped with the offending position):
//   - ErrEmptyPath       if len(vertices) == 0.
//   - ErrVertexNotFound  if an id is outside [0, Order()).
//   - ErrDuplicateVertex if an id appears twice.
//   - ErrMissingEdge     if two consecutive ids are not adjacent.
//
// Complexity: O(len(vertices)).
func ValidatePath(g *Graph, vertices []int) (float64, error) {
	if len(vertices) == 0 {
		return 0, ErrEmptyPath
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adj)
	seen := make([]bool, n)
	var total float64
	for i, v := range vertices {
		if v < 0 || v >= n {
			return 0, fmt.Errorf("core: path[%d]=%d: %w", i, v, ErrVertexNotFound)
		}
		if seen[v] {
			return 0, fmt.Errorf("core: path[%d]=%d: %w", i, v, ErrDuplicateVertex)
		}
		seen[v] = true
		if i == 0 {
			continue
		}
		w, ok := g.weightLocked(vertices[i-1], v)
		if !ok {
			return 0, fmt.Errorf("core: path[%d..%d]=(%d,%d): %w", i-1, i, vertices[i-1], v, ErrMissingEdge)
		}
		total += w
	}

	return total, nil
}

// NewPath validates vertices against g and returns the Path with its weight.
func NewPath(g *Graph, vertices []int) (Path, error) {
	w, err := ValidatePath(g, vertices)
	if err != nil {
		return Path{}, err
	}
	vs := make([]int, len(vertices))
	copy(vs, vertices)

	return Path{Vertices: vs, Weight: w}, nil
}
