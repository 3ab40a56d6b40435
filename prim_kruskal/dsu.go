package prim_kruskal

// DisjointSet is a union-find forest over elements [0, n) with path
// compression and union by rank. Its zero value is not usable; call
// NewDisjointSet.
type DisjointSet struct {
	parent []int
	rank   []int
	sets   int
}

// NewDisjointSet returns n singleton sets. A negative n is treated as 0.
// Complexity: O(n).
func NewDisjointSet(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }

// Rank returns the rank of x's node (meaningful for roots only).
func (d *DisjointSet) Rank(x int) int { return d.rank[x] }

// Find returns the representative of x's set and points every node on the
// walked path directly at the root.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Find(x int) int {
	// First pass: locate the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Second pass: full path compression.
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of x and y. The lower-rank root is attached under the
// higher-rank root; on a tie y's root goes under x's root, whose rank grows
// by one. Returns false, changing nothing, when x and y are already joined:
// for Kruskal this is the cycle-forming edge to skip.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.sets--

	return true
}

// Connected reports whether x and y share a set.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}
