package clique

// unionFind is a disjoint-set forest over the indices 0..n-1 with path
// compression and union by size.
type unionFind struct {
	parent []int
	size   []int
}

// newUnionFind creates a unionFind where every element is its own set.
func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
		size[i] = 1
	}
	return &unionFind{parent: parent, size: size}
}

// find returns the root of the set containing x, with path compression.
func (uf *unionFind) find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// union merges the sets containing x and y by attaching the smaller tree
// under the larger. Returns the new root.
func (uf *unionFind) union(x, y int) int {
	rootX := uf.find(x)
	rootY := uf.find(y)
	if rootX == rootY {
		return rootX
	}
	if uf.size[rootX] < uf.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	uf.size[rootX] += uf.size[rootY]
	return rootX
}

// components returns the members of every set, each ascending. Sets are
// ordered by their smallest member.
func (uf *unionFind) components() [][]int {
	index := make(map[int]int)
	var out [][]int
	for x := range uf.parent {
		r := uf.find(x)
		c, ok := index[r]
		if !ok {
			c = len(out)
			index[r] = c
			out = append(out, make([]int, 0, uf.size[r]))
		}
		out[c] = append(out[c], x)
	}
	return out
}
