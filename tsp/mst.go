package tsp

import "math"

// MinimumSpanningTree builds a minimum spanning tree of the complete graph
// described by m, rooted at vertex 0, and returns it as a Multigraph with
// exactly n-1 edges (none for n < 2).
//
// Algorithm (Prim, dense):
//   - key[v] is the cheapest known connection of v to the growing tree,
//     parent[v] the tree vertex providing it.
//   - Each round selects the unvisited vertex with the smallest key; scanning in
//     ascending index order with a strict comparison breaks ties to the lowest index.
//   - Every non-root vertex then contributes the edge v–parent[v] with weight m[v][parent[v]].
//
// The result is deterministic for a fixed matrix.
//
// Complexity: O(n²) time, O(n) extra space.
func MinimumSpanningTree(m CostMatrix) *Multigraph {
	n := len(m)
	g := NewMultigraph(n)
	if n == 0 {
		return g
	}

	var (
		key     = make([]int, n)
		parent  = make([]int, n)
		visited = make([]bool, n)
		u, v    int
	)
	for v = range key {
		key[v] = math.MaxInt
		parent[v] = -1
	}
	key[0] = 0

	for it := 0; it < n; it++ {
		// Unvisited vertex with minimal key; lowest index wins ties.
		u = -1
		for v = 0; v < n; v++ {
			if !visited[v] && (u < 0 || key[v] < key[u]) {
				u = v
			}
		}
		visited[u] = true

		row := m[u]
		for v = 0; v < n; v++ {
			if !visited[v] && row[v] < key[v] {
				key[v] = row[v]
				parent[v] = u
			}
		}
	}

	for v = 1; v < n; v++ {
		g.AddEdge(v, parent[v], m[v][parent[v]])
	}

	return g
}
