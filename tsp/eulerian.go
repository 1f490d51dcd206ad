package tsp

// EulerianCircuit returns a closed walk starting and ending at start that uses
// every edge of g exactly once. g must be connected (on its non-isolated
// vertices) with all degrees even; those are invariants of the Christofides
// multigraph and are not re-checked.
//
// Algorithm (Hierholzer, iterative):
//   - path is the explicit stack of the walk being extended.
//   - At the top vertex, take its most recently added unused edge, mark it removed
//     (one arena flag covers both endpoints) and push the neighbour.
//   - A vertex with no unused edges is popped into done; the walk backtracks to
//     the previous vertex on path.
//   - done is produced in reverse and flipped at the end.
//
// next[v] is a cursor into g.Incident(v) that only moves towards the front, so
// consumed edges are skipped once: O(E) total. Edges are consumed during the
// call; g cannot be walked again afterwards.
//
// A graph without edges yields [start].
func EulerianCircuit(g *Multigraph, start int) []int {
	n := g.Order()
	next := make([]int, n)
	for v := 0; v < n; v++ {
		next[v] = g.Degree(v)
	}

	var (
		path = make([]int, 1, g.EdgeCount()+1)
		done = make([]int, 0, g.EdgeCount()+1)
		u    int
		id   int
		inc  []int
	)
	path[0] = start

	for len(path) > 0 {
		u = path[len(path)-1]
		inc = g.Incident(u)

		// Skip edges already consumed from the other endpoint.
		for next[u] > 0 && g.edges[inc[next[u]-1]].removed {
			next[u]--
		}

		if next[u] == 0 {
			done = append(done, u)
			path = path[:len(path)-1]
			continue
		}

		next[u]--
		id = inc[next[u]]
		g.edges[id].removed = true
		path = append(path, g.edges[id].Other(u))
	}

	for i, j := 0, len(done)-1; i < j; i, j = i+1, j-1 {
		done[i], done[j] = done[j], done[i]
	}

	return done
}
