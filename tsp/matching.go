package tsp

// GreedyMatch pairs the odd-degree vertices in odd and adds one edge per pair
// to g, so that every vertex of g ends up with even degree.
//
// Policy:
//   - Repeatedly take the first still-unmatched vertex u (odd is scanned in order).
//   - Among the other unmatched vertices pick the one with the smallest m[u][v];
//     the earliest one in list order wins ties.
//   - Remove both from the unmatched set and add the edge u–v with weight m[u][v].
//
// This is a nearest-partner approximation of a minimum-weight perfect matching;
// it keeps the multigraph Eulerian but does not carry the Christofides 3/2 bound.
// len(odd) is even for any graph, so every vertex finds a partner.
//
// Complexity: O(k²) for k = len(odd).
func GreedyMatch(g *Multigraph, odd []int, m CostMatrix) {
	unmatched := append([]int(nil), odd...)

	var (
		u, v, best, bestCost int
		i                    int
	)
	for len(unmatched) > 1 {
		u = unmatched[0]
		unmatched = unmatched[1:]

		best, bestCost = 0, m[u][unmatched[0]]
		for i = 1; i < len(unmatched); i++ {
			if c := m[u][unmatched[i]]; c < bestCost {
				best, bestCost = i, c
			}
		}
		v = unmatched[best]
		unmatched = removeValue(unmatched, v)

		g.AddEdge(u, v, bestCost)
	}
}

// removeValue deletes the first occurrence of x from s, preserving order.
func removeValue(s []int, x int) []int {
	for i := range s {
		if s[i] == x {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
