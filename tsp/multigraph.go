package tsp

// Edge is one undirected edge of a Multigraph. Each logical edge is stored
// exactly once in the graph's arena; both endpoints refer to it by index, so
// consuming it during Euler extraction flips a single flag.
type Edge struct {
	U, V   int
	Weight int

	removed bool
}

// Other returns the endpoint of e opposite to v.
func (e Edge) Other(v int) int {
	if e.U == v {
		return e.V
	}

	return e.U
}

// Multigraph is an undirected multigraph over vertices 0..n-1 stored as an edge
// arena plus per-vertex lists of arena indices. Parallel edges are allowed.
//
// A Multigraph is created by MinimumSpanningTree, extended by GreedyMatch and
// consumed by EulerianCircuit within one solve; it is not safe for concurrent use.
type Multigraph struct {
	edges []Edge
	adj   [][]int
}

// NewMultigraph returns an empty multigraph on n vertices.
func NewMultigraph(n int) *Multigraph {
	return &Multigraph{
		edges: make([]Edge, 0, n+n/2),
		adj:   make([][]int, n),
	}
}

// AddEdge appends the undirected edge u–v with weight w and returns its arena index.
// Complexity: O(1) amortized.
func (g *Multigraph) AddEdge(u, v, w int) int {
	id := len(g.edges)
	g.edges = append(g.edges, Edge{U: u, V: v, Weight: w})
	g.adj[u] = append(g.adj[u], id)
	g.adj[v] = append(g.adj[v], id)

	return id
}

// Order returns the number of vertices.
func (g *Multigraph) Order() int { return len(g.adj) }

// EdgeCount returns the number of logical edges (each counted once).
func (g *Multigraph) EdgeCount() int { return len(g.edges) }

// Degree returns the number of edge endpoints incident to v.
func (g *Multigraph) Degree(v int) int { return len(g.adj[v]) }

// Edge returns a copy of the arena edge with the given index.
func (g *Multigraph) Edge(id int) Edge { return g.edges[id] }

// Incident returns the arena indices of edges incident to v, in insertion order.
// The returned slice aliases internal storage and must not be modified.
func (g *Multigraph) Incident(v int) []int { return g.adj[v] }

// Weight returns the total weight of all edges.
func (g *Multigraph) Weight() int {
	var sum int
	for i := range g.edges {
		sum += g.edges[i].Weight
	}

	return sum
}

// OddVertices returns, in ascending order, the vertices of odd degree.
// Any graph has an even number of them.
// Complexity: O(n).
func (g *Multigraph) OddVertices() []int {
	odd := make([]int, 0, len(g.adj)/2+1)
	for v := range g.adj {
		if len(g.adj[v])&1 == 1 {
			odd = append(odd, v)
		}
	}

	return odd
}
