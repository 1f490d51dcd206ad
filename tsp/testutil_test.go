// Package tsp_test holds helpers shared by the tsp test files: deterministic
// matrix generators, a brute-force reference solver and small assertions.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/routeopt/tsp"
)

// -----------------------------------------------------------------------------
// Constants
// -----------------------------------------------------------------------------

const (
	// seedDet is the fixed seed for generated instances.
	seedDet = int64(42)

	// startV is the Euler start vertex used by Solve.
	startV = 0

	// coordSpan bounds generated coordinates to [0, coordSpan).
	coordSpan = 1000.0
)

// -----------------------------------------------------------------------------
// Matrix generators
// -----------------------------------------------------------------------------

// euclid builds a symmetric integer matrix of rounded Euclidean distances.
// Distinct points closer than 0.5 are lifted to cost 1 so the matrix stays
// free of zero off-diagonal entries.
func euclid(pts [][2]float64) tsp.CostMatrix {
	n := len(pts)
	m := make(tsp.CostMatrix, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	var i, j, d int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = int(math.Round(math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])))
			if d < 1 {
				d = 1
			}
			m[i][j], m[j][i] = d, d
		}
	}

	return m
}

// randomPoints returns n points drawn uniformly from the coordSpan square.
func randomPoints(n int, seed int64) [][2]float64 {
	r := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{r.Float64() * coordSpan, r.Float64() * coordSpan}
	}

	return pts
}

// randomEuclid is euclid(randomPoints(n, seed)).
func randomEuclid(n int, seed int64) tsp.CostMatrix {
	return euclid(randomPoints(n, seed))
}

// uniform builds an n×n matrix with w off the diagonal.
func uniform(n, w int) tsp.CostMatrix {
	m := make(tsp.CostMatrix, n)
	for i := range m {
		m[i] = make([]int, n)
		for j := range m[i] {
			if i != j {
				m[i][j] = w
			}
		}
	}

	return m
}

// cloneMatrix returns a deep copy of m.
func cloneMatrix(m tsp.CostMatrix) tsp.CostMatrix {
	cp := make(tsp.CostMatrix, len(m))
	for i := range m {
		cp[i] = append([]int(nil), m[i]...)
	}

	return cp
}

// -----------------------------------------------------------------------------
// Reference solvers
// -----------------------------------------------------------------------------

// bruteForce returns the optimal cycle cost by enumerating all permutations
// with vertex 0 fixed. Only for n ≤ 9.
func bruteForce(m tsp.CostMatrix) int {
	n := len(m)
	rest := make([]int, n-1)
	for i := range rest {
		rest[i] = i + 1
	}
	best := math.MaxInt
	path := make([]int, n)

	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			path[0] = 0
			copy(path[1:], rest)
			if c := tsp.TourCost(m, path); c < best {
				best = c
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}

// kruskalWeight returns the MST weight of m using Kruskal with union-find.
// Independent of Prim, it serves as the reference for minimality checks.
func kruskalWeight(m tsp.CostMatrix) int {
	n := len(m)
	type pair struct{ u, v, w int }
	edges := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, pair{i, j, m[i][j]})
		}
	}
	// insertion sort keeps the helper dependency-free; n is small in tests
	for i := 1; i < len(edges); i++ {
		for k := i; k > 0 && edges[k].w < edges[k-1].w; k-- {
			edges[k], edges[k-1] = edges[k-1], edges[k]
		}
	}
	uf := newUnionFind(n)
	total := 0
	for _, e := range edges {
		if uf.union(e.u, e.v) {
			total += e.w
		}
	}

	return total
}

// -----------------------------------------------------------------------------
// Graph helpers
// -----------------------------------------------------------------------------

type unionFind struct{ parent []int }

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// union merges the sets of a and b; false means they were already joined.
func (u *unionFind) union(a, b int) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	u.parent[ra] = rb

	return true
}

// edgeKey is an unordered vertex pair.
type edgeKey struct{ a, b int }

func keyOf(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}

	return edgeKey{u, v}
}

// edgeMultiset counts the logical edges of g by unordered endpoint pair.
func edgeMultiset(g *tsp.Multigraph) map[edgeKey]int {
	out := make(map[edgeKey]int, g.EdgeCount())
	for id := 0; id < g.EdgeCount(); id++ {
		e := g.Edge(id)
		out[keyOf(e.U, e.V)]++
	}

	return out
}

// walkMultiset counts consecutive pairs of a walk by unordered endpoint pair.
func walkMultiset(walk []int) map[edgeKey]int {
	out := make(map[edgeKey]int, len(walk))
	for i := 0; i+1 < len(walk); i++ {
		out[keyOf(walk[i], walk[i+1])]++
	}

	return out
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// Repeat runs fn n times. Useful for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		fn(t)
	}
}

// mustPermutation fails the test unless path is a permutation of 0..n-1.
func mustPermutation(t *testing.T, path []int, n int) {
	t.Helper()
	if err := tsp.ValidatePermutation(path, n); err != nil {
		t.Fatalf("not a permutation of 0..%d: %v (path=%v)", n-1, err, path)
	}
}
