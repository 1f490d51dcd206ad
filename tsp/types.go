package tsp

import "errors"

// Vertex count limits accepted by NewSolver.
const (
	MinVertices = 4
	MaxVertices = 2000
)

// ErrVertexCount is returned by NewSolver when n is outside [MinVertices, MaxVertices].
// It is a configuration error: no graph work is attempted.
var ErrVertexCount = errors.New("tsp: invalid number of vertices")

// Sentinels reported by ValidateMatrix.
var (
	// ErrNonSquare indicates an empty matrix or rows of the wrong length.
	ErrNonSquare = errors.New("tsp: cost matrix must be square and non-empty")
	// ErrNonZeroDiagonal indicates cost[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("tsp: cost matrix diagonal must be zero")
	// ErrNegativeWeight indicates a negative off-diagonal cost.
	ErrNegativeWeight = errors.New("tsp: negative cost")
	// ErrAsymmetry indicates cost[i][j] != cost[j][i].
	ErrAsymmetry = errors.New("tsp: cost matrix is not symmetric")
	// ErrZeroDistance indicates two distinct vertices with zero cost between them
	// (duplicate points that should have been filtered upstream).
	ErrZeroDistance = errors.New("tsp: zero cost between distinct vertices")
)

// CostMatrix is a dense n×n matrix of integer edge costs.
// cost[i][j] == cost[j][i], cost[i][i] == 0.
type CostMatrix [][]int

// Size returns the number of vertices (rows) of the matrix.
func (m CostMatrix) Size() int { return len(m) }

// Tour is the solver's result: a cyclic visiting order and its total cost.
//
// Path is a permutation of 0..n-1; the last vertex connects back to the first.
// Cost is the sum of edge costs around that cycle. A zero-length Path means
// "no solution" (degenerate input).
type Tour struct {
	Path []int
	Cost int
}

// Len returns the number of vertices in the tour.
func (t Tour) Len() int { return len(t.Path) }

// Empty reports whether the tour carries no solution.
func (t Tour) Empty() bool { return len(t.Path) == 0 }

// Closed returns a fresh copy of Path with the start vertex appended, which is
// the form route exporters draw: [v0 v1 … v(n-1) v0].
// Complexity: O(n).
func (t Tour) Closed() []int {
	if t.Empty() {
		return nil
	}
	out := make([]int, len(t.Path)+1)
	copy(out, t.Path)
	out[len(t.Path)] = t.Path[0]

	return out
}
