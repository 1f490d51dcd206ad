// Package tsp computes approximate Travelling Salesman tours over a
// symmetric, non-negative integer cost matrix.
//
// The solver is a Christofides-style pipeline followed by local search:
//
//  1. MinimumSpanningTree — Prim on the dense matrix, O(n²).
//  2. GreedyMatch         — pairs odd-degree tree vertices with their nearest
//     unmatched partner, producing an Eulerian multigraph.
//  3. EulerianCircuit     — iterative Hierholzer over the multigraph, O(E).
//  4. Shortcut            — drops repeated visits, yielding a Hamiltonian cycle.
//  5. TwoOpt              — first-improvement 2-opt until no improving move remains.
//
// Approximation note:
//
//	The 3/2 bound of Christofides requires a minimum-weight perfect matching in
//	step 2. GreedyMatch is a nearest-partner approximation of it, so the bound is
//	not formally guaranteed; in practice the 2-opt pass closes most of the gap.
//
// Contracts:
//   - The matrix is n×n with 4 ≤ n ≤ 2000 (see NewSolver), symmetric, with a zero
//     diagonal and strictly positive off-diagonal costs. The solver trusts these
//     properties; use ValidateMatrix when the matrix comes from an untrusted source.
//   - Solve never mutates the matrix. Intermediate graphs live only for the
//     duration of one call.
//
// Example:
//
//	s, err := tsp.NewSolver(len(m))
//	if err != nil {
//		return err
//	}
//	tour := s.Solve(m)
//	if tour.Empty() {
//		// no solution: matrix empty or sized differently from the solver
//	}
package tsp
