package tsp

import "fmt"

// ValidateMatrix checks the properties the solver relies on but never verifies
// itself: square and non-empty shape, zero diagonal, non-negative and symmetric
// costs, and strictly positive costs between distinct vertices.
//
// Matrices produced by the costmatrix package satisfy these by construction;
// call ValidateMatrix for matrices read from elsewhere. Errors wrap the
// package sentinels with the offending position; branch with errors.Is.
//
// Complexity: O(n²).
func ValidateMatrix(m CostMatrix) error {
	n := len(m)
	if n == 0 {
		return ErrNonSquare
	}
	for i := 0; i < n; i++ {
		if len(m[i]) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquare, i, len(m[i]), n)
		}
	}

	var i, j int
	for i = 0; i < n; i++ {
		if m[i][i] != 0 {
			return fmt.Errorf("%w: cost[%d][%d]=%d", ErrNonZeroDiagonal, i, i, m[i][i])
		}
		for j = i + 1; j < n; j++ {
			switch {
			case m[i][j] < 0:
				return fmt.Errorf("%w: cost[%d][%d]=%d", ErrNegativeWeight, i, j, m[i][j])
			case m[i][j] != m[j][i]:
				return fmt.Errorf("%w: cost[%d][%d]=%d, cost[%d][%d]=%d", ErrAsymmetry, i, j, m[i][j], j, i, m[j][i])
			case m[i][j] == 0:
				return fmt.Errorf("%w: vertices %d and %d", ErrZeroDistance, i, j)
			}
		}
	}

	return nil
}
