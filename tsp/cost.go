package tsp

// TourCost returns the cost of the cycle path[0] → path[1] → … → path[n-1] → path[0].
// Paths shorter than two vertices cost 0.
//
// Complexity: O(n).
func TourCost(m CostMatrix, path []int) int {
	n := len(path)
	if n < 2 {
		return 0
	}

	sum := m[path[n-1]][path[0]]
	for i := 0; i+1 < n; i++ {
		sum += m[path[i]][path[i+1]]
	}

	return sum
}
