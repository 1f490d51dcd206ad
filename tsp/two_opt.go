package tsp

// TwoOpt refines a Hamiltonian cycle in place with first-improvement 2-opt.
//
// path is a permutation of 0..n-1 (implicitly cyclic) and cost its current
// TourCost. TwoOpt runs TwoOptPass until a full pass applies no move, or until
// maxPasses passes have run when maxPasses > 0. It returns the final cost and
// the number of passes performed (including the final, idle one).
//
// Termination: every applied move strictly lowers an integer cost that is
// bounded below by zero.
//
// Complexity: O(passes · n²) delta checks plus O(n) per applied reversal.
func TwoOpt(m CostMatrix, path []int, cost int, maxPasses int) (int, int) {
	var (
		passes int
		moves  int
	)
	for {
		cost, moves = TwoOptPass(m, path, cost)
		passes++
		if moves == 0 || (maxPasses > 0 && passes >= maxPasses) {
			return cost, passes
		}
	}
}

// TwoOptPass performs one full scan over index pairs i < j of path and applies
// every strictly improving segment reversal as soon as it is found; the scan
// then continues from the same position on the modified tour.
//
// The pair (0, last) is skipped: reversing the whole tour changes nothing.
// For the segment path[i..j] the delta uses only the two boundary edges:
//
//	general:   (p[i-1],p[i]) + (p[j],p[j+1])    → (p[i-1],p[j]) + (p[i],p[j+1])
//	i == 0:    (p[last],p[0]) + (p[j],p[j+1])   → (p[last],p[j]) + (p[0],p[j+1])
//	j == last: (p[i-1],p[i]) + (p[last],p[0])   → (p[i-1],p[last]) + (p[i],p[0])
//
// It returns the updated cost and the number of moves applied.
//
// Complexity: O(n²) delta checks, O(1) each.
func TwoOptPass(m CostMatrix, path []int, cost int) (int, int) {
	n := len(path)
	if n < 4 {
		return cost, 0
	}
	last := n - 1

	var (
		i, j       int
		prev, next int // vertices just outside the segment
		delta      int
		moves      int
	)
	for i = 0; i < last; i++ {
		for j = i + 1; j <= last; j++ {
			if i == 0 && j == last {
				continue
			}

			if i == 0 {
				prev = path[last]
			} else {
				prev = path[i-1]
			}
			if j == last {
				next = path[0]
			} else {
				next = path[j+1]
			}

			delta = m[prev][path[j]] + m[path[i]][next] - m[prev][path[i]] - m[path[j]][next]
			if delta < 0 {
				reverseSegment(path, i, j)
				cost += delta
				moves++
			}
		}
	}

	return cost, moves
}
