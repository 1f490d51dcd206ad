package tsp

import (
	"fmt"
	"strings"
)

// Shortcut turns an Eulerian walk into a Hamiltonian cycle by keeping only the
// first visit of every vertex, in walk order ("shortcutting").
//
// Contract: walk visits every vertex of 0..n-1 at least once (len(walk) ≥ n).
// The result is then a permutation of 0..n-1 of length exactly n.
//
// Complexity: O(len(walk) + n) time, O(n) space.
func Shortcut(walk []int, n int) []int {
	seen := make([]bool, n)
	out := make([]int, 0, n)

	for _, v := range walk {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	return out
}

// ValidatePermutation checks that path is a permutation of 0..n-1.
// Returns an error describing the first violation, nil otherwise.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(path []int, n int) error {
	if len(path) != n {
		return fmt.Errorf("tsp: tour has %d vertices, want %d", len(path), n)
	}
	seen := make([]bool, n)
	for i, v := range path {
		if v < 0 || v >= n {
			return fmt.Errorf("tsp: tour position %d: vertex %d out of range", i, v)
		}
		if seen[v] {
			return fmt.Errorf("tsp: tour position %d: vertex %d repeated", i, v)
		}
		seen[v] = true
	}

	return nil
}

// reverseSegment reverses path[i..j] (inclusive) in place.
// Complexity: O(j-i).
func reverseSegment(path []int, i, j int) {
	for i < j {
		path[i], path[j] = path[j], path[i]
		i++
		j--
	}
}

// String renders the tour as "[0 3 1 2] cost=17".
func (t Tour) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range t.Path {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	fmt.Fprintf(&b, "] cost=%d", t.Cost)

	return b.String()
}
