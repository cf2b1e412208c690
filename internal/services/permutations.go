package services

// permutations returns every ordering of n indices, generated in
// lexicographic order. The candidate set is bounded by the place-count
// limit (n <= 6, at most 720 orderings), which keeps exhaustive
// enumeration tractable for synchronous request/response use.
func permutations(n int) [][]int {
	count := 1
	for i := 2; i <= n; i++ {
		count *= i
	}

	current := make([]int, n)
	for i := range current {
		current[i] = i
	}

	out := make([][]int, 0, count)
	for {
		order := make([]int, n)
		copy(order, current)
		out = append(out, order)

		// Advance to the next lexicographic permutation: find the
		// rightmost ascent, swap it with its smallest larger successor,
		// then reverse the tail. No ascent left means enumeration is done.
		i := n - 2
		for i >= 0 && current[i] >= current[i+1] {
			i--
		}
		if i < 0 {
			return out
		}

		j := n - 1
		for current[j] <= current[i] {
			j--
		}
		current[i], current[j] = current[j], current[i]

		for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
			current[l], current[r] = current[r], current[l]
		}
	}
}
