package perm

import "slices"

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// This is useful for initializing permutation arrays or creating index sequences.
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n <= 0 {
		return []int{}
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// Note that factorials grow extremely fast: 21! overflows int64. Use
// multiset.Multinomial for exact counts of large spaces.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// Generate returns permutations of [0, 1, ..., n-1] using Heap's algorithm.
//
// If limit > 0, Generate returns at most limit permutations.
// If limit <= 0, Generate returns all n! permutations.
//
// Each returned slice is a separate allocation, safe to modify without affecting others.
//
// Generate handles edge cases gracefully:
//   - n = 0: returns [[]] (one empty permutation)
//   - n = 1: returns [[0]] (one single-element permutation)
//
// Heap's algorithm generates permutations in a non-lexicographic order, but
// efficiently produces each permutation exactly once.
func Generate(n, limit int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	if n == 1 {
		return [][]int{{0}}
	}

	perm := Seq(n)
	state := make([]int, n)

	capacity := limit
	if capacity <= 0 || n <= 12 {
		capacity = Factorial(min(n, 12))
	}
	result := make([][]int, 0, capacity)
	result = append(result, slices.Clone(perm))

	for i := 0; i < n && (limit <= 0 || len(result) < limit); {
		if state[i] < i {
			if i&1 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[state[i]], perm[i] = perm[i], perm[state[i]]
			}
			result = append(result, slices.Clone(perm))
			state[i]++
			i = 0
		} else {
			state[i] = 0
			i++
		}
	}
	return result
}

// Next rearranges s into its lexicographic successor and reports whether
// one existed. When s is already the last (non-increasing) arrangement,
// Next leaves it unchanged and returns false.
//
// Equal elements are treated as indistinguishable, so repeatedly calling
// Next from the sorted order visits every distinct arrangement exactly once.
func Next(s []int) bool {
	// Longest non-increasing suffix starts after pivot.
	pivot := len(s) - 2
	for pivot >= 0 && s[pivot] >= s[pivot+1] {
		pivot--
	}
	if pivot < 0 {
		return false
	}
	// Rightmost element strictly greater than the pivot.
	succ := len(s) - 1
	for s[succ] <= s[pivot] {
		succ--
	}
	s[pivot], s[succ] = s[succ], s[pivot]
	slices.Reverse(s[pivot+1:])
	return true
}

// Multiset returns every distinct ordering of elems in lexicographic order.
//
// The input is not modified. Repeated elements never produce duplicate
// orderings, so the result has exactly N!/(n_1!...n_k!) entries where n_i
// are the multiplicities of the distinct values.
//
// An empty input yields a single empty ordering, mirroring [Generate].
func Multiset(elems []int) [][]int {
	cur := slices.Clone(elems)
	slices.Sort(cur)

	result := [][]int{slices.Clone(cur)}
	for Next(cur) {
		result = append(result, slices.Clone(cur))
	}
	return result
}
