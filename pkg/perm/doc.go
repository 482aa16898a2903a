// Package perm provides permutation generation algorithms.
//
// # Overview
//
// Counting necklaces by brute force starts from the full configuration set:
// every distinct ordering of a multiset. This package produces it:
//
//   - [Multiset]: all distinct anagrams of a multiset, in lexicographic order
//   - [Next]: advance a sequence to its lexicographic successor in place
//   - [Generate]: positional permutations of [0, n) using Heap's algorithm
//   - [Factorial]: Helper for combinatorial calculations
//
// # Distinct Anagrams
//
// A multiset with repeated symbols has far fewer distinct orderings than
// positional permutations. (0, 0, 1, 1, 1, 2) has 6! = 720 positional
// permutations but only 6!/(2!3!1!) = 60 distinct anagrams:
//
//	anagrams := perm.Multiset([]int{0, 0, 1, 1, 1, 2})
//	len(anagrams) // 60
//
// [Multiset] never emits the same ordering twice. It walks the orderings
// with the classic next-permutation step, which skips over equal symbols
// instead of enumerating and then deduplicating.
//
// # Memory
//
// Both [Multiset] and [Generate] materialize their whole result. The number of
// anagrams grows like a multinomial coefficient, so inputs beyond a dozen or
// so beads should be sized with multiset.Multinomial first.
package perm
