// Package multiset turns partitions into labeled multisets.
//
// # Overview
//
// A partition (n_1, ..., n_k) describes a multiset over the symbols
// 0, 1, ..., k-1 where symbol i occurs n_i times. The bead multiset
// (a, a, b, b, b, c) is the same thing as (0, 0, 1, 1, 1, 2) and is
// represented by the partition (2, 3, 1).
//
//   - [Expand]: the labeled multiset, grouped by symbol in ascending order
//   - [Multinomial]: N!/(n_1!...n_k!), the number of distinct anagrams
//   - [Parse] and [FromWord]: build partitions from command-line input
//
// # Usage
//
//	p, err := multiset.Parse("2,3,1")
//	if err != nil {
//	    return err
//	}
//	multiset.Expand(p)          // [0 0 1 1 1 2]
//	multiset.Multinomial(p)     // 60
//
// Partitions must be non-empty with every multiplicity positive. Invalid
// partitions are rejected with an INVALID_PARTITION error from
// [github.com/matzehuels/necklace/pkg/errors].
package multiset
