// Package pkg provides the libraries behind the necklace counter.
//
// # Overview
//
// Necklace counts the distinct ways to string a multiset of colored beads
// into a ring. Two strings are the same necklace when one is a rotation of
// the other, and the same bracelet when one is a rotation or a reflection
// of the other. Counting is done by brute force: every arrangement is
// enumerated and the set is split into orbits.
//
// The pkg directory is organized into three areas:
//
//  1. Domain logic: [multiset], [perm] and [necklace]
//  2. Orchestration: [pipeline] (validation, limits, caching, batches)
//  3. Infrastructure: [cache], [metrics], [observability], [errors] and [buildinfo]
//
// # Architecture
//
// The data flow of one count:
//
//	Partition (2,3,1)
//	         ↓
//	    [multiset] package (expand to 0,0,1,1,1,2)
//	         ↓
//	    [perm] package (distinct permutations)
//	         ↓
//	    [necklace] package (orbits under Cn or Dn)
//	         ↓
//	    count, representatives or cosets
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/necklace/pkg/multiset"
//	    "github.com/matzehuels/necklace/pkg/necklace"
//	)
//
//	res, _ := necklace.Bracelets(multiset.Partition{2, 3, 1}, necklace.OutputReps)
//	fmt.Println(res.Count) // 6
//	for _, r := range res.Reps {
//	    fmt.Println(r.Word(nil))
//	}
//
// For cached and size-limited runs, use [pipeline.Runner].
//
// [multiset]: https://pkg.go.dev/github.com/matzehuels/necklace/pkg/multiset
// [perm]: https://pkg.go.dev/github.com/matzehuels/necklace/pkg/perm
// [necklace]: https://pkg.go.dev/github.com/matzehuels/necklace/pkg/necklace
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/necklace/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/necklace/pkg/pipeline#Runner
// [cache]: https://pkg.go.dev/github.com/matzehuels/necklace/pkg/cache
// [metrics]: https://pkg.go.dev/github.com/matzehuels/necklace/pkg/metrics
// [observability]: https://pkg.go.dev/github.com/matzehuels/necklace/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/necklace/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/necklace/pkg/buildinfo
package pkg
