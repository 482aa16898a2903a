// Package necklace counts necklaces and bracelets of a multiset by brute
// force orbit enumeration.
//
// # Overview
//
// Given the beads (a, a, b, b, b, c), represented by the partition (2, 3, 1),
// there are 6!/(2!3!1!) = 60 distinct strings. Two strings describe the same
// necklace when one is a rotation of the other (aabbb ~ abbba ~ bbbaa), and
// the same bracelet when one is a rotation of the other or of its reversal:
//
//	abcc ~ cabc ~ ccab ~ bcca ~ ccba ~ cbac ~ bacc ~ accb
//
// Necklaces are the orbits of the cyclic group Cn acting on the
// configuration set; bracelets are the orbits of the dihedral group Dn.
//
//	necklace.Necklaces(multiset.Partition{2, 3, 1}, necklace.OutputNum) // Count: 10
//	necklace.Bracelets(multiset.Partition{2, 3, 1}, necklace.OutputNum) // Count: 6
//
// # Building Blocks
//
//   - [Arrangement]: an immutable, comparable bead string usable as a map key
//   - [Set]: a hash set of arrangements
//   - [Orbit]: every arrangement reachable from one arrangement under a group
//   - [ModGroup]: the quotient of a set by a group, as a count or as cosets
//   - [ConfigsCount], [Necklaces], [Bracelets], [Count]: partition in, answer out
//
// # How It Works
//
// [Configs] materializes every distinct anagram of the partition. [ModGroup]
// then repeatedly takes the lexicographically smallest unprocessed
// arrangement, computes its orbit, records it, and removes the orbit from a
// private pool until the pool is empty. The loop runs exactly once per orbit.
// Callers' sets are never modified.
//
// This is deliberately naive: the configuration set is held in memory in
// full, so its size N!/(n_1!...n_k!) bounds what can be counted. Size
// inputs with multiset.Multinomial before calling.
//
// # Output Modes
//
//   - [OutputNum]: the number of orbits
//   - [OutputReps]: one representative per orbit (its smallest member)
//   - [OutputCosets]: the orbits themselves
//
// Invalid partitions, group tags and output modes fail with structured
// errors from [github.com/matzehuels/necklace/pkg/errors].
package necklace
