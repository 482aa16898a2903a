package necklace

import (
	"encoding/json"
	"slices"
)

// Set is a hash set of arrangements.
type Set map[Arrangement]struct{}

// NewSet returns a set holding the given arrangements.
func NewSet(items ...Arrangement) Set {
	s := make(Set, len(items))
	for _, a := range items {
		s[a] = struct{}{}
	}
	return s
}

// Add inserts a.
func (s Set) Add(a Arrangement) { s[a] = struct{}{} }

// Remove deletes a. Removing a missing element is a no-op.
func (s Set) Remove(a Arrangement) { delete(s, a) }

// Has reports whether a is in the set.
func (s Set) Has(a Arrangement) bool {
	_, ok := s[a]
	return ok
}

// Len returns the number of elements.
func (s Set) Len() int { return len(s) }

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for a := range s {
		out[a] = struct{}{}
	}
	return out
}

// Intersect returns the elements present in both s and other.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set)
	for a := range small {
		if large.Has(a) {
			out[a] = struct{}{}
		}
	}
	return out
}

// Equal reports whether both sets hold the same arrangements.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for a := range s {
		if !other.Has(a) {
			return false
		}
	}
	return true
}

// Sorted returns the elements in lexicographic order.
func (s Set) Sorted() []Arrangement {
	out := make([]Arrangement, 0, len(s))
	for a := range s {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

// Min returns the lexicographically smallest element. The boolean is false
// for an empty set.
func (s Set) Min() (Arrangement, bool) {
	var best Arrangement
	found := false
	for a := range s {
		if !found || a < best {
			best, found = a, true
		}
	}
	return best, found
}

// MarshalJSON encodes the set as a sorted array of arrangements.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of arrangements.
func (s *Set) UnmarshalJSON(data []byte) error {
	var items []Arrangement
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewSet(items...)
	return nil
}
