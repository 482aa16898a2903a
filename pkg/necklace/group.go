package necklace

import (
	"github.com/matzehuels/necklace/pkg/errors"
)

// Group tags a symmetry group acting on arrangements of length n.
type Group string

const (
	// Cyclic is the cyclic group Cn of order n: rotations only.
	Cyclic Group = "Cn"

	// Dihedral is the dihedral group Dn of order 2n: rotations and
	// reflections.
	Dihedral Group = "Dn"
)

// ParseGroup converts a tag to a Group, rejecting anything other than
// "Cn" or "Dn".
func ParseGroup(tag string) (Group, error) {
	g := Group(tag)
	if err := g.Validate(); err != nil {
		return "", err
	}
	return g, nil
}

// Validate reports whether g is a supported group.
func (g Group) Validate() error {
	switch g {
	case Cyclic, Dihedral:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidGroup, "unsupported group %q (must be one of: Cn, Dn)", string(g))
}

// Order returns the number of group elements acting on arrangements of
// length n: n for Cn, 2n for Dn. Unsupported groups return 0.
func (g Group) Order(n int) int {
	switch g {
	case Cyclic:
		return n
	case Dihedral:
		return 2 * n
	}
	return 0
}

// Name returns the combinatorial name of an orbit under g.
func (g Group) Name() string {
	switch g {
	case Cyclic:
		return "necklace"
	case Dihedral:
		return "bracelet"
	}
	return string(g)
}

// Orbit returns every arrangement obtained by applying an element of g to x.
//
// For Cn this is the n rotations (x[i], x[i+1], ..., x[i+n-1]), indices mod n.
// For Dn each rotation is joined by its reversal
// (x[i+n-1], x[i+n-2], ..., x[i]). Symmetric arrangements have fewer
// distinct images than the group order; duplicates collapse in the set.
//
// The orbit of an empty arrangement is the arrangement itself.
func Orbit(x Arrangement, g Group) (Set, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	n := x.Len()
	orbit := make(Set, g.Order(n))
	if n == 0 {
		orbit.Add(x)
		return orbit, nil
	}
	var rev Arrangement
	if g == Dihedral {
		rev = x.Reverse()
	}
	for i := 0; i < n; i++ {
		rot := x.Rotate(i)
		orbit.Add(rot)
		if g == Dihedral {
			// Rotation i read backwards is the reversal rotated by -i.
			orbit.Add(rev.Rotate(n - i))
		}
	}
	return orbit, nil
}

// Stabilizer returns the size of the stabilizer of x under g, which by the
// orbit-stabilizer theorem is the group order divided by the orbit size.
func Stabilizer(x Arrangement, g Group) (int, error) {
	orbit, err := Orbit(x, g)
	if err != nil {
		return 0, err
	}
	order := g.Order(x.Len())
	if order == 0 {
		return 1, nil
	}
	return order / orbit.Len(), nil
}
