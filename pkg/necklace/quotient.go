package necklace

// Quotient is a set of arrangements modulo a group action.
type Quotient struct {
	// Group is the group the quotient was taken by.
	Group Group `json:"group"`

	// Count is the number of orbits.
	Count int `json:"count"`

	// Cosets lists the orbits in the order they were discovered, which is
	// ascending by smallest member. Nil unless cosets were requested.
	Cosets []Set `json:"cosets,omitempty"`
}

// ModGroup partitions configs into orbits under g.
//
// The work pool is a private copy of configs; the caller's set is never
// modified. Each iteration takes the lexicographically smallest arrangement
// x still in the pool, computes its orbit O, and removes O from the pool.
// When returnCosets is true, O intersected with the pool (x included) is
// recorded as one coset.
//
// Every arrangement of configs lands in exactly one coset, and the loop
// runs exactly Count times.
func ModGroup(configs Set, g Group, returnCosets bool) (Quotient, error) {
	if err := g.Validate(); err != nil {
		return Quotient{}, err
	}

	pool := configs.Clone()
	q := Quotient{Group: g}
	if returnCosets {
		q.Cosets = make([]Set, 0)
	}

	// Walking the sorted snapshot and skipping removed entries visits the
	// smallest remaining arrangement first on every iteration.
	for _, x := range configs.Sorted() {
		if !pool.Has(x) {
			continue
		}
		orbit, err := Orbit(x, g)
		if err != nil {
			return Quotient{}, err
		}
		q.Count++
		if returnCosets {
			q.Cosets = append(q.Cosets, orbit.Intersect(pool))
		}
		for y := range orbit {
			pool.Remove(y)
		}
	}
	return q, nil
}

// Representatives returns one arrangement per coset, the smallest member of
// each, in coset order. It returns nil when cosets were not recorded.
func (q Quotient) Representatives() []Arrangement {
	if q.Cosets == nil {
		return nil
	}
	reps := make([]Arrangement, 0, len(q.Cosets))
	for _, c := range q.Cosets {
		if rep, ok := c.Min(); ok {
			reps = append(reps, rep)
		}
	}
	return reps
}

// Size returns the number of arrangements covered by the cosets.
func (q Quotient) Size() int {
	n := 0
	for _, c := range q.Cosets {
		n += c.Len()
	}
	return n
}
