package necklace

import (
	"github.com/matzehuels/necklace/pkg/errors"
	"github.com/matzehuels/necklace/pkg/multiset"
	"github.com/matzehuels/necklace/pkg/perm"
)

// Output selects what the public counters report.
type Output string

const (
	// OutputNum reports the number of orbits.
	OutputNum Output = "num"

	// OutputReps reports one representative arrangement per orbit.
	OutputReps Output = "reps"

	// OutputCosets reports the orbits themselves.
	OutputCosets Output = "cosets"
)

// ParseOutput converts a mode string to an Output.
func ParseOutput(s string) (Output, error) {
	out := Output(s)
	if err := out.Validate(); err != nil {
		return "", err
	}
	return out, nil
}

// Validate reports whether out is a supported output mode.
func (out Output) Validate() error {
	switch out {
	case OutputNum, OutputReps, OutputCosets:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidOutput, "unsupported output %q (must be one of: num, reps, cosets)", string(out))
}

// Result is the answer of a public counter.
type Result struct {
	Partition multiset.Partition `json:"partition"`
	Group     Group              `json:"group"`
	Output    Output             `json:"output"`

	// Count is the number of orbits. It is set for every output mode.
	Count int `json:"count"`

	// Reps holds one representative per orbit when Output is "reps".
	Reps []Arrangement `json:"reps,omitempty"`

	// Cosets holds the orbits when Output is "cosets".
	Cosets []Set `json:"cosets,omitempty"`
}

// Configs returns the configuration set of p: every distinct arrangement of
// its labeled multiset. Its size is multiset.Multinomial(p).
func Configs(p multiset.Partition) (Set, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	anagrams := perm.Multiset(multiset.Expand(p))
	configs := make(Set, len(anagrams))
	for _, symbols := range anagrams {
		a, err := NewArrangement(symbols)
		if err != nil {
			return nil, err
		}
		configs.Add(a)
	}
	return configs, nil
}

// ConfigsCount computes the configuration set of p modulo g. With
// returnCosets the orbits are included in the quotient.
func ConfigsCount(p multiset.Partition, g Group, returnCosets bool) (Quotient, error) {
	if err := g.Validate(); err != nil {
		return Quotient{}, err
	}
	configs, err := Configs(p)
	if err != nil {
		return Quotient{}, err
	}
	return ModGroup(configs, g, returnCosets)
}

// Count runs ConfigsCount for g and shapes the result according to out.
func Count(p multiset.Partition, g Group, out Output) (Result, error) {
	if err := out.Validate(); err != nil {
		return Result{}, err
	}
	q, err := ConfigsCount(p, g, out != OutputNum)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Partition: p,
		Group:     g,
		Output:    out,
		Count:     q.Count,
	}
	switch out {
	case OutputReps:
		res.Reps = q.Representatives()
	case OutputCosets:
		res.Cosets = q.Cosets
	}
	return res, nil
}

// Necklaces counts the arrangements of p up to rotation.
//
//	res, _ := Necklaces(multiset.Partition{2, 3, 1}, OutputNum)
//	res.Count // 10
func Necklaces(p multiset.Partition, out Output) (Result, error) {
	return Count(p, Cyclic, out)
}

// Bracelets counts the arrangements of p up to rotation and reflection.
//
//	res, _ := Bracelets(multiset.Partition{2, 3, 1}, OutputNum)
//	res.Count // 6
func Bracelets(p multiset.Partition, out Output) (Result, error) {
	return Count(p, Dihedral, out)
}
