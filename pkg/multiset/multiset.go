package multiset

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/matzehuels/necklace/pkg/errors"
)

// Partition is an ordered list of positive multiplicities. Part i is the
// number of copies of symbol i.
type Partition []int

// Validate reports whether p is a well-formed partition.
func (p Partition) Validate() error {
	return errors.ValidatePartition(p)
}

// Size returns N, the total number of elements (the sum of all parts).
func (p Partition) Size() int {
	n := 0
	for _, part := range p {
		n += part
	}
	return n
}

// Symbols returns k, the number of distinct symbols.
func (p Partition) Symbols() int {
	return len(p)
}

// String formats p as a comma-separated list, the same form Parse accepts.
func (p Partition) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// Expand returns the labeled multiset for p: symbol 0 fills the first p[0]
// slots, symbol 1 the next p[1], and so on.
//
//	Expand(Partition{2, 3, 1}) // [0 0 1 1 1 2]
//
// Expand does not validate p; non-positive parts contribute no elements.
func Expand(p Partition) []int {
	elems := make([]int, 0, p.Size())
	for sym, n := range p {
		for i := 0; i < n; i++ {
			elems = append(elems, sym)
		}
	}
	return elems
}

// Multinomial returns N!/(n_1! n_2! ... n_k!), the number of distinct
// orderings of the multiset described by p. The result is exact for any
// size; compare with [big.Int.IsInt64] before converting.
func Multinomial(p Partition) *big.Int {
	result := big.NewInt(1)
	total := 0
	for _, n := range p {
		// Build the product incrementally as C(total+n, n) to keep
		// intermediate values small.
		for i := 1; i <= n; i++ {
			total++
			result.Mul(result, big.NewInt(int64(total)))
			result.Quo(result, big.NewInt(int64(i)))
		}
	}
	return result
}

// Parse reads a partition from a comma-separated list such as "2,3,1".
// Whitespace around entries is ignored. The result is validated.
func Parse(s string) (Partition, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New(errors.ErrCodeInvalidPartition, "partition cannot be empty")
	}
	fields := strings.Split(s, ",")
	p := make(Partition, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPartition, err, "invalid multiplicity %q", f)
		}
		p[i] = n
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// FromWord derives a partition from a bead word. Letters are numbered in
// order of first appearance, so "aabbbc" and "bbbaac" both describe
// (2, 3, 1) with alphabet "abc" and "bac" respectively.
func FromWord(word string) (Partition, []rune, error) {
	if err := errors.ValidateWord(word); err != nil {
		return nil, nil, err
	}
	index := make(map[rune]int)
	var alphabet []rune
	var p Partition
	for _, r := range word {
		i, ok := index[r]
		if !ok {
			i = len(alphabet)
			index[r] = i
			alphabet = append(alphabet, r)
			p = append(p, 0)
		}
		p[i]++
	}
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	return p, alphabet, nil
}
