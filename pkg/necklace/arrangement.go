package necklace

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/matzehuels/necklace/pkg/errors"
)

// defaultAlphabet names symbols when no alphabet is supplied to Word.
const defaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Arrangement is one ordering of a labeled multiset. Each byte is a symbol
// index, so arrangements are immutable, compare by value and can be used as
// map keys directly.
type Arrangement string

// NewArrangement builds an arrangement from symbol indices in [0, 255].
func NewArrangement(symbols []int) (Arrangement, error) {
	buf := make([]byte, len(symbols))
	for i, s := range symbols {
		if s < 0 || s > errors.MaxSymbols-1 {
			return "", errors.New(errors.ErrCodeInvalidArrangement,
				"symbol at position %d out of range [0, %d]: %d", i, errors.MaxSymbols-1, s)
		}
		buf[i] = byte(s)
	}
	return Arrangement(buf), nil
}

// ParseArrangement reads an arrangement from a comma-separated list of
// symbol indices such as "0,1,1,2".
func ParseArrangement(s string) (Arrangement, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New(errors.ErrCodeInvalidArrangement, "arrangement cannot be empty")
	}
	fields := strings.Split(s, ",")
	symbols := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidArrangement, err, "invalid symbol %q", f)
		}
		symbols[i] = n
	}
	return NewArrangement(symbols)
}

// Len returns the number of beads.
func (a Arrangement) Len() int {
	return len(a)
}

// At returns the symbol at position i.
func (a Arrangement) At(i int) int {
	return int(a[i])
}

// Symbols returns a fresh slice of symbol indices.
func (a Arrangement) Symbols() []int {
	out := make([]int, len(a))
	for i := 0; i < len(a); i++ {
		out[i] = int(a[i])
	}
	return out
}

// Rotate returns (a[i], a[i+1], ..., a[i+n-1]) with indices taken mod n.
func (a Arrangement) Rotate(i int) Arrangement {
	n := len(a)
	if n == 0 {
		return a
	}
	i = ((i % n) + n) % n
	return a[i:] + a[:i]
}

// Reverse returns the arrangement read backwards.
func (a Arrangement) Reverse() Arrangement {
	n := len(a)
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[i] = a[n-1-i]
	}
	return Arrangement(buf)
}

// String formats the arrangement like an int slice: "[0 0 1 1 1 2]".
func (a Arrangement) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < len(a); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(a[i])))
	}
	b.WriteByte(']')
	return b.String()
}

// Word renders the arrangement with one rune per bead. Symbol i is written
// as alphabet[i]. With a nil alphabet the letters a-z are used; symbols
// outside the alphabet fall back to String.
func (a Arrangement) Word(alphabet []rune) string {
	if alphabet == nil {
		alphabet = []rune(defaultAlphabet)
	}
	out := make([]rune, len(a))
	for i := 0; i < len(a); i++ {
		s := int(a[i])
		if s >= len(alphabet) {
			return a.String()
		}
		out[i] = alphabet[s]
	}
	return string(out)
}

// MarshalJSON encodes the arrangement as an array of symbol indices.
func (a Arrangement) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Symbols())
}

// UnmarshalJSON decodes an array of symbol indices.
func (a *Arrangement) UnmarshalJSON(data []byte) error {
	var symbols []int
	if err := json.Unmarshal(data, &symbols); err != nil {
		return err
	}
	arr, err := NewArrangement(symbols)
	if err != nil {
		return err
	}
	*a = arr
	return nil
}
