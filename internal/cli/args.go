package cli

import (
	"slices"
	"strings"

	"github.com/matzehuels/necklace/pkg/multiset"
	"github.com/matzehuels/necklace/pkg/necklace"
)

// isNumericList reports whether s looks like "2,3,1" rather than a word.
func isNumericList(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != ',' && r != ' ' && r != '-' {
			return false
		}
	}
	return true
}

// parsePartitionArg reads a partition ("2,3,1") or a bead word ("aabbbc").
// A word also yields its alphabet; a partition yields a nil alphabet.
func parsePartitionArg(arg string) (multiset.Partition, []rune, error) {
	if isNumericList(arg) {
		p, err := multiset.Parse(arg)
		return p, nil, err
	}
	return multiset.FromWord(arg)
}

// parseArrangementArg reads an arrangement given as symbol indices
// ("0,1,2,2") or as a word ("abcc"). Word letters are numbered in order of
// first appearance.
func parseArrangementArg(arg string) (necklace.Arrangement, []rune, error) {
	if isNumericList(arg) {
		a, err := necklace.ParseArrangement(arg)
		return a, nil, err
	}
	_, alphabet, err := multiset.FromWord(arg)
	if err != nil {
		return "", nil, err
	}
	runes := []rune(arg)
	symbols := make([]int, len(runes))
	for i, r := range runes {
		symbols[i] = slices.Index(alphabet, r)
	}
	a, err := necklace.NewArrangement(symbols)
	return a, alphabet, err
}
