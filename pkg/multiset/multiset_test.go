package multiset

import (
	"math/big"
	"slices"
	"testing"

	"github.com/matzehuels/necklace/pkg/errors"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		p    Partition
		want []int
	}{
		{"docstring example", Partition{2, 3, 1}, []int{0, 0, 1, 1, 1, 2}},
		{"single symbol", Partition{4}, []int{0, 0, 0, 0}},
		{"all distinct", Partition{1, 1, 1}, []int{0, 1, 2}},
		{"descending", Partition{3, 1}, []int{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expand(tt.p); !slices.Equal(got, tt.want) {
				t.Errorf("Expand(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestExpandCounts(t *testing.T) {
	p := Partition{3, 1, 4, 1, 5}
	elems := Expand(p)
	if len(elems) != p.Size() {
		t.Fatalf("len(Expand) = %d, want %d", len(elems), p.Size())
	}
	counts := make([]int, p.Symbols())
	for _, e := range elems {
		counts[e]++
	}
	if !slices.Equal(counts, []int(p)) {
		t.Errorf("symbol counts = %v, want %v", counts, p)
	}
}

func TestMultinomial(t *testing.T) {
	tests := []struct {
		p    Partition
		want int64
	}{
		{Partition{2, 3, 1}, 60},
		{Partition{1, 1, 1, 1}, 24},
		{Partition{5}, 1},
		{Partition{2, 2}, 6},
		{Partition{3, 3, 3}, 1680},
	}

	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			got := Multinomial(tt.p)
			if got.Cmp(big.NewInt(tt.want)) != 0 {
				t.Errorf("Multinomial(%v) = %v, want %d", tt.p, got, tt.want)
			}
		})
	}
}

func TestMultinomialLarge(t *testing.T) {
	// 30!/(15!15!) = C(30, 15)
	got := Multinomial(Partition{15, 15})
	want := new(big.Int).Binomial(30, 15)
	if got.Cmp(want) != 0 {
		t.Errorf("Multinomial(15,15) = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Partition
		wantErr bool
	}{
		{"2,3,1", Partition{2, 3, 1}, false},
		{" 2 , 3 ,1 ", Partition{2, 3, 1}, false},
		{"6", Partition{6}, false},
		{"", nil, true},
		{"2,,1", nil, true},
		{"2,x", nil, true},
		{"2,0", nil, true},
		{"-3", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidPartition) {
					t.Errorf("Parse(%q) code = %v, want %v", tt.input, errors.GetCode(err), errors.ErrCodeInvalidPartition)
				}
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromWord(t *testing.T) {
	tests := []struct {
		word     string
		want     Partition
		alphabet string
	}{
		{"aabbbc", Partition{2, 3, 1}, "abc"},
		{"bbbaac", Partition{3, 2, 1}, "bac"},
		{"abcc", Partition{1, 1, 2}, "abc"},
		{"zzz", Partition{3}, "z"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, alphabet, err := FromWord(tt.word)
			if err != nil {
				t.Fatalf("FromWord(%q) error: %v", tt.word, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("FromWord(%q) = %v, want %v", tt.word, got, tt.want)
			}
			if string(alphabet) != tt.alphabet {
				t.Errorf("FromWord(%q) alphabet = %q, want %q", tt.word, string(alphabet), tt.alphabet)
			}
		})
	}

	if _, _, err := FromWord(""); err == nil {
		t.Error("FromWord(\"\") should fail")
	}
}

func TestPartitionString(t *testing.T) {
	if got := (Partition{2, 3, 1}).String(); got != "2,3,1" {
		t.Errorf("String() = %q, want %q", got, "2,3,1")
	}
}
