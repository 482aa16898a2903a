package necklace

import (
	"strings"
	"testing"

	"github.com/matzehuels/necklace/pkg/errors"
)

func TestOrbitCyclic(t *testing.T) {
	x := mustArr(t, 0, 0, 1, 1, 1)
	orbit, err := Orbit(x, Cyclic)
	if err != nil {
		t.Fatal(err)
	}
	want := NewSet(
		mustArr(t, 0, 0, 1, 1, 1),
		mustArr(t, 0, 1, 1, 1, 0),
		mustArr(t, 1, 1, 1, 0, 0),
		mustArr(t, 1, 1, 0, 0, 1),
		mustArr(t, 1, 0, 0, 1, 1),
	)
	if !orbit.Equal(want) {
		t.Errorf("Orbit(%v, Cn) = %v, want %v", x, orbit.Sorted(), want.Sorted())
	}
}

func TestOrbitDihedral(t *testing.T) {
	// abcc ~ cabc ~ ccab ~ bcca ~ ccba ~ cbac ~ bacc ~ accb
	x := mustArr(t, 0, 1, 2, 2)
	orbit, err := Orbit(x, Dihedral)
	if err != nil {
		t.Fatal(err)
	}
	var words []string
	for _, a := range orbit.Sorted() {
		words = append(words, a.Word(nil))
	}
	want := "abcc accb bacc bcca cabc cbac ccab ccba"
	if got := strings.Join(words, " "); got != want {
		t.Errorf("Orbit(abcc, Dn) = %s, want %s", got, want)
	}
}

func TestOrbitReversedRotations(t *testing.T) {
	// Every reversed rotation (x[i+n-1], ..., x[i]) is in the Dn orbit.
	x := mustArr(t, 0, 1, 2, 3, 4)
	n := x.Len()
	orbit, err := Orbit(x, Dihedral)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		symbols := make([]int, n)
		for j := 0; j < n; j++ {
			symbols[j] = x.At((i + n - 1 - j) % n)
		}
		if r := mustArr(t, symbols...); !orbit.Has(r) {
			t.Errorf("reversed rotation %d = %v missing from orbit", i, r)
		}
	}
	if orbit.Len() != 2*n {
		t.Errorf("orbit of all-distinct arrangement has %d elements, want %d", orbit.Len(), 2*n)
	}
}

func TestOrbitSymmetric(t *testing.T) {
	tests := []struct {
		name string
		x    Arrangement
		g    Group
		want int
	}{
		{"constant Cn", mustArr(t, 1, 1, 1, 1), Cyclic, 1},
		{"constant Dn", mustArr(t, 1, 1, 1, 1), Dihedral, 1},
		{"alternating Cn", mustArr(t, 0, 1, 0, 1), Cyclic, 2},
		{"alternating Dn", mustArr(t, 0, 1, 0, 1), Dihedral, 2},
		{"palindrome Dn", mustArr(t, 0, 0, 1), Dihedral, 3},
		{"single bead", mustArr(t, 3), Dihedral, 1},
		{"empty", Arrangement(""), Cyclic, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orbit, err := Orbit(tt.x, tt.g)
			if err != nil {
				t.Fatal(err)
			}
			if orbit.Len() != tt.want {
				t.Errorf("len(Orbit(%v, %s)) = %d, want %d", tt.x, tt.g, orbit.Len(), tt.want)
			}
		})
	}
}

func TestOrbitInvalidGroup(t *testing.T) {
	_, err := Orbit(mustArr(t, 0, 1), Group("Sn"))
	if err == nil {
		t.Fatal("Orbit with unsupported group should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidGroup) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidGroup)
	}
	if !strings.Contains(err.Error(), `"Sn"`) {
		t.Errorf("error %q should name the tag", err)
	}
}

func TestStabilizer(t *testing.T) {
	tests := []struct {
		x    Arrangement
		g    Group
		want int
	}{
		{mustArr(t, 0, 1, 2, 3), Cyclic, 1},
		{mustArr(t, 0, 1, 0, 1), Cyclic, 2},
		{mustArr(t, 0, 1, 0, 1), Dihedral, 4},
		{mustArr(t, 2, 2, 2), Dihedral, 6},
	}
	for _, tt := range tests {
		got, err := Stabilizer(tt.x, tt.g)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Stabilizer(%v, %s) = %d, want %d", tt.x, tt.g, got, tt.want)
		}
	}
}

func TestParseGroup(t *testing.T) {
	for _, tag := range []string{"Cn", "Dn"} {
		if g, err := ParseGroup(tag); err != nil || string(g) != tag {
			t.Errorf("ParseGroup(%q) = %q, %v", tag, g, err)
		}
	}
	for _, tag := range []string{"cn", "Sn", ""} {
		if _, err := ParseGroup(tag); err == nil {
			t.Errorf("ParseGroup(%q) should fail", tag)
		}
	}
}
