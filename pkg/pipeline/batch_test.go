package pipeline

import (
	"context"
	"testing"

	"github.com/matzehuels/necklace/pkg/errors"
	"github.com/matzehuels/necklace/pkg/multiset"
	"github.com/matzehuels/necklace/pkg/necklace"
)

func TestBatch(t *testing.T) {
	r := NewRunner(newMemCache(), nil, quietLogger())
	jobs := []Options{
		{Partition: multiset.Partition{2, 3, 1}, Group: necklace.Cyclic},
		{Partition: multiset.Partition{2, 3, 1}, Group: necklace.Dihedral},
		{Partition: multiset.Partition{1, 1, 1, 1, 1}, Group: necklace.Cyclic},
		{Partition: multiset.Partition{1, 1, 1, 1, 1}, Group: necklace.Dihedral},
		{Partition: multiset.Partition{2, 2, 2}, Group: necklace.Dihedral, Output: necklace.OutputReps},
	}
	want := []int{10, 6, 24, 12, 11}

	results, err := r.Batch(context.Background(), jobs, 2)
	if err != nil {
		t.Fatalf("Batch() error: %v", err)
	}
	if len(results) != len(jobs) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(jobs))
	}
	for i, res := range results {
		if res.Count != want[i] {
			t.Errorf("job %d count = %d, want %d", i, res.Count, want[i])
		}
	}
	if len(results[4].Reps) != 11 {
		t.Errorf("job 4 reps = %d, want 11", len(results[4].Reps))
	}
}

func TestBatchFailure(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	jobs := []Options{
		{Partition: multiset.Partition{2, 1}},
		{Partition: multiset.Partition{2, 1}, Output: "bogus"},
	}
	if _, err := r.Batch(context.Background(), jobs, 0); !errors.Is(err, errors.ErrCodeInvalidOutput) {
		t.Errorf("Batch() error = %v, want INVALID_OUTPUT", err)
	}
}

func TestBatchEmpty(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	results, err := r.Batch(context.Background(), nil, 1)
	if err != nil || len(results) != 0 {
		t.Errorf("Batch(nil) = %v, %v", results, err)
	}
}
