package necklace

import (
	"testing"

	"github.com/matzehuels/necklace/pkg/multiset"
)

func benchmarkCount(b *testing.B, p multiset.Partition, g Group) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Count(p, g, OutputNum); err != nil {
			b.Fatalf("Count failed: %v", err)
		}
	}
}

func BenchmarkNecklacesSmall(b *testing.B)  { benchmarkCount(b, multiset.Partition{2, 3, 1}, Cyclic) }
func BenchmarkBraceletsSmall(b *testing.B)  { benchmarkCount(b, multiset.Partition{2, 3, 1}, Dihedral) }
func BenchmarkNecklacesMedium(b *testing.B) { benchmarkCount(b, multiset.Partition{3, 3, 2, 2}, Cyclic) }
func BenchmarkBraceletsMedium(b *testing.B) { benchmarkCount(b, multiset.Partition{3, 3, 2, 2}, Dihedral) }
