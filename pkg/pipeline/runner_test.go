package pipeline

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/necklace/pkg/cache"
	"github.com/matzehuels/necklace/pkg/errors"
	"github.com/matzehuels/necklace/pkg/multiset"
	"github.com/matzehuels/necklace/pkg/necklace"
	"github.com/matzehuels/necklace/pkg/observability"
)

// memCache is an in-memory cache that counts writes.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil || r.Keyer == nil || r.Logger == nil {
		t.Fatal("NewRunner should fill nil dependencies")
	}
	if _, ok := r.Cache.(*cache.NullCache); !ok {
		t.Errorf("default cache = %T, want *cache.NullCache", r.Cache)
	}
}

func TestRunCounts(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	ctx := context.Background()

	tests := []struct {
		p     multiset.Partition
		g     necklace.Group
		count int
	}{
		{multiset.Partition{2, 3, 1}, necklace.Cyclic, 10},
		{multiset.Partition{2, 3, 1}, necklace.Dihedral, 6},
		{multiset.Partition{1, 1, 1, 1}, necklace.Cyclic, 6},
		{multiset.Partition{1, 1, 1, 1}, necklace.Dihedral, 3},
	}
	for _, tt := range tests {
		res, err := r.Run(ctx, Options{Partition: tt.p, Group: tt.g})
		if err != nil {
			t.Fatalf("Run(%v, %s) error: %v", tt.p, tt.g, err)
		}
		if res.Count != tt.count {
			t.Errorf("Run(%v, %s) = %d, want %d", tt.p, tt.g, res.Count, tt.count)
		}
		if res.Stats.Orbits != tt.count {
			t.Errorf("Stats.Orbits = %d, want %d", res.Stats.Orbits, tt.count)
		}
		if want := multiset.Multinomial(tt.p).Int64(); res.Stats.Configs != want {
			t.Errorf("Stats.Configs = %d, want %d", res.Stats.Configs, want)
		}
	}
}

func TestRunCaching(t *testing.T) {
	c := newMemCache()
	r := NewRunner(c, nil, quietLogger())
	ctx := context.Background()
	opts := Options{Partition: multiset.Partition{2, 2}, Group: necklace.Cyclic, Output: necklace.OutputCosets}

	first, err := r.Run(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHit {
		t.Error("first run should miss the cache")
	}
	if c.sets != 1 {
		t.Errorf("cache writes = %d, want 1", c.sets)
	}

	second, err := r.Run(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit {
		t.Error("second run should hit the cache")
	}
	if second.Count != first.Count || len(second.Cosets) != len(first.Cosets) {
		t.Errorf("cached result = %+v, want %+v", second.Result, first.Result)
	}
	for i := range first.Cosets {
		if !second.Cosets[i].Equal(first.Cosets[i]) {
			t.Errorf("cached coset %d differs", i)
		}
	}
	if second.Stats.Configs != 6 {
		t.Errorf("cached Stats.Configs = %d, want 6", second.Stats.Configs)
	}

	opts.Refresh = true
	third, err := r.Run(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheHit {
		t.Error("refresh run should bypass the cache")
	}
	if c.sets != 2 {
		t.Errorf("refresh should overwrite the entry, writes = %d", c.sets)
	}
}

func TestRunCacheKeysSeparateOutputs(t *testing.T) {
	c := newMemCache()
	r := NewRunner(c, nil, quietLogger())
	ctx := context.Background()
	p := multiset.Partition{2, 1, 1}

	if _, err := r.Run(ctx, Options{Partition: p, Output: necklace.OutputNum}); err != nil {
		t.Fatal(err)
	}
	res, err := r.Run(ctx, Options{Partition: p, Output: necklace.OutputReps})
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheHit {
		t.Error("reps run should not reuse a num entry")
	}
	if len(res.Reps) != res.Count {
		t.Errorf("len(Reps) = %d, want %d", len(res.Reps), res.Count)
	}
}

func TestRunCorruptCacheEntry(t *testing.T) {
	c := newMemCache()
	r := NewRunner(c, nil, quietLogger())
	opts := Options{Partition: multiset.Partition{3, 1}}
	key := r.Keyer.CountKey(string(DefaultGroup), string(DefaultOutput), opts.Partition)
	c.data[key] = []byte("{not json")

	res, err := r.Run(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheHit || res.Count != 1 {
		t.Errorf("Run() = %+v, hit %v; want recomputed count 1", res.Result, res.CacheHit)
	}
}

func TestRunTooLarge(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	_, err := r.Run(context.Background(), Options{
		Partition:  multiset.Partition{2, 3, 1},
		MaxConfigs: 10,
	})
	if !errors.Is(err, errors.ErrCodeTooLarge) {
		t.Fatalf("Run() error = %v, want TOO_LARGE", err)
	}
}

func TestRunInvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	_, err := r.Run(context.Background(), Options{Partition: multiset.Partition{2}, Group: "Sn"})
	if !errors.Is(err, errors.ErrCodeInvalidGroup) {
		t.Fatalf("Run() error = %v, want INVALID_GROUP", err)
	}
	if !strings.Contains(err.Error(), "invalid options") {
		t.Errorf("error should be wrapped with context: %v", err)
	}
}

func TestRunCanceled(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Run(ctx, Options{Partition: multiset.Partition{2}}); err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

type recordingHooks struct {
	observability.NoopCountHooks
	mu       sync.Mutex
	complete int
	orbits   int
}

func (h *recordingHooks) OnCountComplete(_ context.Context, _, _ string, _, orbits int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.complete++
	h.orbits += orbits
}

func TestRunEmitsCountHooks(t *testing.T) {
	defer observability.Reset()
	hooks := &recordingHooks{}
	observability.SetCountHooks(hooks)

	r := NewRunner(nil, nil, quietLogger())
	if _, err := r.Run(context.Background(), Options{Partition: multiset.Partition{2, 3, 1}, Group: necklace.Dihedral}); err != nil {
		t.Fatal(err)
	}
	if hooks.complete != 1 || hooks.orbits != 6 {
		t.Errorf("hooks saw %d completions and %d orbits, want 1 and 6", hooks.complete, hooks.orbits)
	}
}

func TestDrawDOT(t *testing.T) {
	c := newMemCache()
	r := NewRunner(c, nil, quietLogger())
	ctx := context.Background()
	opts := Options{Partition: multiset.Partition{2, 2}, Group: necklace.Dihedral}

	dot, err := r.Draw(ctx, opts, FormatDOT, nil)
	if err != nil {
		t.Fatalf("Draw() error: %v", err)
	}
	if !strings.HasPrefix(string(dot), "digraph Quotient {") {
		t.Errorf("Draw(dot) output unexpected:\n%s", dot)
	}
	if c.sets != 1 {
		t.Errorf("cache writes = %d, want 1", c.sets)
	}

	again, err := r.Draw(ctx, opts, FormatDOT, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(dot) || c.sets != 1 {
		t.Error("second Draw() should be served from the cache")
	}

	if _, err := r.Draw(ctx, opts, "png", nil); err == nil {
		t.Error("Draw() with unsupported format should fail")
	}
}
