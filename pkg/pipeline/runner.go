package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/necklace/pkg/cache"
	"github.com/matzehuels/necklace/pkg/multiset"
	"github.com/matzehuels/necklace/pkg/necklace"
	"github.com/matzehuels/necklace/pkg/observability"
)

// Cache key types reported to observability hooks.
const (
	keyTypeCount   = "count"
	keyTypeDrawing = "drawing"
)

// Runner encapsulates counting runs with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the lifetime of cached results. Zero uses cache.TTLCount.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Run validates opts and counts the orbits of the partition's
// configuration set, using the cache unless opts.Refresh is set.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	start := time.Now()

	key := r.Keyer.CountKey(string(opts.Group), string(opts.Output), opts.Partition)
	if !opts.Refresh {
		if res, ok := r.cachedResult(ctx, key); ok {
			res.Stats.Duration = time.Since(start)
			res.CacheHit = true
			opts.Logger.Debug("cache hit",
				"partition", opts.Partition.String(),
				"group", opts.Group,
				"output", opts.Output)
			return res, nil
		}
	}

	if err := CheckSize(opts.Partition, opts.MaxConfigs); err != nil {
		return nil, err
	}

	observability.Count().OnCountStart(ctx, string(opts.Group), opts.Partition.Size())
	res, err := necklace.Count(opts.Partition, opts.Group, opts.Output)
	configs := configCount(opts.Partition)
	duration := time.Since(start)
	observability.Count().OnCountComplete(ctx, string(opts.Group), string(opts.Output), int(configs), res.Count, duration, err)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Result: res,
		Stats: Stats{
			Configs:  configs,
			Orbits:   res.Count,
			Duration: duration,
		},
	}

	opts.Logger.Info("counted "+opts.Group.Name()+"s",
		"partition", opts.Partition.String(),
		"group", opts.Group,
		"configs", configs,
		"orbits", res.Count,
		"duration", duration)

	r.store(ctx, opts.Logger, key, keyTypeCount, result)
	return result, nil
}

// Draw renders the quotient of opts' configuration set as DOT or SVG,
// using the cache unless opts.Refresh is set. The output mode is ignored;
// drawings always show every orbit.
func (r *Runner) Draw(ctx context.Context, opts Options, format string, alphabet []rune) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	key := r.Keyer.DrawingKey(string(opts.Group), format+":"+string(alphabet), opts.Partition)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, keyTypeDrawing)
			return data, nil
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeDrawing)
	}

	if err := CheckSize(opts.Partition, opts.MaxConfigs); err != nil {
		return nil, err
	}
	q, err := necklace.ConfigsCount(opts.Partition, opts.Group, true)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case FormatDOT:
		data = []byte(q.ToDOT(alphabet))
	case FormatSVG:
		data, err = q.RenderSVG(alphabet)
		if err != nil {
			return nil, fmt.Errorf("render svg: %w", err)
		}
	}

	opts.Logger.Debug("rendered quotient",
		"partition", opts.Partition.String(),
		"group", opts.Group,
		"format", format,
		"bytes", len(data))

	if err := r.Cache.Set(ctx, key, data, cache.TTLDrawing); err != nil {
		opts.Logger.Warn("cache write failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, keyTypeDrawing, len(data))
	}
	return data, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// configCount returns the size of p's configuration set, saturating at
// math.MaxInt64.
func configCount(p multiset.Partition) int64 {
	m := multiset.Multinomial(p)
	if !m.IsInt64() {
		return math.MaxInt64
	}
	return m.Int64()
}

// cachedResult decodes a cached result. Backend errors and undecodable
// entries count as misses.
func (r *Runner) cachedResult(ctx context.Context, key string) (*Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeCount)
		return nil, false
	}
	res, err := decodeResult(data)
	if err != nil {
		r.Logger.Debug("discarding cache entry", "error", err)
		observability.Cache().OnCacheMiss(ctx, keyTypeCount)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeCount)
	return res, true
}

func (r *Runner) store(ctx context.Context, logger *log.Logger, key, keyType string, res *Result) {
	data, err := encodeResult(res)
	if err != nil {
		logger.Warn("encode result", "error", err)
		return
	}
	ttl := r.TTL
	if ttl == 0 {
		ttl = cache.TTLCount
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// cachedEntry is the stored form of a result. Duration and the cache flag
// describe a single run and are not persisted.
type cachedEntry struct {
	Result  necklace.Result `json:"result"`
	Configs int64           `json:"configs"`
}

func encodeResult(res *Result) ([]byte, error) {
	return json.Marshal(cachedEntry{Result: res.Result, Configs: res.Stats.Configs})
}

func decodeResult(data []byte) (*Result, error) {
	var entry cachedEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &Result{
		Result: entry.Result,
		Stats: Stats{
			Configs: entry.Configs,
			Orbits:  entry.Result.Count,
		},
	}, nil
}
