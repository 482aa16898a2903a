package metrics

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/matzehuels/necklace/pkg/observability"
)

func TestCountHooks(t *testing.T) {
	m := New()
	ctx := context.Background()

	m.OnCountStart(ctx, "Dn", 6)
	m.OnCountComplete(ctx, "Dn", "num", 60, 6, 10*time.Millisecond, nil)
	m.OnCountComplete(ctx, "Dn", "num", 0, 0, time.Millisecond, errors.New("boom"))
	m.OnCountComplete(ctx, "Cn", "reps", 0, 0, time.Millisecond, context.Canceled)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"ok", testutil.ToFloat64(m.CountsTotal.WithLabelValues("Dn", "num", "ok")), 1},
		{"error", testutil.ToFloat64(m.CountsTotal.WithLabelValues("Dn", "num", "error")), 1},
		{"canceled", testutil.ToFloat64(m.CountsTotal.WithLabelValues("Cn", "reps", "canceled")), 1},
		{"configs", testutil.ToFloat64(m.ConfigurationsTotal.WithLabelValues("Dn")), 60},
		{"orbits", testutil.ToFloat64(m.OrbitsTotal.WithLabelValues("Dn")), 6},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestCacheHooks(t *testing.T) {
	m := New()
	ctx := context.Background()

	m.OnCacheHit(ctx, "count")
	m.OnCacheHit(ctx, "count")
	m.OnCacheMiss(ctx, "count")
	m.OnCacheSet(ctx, "count", 128)

	if got := testutil.ToFloat64(m.CacheHitsTotal.WithLabelValues("count")); got != 2 {
		t.Errorf("hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.CacheMissesTotal.WithLabelValues("count")); got != 1 {
		t.Errorf("misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.CacheBytesWritten.WithLabelValues("count")); got != 128 {
		t.Errorf("bytes = %v, want 128", got)
	}
}

func TestHTTPHooks(t *testing.T) {
	m := New()
	ctx := context.Background()

	m.OnRequest(ctx, "GET", "/v1/necklaces")
	if got := testutil.ToFloat64(m.HTTPRequestsInFlight); got != 1 {
		t.Errorf("in flight = %v, want 1", got)
	}
	m.OnResponse(ctx, "GET", "/v1/necklaces", 200, time.Millisecond)
	if got := testutil.ToFloat64(m.HTTPRequestsInFlight); got != 0 {
		t.Errorf("in flight = %v, want 0", got)
	}
	if got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/v1/necklaces", "200")); got != 1 {
		t.Errorf("requests = %v, want 1", got)
	}
}

func TestRegister(t *testing.T) {
	defer observability.Reset()
	m := New()
	m.Register()
	if observability.Count() != observability.CountHooks(m) {
		t.Error("Register should install count hooks")
	}
	if observability.Cache() != observability.CacheHooks(m) {
		t.Error("Register should install cache hooks")
	}
	if observability.HTTP() != observability.HTTPHooks(m) {
		t.Error("Register should install HTTP hooks")
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.OnCacheMiss(context.Background(), "count")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `necklace_cache_misses_total{key_type="count"} 1`) {
		t.Errorf("scrape output missing cache miss counter:\n%s", body)
	}
}
