// Package metrics defines and registers all custom Prometheus metrics for the
// micropost content API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry via promauto at package init.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/micropost/content-api/internal/core/ports"
)

const namespace = "micropost"

// UsersRegisteredTotal counts successful account registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts successfully registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// PostsCreatedTotal counts created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// PostsDeletedTotal counts deleted posts.
var PostsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_deleted_total",
		Help:      "Total number of posts deleted.",
	},
)

// CacheRequestsTotal counts response-cache lookups.
// Label:
//   - result: "hit" or "miss"
var CacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_requests_total",
		Help:      "Total number of response cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// InstrumentedCache decorates a ports.Cache with hit/miss counting. Wiring it
// around either cache backend keeps the counting out of the service layer.
type InstrumentedCache struct {
	next ports.Cache
}

// Instrument wraps next with cache lookup metrics.
func Instrument(next ports.Cache) *InstrumentedCache {
	return &InstrumentedCache{next: next}
}

func (ic *InstrumentedCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, found := ic.next.Get(ctx, key)
	if found {
		CacheRequestsTotal.WithLabelValues("hit").Inc()
	} else {
		CacheRequestsTotal.WithLabelValues("miss").Inc()
	}
	return value, found
}

func (ic *InstrumentedCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	ic.next.Set(ctx, key, value, ttl)
}

func (ic *InstrumentedCache) Delete(ctx context.Context, key string) {
	ic.next.Delete(ctx, key)
}
