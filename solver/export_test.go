package solver

import "github.com/prometheus/client_golang/prometheus"

// CacheHitsCounter exposes the cache-hit counter to external tests.
func CacheHitsCounter() prometheus.Counter { return cacheHits }
