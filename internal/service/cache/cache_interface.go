package cache

import "github.com/guttosm/packlist-service/internal/domain/model"

// Cache defines the interface for generation-result cache operations.
// Keys are request digests produced by the generator.
type Cache interface {
	Get(key string) (model.Packlist, bool)
	Set(key string, value model.Packlist)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
