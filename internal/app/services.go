// Package app provides service initialization.
package app

import (
	"github.com/guttosm/packlist-service/config"
	"github.com/guttosm/packlist-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Generator service.PacklistGenerator
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.CacheConfig) *ServiceComponents {
	var opts []service.Option

	if cfg.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Size, cfg.TTL))
	}

	generator := service.NewPacklistService(opts...)

	return &ServiceComponents{
		Generator: generator,
	}
}
