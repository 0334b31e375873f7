// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"mergington-hub/app/activities/api/internal/config"
	"mergington-hub/app/activities/registry"
	"mergington-hub/common/metrics"
	"mergington-hub/common/middleware"

	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config   config.Config
	Registry *registry.Registry
	Metrics  *metrics.Collector

	CorsMiddleware      rest.Middleware
	RequestIDMiddleware rest.Middleware
	RateLimitMiddleware rest.Middleware
}

func NewServiceContext(c config.Config) *ServiceContext {
	return &ServiceContext{
		Config:   c,
		Registry: registry.New(registry.DefaultSeed()),
		Metrics:  metrics.NewCollector(c.Metrics.Namespace),
		CorsMiddleware: middleware.NewCorsMiddleware(
			c.Cors.AllowOrigins, c.Cors.AllowMethods, c.Cors.AllowHeaders,
		).Handle,
		RequestIDMiddleware: middleware.NewRequestIDMiddleware().Handle,
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(
			c.RateLimit.GlobalRate, c.RateLimit.GlobalBurst,
			c.RateLimit.IPRate, c.RateLimit.IPBurst,
		).Handle,
	}
}
