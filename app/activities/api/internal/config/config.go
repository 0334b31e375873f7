// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	// CORS configuration
	Cors struct {
		AllowOrigins []string
		AllowMethods []string
		AllowHeaders []string
	}

	// Rate limiting (token bucket, global + per-IP)
	RateLimit struct {
		GlobalRate  float64
		GlobalBurst int
		IPRate      float64
		IPBurst     int
	}

	// Static asset directory served under /static
	Static struct {
		Dir string
	}

	// Metric namespace for the Prometheus collectors
	Metrics struct {
		Namespace string
	}
}
