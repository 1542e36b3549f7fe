package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/rainerkim/ai-todo-manager/config"
	"github.com/rainerkim/ai-todo-manager/pkg/log"
)

// limiterCacheSize bounds how many distinct clients keep a live limiter.
const limiterCacheSize = 1024

type Middleware struct {
	l        log.Logger
	cors     config.CORSConfig
	rateCfg  config.RateLimitConfig
	limiters *lru.Cache[string, *rate.Limiter]
}

func New(l log.Logger, cfg *config.Config) Middleware {
	limiters, err := lru.New[string, *rate.Limiter](limiterCacheSize)
	if err != nil {
		panic(err)
	}
	return Middleware{
		l:        l,
		cors:     cfg.CORS,
		rateCfg:  cfg.RateLimit,
		limiters: limiters,
	}
}
