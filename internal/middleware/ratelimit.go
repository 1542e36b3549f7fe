package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/rainerkim/ai-todo-manager/pkg/response"
)

// RateLimit throttles a route per client IP. Intended for the AI parse
// endpoint, whose upstream quota is the scarce resource.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMinute := m.rateCfg.ParsePerMinute
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limit := rate.Every(time.Minute / time.Duration(perMinute))

	return func(c *gin.Context) {
		ip := c.ClientIP()

		limiter, ok := m.limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(limit, perMinute)
			m.limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "요청이 너무 많습니다. 잠시 후 다시 시도해주세요.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
