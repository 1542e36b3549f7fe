package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/rainerkim/ai-todo-manager/internal/model"
	"github.com/rainerkim/ai-todo-manager/pkg/response"
)

// userIDHeader is set by the authentication gateway in front of this
// service after it validates the session.
const userIDHeader = "X-User-ID"

const scopeKey = "scope"

// Auth extracts the forwarded user identity into a request Scope.
// Requests without an identity are rejected; this service never validates
// credentials itself.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// GetScope returns the request Scope set by Auth.
func GetScope(c *gin.Context) model.Scope {
	if sc, ok := c.Get(scopeKey); ok {
		if scope, ok := sc.(model.Scope); ok {
			return scope
		}
	}
	return model.Scope{}
}
