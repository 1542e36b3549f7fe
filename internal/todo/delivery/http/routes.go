package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rainerkim/ai-todo-manager/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// The parse route is additionally rate limited: its upstream model quota is
// the scarce resource.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	todos := rg.Group("/todos")
	{
		todos.POST("/parse", mw.Auth(), mw.RateLimit(), h.Parse)
		todos.POST("", mw.Auth(), h.Create)
		todos.GET("", mw.Auth(), h.List)
		todos.GET("/:id", mw.Auth(), h.Detail)
		todos.PUT("/:id", mw.Auth(), h.Update)
		todos.DELETE("/:id", mw.Auth(), h.Delete)
		todos.PATCH("/:id/complete", mw.Auth(), h.Complete)
	}
}
