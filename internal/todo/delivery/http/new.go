package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rainerkim/ai-todo-manager/internal/todo"
	"github.com/rainerkim/ai-todo-manager/pkg/log"
)

// Handler is the HTTP surface of the todo domain.
type Handler interface {
	Parse(c *gin.Context)
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Complete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc todo.UseCase
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
