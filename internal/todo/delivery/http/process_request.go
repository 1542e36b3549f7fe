package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rainerkim/ai-todo-manager/internal/todo"
)

// processParseReq binds and validates the natural-language parse request.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, todo.ErrEmptyInput
	}
	return req, req.validate()
}

// processCreateReq binds and validates the create todo request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, todo.ErrInvalidPayload
	}
	return req, req.validate()
}

// processListReq binds and validates the list todos query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, todo.ErrInvalidPayload
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update todo body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, todo.ErrInvalidPayload
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, todo.ErrInvalidPayload
	}
	return req, req.validate()
}
