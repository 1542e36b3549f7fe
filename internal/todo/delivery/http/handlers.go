package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rainerkim/ai-todo-manager/internal/middleware"
	"github.com/rainerkim/ai-todo-manager/pkg/response"
)

// Parse godoc
// @Summary     Parse natural language into a structured todo
// @Description Sends the free-text sentence to the AI model and returns a structured todo draft. Nothing is persisted.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Natural language input"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Empty input"
// @Failure     429 {object} response.Resp "AI quota exhausted"
// @Failure     500 {object} response.Resp "AI service failure"
// @Router      /api/v1/todos/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Parse(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newParseResp(output))
}

// Create godoc
// @Summary     Create a todo
// @Description Creates a new todo for the authenticated user.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Todo data"
// @Success     200 {object} todoResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTodoResp(output.Todo))
}

// List godoc
// @Summary     List todos
// @Description Returns the user's todos with optional filters and sorting.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       category  query string false "Filter by category"
// @Param       priority  query string false "Filter by priority"
// @Param       completed query bool   false "Filter by completion"
// @Param       q         query string false "Free-text match on title/description"
// @Param       sort_by   query string false "due_date | create_date | priority"
// @Param       order     query string false "asc | desc"
// @Param       limit     query int    false "Page size (default 20)"
// @Param       offset    query int    false "Page offset"
// @Success     200 {object} listResp
// @Router      /api/v1/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(output))
}

// Detail godoc
// @Summary     Get todo detail
// @Tags        Todos
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} todoResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTodoResp(output.Todo))
}

// Update godoc
// @Summary     Update a todo
// @Description Partial update; omitted fields are left untouched.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Todo ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} todoResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Update(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTodoResp(output.Todo))
}

// Delete godoc
// @Summary     Delete a todo
// @Tags        Todos
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Complete godoc
// @Summary     Toggle todo completion
// @Tags        Todos
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} todoResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id}/complete [PATCH]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.ToggleComplete(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleComplete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTodoResp(output.Todo))
}
