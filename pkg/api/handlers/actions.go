package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mvero/actiond/pkg/action"
	"github.com/mvero/actiond/pkg/api/types"
	"github.com/mvero/actiond/pkg/db"
	"github.com/mvero/actiond/pkg/scheduler"
)

// ActionsHandler handles action CRUD endpoints for the active project.
type ActionsHandler struct {
	store     db.ActionStore
	projectID int64
	sched     *scheduler.Scheduler
}

// NewActionsHandler creates a new actions handler
func NewActionsHandler(store db.ActionStore, projectID int64, sched *scheduler.Scheduler) *ActionsHandler {
	return &ActionsHandler{store: store, projectID: projectID, sched: sched}
}

// actionID parses the :id path parameter. A non-numeric id responds 400 and
// returns false.
func actionID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_id",
			Message: "Action id must be an integer",
		})
		return 0, false
	}
	return id, true
}

// ListActions handles GET /actions
// @Summary      List all actions
// @Description  Returns every action of the active project
// @Tags         actions
// @Produce      json
// @Success      200  {object}  types.ListActionsResponse
// @Failure      500  {object}  types.ErrorResponse  "Storage error"
// @Router       /actions [get]
func (h *ActionsHandler) ListActions(c *gin.Context) {
	actions, err := h.store.List(c.Request.Context(), h.projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "storage_error",
			Message: err.Error(),
		})
		return
	}

	result := make([]types.ActionInfo, 0, len(actions))
	for _, a := range actions {
		result = append(result, types.FromAction(a, h.sched.Running(a.ID())))
	}

	c.JSON(http.StatusOK, types.ListActionsResponse{
		Actions: result,
		Count:   len(result),
	})
}

// GetAction handles GET /actions/:id
// @Summary      Get action details
// @Description  Returns a single action by id
// @Tags         actions
// @Produce      json
// @Param        id   path      int  true  "Action id"
// @Success      200  {object}  types.ActionResponse
// @Failure      400  {object}  types.ErrorResponse  "Invalid id"
// @Failure      404  {object}  types.ErrorResponse  "Action not found"
// @Failure      500  {object}  types.ErrorResponse  "Storage error"
// @Router       /actions/{id} [get]
func (h *ActionsHandler) GetAction(c *gin.Context) {
	id, ok := actionID(c)
	if !ok {
		return
	}

	a, err := h.store.Get(c.Request.Context(), h.projectID, id)
	if err != nil {
		if errors.Is(err, db.ErrActionNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "not_found",
				Message: "Action not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "storage_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.ActionResponse{
		Action: types.FromAction(a, h.sched.Running(a.ID())),
	})
}

// CreateAction handles POST /actions
// @Summary      Create an action
// @Description  Creates a new action with a freshly assigned id
// @Tags         actions
// @Accept       json
// @Produce      json
// @Param        request  body      types.ActionRequest  true  "Action fields"
// @Success      201      {object}  types.ActionResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      500      {object}  types.ErrorResponse  "Storage error"
// @Router       /actions [post]
func (h *ActionsHandler) CreateAction(c *gin.Context) {
	ctx := c.Request.Context()

	var req types.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	id, err := h.store.NextActionID(ctx, h.projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "storage_error",
			Message: err.Error(),
		})
		return
	}

	a := action.New(id)
	req.Apply(a)

	if err := h.store.Create(ctx, h.projectID, a); err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "storage_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, types.ActionResponse{
		Action: types.FromAction(a, false),
	})
}

// UpdateAction handles PATCH /actions/:id
// @Summary      Update an action
// @Description  Applies the present fields of the request to an existing action
// @Tags         actions
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Action id"
// @Param        request  body      types.ActionRequest  true  "Fields to change"
// @Success      200      {object}  types.ActionResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      404      {object}  types.ErrorResponse  "Action not found"
// @Failure      500      {object}  types.ErrorResponse  "Storage error"
// @Router       /actions/{id} [patch]
func (h *ActionsHandler) UpdateAction(c *gin.Context) {
	id, ok := actionID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var req types.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	a, err := h.store.Get(ctx, h.projectID, id)
	if err != nil {
		if errors.Is(err, db.ErrActionNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "not_found",
				Message: "Action not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "storage_error",
			Message: err.Error(),
		})
		return
	}

	req.Apply(a)

	if err := h.store.Update(ctx, h.projectID, a); err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "storage_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.ActionResponse{
		Action: types.FromAction(a, h.sched.Running(a.ID())),
	})
}

// DeleteAction handles DELETE /actions/:id
// @Summary      Delete an action
// @Description  Removes an action and stops its timer if running
// @Tags         actions
// @Produce      json
// @Param        id   path  int  true  "Action id"
// @Success      204  "Action removed"
// @Failure      400  {object}  types.ErrorResponse  "Invalid id"
// @Failure      404  {object}  types.ErrorResponse  "Action not found"
// @Failure      500  {object}  types.ErrorResponse  "Storage error"
// @Router       /actions/{id} [delete]
func (h *ActionsHandler) DeleteAction(c *gin.Context) {
	id, ok := actionID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), h.projectID, id); err != nil {
		if errors.Is(err, db.ErrActionNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "not_found",
				Message: "Action not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "storage_error",
			Message: err.Error(),
		})
		return
	}

	h.sched.StopTimer(id)

	c.Status(http.StatusNoContent)
}
