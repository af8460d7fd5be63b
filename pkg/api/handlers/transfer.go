package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvero/actiond/pkg/action"
	"github.com/mvero/actiond/pkg/action/schema"
	"github.com/mvero/actiond/pkg/api/types"
	"github.com/mvero/actiond/pkg/db"
)

// TransferHandler handles action import/export in the persisted document form.
type TransferHandler struct {
	store     db.ActionStore
	projectID int64
	validator *schema.Validator
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(store db.ActionStore, projectID int64, validator *schema.Validator) *TransferHandler {
	return &TransferHandler{store: store, projectID: projectID, validator: validator}
}

// Import handles POST /actions/import
// @Summary      Import an action document
// @Description  Hydrates a new action from its persisted document form. Missing keys fall back to defaults; with strict set the document is validated first.
// @Tags         transfer
// @Accept       json
// @Produce      json
// @Param        request  body      types.ImportActionRequest  true  "Document to import"
// @Success      201      {object}  types.ActionResponse
// @Failure      400      {object}  types.ErrorResponse  "Empty or invalid document"
// @Failure      500      {object}  types.ErrorResponse  "Storage error"
// @Router       /actions/import [post]
func (h *TransferHandler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	var req types.ImportActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "document is required",
		})
		return
	}

	if req.Strict {
		if err := h.validator.Validate(req.Document); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error:   "validation_error",
				Message: err.Error(),
			})
			return
		}
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
	if !a.Read(action.Document(req.Document)) {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "empty_document",
			Message: "Cannot import a document with no keys",
		})
		return
	}

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

// Export handles GET /actions/:id/export
// @Summary      Export an action document
// @Description  Returns the action in its persisted document form. The id is not part of the document.
// @Tags         transfer
// @Produce      json
// @Param        id   path      int  true  "Action id"
// @Success      200  {object}  types.ExportResponse
// @Failure      400  {object}  types.ErrorResponse  "Invalid id"
// @Failure      404  {object}  types.ErrorResponse  "Action not found"
// @Router       /actions/{id}/export [get]
func (h *TransferHandler) Export(c *gin.Context) {
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

	c.JSON(http.StatusOK, types.ExportResponse{
		Document: a.Serialize(),
	})
}
