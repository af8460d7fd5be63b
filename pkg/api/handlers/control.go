package handlers

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mvero/actiond/pkg/api/types"
	"github.com/mvero/actiond/pkg/db"
	"github.com/mvero/actiond/pkg/scheduler"
	"github.com/mvero/actiond/pkg/transport"
)

// ControlHandler handles trigger, payload preview and event stream endpoints.
type ControlHandler struct {
	store     db.ActionStore
	projectID int64
	sched     *scheduler.Scheduler
}

// NewControlHandler creates a new control handler
func NewControlHandler(store db.ActionStore, projectID int64, sched *scheduler.Scheduler) *ControlHandler {
	return &ControlHandler{store: store, projectID: projectID, sched: sched}
}

// Trigger handles POST /actions/:id/trigger
// @Summary      Trigger an action
// @Description  Transmits the action payload once and applies its timer mode
// @Tags         control
// @Produce      json
// @Param        id   path      int  true  "Action id"
// @Success      200  {object}  types.TriggerResponse
// @Failure      400  {object}  types.ErrorResponse  "Invalid id"
// @Failure      404  {object}  types.ErrorResponse  "Action not found"
// @Failure      503  {object}  types.ErrorResponse  "Device not connected"
// @Failure      500  {object}  types.ErrorResponse  "Transmission error"
// @Router       /actions/{id}/trigger [post]
func (h *ControlHandler) Trigger(c *gin.Context) {
	id, ok := actionID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

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

	if err := h.sched.Trigger(ctx, a); err != nil {
		if errors.Is(err, transport.ErrNotConnected) {
			c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
				Error:   "not_connected",
				Message: "Device is not connected",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "transmission_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.TriggerResponse{
		ActionID:     a.ID(),
		BytesSent:    len(a.TxByteArray()),
		TimerRunning: h.sched.Running(a.ID()),
		Timestamp:    time.Now(),
	})
}

// Payload handles GET /actions/:id/payload
// @Summary      Preview an action payload
// @Description  Returns the exact bytes the action would transmit, hex encoded
// @Tags         control
// @Produce      json
// @Param        id   path      int  true  "Action id"
// @Success      200  {object}  types.PayloadResponse
// @Failure      400  {object}  types.ErrorResponse  "Invalid id"
// @Failure      404  {object}  types.ErrorResponse  "Action not found"
// @Router       /actions/{id}/payload [get]
func (h *ControlHandler) Payload(c *gin.Context) {
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

	data := a.TxByteArray()
	c.JSON(http.StatusOK, types.PayloadResponse{
		ActionID: a.ID(),
		Hex:      hex.EncodeToString(data),
		Length:   len(data),
	})
}

// Events handles GET /events (SSE stream)
// @Summary      Subscribe to transmission events
// @Description  Server-Sent Events stream of action transmissions
// @Tags         control
// @Produce      text/event-stream
// @Success      200  {string}  string  "SSE event stream"
// @Router       /events [get]
func (h *ControlHandler) Events(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	eventChan := h.sched.Subscribe()
	defer h.sched.Unsubscribe(eventChan)

	sendSSEEvent(c.Writer, "connected", map[string]any{
		"timestamp": time.Now(),
		"message":   "Connected to transmission event stream",
	})
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()

	// Heartbeat ticker
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-clientGone:
			return

		case event, ok := <-eventChan:
			if !ok {
				return
			}
			sendSSEEvent(c.Writer, "transmission", event)
			c.Writer.Flush()

		case <-ticker.C:
			sendSSEEvent(c.Writer, "heartbeat", map[string]any{
				"timestamp": time.Now(),
			})
			c.Writer.Flush()
		}
	}
}

// sendSSEEvent writes an SSE event to the response
func sendSSEEvent(w io.Writer, eventType string, data any) {
	jsonData, _ := json.Marshal(data)
	io.WriteString(w, "event: "+eventType+"\n")
	io.WriteString(w, "data: "+string(jsonData)+"\n\n")
}
