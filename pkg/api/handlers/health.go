package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mvero/actiond/pkg/api/types"
	"github.com/mvero/actiond/pkg/transport"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	sender transport.Sender
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(sender transport.Sender) *HealthHandler {
	return &HealthHandler{sender: sender}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Returns the health status of the API and the device link
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "Service is healthy"
// @Failure      503  {object}  types.HealthResponse  "Service is degraded"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	linkStatus := "disconnected"
	if h.sender.IsConnected() {
		linkStatus = "connected"
	}

	status := "healthy"
	httpStatus := http.StatusOK

	if linkStatus != "connected" {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, types.HealthResponse{
		Status:    status,
		Link:      linkStatus,
		Timestamp: time.Now(),
	})
}
