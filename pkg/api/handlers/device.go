package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvero/actiond/pkg/api/types"
	"github.com/mvero/actiond/pkg/db"
	"github.com/mvero/actiond/pkg/transport"
)

// DeviceHandler handles device link endpoints
type DeviceHandler struct {
	sender transport.Sender
	link   *db.Link
}

// NewDeviceHandler creates a new device handler. link may be nil when no
// serial config exists for the active project.
func NewDeviceHandler(sender transport.Sender, link *db.Link) *DeviceHandler {
	return &DeviceHandler{sender: sender, link: link}
}

// GetDevice handles GET /device
// @Summary      Get device link info
// @Description  Returns the configured serial link and its connection state
// @Tags         device
// @Produce      json
// @Success      200  {object}  types.DeviceResponse
// @Router       /device [get]
func (h *DeviceHandler) GetDevice(c *gin.Context) {
	resp := types.DeviceResponse{
		Connected: h.sender.IsConnected(),
	}
	if h.link != nil {
		resp.Port = h.link.Port
		resp.BaudRate = h.link.BaudRate
	}

	c.JSON(http.StatusOK, resp)
}

// ListPorts handles GET /device/ports
// @Summary      List serial ports
// @Description  Enumerates the serial ports available on the host
// @Tags         device
// @Produce      json
// @Success      200  {object}  types.PortsResponse
// @Failure      500  {object}  types.ErrorResponse  "Enumeration failed"
// @Router       /device/ports [get]
func (h *DeviceHandler) ListPorts(c *gin.Context) {
	ports, err := transport.ListPorts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "enumeration_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.PortsResponse{
		Ports: ports,
		Count: len(ports),
	})
}
