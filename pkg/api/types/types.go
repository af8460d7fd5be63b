package types

import (
	"time"

	"github.com/mvero/actiond/pkg/action"
)

// --- Request DTOs ---

// ActionRequest is the request body for POST /actions and PATCH /actions/:id.
// Pointer fields distinguish "absent" from zero values on partial updates.
type ActionRequest struct {
	Icon                 *string `json:"icon"`
	Title                *string `json:"title"`
	TxData               *string `json:"tx_data"`
	EOL                  *string `json:"eol"`
	Binary               *bool   `json:"binary"`
	TimerIntervalMs      *int    `json:"timer_interval_ms"`
	TimerMode            *int    `json:"timer_mode"`
	AutoExecuteOnConnect *bool   `json:"auto_execute_on_connect"`
}

// Apply copies the request's present fields onto the action.
func (r *ActionRequest) Apply(a *action.Action) {
	if r.Icon != nil {
		a.SetIcon(*r.Icon)
	}
	if r.Title != nil {
		a.SetTitle(*r.Title)
	}
	if r.TxData != nil {
		a.SetTxData(*r.TxData)
	}
	if r.EOL != nil {
		a.SetEOLSequence(*r.EOL)
	}
	if r.Binary != nil {
		a.SetBinaryData(*r.Binary)
	}
	if r.TimerIntervalMs != nil {
		a.SetTimerIntervalMs(*r.TimerIntervalMs)
	}
	if r.TimerMode != nil {
		a.SetMode(action.TimerMode(*r.TimerMode))
	}
	if r.AutoExecuteOnConnect != nil {
		a.SetAutoExecuteOnConnect(*r.AutoExecuteOnConnect)
	}
}

// ImportActionRequest is the request body for POST /actions/import.
type ImportActionRequest struct {
	Document map[string]any `json:"document" binding:"required"`
	Strict   bool           `json:"strict"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Link      string    `json:"link"`
	Timestamp time.Time `json:"timestamp"`
}

// ActionInfo is the API representation of an action.
type ActionInfo struct {
	ID                   int    `json:"id"`
	Icon                 string `json:"icon"`
	Title                string `json:"title"`
	TxData               string `json:"tx_data"`
	EOL                  string `json:"eol"`
	Binary               bool   `json:"binary"`
	TimerIntervalMs      int    `json:"timer_interval_ms"`
	TimerMode            int    `json:"timer_mode"`
	TimerModeName        string `json:"timer_mode_name"`
	TimerRunning         bool   `json:"timer_running"`
	AutoExecuteOnConnect bool   `json:"auto_execute_on_connect"`
}

// FromAction builds an ActionInfo from an action and its timer state.
func FromAction(a *action.Action, running bool) ActionInfo {
	return ActionInfo{
		ID:                   a.ID(),
		Icon:                 a.Icon(),
		Title:                a.Title(),
		TxData:               a.TxData(),
		EOL:                  a.EOLSequence(),
		Binary:               a.BinaryData(),
		TimerIntervalMs:      a.TimerIntervalMs(),
		TimerMode:            int(a.Mode()),
		TimerModeName:        a.Mode().String(),
		TimerRunning:         running,
		AutoExecuteOnConnect: a.AutoExecuteOnConnect(),
	}
}

// ListActionsResponse is returned from GET /actions
type ListActionsResponse struct {
	Actions []ActionInfo `json:"actions"`
	Count   int          `json:"count"`
}

// ActionResponse is returned from GET/POST/PATCH /actions endpoints
type ActionResponse struct {
	Action ActionInfo `json:"action"`
}

// PayloadResponse is returned from GET /actions/:id/payload
type PayloadResponse struct {
	ActionID int    `json:"action_id"`
	Hex      string `json:"hex"`
	Length   int    `json:"length"`
}

// TriggerResponse is returned from POST /actions/:id/trigger
type TriggerResponse struct {
	ActionID     int       `json:"action_id"`
	BytesSent    int       `json:"bytes_sent"`
	TimerRunning bool      `json:"timer_running"`
	Timestamp    time.Time `json:"timestamp"`
}

// ExportResponse is returned from GET /actions/:id/export
type ExportResponse struct {
	Document map[string]any `json:"document"`
}

// DeviceResponse is returned from GET /device
type DeviceResponse struct {
	Connected bool   `json:"connected"`
	Port      string `json:"port,omitempty"`
	BaudRate  int    `json:"baud_rate,omitempty"`
}

// PortsResponse is returned from GET /device/ports
type PortsResponse struct {
	Ports []string `json:"ports"`
	Count int      `json:"count"`
}
