package mcp

import "github.com/mvero/actiond/pkg/action"

// --- Health Tool ---

// GetHealthOutput is the output for the get_health tool
type GetHealthOutput struct {
	Status    string `json:"status" jsonschema:"description=Overall health status (healthy or degraded)"`
	Link      string `json:"link" jsonschema:"description=Device link connection status"`
	Timestamp string `json:"timestamp" jsonschema:"description=ISO8601 timestamp"`
}

// --- List Actions Tool ---

// ListActionsOutput is the output for the list_actions tool
type ListActionsOutput struct {
	Actions []ActionInfo `json:"actions" jsonschema:"description=Actions of the active project"`
	Count   int          `json:"count" jsonschema:"description=Total number of actions"`
}

// ActionInfo represents an action in tool outputs
type ActionInfo struct {
	ID                   int    `json:"id" jsonschema:"description=Action id"`
	Icon                 string `json:"icon,omitempty" jsonschema:"description=Display label"`
	Title                string `json:"title" jsonschema:"description=Display name"`
	TxData               string `json:"tx_data" jsonschema:"description=Payload source text"`
	EOL                  string `json:"eol,omitempty" jsonschema:"description=End-of-line text appended after the payload"`
	Binary               bool   `json:"binary" jsonschema:"description=Whether the payload text is read as hex byte pairs"`
	TimerIntervalMs      int    `json:"timer_interval_ms" jsonschema:"description=Milliseconds between timed triggers"`
	TimerMode            string `json:"timer_mode" jsonschema:"description=Timer behavior (off/autoStart/startOnTrigger/toggleOnTrigger)"`
	TimerRunning         bool   `json:"timer_running" jsonschema:"description=Whether the repeating timer is active"`
	AutoExecuteOnConnect bool   `json:"auto_execute_on_connect" jsonschema:"description=Whether the action fires once on connection"`
}

// --- Get Action Tool ---

// GetActionOutput is the output for the get_action tool
type GetActionOutput struct {
	Action ActionInfo `json:"action" jsonschema:"description=Action details"`
}

// --- Create/Update Action Tools ---

// SaveActionOutput is the output for the create_action and update_action tools
type SaveActionOutput struct {
	Action  ActionInfo `json:"action" jsonschema:"description=The stored action"`
	Message string     `json:"message" jsonschema:"description=Status message"`
}

// --- Delete Action Tool ---

// DeleteActionOutput is the output for the delete_action tool
type DeleteActionOutput struct {
	Success bool   `json:"success" jsonschema:"description=Whether the delete succeeded"`
	Message string `json:"message" jsonschema:"description=Status message"`
}

// --- Trigger Tool ---

// TriggerActionOutput is the output for the trigger_action tool
type TriggerActionOutput struct {
	ActionID     int    `json:"action_id" jsonschema:"description=Action id"`
	BytesSent    int    `json:"bytes_sent" jsonschema:"description=Number of bytes transmitted"`
	TimerRunning bool   `json:"timer_running" jsonschema:"description=Whether the repeating timer is active after the trigger"`
	Message      string `json:"message" jsonschema:"description=Status message"`
}

// --- Preview Payload Tool ---

// PreviewPayloadOutput is the output for the preview_payload tool
type PreviewPayloadOutput struct {
	ActionID int    `json:"action_id" jsonschema:"description=Action id"`
	Hex      string `json:"hex" jsonschema:"description=Payload bytes, hex encoded"`
	Length   int    `json:"length" jsonschema:"description=Payload length in bytes"`
}

// --- List Ports Tool ---

// ListPortsOutput is the output for the list_ports tool
type ListPortsOutput struct {
	Ports []string `json:"ports" jsonschema:"description=Serial port paths"`
	Count int      `json:"count" jsonschema:"description=Number of ports found"`
}

// --- Helper conversions ---

// actionToInfo converts an action to its tool output form.
func actionToInfo(a *action.Action, running bool) ActionInfo {
	return ActionInfo{
		ID:                   a.ID(),
		Icon:                 a.Icon(),
		Title:                a.Title(),
		TxData:               a.TxData(),
		EOL:                  a.EOLSequence(),
		Binary:               a.BinaryData(),
		TimerIntervalMs:      a.TimerIntervalMs(),
		TimerMode:            a.Mode().String(),
		TimerRunning:         running,
		AutoExecuteOnConnect: a.AutoExecuteOnConnect(),
	}
}
