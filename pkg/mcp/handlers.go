package mcp

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mvero/actiond/pkg/action"
	"github.com/mvero/actiond/pkg/transport"
)

func (s *Server) handleGetHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	linkStatus := "disconnected"
	if s.sender.IsConnected() {
		linkStatus = "connected"
	}

	status := "healthy"
	if linkStatus != "connected" {
		status = "degraded"
	}

	out := GetHealthOutput{
		Status:    status,
		Link:      linkStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListActions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	actions, err := s.store.List(ctx, s.projectID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list actions: %s", err)), nil
	}

	infos := make([]ActionInfo, 0, len(actions))
	for _, a := range actions {
		infos = append(infos, actionToInfo(a, s.sched.Running(a.ID())))
	}

	out := ListActionsOutput{
		Actions: infos,
		Count:   len(infos),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredInt(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	a, err := s.store.Get(ctx, s.projectID, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("action not found: %s", err)), nil
	}

	out := GetActionOutput{Action: actionToInfo(a, s.sched.Running(a.ID()))}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleCreateAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := requiredString(request, "title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := s.store.NextActionID(ctx, s.projectID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to allocate action id: %s", err)), nil
	}

	a := action.New(id)
	a.SetTitle(title)
	applyArguments(a, request)

	if err := s.store.Create(ctx, s.projectID, a); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create action: %s", err)), nil
	}

	out := SaveActionOutput{
		Action:  actionToInfo(a, false),
		Message: fmt.Sprintf("Action %q created with id %d", a.Title(), a.ID()),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleUpdateAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredInt(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	a, err := s.store.Get(ctx, s.projectID, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("action not found: %s", err)), nil
	}

	if title, ok := request.GetArguments()["title"].(string); ok {
		a.SetTitle(title)
	}
	applyArguments(a, request)

	if err := s.store.Update(ctx, s.projectID, a); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to update action: %s", err)), nil
	}

	out := SaveActionOutput{
		Action:  actionToInfo(a, s.sched.Running(a.ID())),
		Message: fmt.Sprintf("Action %d updated", a.ID()),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleDeleteAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredInt(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.store.Delete(ctx, s.projectID, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete action: %s", err)), nil
	}

	s.sched.StopTimer(id)

	out := DeleteActionOutput{
		Success: true,
		Message: fmt.Sprintf("Action %d deleted", id),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleTriggerAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredInt(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	a, err := s.store.Get(ctx, s.projectID, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("action not found: %s", err)), nil
	}

	if err := s.sched.Trigger(ctx, a); err != nil {
		if errors.Is(err, transport.ErrNotConnected) {
			return mcp.NewToolResultError("device is not connected"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("transmission failed: %s", err)), nil
	}

	out := TriggerActionOutput{
		ActionID:     a.ID(),
		BytesSent:    len(a.TxByteArray()),
		TimerRunning: s.sched.Running(a.ID()),
		Message:      fmt.Sprintf("Action %q transmitted", a.Title()),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handlePreviewPayload(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requiredInt(request, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	a, err := s.store.Get(ctx, s.projectID, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("action not found: %s", err)), nil
	}

	data := a.TxByteArray()
	out := PreviewPayloadOutput{
		ActionID: a.ID(),
		Hex:      hex.EncodeToString(data),
		Length:   len(data),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListPorts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ports, err := transport.ListPorts()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list ports: %s", err)), nil
	}

	out := ListPortsOutput{
		Ports: ports,
		Count: len(ports),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// applyArguments copies the optional action fields present in the request
// onto the action. The title is handled by the callers because create
// requires it and update does not.
func applyArguments(a *action.Action, request mcp.CallToolRequest) {
	args := request.GetArguments()

	if v, ok := args["tx_data"].(string); ok {
		a.SetTxData(v)
	}
	if v, ok := args["eol"].(string); ok {
		a.SetEOLSequence(v)
	}
	if v, ok := args["binary"].(bool); ok {
		a.SetBinaryData(v)
	}
	if v, ok := args["timer_interval_ms"].(float64); ok {
		a.SetTimerIntervalMs(int(v))
	}
	if v, ok := args["timer_mode"].(float64); ok {
		a.SetMode(action.TimerMode(int(v)))
	}
	if v, ok := args["auto_execute_on_connect"].(bool); ok {
		a.SetAutoExecuteOnConnect(v)
	}
}

// requiredString extracts a required string argument from the request.
func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	v, ok := request.GetArguments()[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

// requiredInt extracts a required numeric argument from the request.
func requiredInt(request mcp.CallToolRequest, key string) (int, error) {
	v, ok := request.GetArguments()[key].(float64)
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}
	return int(v), nil
}

// formatJSON renders a tool output as indented JSON.
func formatJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}
