package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// Health check
	s.mcpServer.AddTool(
		mcp.NewTool("get_health",
			mcp.WithDescription("Check the health status of the actiond service and device link connectivity"),
		),
		s.handleGetHealth,
	)

	// List actions
	s.mcpServer.AddTool(
		mcp.NewTool("list_actions",
			mcp.WithDescription("List every action of the active project with its timer state"),
		),
		s.handleListActions,
	)

	// Get action
	s.mcpServer.AddTool(
		mcp.NewTool("get_action",
			mcp.WithDescription("Get a single action by id"),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Action id"),
			),
		),
		s.handleGetAction,
	)

	// Create action
	s.mcpServer.AddTool(
		mcp.NewTool("create_action",
			mcp.WithDescription("Create a new action. Payload text supports backslash escapes (\\n, \\r, \\t); with binary set it is read as hex byte pairs."),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("Display name of the action"),
			),
			mcp.WithString("tx_data",
				mcp.Description("Payload source text"),
			),
			mcp.WithString("eol",
				mcp.Description("End-of-line text appended after the payload"),
			),
			mcp.WithBoolean("binary",
				mcp.Description("Interpret the payload text as hexadecimal byte pairs"),
			),
			mcp.WithNumber("timer_interval_ms",
				mcp.Description("Milliseconds between timed triggers (default 100)"),
			),
			mcp.WithNumber("timer_mode",
				mcp.Description("Timer mode: 0 off, 1 auto-start, 2 start on trigger, 3 toggle on trigger"),
			),
			mcp.WithBoolean("auto_execute_on_connect",
				mcp.Description("Transmit once immediately when the device connects"),
			),
		),
		s.handleCreateAction,
	)

	// Update action
	s.mcpServer.AddTool(
		mcp.NewTool("update_action",
			mcp.WithDescription("Update fields of an existing action; omitted fields keep their value"),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Action id"),
			),
			mcp.WithString("title",
				mcp.Description("Display name of the action"),
			),
			mcp.WithString("tx_data",
				mcp.Description("Payload source text"),
			),
			mcp.WithString("eol",
				mcp.Description("End-of-line text appended after the payload"),
			),
			mcp.WithBoolean("binary",
				mcp.Description("Interpret the payload text as hexadecimal byte pairs"),
			),
			mcp.WithNumber("timer_interval_ms",
				mcp.Description("Milliseconds between timed triggers"),
			),
			mcp.WithNumber("timer_mode",
				mcp.Description("Timer mode: 0 off, 1 auto-start, 2 start on trigger, 3 toggle on trigger"),
			),
			mcp.WithBoolean("auto_execute_on_connect",
				mcp.Description("Transmit once immediately when the device connects"),
			),
		),
		s.handleUpdateAction,
	)

	// Delete action
	s.mcpServer.AddTool(
		mcp.NewTool("delete_action",
			mcp.WithDescription("Delete an action and stop its timer if running"),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Action id"),
			),
		),
		s.handleDeleteAction,
	)

	// Trigger action
	s.mcpServer.AddTool(
		mcp.NewTool("trigger_action",
			mcp.WithDescription("Transmit an action's payload once and apply its timer mode"),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Action id"),
			),
		),
		s.handleTriggerAction,
	)

	// Preview payload
	s.mcpServer.AddTool(
		mcp.NewTool("preview_payload",
			mcp.WithDescription("Show the exact bytes an action would transmit, hex encoded"),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("Action id"),
			),
		),
		s.handlePreviewPayload,
	)

	// List serial ports
	s.mcpServer.AddTool(
		mcp.NewTool("list_ports",
			mcp.WithDescription("Enumerate the serial ports available on the host"),
		),
		s.handleListPorts,
	)
}
