package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvero/actiond/pkg/db"
	"github.com/mvero/actiond/pkg/scheduler"
	"github.com/mvero/actiond/pkg/transport"
)

// Server wraps the MCP server with action management and triggering tools.
type Server struct {
	mcpServer *server.MCPServer
	store     db.ActionStore
	projectID int64
	sender    transport.Sender
	sched     *scheduler.Scheduler
}

// NewServer creates a new MCP server for the given project's actions.
func NewServer(store db.ActionStore, projectID int64, sender transport.Sender, sched *scheduler.Scheduler) *Server {
	s := &Server{
		store:     store,
		projectID: projectID,
		sender:    sender,
		sched:     sched,
	}

	// Create MCP server
	s.mcpServer = server.NewMCPServer(
		"actiond",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register all tools
	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
