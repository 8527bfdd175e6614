package mcpserver

import (
	"context"
	"fmt"

	"swatchctl/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName = "swatchctl"
	subsystem  = "MCPServer"
)

// ColorServer is an MCP server offering the color tools.
type ColorServer struct {
	server *server.MCPServer
	tools  []server.ServerTool
}

// NewColorServer creates a server with every color tool registered.
func NewColorServer(version string) *ColorServer {
	if version == "" {
		version = "dev"
	}

	mcpServer := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
	)

	cs := &ColorServer{
		server: mcpServer,
		tools:  colorTools(),
	}
	cs.server.AddTools(cs.tools...)

	return cs
}

// ToolNames lists the registered tools in registration order.
func (cs *ColorServer) ToolNames() []string {
	names := make([]string, len(cs.tools))
	for i, t := range cs.tools {
		names[i] = t.Tool.Name
	}
	return names
}

// MCPServer returns the underlying mcp-go server.
func (cs *ColorServer) MCPServer() *server.MCPServer {
	return cs.server
}

// ServeStdio serves the tools on stdin/stdout until ctx is cancelled or the
// client disconnects.
func (cs *ColorServer) ServeStdio(ctx context.Context) error {
	logging.Info(subsystem, "Serving %d tools on stdio", len(cs.tools))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ServeStdio(cs.server)
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("stdio server: %w", err)
		}
		return nil
	}
}
