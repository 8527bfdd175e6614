package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"swatchctl/internal/mcpserver"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

const defaultTimeout = 10 * time.Second

// CLIClient is an MCP client bound to an in-process color server, so CLI
// commands run through the same tools an agent would call.
type CLIClient struct {
	server  *mcpserver.ColorServer
	client  *client.Client
	timeout time.Duration
}

// NewCLIClient creates a client for the given color server.
func NewCLIClient(server *mcpserver.ColorServer) *CLIClient {
	return &CLIClient{
		server:  server,
		timeout: defaultTimeout,
	}
}

// Connect starts the in-process transport and performs the MCP handshake.
func (c *CLIClient) Connect(ctx context.Context) error {
	inProcess, err := client.NewInProcessClient(c.server.MCPServer())
	if err != nil {
		return fmt.Errorf("failed to create in-process client: %w", err)
	}

	if err := inProcess.Start(ctx); err != nil {
		return fmt.Errorf("failed to start in-process client: %w", err)
	}
	c.client = inProcess

	if err := c.initialize(ctx); err != nil {
		c.Close()
		return fmt.Errorf("initialization failed: %w", err)
	}
	return nil
}

// CallTool executes a tool and returns the raw result.
func (c *CLIClient) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not connected")
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.CallTool(timeoutCtx, req)
	if err != nil {
		return nil, fmt.Errorf("tool call failed: %w", err)
	}
	return result, nil
}

// CallToolSimple executes a tool and returns its first text content. A
// tool-level error becomes a Go error.
func (c *CLIClient) CallToolSimple(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	result, err := c.CallTool(ctx, name, args)
	if err != nil {
		return "", err
	}

	texts := resultTexts(result)
	if result.IsError {
		return "", fmt.Errorf("%s", strings.Join(texts, "\n"))
	}
	if len(texts) == 0 {
		return "", nil
	}
	return texts[0], nil
}

// CallToolJSON executes a tool and decodes its text result as JSON.
func (c *CLIClient) CallToolJSON(ctx context.Context, name string, args map[string]interface{}, out interface{}) error {
	textResult, err := c.CallToolSimple(ctx, name, args)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(textResult), out); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", name, err)
	}
	return nil
}

// Close closes the connection
func (c *CLIClient) Close() error {
	if c.client != nil {
		err := c.client.Close()
		c.client = nil
		return err
	}
	return nil
}

func (c *CLIClient) initialize(ctx context.Context) error {
	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{
		Name:    "swatchctl-cli",
		Version: "1.0.0",
	}
	req.Params.Capabilities = mcp.ClientCapabilities{}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.client.Initialize(timeoutCtx, req)
	return err
}

func resultTexts(result *mcp.CallToolResult) []string {
	var texts []string
	for _, content := range result.Content {
		if textContent, ok := mcp.AsTextContent(content); ok {
			texts = append(texts, textContent.Text)
		}
	}
	return texts
}
