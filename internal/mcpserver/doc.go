// Package mcpserver exposes the color model as MCP tools so that agents can
// describe, classify and list colors over the Model Context Protocol.
//
// The server is stateless. Every call derives its answer from the arguments
// alone; it does not share a session with the terminal UI.
package mcpserver
