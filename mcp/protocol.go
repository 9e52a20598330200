// Package mcp implements the Model Context Protocol server surface:
// protocol types, the JSON-RPC method dispatch, and the stdio transport.
package mcp

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// ProtocolVersion is the Model Context Protocol version
const ProtocolVersion = "2024-11-05"

// Initialize
type (
	// ServerInfo identifies an MCP implementation
	ServerInfo struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}

	// ServerCapabilities represents the server's supported capabilities
	ServerCapabilities struct {
		Tools *struct {
			ListChanged bool `json:"listChanged"`
		} `json:"tools,omitempty"`
	}

	// InitializeRequest represents a request to initialize the server
	InitializeRequest struct {
		ProtocolVersion string                 `json:"protocolVersion"`
		Capabilities    map[string]interface{} `json:"capabilities,omitempty"`
		ClientInfo      *ServerInfo            `json:"clientInfo,omitempty"`
	}

	// InitializeResponse represents the server's response to an initialize request
	InitializeResponse struct {
		ProtocolVersion string             `json:"protocolVersion"`
		Capabilities    ServerCapabilities `json:"capabilities"`
		ServerInfo      ServerInfo         `json:"serverInfo"`
	}
)

// Tools
type (
	// Tool represents a single entry in the tools/list response
	Tool struct {
		Name        string             `json:"name"`
		Description string             `json:"description,omitempty"`
		InputSchema *jsonschema.Schema `json:"inputSchema"`
	}

	// ToolsListResponse represents the response for the tools/list method
	ToolsListResponse struct {
		Tools      []Tool `json:"tools"`
		NextCursor string `json:"nextCursor,omitempty"`
	}

	// ToolCallRequest represents a request to call a specific tool
	ToolCallRequest struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments,omitempty"`
	}

	// ToolCallResponse represents the response from a tool call.
	// IsError marks tool-execution failures reported in-band, as opposed
	// to protocol-level JSON-RPC errors.
	ToolCallResponse struct {
		Content []Content `json:"content"`
		IsError bool      `json:"isError,omitempty"`
	}
)

// Content represents a content item in a tool call response
type Content struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Data     string `json:"data,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// NewTextContent creates a text content item
func NewTextContent(text string) Content {
	return Content{
		Type: "text",
		Text: text,
	}
}

// Ping
type (
	// PingRequest represents a ping request
	PingRequest struct{}

	// PingResponse represents the response to a ping
	PingResponse struct{}
)
