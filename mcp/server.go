package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/universal-mcp/whatsapp-business/graph"
	"github.com/universal-mcp/whatsapp-business/internal/config"
	"github.com/universal-mcp/whatsapp-business/jsonrpc"
)

// Server processes JSON-RPC requests, exposing the endpoint catalog as MCP
// tools and dispatching tool calls to the Graph API.
type Server struct {
	catalog    graph.Catalog
	client     *http.Client
	baseURL    string
	apiVersion string
	token      string
	config     *config.Config
	logger     *slog.Logger
	info       ServerInfo

	graph *graph.Client
}

// ServerOption configures a Server
type ServerOption func(*Server)

// WithCatalog sets the endpoint catalog served as tools
func WithCatalog(catalog graph.Catalog) ServerOption {
	return func(s *Server) {
		s.catalog = catalog
	}
}

// WithClient sets the HTTP client used for outbound requests
func WithClient(client *http.Client) ServerOption {
	return func(s *Server) {
		s.client = client
	}
}

// WithBaseURL overrides the Graph API base URL
func WithBaseURL(baseURL string) ServerOption {
	return func(s *Server) {
		s.baseURL = baseURL
	}
}

// WithAPIVersion sets the api_version used when a caller omits it
func WithAPIVersion(version string) ServerOption {
	return func(s *Server) {
		s.apiVersion = version
	}
}

// WithAuth sets the bearer credential forwarded to the Graph API
func WithAuth(token string) ServerOption {
	return func(s *Server) {
		s.token = token
	}
}

// WithConfig sets the service configuration
func WithConfig(cfg *config.Config) ServerOption {
	return func(s *Server) {
		s.config = cfg
	}
}

// WithLogger sets the logger used for request logging
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithServerInfo sets the name and version reported during initialize
func WithServerInfo(info ServerInfo) ServerOption {
	return func(s *Server) {
		s.info = info
	}
}

// NewServer creates a new MCP server instance
func NewServer(opts ...ServerOption) (*Server, error) {
	s := &Server{
		client: http.DefaultClient,
		info: ServerInfo{
			Name:    "whatsapp-business-mcp",
			Version: "dev",
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.catalog == nil {
		s.catalog = graph.DefaultCatalog()
	}
	if s.config == nil {
		s.config = config.DefaultConfig()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.baseURL == "" {
		s.baseURL = s.config.BaseURL
	}
	if s.apiVersion == "" {
		s.apiVersion = s.config.APIVersion
	}

	s.graph = graph.NewClient(s.catalog,
		graph.WithBaseURL(s.baseURL),
		graph.WithHTTPClient(s.client),
		graph.WithToken(s.token),
		graph.WithDefaultVersion(s.apiVersion),
	)

	return s, nil
}

// Handle processes a single JSON-RPC request and returns a response
func (s *Server) Handle(ctx context.Context, request jsonrpc.Request) jsonrpc.Response {
	s.logger.Debug("handling request", "method", request.Method)

	switch request.Method {
	case "initialize":
		return s.handleInitialize(request)
	case "ping":
		return s.handlePing(request)
	case "tools/list":
		return s.handleToolsList(request)
	case "tools/call":
		return s.handleToolsCall(ctx, request)
	default:
		return jsonrpc.NewResponse(request.Id, nil, jsonrpc.NewError(jsonrpc.ErrMethodNotFound, nil))
	}
}

func (s *Server) handleInitialize(request jsonrpc.Request) jsonrpc.Response {
	response := InitializeResponse{
		ProtocolVersion: ProtocolVersion,
		Capabilities: ServerCapabilities{
			Tools: &struct {
				ListChanged bool `json:"listChanged"`
			}{ListChanged: false},
		},
		ServerInfo: s.info,
	}
	return jsonrpc.NewResponse(request.Id, response, nil)
}

func (s *Server) handlePing(request jsonrpc.Request) jsonrpc.Response {
	return jsonrpc.NewResponse(request.Id, PingResponse{}, nil)
}

func (s *Server) handleToolsList(request jsonrpc.Request) jsonrpc.Response {
	tools := []Tool{}
	for _, endpoint := range s.catalog {
		if !s.config.Allows(endpoint.Name, endpoint.Method) {
			continue
		}

		schema := endpoint.InputSchema()
		if s.apiVersion != "" {
			// api_version has a configured default; callers may omit it
			required := schema.Required[:0]
			for _, name := range schema.Required {
				if name != "api_version" {
					required = append(required, name)
				}
			}
			schema.Required = required
		}

		tools = append(tools, Tool{
			Name:        endpoint.Name,
			Description: endpoint.Description,
			InputSchema: schema,
		})
	}

	return jsonrpc.NewResponse(request.Id, ToolsListResponse{Tools: tools}, nil)
}

func (s *Server) handleToolsCall(ctx context.Context, request jsonrpc.Request) jsonrpc.Response {
	var params ToolCallRequest
	if err := json.Unmarshal(request.Params, &params); err != nil {
		return jsonrpc.NewResponse(request.Id, nil, jsonrpc.NewError(jsonrpc.ErrInvalidParams, err))
	}

	if endpoint, ok := s.catalog.Lookup(params.Name); ok && !s.config.Allows(endpoint.Name, endpoint.Method) {
		return jsonrpc.NewResponse(request.Id, nil,
			jsonrpc.NewError(jsonrpc.ErrInvalidParams, fmt.Sprintf("tool %q is disabled", params.Name)))
	}

	result, err := s.graph.Invoke(ctx, params.Name, params.Arguments)
	if err != nil {
		var unknownTool *graph.UnknownToolError
		var missingArg *graph.MissingArgumentError
		var remoteErr *graph.RemoteAPIError

		switch {
		case errors.As(err, &unknownTool), errors.As(err, &missingArg):
			return jsonrpc.NewResponse(request.Id, nil, jsonrpc.NewError(jsonrpc.ErrInvalidParams, err))
		case errors.As(err, &remoteErr):
			// Remote API failures are tool-execution errors, reported
			// in-band with status and body intact
			s.logger.Debug("remote api error", "tool", params.Name, "status", remoteErr.StatusCode)
			return jsonrpc.NewResponse(request.Id, ToolCallResponse{
				Content: []Content{NewTextContent(fmt.Sprintf("HTTP %d: %s", remoteErr.StatusCode, remoteErr.Body))},
				IsError: true,
			}, nil)
		default:
			return jsonrpc.NewResponse(request.Id, nil, jsonrpc.NewError(jsonrpc.ErrInternal, err))
		}
	}

	return jsonrpc.NewResponse(request.Id, ToolCallResponse{
		Content: []Content{NewTextContent(string(result))},
	}, nil)
}
