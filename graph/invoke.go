package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client dispatches tool invocations against the Graph API. It holds no
// mutable state; concurrent invocations are independent.
type Client struct {
	catalog Catalog
	baseURL string
	client  *http.Client
	token   string
	version string
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithBaseURL overrides the Graph API base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for outbound requests
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// WithToken sets the bearer credential attached to every request
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithDefaultVersion sets the api_version used when the caller omits it
func WithDefaultVersion(version string) ClientOption {
	return func(c *Client) {
		c.version = version
	}
}

// NewClient creates a dispatcher over the given endpoint catalog
func NewClient(catalog Catalog, opts ...ClientOption) *Client {
	c := &Client{
		catalog: catalog,
		baseURL: DefaultBaseURL,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the endpoint catalog the client dispatches against
func (c *Client) Catalog() Catalog {
	return c.catalog
}

// DefaultVersion returns the configured api_version fallback, if any
func (c *Client) DefaultVersion() string {
	return c.version
}

// Invoke resolves toolName against the catalog, builds the corresponding
// HTTP request from args, and returns the parsed JSON response body.
//
// Errors are surfaced without retry: *UnknownToolError and
// *MissingArgumentError before any request is issued, *RemoteAPIError for
// non-2xx responses, *TransportError for network failures.
func (c *Client) Invoke(ctx context.Context, toolName string, args map[string]interface{}) (json.RawMessage, error) {
	endpoint, ok := c.catalog.Lookup(toolName)
	if !ok {
		return nil, &UnknownToolError{Tool: toolName}
	}

	if _, present := args["api_version"]; !present && c.version != "" {
		merged := make(map[string]interface{}, len(args)+1)
		for k, v := range args {
			merged[k] = v
		}
		merged["api_version"] = c.version
		args = merged
	}

	for _, p := range endpoint.Params {
		if !p.Required {
			continue
		}
		if v, present := args[p.Name]; !present || v == nil {
			return nil, &MissingArgumentError{Tool: toolName, Argument: p.Name}
		}
	}

	req, err := c.buildRequest(ctx, endpoint, args)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RemoteAPIError{StatusCode: resp.StatusCode, Body: body}
	}

	if len(body) == 0 {
		return json.RawMessage("{}"), nil
	}
	if json.Valid(body) {
		return json.RawMessage(body), nil
	}

	// Non-JSON success bodies are wrapped as a JSON string
	wrapped, err := json.Marshal(string(body))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return json.RawMessage(wrapped), nil
}

func (c *Client) buildRequest(ctx context.Context, endpoint Endpoint, args map[string]interface{}) (*http.Request, error) {
	path := endpoint.Path
	query := url.Values{}
	bodyFields := map[string]interface{}{}
	headers := map[string]string{}
	var rawBody []byte

	for _, p := range endpoint.Params {
		value, present := args[p.Name]
		if !present || value == nil {
			continue
		}

		switch p.In {
		case InPath:
			path = strings.ReplaceAll(path, "{"+p.Name+"}", url.PathEscape(stringify(value)))
		case InQuery:
			query.Set(p.Name, stringify(value))
		case InBody:
			bodyFields[p.Name] = value
		case InHeader:
			headers[p.Name] = stringify(value)
		case InRawBody:
			rawBody = rawBytes(value)
		}
	}

	requestURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	var body io.Reader
	contentType := ""
	switch {
	case rawBody != nil:
		body = bytes.NewReader(rawBody)
	case len(bodyFields) > 0:
		encoded, err := json.Marshal(bodyFields)
		if err != nil {
			return nil, fmt.Errorf("error encoding request body: %w", err)
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, endpoint.Method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

// stringify renders an argument for a path, query, or header position.
// Scalars use their natural form; structured values are JSON-encoded,
// matching how the Graph API expects parameters like "filtering".
func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		// JSON numbers decode as float64; render integers without a fraction
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case int, int32, int64:
		return fmt.Sprintf("%d", v)
	case json.Number:
		return v.String()
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}

func rawBytes(value interface{}) []byte {
	switch v := value.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		return []byte(stringify(v))
	}
}
