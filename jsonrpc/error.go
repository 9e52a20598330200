package jsonrpc

import (
	"fmt"
)

// ErrorCode represents a JSON-RPC error code
type ErrorCode int

// JSON-RPC 2.0 error codes as defined in https://www.jsonrpc.org/specification
const (
	// ErrParse (-32700): invalid JSON was received by the server
	ErrParse ErrorCode = -32700

	// ErrInvalidRequest (-32600): the JSON sent is not a valid Request object
	ErrInvalidRequest ErrorCode = -32600

	// ErrMethodNotFound (-32601): the method does not exist / is not available
	ErrMethodNotFound ErrorCode = -32601

	// ErrInvalidParams (-32602): invalid method parameter(s)
	ErrInvalidParams ErrorCode = -32602

	// ErrInternal (-32603): internal JSON-RPC error
	ErrInternal ErrorCode = -32603

	// ErrServer (-32000 to -32099): reserved for implementation-defined server errors
	ErrServer ErrorCode = -32000
)

var errorMessages = map[ErrorCode]string{
	ErrParse:          "Parse error",
	ErrInvalidRequest: "Invalid Request",
	ErrMethodNotFound: "Method not found",
	ErrInvalidParams:  "Invalid params",
	ErrInternal:       "Internal error",
	ErrServer:         "Server error",
}

// Error represents a JSON-RPC error object
type Error struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

var _ error = &Error{}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewError creates a new JSON-RPC error with the given code and optional data.
// If data is an error its message is used, so errors serialize as strings.
func NewError(code ErrorCode, data interface{}) *Error {
	msg, ok := errorMessages[code]
	if !ok {
		if code >= -32099 && code <= -32000 {
			msg = "Server error"
		} else {
			msg = "Unknown error"
		}
	}

	if err, ok := data.(error); ok {
		data = err.Error()
	}

	return &Error{
		Code:    code,
		Message: msg,
		Data:    data,
	}
}
